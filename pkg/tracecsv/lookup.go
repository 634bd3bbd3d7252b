// Lookups between span IDs and the processor ID attribute.
package tracecsv

import "strconv"

// ProcessorIDAttr is the attribute key under which the execution engine
// records the physical processor handling a span.
const ProcessorIDAttr = "processorid"

// ProcessorForSpan finds the span with the given ID and returns its
// processor ID attribute. The second return is false if no such span
// exists or it carries no parseable processor ID. Each call walks the
// whole tree; no index is kept.
func ProcessorForSpan(root *TraceNode, spanID int) (int, bool) {
	node := findSpan(root, spanID)
	if node == nil {
		return 0, false
	}
	v, ok := node.Attrs[ProcessorIDAttr]
	if !ok {
		return 0, false
	}
	proc, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return proc, true
}

// SpanForProcessor returns the ID of the first span (in preorder) whose
// processor ID attribute equals proc, or false if none does.
func SpanForProcessor(root *TraceNode, proc int) (int, bool) {
	node := findProcessor(root, proc)
	if node == nil {
		return 0, false
	}
	return node.SpanID, true
}

func findSpan(node *TraceNode, spanID int) *TraceNode {
	if node.SpanID == spanID {
		return node
	}
	for _, child := range node.Children {
		if found := findSpan(child, spanID); found != nil {
			return found
		}
	}
	return nil
}

func findProcessor(node *TraceNode, proc int) *TraceNode {
	if v, ok := node.Attrs[ProcessorIDAttr]; ok {
		if p, err := strconv.Atoi(v); err == nil && p == proc {
			return node
		}
	}
	for _, child := range node.Children {
		if found := findProcessor(child, proc); found != nil {
			return found
		}
	}
	return nil
}
