// Extraction of span attributes from span-start log messages.
package tracecsv

import "strings"

// spanStartMarker opens the first log message of spans that record
// structured attributes, one "key: value" line per attribute.
const spanStartMarker = "=== SPAN START:"

// attrDelimiter separates an attribute key from its value.
const attrDelimiter = ": "

// extractAttrs walks the finished tree in preorder and fills in Attrs for
// every node whose first message begins with the span-start marker. Nodes
// without such a message keep Attrs == nil. Children are visited whether
// or not the current node matched.
func extractAttrs(node *TraceNode) {
	if len(node.Messages) > 0 && strings.HasPrefix(node.Messages[0].Message, spanStartMarker) {
		node.Attrs = make(map[string]string)
		lines := strings.Split(node.Messages[0].Message, "\n")
		for _, line := range lines[1:] {
			key, value, ok := strings.Cut(line, attrDelimiter)
			if !ok {
				continue
			}
			// A repeated key keeps the later occurrence.
			node.Attrs[key] = value
		}
	}
	for _, child := range node.Children {
		extractAttrs(child)
	}
}
