// Text and table rendering of reconstructed trace trees.
package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/andrewh/qtrace/pkg/tracecsv"
	"github.com/jedib0t/go-pretty/v6/table"
)

type renderOptions struct {
	messages bool
	attrs    bool
}

// renderTree prints the span tree with two-space indentation per level.
func renderTree(w io.Writer, root *tracecsv.TraceNode, opts renderOptions) {
	var walk func(n *tracecsv.TraceNode, depth int)
	walk = func(n *tracecsv.TraceNode, depth int) {
		indent := strings.Repeat("  ", depth)
		line := fmt.Sprintf("%s%s (span %d, %s)", indent, n.Operation, n.SpanID, n.Duration)
		if n.Tag != "" {
			line += fmt.Sprintf(" [%s]", n.Tag)
		}
		_, _ = fmt.Fprintln(w, line)

		if opts.attrs && n.Attrs != nil {
			keys := make([]string, 0, len(n.Attrs))
			for k := range n.Attrs {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				_, _ = fmt.Fprintf(w, "%s  @ %s: %s\n", indent, k, n.Attrs[k])
			}
		}
		if opts.messages {
			for _, m := range n.Messages {
				// Multi-line messages keep only their first line in the
				// tree view.
				text, _, _ := strings.Cut(m.Message, "\n")
				_, _ = fmt.Fprintf(w, "%s  %s %s\n", indent, m.Age, text)
			}
		}

		for _, child := range n.Children {
			walk(child, depth+1)
		}
	}
	walk(root, 0)
}

// renderSpanTable lists every span in preorder.
func renderSpanTable(w io.Writer, root *tracecsv.TraceNode) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Span", "Operation", "Tag", "Processor", "Duration", "Messages"})

	var walk func(n *tracecsv.TraceNode)
	walk = func(n *tracecsv.TraceNode) {
		proc := ""
		if p, ok := tracecsv.ProcessorForSpan(n, n.SpanID); ok {
			proc = fmt.Sprint(p)
		}
		t.AppendRow(table.Row{n.SpanID, n.Operation, n.Tag, proc, n.Duration.String(), len(n.Messages)})
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)

	t.Render()
}

// renderStatsTable prints per-operation duration statistics.
func renderStatsTable(w io.Writer, stats []*tracecsv.OpStats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Operation", "Spans", "Messages", "Min", "Mean", "Max"})

	for _, s := range stats {
		t.AppendRow(table.Row{s.Operation, s.SpanCount, s.MsgCount, s.Min().String(), s.Mean().String(), s.Max().String()})
	}

	t.Render()
}
