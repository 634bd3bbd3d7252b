// Trace tree reconstruction from the flat, interleaved row sequence.
// Nesting is recovered with an ancestry stack; ambiguous attachment is
// resolved by message age, never by span ID magnitude.
package tracecsv

// buildTree reassembles the span tree from single-message row records in
// file order. The first row becomes the root and the bottom of the
// ancestry stack; the root frame is never popped.
//
// Span IDs only support equality tests against open frames: the dump may
// reuse or assign them non-monotonically, so the one global ordering
// signal is each span's message age.
func buildTree(rows []*TraceNode) *TraceNode {
	root := rows[0]
	stack := []*TraceNode{root}

	for _, row := range rows[1:] {
		cur := stack[len(stack)-1]

		switch {
		case row.SpanID == cur.SpanID:
			// Another log line in the span already on top.
			cur.Messages = append(cur.Messages, row.Messages...)
			if cur.Tag == "" && row.Tag != "" {
				// Tags may be logged after span creation.
				cur.Tag = row.Tag
			}

		case stackIndex(stack, row.SpanID) >= 0:
			// The top span finished and logging returned to an open
			// ancestor. Pop the finished frames and append there.
			for len(stack) > 1 && stack[len(stack)-1].SpanID != row.SpanID {
				stack = stack[:len(stack)-1]
			}
			top := stack[len(stack)-1]
			top.Messages = append(top.Messages, row.Messages...)

		default:
			// A span not seen on the stack: ordinarily a child of cur.
			// A parent can spawn a child without logging in between, in
			// which case the new span belongs to an ancestor: while the
			// new span's first message predates cur's latest message,
			// cur cannot be the parent, so promote the ancestor.
			for len(stack) > 1 && row.firstMessageAge() < cur.lastMessageAge() {
				stack = stack[:len(stack)-1]
				cur = stack[len(stack)-1]
			}
			cur.Children = append(cur.Children, row)
			stack = append(stack, row)
		}
	}

	return root
}

// stackIndex returns the position of spanID among the open frames, or -1.
func stackIndex(stack []*TraceNode, spanID int) int {
	for i, n := range stack {
		if n.SpanID == spanID {
			return i
		}
	}
	return -1
}
