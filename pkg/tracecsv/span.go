// Data model for reconstructed debug-trace trees.
// A TraceNode is one span; rows of the CSV dump are merged into nodes
// during reconstruction.
package tracecsv

import "time"

// LogMessage is one log line recorded within a span.
type LogMessage struct {
	// Idx is the message sequence number, unique and increasing within
	// the owning span.
	Idx int
	// Age is the time elapsed since the owning span started.
	Age time.Duration
	// Message is the raw log text, possibly multi-line.
	Message string
}

// TraceNode is a span in the reconstructed trace tree.
type TraceNode struct {
	// SpanID identifies the span. IDs support equality tests against
	// the reconstruction stack but carry no nesting information.
	SpanID    int
	Operation string
	Location  string
	// Tag may arrive on any row of the span, not only the first.
	Tag       string
	Timestamp time.Time
	Duration  time.Duration
	// Messages in chronological order (by Idx).
	Messages []LogMessage
	// Children in discovery order during reconstruction.
	Children []*TraceNode
	// Attrs holds key/value pairs parsed from the span-start message.
	// nil means no span-start message was present; an empty non-nil map
	// is a span-start message with no attribute lines.
	Attrs map[string]string
}

// firstMessageAge returns the age of the node's earliest message.
// Every node built from a row has at least one message.
func (n *TraceNode) firstMessageAge() time.Duration {
	return n.Messages[0].Age
}

// lastMessageAge returns the age of the node's most recently appended message.
func (n *TraceNode) lastMessageAge() time.Duration {
	return n.Messages[len(n.Messages)-1].Age
}
