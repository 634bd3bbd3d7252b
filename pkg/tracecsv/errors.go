package tracecsv

import "fmt"

// FormatError reports structurally malformed trace input: a bad header,
// zero data rows, or a row with the wrong shape. It is fatal; no partial
// tree is returned alongside it.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "trace format: " + e.Reason
}

func formatErrorf(format string, args ...any) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}
