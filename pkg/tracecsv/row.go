// Conversion of one tokenized CSV row into a single-message span record.
package tracecsv

import (
	"fmt"
	"strconv"
	"time"
)

// timestampLayout is the fixed layout of the dump's timestamp column,
// always interpreted in UTC.
const timestampLayout = "2006-01-02 15:04:05.999999"

// rowFieldCount is the arity of every data row.
const rowFieldCount = 9

// Column order of the dump. The header row must match exactly.
var columns = []string{
	"span_idx", "message_idx", "timestamp", "duration",
	"operation", "loc", "tag", "message", "age",
}

// parseRow converts one tokenized row into a span record carrying exactly
// one message and no children. The tree builder later merges records that
// belong to the same span.
func parseRow(fields []string) (*TraceNode, error) {
	if len(fields) != rowFieldCount {
		return nil, formatErrorf("row has %d fields, want %d", len(fields), rowFieldCount)
	}

	spanID, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, formatErrorf("span_idx %q is not an integer", fields[0])
	}
	msgIdx, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, formatErrorf("message_idx %q is not an integer", fields[1])
	}
	ts, err := time.ParseInLocation(timestampLayout, fields[2], time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parsing timestamp: %w", err)
	}

	return &TraceNode{
		SpanID:    spanID,
		Operation: fields[4],
		Location:  fields[5],
		Tag:       fields[6],
		Timestamp: ts,
		Duration:  ParseShortDuration(fields[3]),
		Messages: []LogMessage{{
			Idx:     msgIdx,
			Age:     ParseShortDuration(fields[8]),
			Message: fields[7],
		}},
	}, nil
}
