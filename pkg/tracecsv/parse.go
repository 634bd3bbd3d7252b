// Package tracecsv reconstructs a hierarchical trace tree from the flat
// CSV span log emitted by a distributed query engine's debug tracing
// facility. Rows for different spans arrive interleaved in emission
// order; ParseTrace reassembles parent/child nesting, merges per-span
// log messages, and derives span attributes from span-start messages.
package tracecsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ParseTrace reads a CSV trace dump and returns the reconstructed tree.
// The header must carry exactly the nine expected columns and at least
// one data row must follow; violations yield a *FormatError. Low-level
// CSV syntax errors from the tokenizer are propagated as-is.
//
// The input is a pure function input: parsing the same text twice
// produces identical trees.
func ParseTrace(r io.Reader) (*TraceNode, error) {
	cr := csv.NewReader(r)
	// Arity is checked per row so that a short row surfaces as a
	// FormatError rather than a csv.ErrFieldCount.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, formatErrorf("empty input, want header %q", strings.Join(columns, ","))
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var rows []*TraceNode
	for {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(rows)+1, err)
		}
		row, err := parseRow(fields)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(rows)+1, err)
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, formatErrorf("no data rows")
	}

	root := buildTree(rows)
	extractAttrs(root)
	return root, nil
}

func checkHeader(header []string) error {
	if len(header) != len(columns) {
		return formatErrorf("header has %d columns, want %d", len(header), len(columns))
	}
	for i, want := range columns {
		if header[i] != want {
			return formatErrorf("header column %d is %q, want %q", i, header[i], want)
		}
	}
	return nil
}
