// Unit tests for single-row parsing
package tracecsv

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRow(t *testing.T) {
	fields := []string{
		"3", "7", "2021-04-13 19:58:44.680151", "2ms293µs",
		"table reader", "reader.go:108", "tr", "starting scan", "150µs",
	}

	node, err := parseRow(fields)
	require.NoError(t, err)

	assert.Equal(t, 3, node.SpanID)
	assert.Equal(t, "table reader", node.Operation)
	assert.Equal(t, "reader.go:108", node.Location)
	assert.Equal(t, "tr", node.Tag)
	assert.Equal(t, time.Date(2021, 4, 13, 19, 58, 44, 680151000, time.UTC), node.Timestamp)
	assert.Equal(t, 2*time.Millisecond+293*time.Microsecond, node.Duration)
	assert.Empty(t, node.Children)
	assert.Nil(t, node.Attrs)

	require.Len(t, node.Messages, 1)
	assert.Equal(t, LogMessage{Idx: 7, Age: 150 * time.Microsecond, Message: "starting scan"}, node.Messages[0])
}

func TestParseRow_WrongArity(t *testing.T) {
	_, err := parseRow([]string{"1", "2", "3"})
	var ferr *FormatError
	require.ErrorAs(t, err, &ferr)
	assert.Contains(t, ferr.Error(), "3 fields")
}

func TestParseRow_BadSpanIdx(t *testing.T) {
	fields := []string{
		"abc", "0", "2021-04-13 19:58:44.680151", "1ms",
		"op", "loc.go:1", "", "msg", "0ns",
	}
	_, err := parseRow(fields)
	var ferr *FormatError
	assert.ErrorAs(t, err, &ferr)
}

func TestParseRow_BadTimestamp(t *testing.T) {
	fields := []string{
		"0", "0", "not a time", "1ms",
		"op", "loc.go:1", "", "msg", "0ns",
	}
	_, err := parseRow(fields)
	require.Error(t, err)
	// Timestamp parsing is a collaborator failure, not a format error.
	var ferr *FormatError
	assert.False(t, errors.As(err, &ferr))
}
