// Unit tests for span/processor ID lookups
package tracecsv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupTree() *TraceNode {
	return &TraceNode{
		SpanID:   1,
		Messages: []LogMessage{{Message: "start"}},
		Children: []*TraceNode{
			{
				SpanID: 2,
				Attrs:  map[string]string{ProcessorIDAttr: "10"},
			},
			{
				SpanID: 3,
				Attrs:  map[string]string{ProcessorIDAttr: "20"},
				Children: []*TraceNode{
					{SpanID: 4, Attrs: map[string]string{ProcessorIDAttr: "10"}},
				},
			},
		},
	}
}

func TestProcessorForSpan(t *testing.T) {
	proc, ok := ProcessorForSpan(lookupTree(), 3)
	require.True(t, ok)
	assert.Equal(t, 20, proc)
}

func TestProcessorForSpan_NoSuchSpan(t *testing.T) {
	_, ok := ProcessorForSpan(lookupTree(), 99)
	assert.False(t, ok)
}

func TestProcessorForSpan_NoAttr(t *testing.T) {
	_, ok := ProcessorForSpan(lookupTree(), 1)
	assert.False(t, ok)
}

func TestProcessorForSpan_NonNumeric(t *testing.T) {
	root := &TraceNode{SpanID: 1, Attrs: map[string]string{ProcessorIDAttr: "none"}}
	_, ok := ProcessorForSpan(root, 1)
	assert.False(t, ok)
}

func TestSpanForProcessor(t *testing.T) {
	span, ok := SpanForProcessor(lookupTree(), 20)
	require.True(t, ok)
	assert.Equal(t, 3, span)
}

func TestSpanForProcessor_FirstInPreorder(t *testing.T) {
	// Processor 10 appears on spans 2 and 4; preorder finds 2 first.
	span, ok := SpanForProcessor(lookupTree(), 10)
	require.True(t, ok)
	assert.Equal(t, 2, span)
}

func TestSpanForProcessor_NotFound(t *testing.T) {
	_, ok := SpanForProcessor(lookupTree(), 99)
	assert.False(t, ok)
}

func TestLookups_MutualInverses(t *testing.T) {
	root := lookupTree()

	span, ok := SpanForProcessor(root, 20)
	require.True(t, ok)
	proc, ok := ProcessorForSpan(root, span)
	require.True(t, ok)
	assert.Equal(t, 20, proc)
}
