// Unit tests for YAML serialisation of trace trees
package tracecsv

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func marshalTestTree() *TraceNode {
	return &TraceNode{
		SpanID:    0,
		Operation: "exec",
		Location:  "exec.go:12",
		Timestamp: time.Date(2021, 4, 13, 19, 58, 44, 680151000, time.UTC),
		Duration:  5 * time.Millisecond,
		Messages:  []LogMessage{{Idx: 0, Age: 0, Message: "start"}},
		Children: []*TraceNode{{
			SpanID:    1,
			Operation: "flow",
			Tag:       "fl",
			Attrs:     map[string]string{"processorid": "2", "flowid": "ab"},
			Messages:  []LogMessage{{Idx: 0, Age: 50 * time.Microsecond, Message: "flow start"}},
		}},
	}
}

func TestMarshalYAML(t *testing.T) {
	out, err := MarshalYAML(marshalTestTree())
	require.NoError(t, err)

	var decoded struct {
		SpanID    int    `yaml:"span_id"`
		Operation string `yaml:"operation"`
		Children  []struct {
			SpanID int               `yaml:"span_id"`
			Tag    string            `yaml:"tag"`
			Attrs  map[string]string `yaml:"attrs"`
		} `yaml:"children"`
	}
	require.NoError(t, yaml.Unmarshal(out, &decoded))

	assert.Equal(t, 0, decoded.SpanID)
	assert.Equal(t, "exec", decoded.Operation)
	require.Len(t, decoded.Children, 1)
	assert.Equal(t, "fl", decoded.Children[0].Tag)
	assert.Equal(t, map[string]string{"processorid": "2", "flowid": "ab"}, decoded.Children[0].Attrs)
}

func TestMarshalYAML_Deterministic(t *testing.T) {
	tree := marshalTestTree()
	first, err := MarshalYAML(tree)
	require.NoError(t, err)
	second, err := MarshalYAML(tree)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestMarshalYAML_OmitsAbsentAttrs(t *testing.T) {
	tree := &TraceNode{
		SpanID:    0,
		Operation: "exec",
		Messages:  []LogMessage{{Message: "start"}},
	}

	out, err := MarshalYAML(tree)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(out), "attrs"), "nil attrs should not be serialised")
}
