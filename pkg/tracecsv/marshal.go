// YAML serialisation of a reconstructed trace tree.
// Output mirrors the tree shape so nesting survives the round trip into
// other tooling; it is not the CSV row format and cannot be re-ingested.
package tracecsv

import (
	"fmt"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

// yamlNode is the serialised form of a TraceNode.
type yamlNode struct {
	SpanID    int         `yaml:"span_id"`
	Operation string      `yaml:"operation"`
	Location  string      `yaml:"loc,omitempty"`
	Tag       string      `yaml:"tag,omitempty"`
	Timestamp string      `yaml:"timestamp"`
	Duration  string      `yaml:"duration"`
	Attrs     yaml.Node   `yaml:"attrs,omitempty"`
	Messages  []yamlMsg   `yaml:"messages,omitempty"`
	Children  []*yamlNode `yaml:"children,omitempty"`
}

type yamlMsg struct {
	Idx     int    `yaml:"idx"`
	Age     string `yaml:"age"`
	Message string `yaml:"message"`
}

// MarshalYAML serialises the tree as YAML bytes. Attribute keys are
// sorted for deterministic output.
func MarshalYAML(root *TraceNode) ([]byte, error) {
	out, err := yaml.Marshal(toYAMLNode(root))
	if err != nil {
		return nil, fmt.Errorf("marshalling trace: %w", err)
	}
	return out, nil
}

func toYAMLNode(n *TraceNode) *yamlNode {
	y := &yamlNode{
		SpanID:    n.SpanID,
		Operation: n.Operation,
		Location:  n.Location,
		Tag:       n.Tag,
		Timestamp: n.Timestamp.UTC().Format(time.RFC3339Nano),
		Duration:  n.Duration.String(),
		Attrs:     sortedAttrs(n.Attrs),
	}
	for _, m := range n.Messages {
		y.Messages = append(y.Messages, yamlMsg{Idx: m.Idx, Age: m.Age.String(), Message: m.Message})
	}
	for _, child := range n.Children {
		y.Children = append(y.Children, toYAMLNode(child))
	}
	return y
}

// sortedAttrs builds a YAML mapping node with keys in sorted order.
// Go map iteration order would otherwise make output non-deterministic.
func sortedAttrs(attrs map[string]string) yaml.Node {
	var node yaml.Node
	if attrs == nil {
		return node
	}
	node.Kind = yaml.MappingNode
	node.Tag = "!!map"
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: attrs[k]},
		)
	}
	return node
}
