package converters

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/deepening/core"
)

// EncodeGraph renders g as a block mapping of flow sequences, one entry per
// vertex in insertion order. Sinks are written as [].
func EncodeGraph(g *core.Graph[string]) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, v := range g.Vertices() {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, s := range g.Successors(v) {
			seq.Content = append(seq.Content, scalar(s))
		}
		m.Content = append(m.Content, scalar(v), seq)
	}
	return m
}

// Encode writes s as a YAML document that Decode reads back unchanged.
func Encode(s *Scenario) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	root.Content = append(root.Content,
		scalar("start"), scalar(s.Start),
		scalar("goal"), scalar(s.Goal),
		scalar("max_depth"), &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(s.MaxDepth)},
		scalar("graph"), EncodeGraph(s.Graph),
	)
	if len(s.Queries) > 0 {
		var qs yaml.Node
		if err := qs.Encode(s.Queries); err != nil {
			return nil, fmt.Errorf("converters: encode queries: %w", err)
		}
		root.Content = append(root.Content, scalar("queries"), &qs)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("converters: encode scenario: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("converters: encode scenario: %w", err)
	}
	return buf.Bytes(), nil
}

// scalar builds a string node. Style is left to the encoder so values
// such as "1" or "yes" come out quoted.
func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}
