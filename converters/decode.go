package converters

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/deepening/core"
	"github.com/katalvlaran/deepening/ids"
)

// document mirrors the on-disk layout. The graph stays a raw node so its
// key order survives decoding.
type document struct {
	Start    string    `yaml:"start"`
	Goal     string    `yaml:"goal"`
	MaxDepth *int      `yaml:"max_depth"`
	Graph    yaml.Node `yaml:"graph"`
	Queries  []Query   `yaml:"queries"`
}

// Load reads and decodes the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("converters: read scenario: %w", err)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses a YAML or JSON scenario document. A missing max_depth
// defaults to ids.DefaultMaxDepth.
func Decode(data []byte) (*Scenario, error) {
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("converters: parse scenario: %w", err)
	}

	if doc.Start == "" || doc.Goal == "" {
		return nil, fmt.Errorf("%w: start and goal are required", ErrBadScenario)
	}
	depth := ids.DefaultMaxDepth
	if doc.MaxDepth != nil {
		depth = *doc.MaxDepth
	}
	if depth < 0 {
		return nil, fmt.Errorf("%w: max_depth %d is negative", ErrBadScenario, depth)
	}
	for i, q := range doc.Queries {
		if q.Start == "" || q.Goal == "" {
			return nil, fmt.Errorf("%w: query %d needs start and goal", ErrBadScenario, i)
		}
		if q.MaxDepth != nil && *q.MaxDepth < 0 {
			return nil, fmt.Errorf("%w: query %d max_depth %d is negative", ErrBadScenario, i, *q.MaxDepth)
		}
	}

	g, err := DecodeGraph(&doc.Graph)
	if err != nil {
		return nil, err
	}

	return &Scenario{
		Start:    doc.Start,
		Goal:     doc.Goal,
		MaxDepth: depth,
		Graph:    g,
		Queries:  doc.Queries,
	}, nil
}

// DecodeGraph converts a mapping node into a core.Graph[string]. Vertices
// are added in first-appearance order, a key before its successors. A
// null value or empty sequence declares a sink. Loops and repeated
// successors are kept as written.
func DecodeGraph(node *yaml.Node) (*core.Graph[string], error) {
	node = resolve(node)
	if node == nil || node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w (line %d)", ErrBadGraph, line(node))
	}

	g := core.NewGraph[string](core.WithLoops(), core.WithMultiEdges())
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := resolve(node.Content[i]), resolve(node.Content[i+1])
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: non-scalar vertex at line %d", ErrBadGraph, key.Line)
		}
		if err := g.AddVertex(key.Value); err != nil {
			return nil, fmt.Errorf("converters: vertex %q: %w", key.Value, err)
		}

		switch {
		case val.Kind == yaml.ScalarNode && val.Tag == "!!null":
			continue
		case val.Kind != yaml.SequenceNode:
			return nil, fmt.Errorf("%w: successors of %q at line %d", ErrBadGraph, key.Value, val.Line)
		}
		for _, item := range val.Content {
			item = resolve(item)
			if item.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: non-scalar successor of %q at line %d", ErrBadGraph, key.Value, item.Line)
			}
			if err := g.AddEdge(key.Value, item.Value); err != nil {
				return nil, fmt.Errorf("converters: edge %s→%s: %w", key.Value, item.Value, err)
			}
		}
	}
	return g, nil
}

// resolve follows aliases and unwraps a document node.
func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.AliasNode:
			n = n.Alias
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		default:
			return n
		}
	}
	return nil
}

func line(n *yaml.Node) int {
	if n == nil {
		return 0
	}
	return n.Line
}
