package converters

import (
	"errors"

	"github.com/katalvlaran/deepening/core"
)

// Sentinel errors for scenario decoding.
var (
	// ErrEmptyDocument is returned when the input contains no document.
	ErrEmptyDocument = errors.New("converters: empty document")

	// ErrBadGraph is returned when the graph section is missing or is not
	// a mapping from vertex to a sequence of successor scalars.
	ErrBadGraph = errors.New("converters: graph must be a mapping of vertex to successor list")

	// ErrBadScenario is returned for missing endpoints or negative depths.
	ErrBadScenario = errors.New("converters: invalid scenario")
)

// Query is one start/goal pair for batch comparison. A nil MaxDepth
// inherits the scenario's budget; an explicit 0 is kept.
type Query struct {
	Start    string `yaml:"start" json:"start"`
	Goal     string `yaml:"goal" json:"goal"`
	MaxDepth *int   `yaml:"max_depth,omitempty" json:"max_depth,omitempty"`
}

// Scenario is a decoded scenario document.
type Scenario struct {
	Start    string
	Goal     string
	MaxDepth int
	Graph    *core.Graph[string]
	Queries  []Query
}

// AllQueries returns the primary start/goal pair followed by every extra
// query. Every returned MaxDepth is set; omitted ones take the
// scenario's MaxDepth.
func (s *Scenario) AllQueries() []Query {
	out := make([]Query, 0, len(s.Queries)+1)
	top := s.MaxDepth
	out = append(out, Query{Start: s.Start, Goal: s.Goal, MaxDepth: &top})
	for _, q := range s.Queries {
		if q.MaxDepth == nil {
			d := s.MaxDepth
			q.MaxDepth = &d
		}
		out = append(out, q)
	}
	return out
}

// Depth returns the query's bound, or def when MaxDepth is omitted.
func (q Query) Depth(def int) int {
	if q.MaxDepth == nil {
		return def
	}
	return *q.MaxDepth
}
