// Package dfs defines types and options for depth-first search with a
// goal test: pre-visit and backtrack hooks, and the search result.
package dfs

import "errors"

var (
	// ErrGraphNil is returned when a nil graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")
)

// Option configures optional behavior of DFS.
// Use with DFS(g, start, goal, opts...).
type Option[N comparable] func(*Options[N])

// Options holds configurable parameters for DFS.
type Options[N comparable] struct {
	// OnVisit, if non-nil, is invoked when a vertex is first reached, after it
	// has been recorded in the exploration order and before the goal test.
	// Returning an error aborts the search with that error.
	OnVisit func(id N, depth int) error

	// OnBacktrack, if non-nil, is invoked when a vertex is popped from the
	// current path because none of its successors reached the goal.
	OnBacktrack func(id N, depth int)
}

// DefaultOptions returns Options with no hooks installed.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnVisit:     nil,
		OnBacktrack: nil,
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
func WithOnVisit[N comparable](fn func(id N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack returns an Option that installs fn as a backtrack hook.
func WithOnBacktrack[N comparable](fn func(id N, depth int)) Option[N] {
	return func(o *Options[N]) {
		o.OnBacktrack = fn
	}
}

// Result captures the outcome of a goal-directed depth-first search.
type Result[N comparable] struct {
	// Path runs from start to goal. It is nil when the goal was not reached.
	Path []N

	// Order records every vertex in the sequence it was visited, including
	// vertices the search later backtracked from. It is never shortened.
	Order []N

	// Found reports whether the goal was reached.
	Found bool

	// Depth maps each visited vertex to the number of edges from start at
	// which it was first reached.
	Depth map[N]int

	// Backtracks counts how many vertices were popped from the path.
	Backtracks int
}
