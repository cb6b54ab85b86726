// Package dls defines the outcome, options and result types of
// depth-limited search.
package dls

import (
	"errors"
	"fmt"
)

// Sentinel errors for DLS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("dls: graph is nil")

	// ErrEmptyPath is returned when the path in progress has no vertices.
	ErrEmptyPath = errors.New("dls: path in progress is empty")

	// ErrNegativeLimit is returned when the depth bound is below zero.
	ErrNegativeLimit = errors.New("dls: depth limit cannot be negative")
)

// Outcome tells how a depth-limited search ended.
type Outcome int

const (
	// Exhausted: every simple path from the frontier was explored within
	// the bound and none reached the goal. A larger bound cannot help.
	Exhausted Outcome = iota

	// Cutoff: the goal was not found, but at least one vertex at the bound
	// still had successors off the current path. A larger bound might help.
	Cutoff

	// Found: the goal was reached.
	Found
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Exhausted:
		return "exhausted"
	case Cutoff:
		return "cutoff"
	case Found:
		return "found"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Option configures DLS behavior via functional arguments.
type Option[N comparable] func(*Options[N])

// Options holds callbacks to customize DLS execution.
type Options[N comparable] struct {
	// OnVisit is called each time a vertex is recorded in the exploration
	// order, with its depth in edges from path[0]. An error aborts the search.
	OnVisit func(id N, depth int) error
}

// DefaultOptions returns Options with a no-op OnVisit.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnVisit: func(N, int) error { return nil },
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit[N comparable](fn func(id N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of one depth-limited search:
//   - Path: the path from path[0] to the goal; nil unless Outcome == Found.
//   - Order: vertices in visit sequence, including abandoned ones.
//   - Outcome: Found, Cutoff or Exhausted.
type Result[N comparable] struct {
	Path    []N
	Order   []N
	Outcome Outcome
}

// Found reports whether the goal was reached.
func (r *Result[N]) Found() bool {
	return r.Outcome == Found
}
