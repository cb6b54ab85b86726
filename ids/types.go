// Package ids defines options, per-iteration records and the result of
// iterative deepening search.
package ids

import (
	"errors"

	"github.com/katalvlaran/deepening/dls"
)

// NotFound is the Depth reported when no bound up to the maximum reached the goal.
const NotFound = -1

// DefaultMaxDepth is the recommended maximum bound for callers without a better one.
const DefaultMaxDepth = 20

// Sentinel errors for IDS execution.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("ids: graph is nil")

	// ErrNegativeDepth is returned when maxDepth is below zero.
	ErrNegativeDepth = errors.New("ids: max depth cannot be negative")
)

// Option configures IDS behavior via functional arguments.
type Option[N comparable] func(*Options[N])

// Options holds parameters and callbacks to customize IDS execution.
type Options[N comparable] struct {
	// OnVisit is forwarded to every depth-limited run. depth is measured in
	// edges from start.
	OnVisit func(id N, depth int) error

	// OnIteration is called after each depth-limited run, before IDS decides
	// whether to continue. An error aborts the search.
	OnIteration func(it Iteration) error

	// StopOnExhaustion ends the search as soon as a run reports
	// dls.Exhausted: every simple path from start has been seen, so no
	// larger bound can find the goal.
	StopOnExhaustion bool
}

// DefaultOptions returns Options with no hooks and StopOnExhaustion off,
// so every bound 0..maxDepth is tried when the goal is absent.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		OnVisit:          nil,
		OnIteration:      nil,
		StopOnExhaustion: false,
	}
}

// WithOnVisit installs fn as a visit hook for every iteration.
func WithOnVisit[N comparable](fn func(id N, depth int) error) Option[N] {
	return func(o *Options[N]) {
		o.OnVisit = fn
	}
}

// WithOnIteration installs fn as a per-iteration hook.
func WithOnIteration[N comparable](fn func(it Iteration) error) Option[N] {
	return func(o *Options[N]) {
		o.OnIteration = fn
	}
}

// WithStopOnExhaustion enables early termination once a bound explores
// the whole reachable simple-path tree without clipping.
func WithStopOnExhaustion[N comparable]() Option[N] {
	return func(o *Options[N]) {
		o.StopOnExhaustion = true
	}
}

// Iteration records one depth-limited run.
type Iteration struct {
	Limit   int         // depth bound of this run
	Outcome dls.Outcome // how the run ended
	Visited int         // length of this run's exploration order
}

// Result captures the outcome of an iterative deepening search.
type Result[N comparable] struct {
	// Path runs from start to goal; nil when not found within the bound.
	Path []N

	// Depth is the bound at which the goal was found, which equals the
	// shortest distance in edges from start to goal; NotFound otherwise.
	Depth int

	// Order concatenates the exploration order of every iteration run, in
	// bound order. Vertices near start repeat once per iteration.
	Order []N

	// Iterations has one entry per depth-limited run.
	Iterations []Iteration

	// Exhausted is true when the search stopped early because a run
	// reported dls.Exhausted (only with WithStopOnExhaustion).
	Exhausted bool
}

// Found reports whether the goal was reached.
func (r *Result[N]) Found() bool {
	return r.Depth != NotFound
}
