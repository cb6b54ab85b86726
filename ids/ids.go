// Package ids implements iterative deepening search: depth-limited
// searches with bounds 0, 1, 2, … run from scratch until one reaches the
// goal. The first successful bound is the goal's shortest distance in
// edges, while memory stays linear in that distance.
package ids

import (
	"fmt"

	"github.com/katalvlaran/deepening/core"
	"github.com/katalvlaran/deepening/dls"
)

// IDS searches g for goal from start with bounds 0..maxDepth inclusive.
//
// Each bound runs a fresh dls.DLS with its own path and exploration
// order; that order is appended to Result.Order whether the run
// succeeds or not. The first success stops the loop and reports the
// path and the bound. If no bound succeeds, Path is nil, Depth is
// NotFound and Order covers every bound that was tried.
//
// Returns ErrGraphNil or ErrNegativeDepth for invalid input, or a
// wrapped hook error.
func IDS[N comparable](g core.Adjacency[N], start, goal N, maxDepth int, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, maxDepth)
	}

	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	var dopts []dls.Option[N]
	if o.OnVisit != nil {
		dopts = append(dopts, dls.WithOnVisit(o.OnVisit))
	}

	res := &Result[N]{Depth: NotFound}
	root := []N{start}
	for limit := 0; limit <= maxDepth; limit++ {
		run, err := dls.DLS(g, goal, root, limit, dopts...)
		if run != nil {
			res.Order = append(res.Order, run.Order...)
		}
		if err != nil {
			return res, fmt.Errorf("ids: bound %d: %w", limit, err)
		}

		it := Iteration{Limit: limit, Outcome: run.Outcome, Visited: len(run.Order)}
		res.Iterations = append(res.Iterations, it)
		if o.OnIteration != nil {
			if err = o.OnIteration(it); err != nil {
				return res, fmt.Errorf("ids: OnIteration hook at bound %d: %w", limit, err)
			}
		}

		switch {
		case run.Found():
			res.Path = run.Path
			res.Depth = limit
			return res, nil
		case run.Outcome == dls.Exhausted && o.StopOnExhaustion:
			res.Exhausted = true
			return res, nil
		}
	}

	return res, nil
}
