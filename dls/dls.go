// Package dls provides depth-limited search over a core.Adjacency:
// depth-first exploration that never goes deeper than a fixed number of
// edges and avoids cycles only along the current path.
//
// Because the cycle check is scoped to the path and not global, a vertex
// reached by one route can be reached again by another. That is what
// lets iterative deepening reuse DLS with growing bounds and still find
// the shallowest route to the goal.
package dls

import (
	"fmt"

	"github.com/katalvlaran/deepening/core"
)

// frame is one expanded vertex on the explicit stack: its successors
// and the index of the next one to try.
type frame[N comparable] struct {
	succ []N
	next int
}

// walker encapsulates mutable DLS state. path, onPath and stack move in
// lockstep: push-on-enter, pop-on-exit.
type walker[N comparable] struct {
	graph  core.Adjacency[N]
	goal   N
	limit  int
	opts   Options[N]
	path   []N
	onPath map[N]int // vertex → multiplicity on path
	stack  []frame[N]
	cutoff bool
	res    *Result[N]
}

// DLS continues a depth-first search from the last vertex of path,
// exploring at most limit edges measured from path[0].
//
// The last vertex of path is recorded in the exploration order first. If
// it is the goal the search succeeds with path as-is. If the path already
// spans limit edges, the vertex is not expanded. Otherwise successors are
// tried in declared order, skipping any already on the current path; each
// is pushed, explored, and popped again if it does not lead to the goal.
//
// The caller's path slice is never modified. A start-only search is
// DLS(g, goal, []N{start}, limit).
//
// Returns ErrGraphNil, ErrEmptyPath or ErrNegativeLimit for invalid input,
// or a wrapped OnVisit error.
func DLS[N comparable](g core.Adjacency[N], goal N, path []N, limit int, opts ...Option[N]) (*Result[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLimit, limit)
	}

	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker[N]{
		graph:  g,
		goal:   goal,
		limit:  limit,
		opts:   o,
		path:   make([]N, len(path)),
		onPath: make(map[N]int, len(path)),
		res:    &Result[N]{},
	}
	copy(w.path, path)
	for _, id := range path {
		w.onPath[id]++
	}

	found, err := w.run()
	if err != nil {
		return w.res, err
	}

	switch {
	case found:
		w.res.Outcome = Found
		w.res.Path = w.path
	case w.cutoff:
		w.res.Outcome = Cutoff
	default:
		w.res.Outcome = Exhausted
	}

	return w.res, nil
}

// run expands the frontier vertex and then loops over the explicit stack.
// The frame of the initial frontier belongs to the caller's path, so
// exhausting it ends the search without popping anything.
func (w *walker[N]) run() (bool, error) {
	if found, err := w.enter(); found || err != nil {
		return found, err
	}

	var nid N
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		if top.next >= len(top.succ) {
			w.stack = w.stack[:len(w.stack)-1]
			if len(w.stack) > 0 {
				w.pop()
			}
			continue
		}

		nid = top.succ[top.next]
		top.next++
		if w.onPath[nid] > 0 {
			continue
		}

		w.push(nid)
		depth := len(w.stack)
		found, err := w.enter()
		if found || err != nil {
			return found, err
		}
		// No frame was pushed: nid was clipped by the bound. Backtrack now.
		if len(w.stack) == depth {
			w.pop()
		}
	}

	return false, nil
}

// enter records the frontier vertex, tests it against the goal and the
// bound, and pushes a frame for its successors when it may be expanded.
func (w *walker[N]) enter() (bool, error) {
	id := w.path[len(w.path)-1]
	depth := len(w.path) - 1

	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, depth); err != nil {
		return false, fmt.Errorf("dls: OnVisit error at %v: %w", id, err)
	}

	if id == w.goal {
		return true, nil
	}

	succ := w.graph.Successors(id)
	if depth >= w.limit {
		if !w.cutoff && w.hasOffPath(succ) {
			w.cutoff = true
		}
		return false, nil
	}

	w.stack = append(w.stack, frame[N]{succ: succ})

	return false, nil
}

// hasOffPath reports whether any successor could still extend the path.
func (w *walker[N]) hasOffPath(succ []N) bool {
	for _, id := range succ {
		if w.onPath[id] == 0 {
			return true
		}
	}

	return false
}

func (w *walker[N]) push(id N) {
	w.path = append(w.path, id)
	w.onPath[id]++
}

func (w *walker[N]) pop() {
	id := w.path[len(w.path)-1]
	w.path = w.path[:len(w.path)-1]
	if w.onPath[id]--; w.onPath[id] == 0 {
		delete(w.onPath, id)
	}
}
