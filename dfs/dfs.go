// Package dfs implements goal-directed depth-first search over a
// core.Adjacency. It keeps one global visited set, so no vertex is ever
// entered twice, and it returns the first path found together with the
// full exploration order.
//
// Key features:
//   - DFS(g, start, goal, opts...): stop as soon as goal is reached
//   - Hooks: OnVisit (pre-order, error aborts) & OnBacktrack
//   - Explicit frame stack: chain depth is bounded by memory, not by the
//     goroutine stack
//
// Complexity:
//
//   - Time:   O(V + E) over the vertices reachable from start.
//   - Memory: O(V) for the visited set, the frame stack and the path.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/deepening/core"
)

// frame is one level of the explicit recursion stack: the vertex being
// expanded, its successors and the index of the next successor to try.
type frame[N comparable] struct {
	id   N
	succ []N
	next int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker[N comparable] struct {
	graph   core.Adjacency[N] // underlying graph
	goal    N                 // vertex that ends the search
	opts    Options[N]        // traversal options
	res     *Result[N]        // result collector
	visited map[N]bool        // global visited set
	path    []N               // current path, start..frontier
	stack   []frame[N]        // explicit recursion stack, parallel to path
}

// DFS performs depth-first search on g from start until goal is reached
// or every vertex reachable from start has been visited.
//
// Successors are tried in the order g declares them and already-visited
// vertices are skipped. Not reaching the goal is reported through
// Result.Found, not through the error.
func DFS[N comparable](g core.Adjacency[N], start, goal N, opts ...Option[N]) (*Result[N], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions[N]()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize walker
	w := &dfsWalker[N]{
		graph:   g,
		goal:    goal,
		opts:    dopts,
		res:     &Result[N]{Depth: make(map[N]int)},
		visited: make(map[N]bool),
	}

	// 4. Traverse
	found, err := w.traverse(start)
	if err != nil {
		return w.res, err
	}

	// 5. Expose the path only on success; on failure it has been fully unwound.
	w.res.Found = found
	if found {
		w.res.Path = w.path
	}

	return w.res, nil
}

// traverse drives the explicit stack. Each loop iteration either descends
// into the next unvisited successor of the top frame or, when the frame
// is exhausted, backtracks out of it.
func (w *dfsWalker[N]) traverse(start N) (bool, error) {
	if found, err := w.visit(start); found || err != nil {
		return found, err
	}

	var nid N
	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]

		// Exhausted: pop the frame and its vertex from the path.
		if top.next >= len(top.succ) {
			w.backtrack()
			continue
		}

		nid = top.succ[top.next]
		top.next++
		if w.visited[nid] {
			continue
		}
		if found, err := w.visit(nid); found || err != nil {
			return found, err
		}
	}

	return false, nil
}

// visit enters id: path push, visited mark, order record, hook, goal test.
// On a miss it pushes a frame for id's successors.
func (w *dfsWalker[N]) visit(id N) (bool, error) {
	depth := len(w.path)
	w.path = append(w.path, id)
	w.visited[id] = true
	w.res.Order = append(w.res.Order, id)
	w.res.Depth[id] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return false, fmt.Errorf("dfs: OnVisit hook for %v: %w", id, err)
		}
	}

	if id == w.goal {
		return true, nil
	}

	w.stack = append(w.stack, frame[N]{id: id, succ: w.graph.Successors(id)})

	return false, nil
}

// backtrack pops the top frame and removes its vertex from the path.
func (w *dfsWalker[N]) backtrack() {
	top := w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.path = w.path[:len(w.path)-1]
	w.res.Backtracks++

	if w.opts.OnBacktrack != nil {
		w.opts.OnBacktrack(top.id, len(w.path))
	}
}
