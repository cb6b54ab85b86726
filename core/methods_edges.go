// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeCount.
// Determinism:
//   - AddEdge appends to the source's successor list; order is never rewritten
//     except by RemoveEdge, which keeps the relative order of the rest.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "slices"

// AddEdge appends to as the last successor of from, creating either
// endpoint that does not exist yet.
//
// Steps:
//  1. Reject self-loops unless WithLoops was given.
//  2. Ensure both endpoints exist (from first, so it is ordered first).
//  3. Reject a repeated successor unless WithMultiEdges was given.
//  4. Append.
//
// Complexity: O(deg(from)) for the multi-edge check, O(1) otherwise.
func (g *Graph[N]) AddEdge(from, to N) error {
	if from == to && !g.cfg.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(from)
	g.addVertexLocked(to)

	if !g.cfg.allowMulti && slices.Contains(g.succ[from], to) {
		return ErrMultiEdgeNotAllowed
	}
	g.succ[from] = append(g.succ[from], to)
	g.edges++

	return nil
}

// RemoveEdge deletes the first from→to edge, preserving the order of the
// remaining successors.
// Complexity: O(deg(from)).
func (g *Graph[N]) RemoveEdge(from, to N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	nbs, ok := g.succ[from]
	if !ok {
		return ErrVertexNotFound
	}
	i := slices.Index(nbs, to)
	if i < 0 {
		return ErrEdgeNotFound
	}
	// Allocate fresh so slices previously handed out by Successors stay intact.
	out := make([]N, 0, len(nbs)-1)
	out = append(out, nbs[:i]...)
	g.succ[from] = append(out, nbs[i+1:]...)
	g.edges--

	return nil
}

// HasEdge reports whether from→to exists.
// Complexity: O(deg(from)).
func (g *Graph[N]) HasEdge(from, to N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return slices.Contains(g.succ[from], to)
}

// EdgeCount returns the total number of edges (parallel edges counted).
// Complexity: O(1).
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
