// File: methods_adjacent.go
// Role: Neighborhood API used by the searches.
// Determinism:
//   - Successors() returns successors in the order the edges were added.

package core

// Successors implements Adjacency. It returns a copy of id's successors
// in declared order, or nil when id is unknown or a sink.
// Complexity: O(deg(id)).
func (g *Graph[N]) Successors(id N) []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs := g.succ[id]
	if len(nbs) == 0 {
		return nil
	}
	out := make([]N, len(nbs))
	copy(out, nbs)

	return out
}

// OutDegree returns the number of successors of id, or ErrVertexNotFound.
// Complexity: O(1).
func (g *Graph[N]) OutDegree(id N) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbs, ok := g.succ[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbs), nil
}
