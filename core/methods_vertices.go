// File: methods_vertices.go
// Role: Vertex lifecycle & queries: AddVertex/HasVertex/Vertices/VertexCount.
// Determinism:
//   - Vertices() returns vertices in first-insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

// AddVertex inserts id if it is not present yet. Re-adding is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[N]) AddVertex(id N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id; caller holds mu for writing.
func (g *Graph[N]) addVertexLocked(id N) {
	if _, ok := g.succ[id]; ok {
		return
	}
	g.succ[id] = nil
	g.order = append(g.order, id)
}

// HasVertex reports whether id was added as a vertex or edge endpoint.
// Complexity: O(1).
func (g *Graph[N]) HasVertex(id N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.succ[id]

	return ok
}

// Vertices returns a copy of all vertex IDs in insertion order.
// Complexity: O(V).
func (g *Graph[N]) Vertices() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph[N]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}
