// File: methods_clone.go
// Role: Snapshots: Clone (deep copy, same flags) and ToMap (frozen Map view).

package core

// Clone returns a deep copy of g with the same mode flags, vertex order
// and successor order.
// Complexity: O(V + E).
func (g *Graph[N]) Clone() *Graph[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph[N]{
		cfg:   g.cfg,
		order: make([]N, len(g.order)),
		succ:  make(map[N][]N, len(g.succ)),
		edges: g.edges,
	}
	copy(out.order, g.order)
	for id, nbs := range g.succ {
		if nbs == nil {
			out.succ[id] = nil
			continue
		}
		cp := make([]N, len(nbs))
		copy(cp, nbs)
		out.succ[id] = cp
	}

	return out
}

// ToMap returns a Map snapshot of g. Every vertex gets a key, sinks map
// to an empty slice. The snapshot shares nothing with g.
// Complexity: O(V + E).
func (g *Graph[N]) ToMap() Map[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m := make(Map[N], len(g.order))
	for _, id := range g.order {
		nbs := g.succ[id]
		cp := make([]N, len(nbs))
		copy(cp, nbs)
		m[id] = cp
	}

	return m
}
