// Package core provides the ordered adjacency model shared by every search
// in this module.
//
// A graph here is a mapping from a node identifier to the ordered list of
// its successors. Three shapes are offered:
//
//   - Adjacency[N]: the read-only interface searches accept.
//   - Map[N]: the literal mapping, map[N][]N. A node with no key is a sink.
//   - Graph[N]: a thread-safe builder that remembers vertex insertion order
//     and edge insertion order.
//
// Why ordering matters:
//
//	DFS, DLS and IDS visit successors in declared order, so the order edges
//	are added fixes the exploration order they report. Graph never sorts or
//	reorders; Successors returns exactly what AddEdge appended.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows the same successor more than once.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
// Core Methods:
//
//	AddVertex(id N) error          // O(1)
//	AddEdge(from, to N) error      // O(deg(from))
//	RemoveEdge(from, to N) error   // O(deg(from))
//	HasVertex(id N) bool           // O(1)
//	HasEdge(from, to N) bool       // O(deg(from))
//	Vertices() []N                 // O(V), insertion order
//	Successors(id N) []N           // O(deg(id)), declared order
//	OutDegree(id N) (int, error)   // O(1)
//	Clone() *Graph[N]              // O(V+E)
//	ToMap() Map[N]                 // O(V+E)
//
// Concurrency:
//
//	Graph guards its state with a sync.RWMutex; concurrent searches over one
//	graph only take read locks. Searches never mutate the graph they walk.
package core
