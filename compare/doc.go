// Package compare runs depth-first search, iterative deepening and
// breadth-first search side by side on the same query and reports how
// they differ: how many vertices each explored, how long the path each
// returned is, and whether iterative deepening hit the true shortest
// distance that BFS measures.
//
// The three searches of a query share nothing but the read-only graph,
// so Run starts them as separate goroutines under an errgroup. Batch
// fans a list of queries out over a bounded worker pool and returns the
// reports in query order.
package compare
