// Package ids implements iterative deepening search (IDS) on a
// core.Adjacency.
//
// What:
//
//   - IDS(g, start, goal, maxDepth, opts...) runs dls.DLS from start with
//     bounds L = 0, 1, …, maxDepth. Runs share nothing; each gets its own
//     path, cycle tracking and exploration order.
//   - Result.Order is the concatenation of the per-run orders, so vertices
//     close to start appear once per run. That repetition is the price of
//     never committing to one deep branch.
//   - The first successful bound is returned as Result.Depth. Because L
//     grows by one edge per run and each run is a complete clipped
//     depth-first traversal, Depth is the true shortest distance in edges.
//
// Why:
//
//	Plain DFS can dive into an arbitrarily deep, irrelevant branch before
//	trying a shallow one. IDS finds the shallow goal after exploring only
//	the levels above it, in O(depth) memory.
//
// Options:
//
//   - WithOnVisit(fn)            visit hook forwarded to every run
//   - WithOnIteration(fn)        called after each run with its Iteration
//   - WithStopOnExhaustion()     stop once a run reports dls.Exhausted
//
// Errors:
//
//   - ErrGraphNil        graph is nil
//   - ErrNegativeDepth   maxDepth < 0
//   - hook errors        wrapped with the bound they occurred at
//
// "Not found within maxDepth" is not an error: Result.Path is nil and
// Result.Depth is NotFound (-1).
package ids
