// Package dls implements depth-limited search (DLS): depth-first search
// that refuses to go deeper than a bound measured in edges.
//
// What:
//
//   - DLS(g, goal, path, limit, opts...) continues from the last vertex of
//     path. The vertex is recorded, tested against goal, and expanded only
//     while len(path)-1 < limit.
//   - Cycles are avoided per path: a successor already on the current path
//     is skipped, but a vertex can be revisited through a different route.
//     The check is O(1) through a multiplicity map kept in lockstep with
//     the path.
//   - Backtracking pops exactly what the descent pushed, so the state seen
//     by the next sibling equals the state before the failed one.
//
// Outcomes:
//
//   - Found      goal reached; Result.Path is the full path from path[0]
//   - Cutoff     not found, but the bound clipped at least one vertex that
//     still had successors off its path
//   - Exhausted  not found, and no clipping happened: every simple path was
//     enumerated, so a larger bound cannot change the answer
//
// Errors:
//
//   - ErrGraphNil       graph is nil
//   - ErrEmptyPath      path in progress has no vertices
//   - ErrNegativeLimit  limit < 0
//   - hook errors       propagated from OnVisit, wrapped
//
// Complexity:
//
//   - Time O(b^L) for branching factor b and bound L; Memory O(L).
package dls
