// Package dfs implements goal-directed depth-first search on a
// core.Adjacency.
//
// What:
//
//   - DFS explores as far as possible along each branch before
//     backtracking, trying successors in the order the graph declares
//     them. A single global visited set guarantees termination on finite
//     graphs, cyclic or not, and means no vertex is entered twice even
//     when a second route to it exists.
//   - The search stops at the first vertex equal to the goal and reports
//     the path that led there, which is not necessarily the shortest.
//   - Every visited vertex is appended to Result.Order, including those
//     later abandoned, so callers can measure how much work was spent.
//
// Why:
//   - Baseline for comparing against iterative deepening (package ids),
//     which pays repeated shallow work to avoid plunging into a deep,
//     irrelevant branch first.
//
// Key Types:
//
//   - Option / Options: hooks (OnVisit, OnBacktrack)
//   - Result: Path, Order, Found, Depth, Backtracks
//
// Complexity:
//
//   - Time O(V+E), Memory O(V) over the reachable part of the graph.
//
// Errors:
//
//   - ErrGraphNil             graph is nil
//   - hook errors             propagated from OnVisit, wrapped
//
// "Goal not reachable" is not an error: Result.Found is false and
// Result.Path is nil.
package dfs
