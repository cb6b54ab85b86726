// Package gridgraph treats a 2D grid of cells as an implicit directed
// graph, so mazes and tile maps can be searched without materializing
// an adjacency list.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid; cells with value ≥
//     LandThreshold are open, the rest are walls.
//   - GridGraph implements core.Adjacency[Point]: an open cell's
//     successors are its open neighbors in a fixed compass order
//     (N, E, S, W for Conn4; N, NE, E, SE, S, SW, W, NW for Conn8).
//     Walls have no successors.
//   - ConnectedComponents labels regions of open cells using bfs.
//   - ParseMaze reads a text maze with S and G markers; Render draws a
//     path back onto it.
//   - ToCoreGraph materializes the open cells into a core.Graph[string]
//     with IDs "x,y" for tools that want explicit vertices.
//
// Determinism:
//
//	Neighbor order is fixed, so DFS and IDS trails over a grid are
//	reproducible and depend only on the compass order above.
//
// Complexity:
//
//   - Successors:          O(d), d = 4 or 8.
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H).
//   - ToCoreGraph:         O(W×H×d), Memory: O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadMazeRune:    a maze line holds a rune other than # . S G or space.
//   - ErrMissingMarker:  a maze lacks exactly one S and one G.
package gridgraph
