// Package deepening compares depth-first search with iterative deepening
// over ordered directed graphs.
//
// Depth-first search commits to the first successor of every vertex and
// can wander far down a long branch before it finds a goal that sits just
// beside the start. Iterative deepening runs depth-limited search with
// bounds 0, 1, 2, ... and stops at the first bound that reaches the goal,
// so the path it returns has the fewest edges, at the price of revisiting
// shallow vertices once per bound.
//
// The module is organised as:
//
//	core/       ordered directed graph and the Adjacency interface
//	dfs/        global-visited depth-first search with exploration order
//	dls/        depth-limited search with on-path cycle checks
//	ids/        iterative deepening built on dls
//	bfs/        breadth-first reference distances
//	builder/    path, cycle, star, tree, uneven and random graphs
//	converters/ YAML and JSON scenario files
//	gridgraph/  grids and text mazes as implicit graphs
//	compare/    runs the searches side by side and scores them
//	cmd/deepen/ command-line front end
//
// Quick ASCII example:
//
//	A ─> X1 ─> X2 ─> ... ─> X15
//	│
//	└──> B ─> C ─> D
//	     │
//	     └──> E
//
// DFS from A for E visits the whole X chain first; IDS finds A -> B -> E
// at depth 2.
//
//	go install github.com/katalvlaran/deepening/cmd/deepen@latest
package deepening
