package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/deepening/bfs"
	"github.com/katalvlaran/deepening/core"
)

// ExampleBFS_shortestPathNetwork finds the fewest-hop path when two routes compete.
// Route1: A→B→C→D→K (4 hops), Route2: A→E→F→K (3 hops).
func ExampleBFS_shortestPathNetwork() {
	g := core.NewGraph[string]()
	for _, e := range [][2]string{
		{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "K"},
		{"A", "E"}, {"E", "F"}, {"F", "K"},
	} {
		_ = g.AddEdge(e[0], e[1])
	}

	res, err := bfs.BFS[string](g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("K")
	fmt.Println("distance:", res.Depth["K"])
	fmt.Println("path:", path)

	// Output:
	// distance: 3
	// path: [A E F K]
}
