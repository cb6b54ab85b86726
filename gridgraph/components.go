package gridgraph

import (
	"github.com/katalvlaran/deepening/bfs"
)

// ConnectedComponents finds all contiguous regions of open cells according
// to gg.Conn connectivity. Components are ordered by their first cell in
// row-major order; cells within a component are in BFS order from that
// first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for the seen set and output.
func (gg *GridGraph) ConnectedComponents() [][]Point {
	seen := make(map[Point]bool)
	var comps [][]Point

	for _, p := range gg.OpenCells() {
		if seen[p] {
			continue
		}
		// Grid adjacency is symmetric, so BFS reach is the whole component.
		res, err := bfs.BFS[Point](gg, p)
		if err != nil {
			// Only a nil graph or a hook error can fail; neither applies here.
			continue
		}
		for _, q := range res.Order {
			seen[q] = true
		}
		comps = append(comps, res.Order)
	}
	return comps
}
