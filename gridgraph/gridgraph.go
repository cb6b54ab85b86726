package gridgraph

import (
	"github.com/katalvlaran/deepening/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Open reports whether p is inside the grid and not a wall.
func (gg *GridGraph) Open(p Point) bool {
	return gg.InBounds(p.X, p.Y) && gg.CellValues[p.Y][p.X] >= gg.LandThreshold
}

// Successors implements core.Adjacency[Point]. It returns the open
// neighbors of an open cell in compass order; walls and out-of-grid
// points have none.
func (gg *GridGraph) Successors(p Point) []Point {
	if !gg.Open(p) {
		return nil
	}
	var out []Point
	for _, d := range gg.neighborOffsets {
		q := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if gg.Open(q) {
			out = append(out, q)
		}
	}
	return out
}

// OpenCells lists every open cell in row-major order.
func (gg *GridGraph) OpenCells() []Point {
	var out []Point
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if p := (Point{X: x, Y: y}); gg.Open(p) {
				out = append(out, p)
			}
		}
	}
	return out
}

// ToCoreGraph materializes the open cells as a core.Graph[string] with
// vertex IDs "x,y". Vertices are added in row-major order and each
// keeps the compass successor order of Successors.
// Complexity: O(W×H×d) time and memory.
func (gg *GridGraph) ToCoreGraph() *core.Graph[string] {
	g := core.NewGraph[string]()
	cells := gg.OpenCells()
	for _, p := range cells {
		_ = g.AddVertex(p.String())
	}
	for _, p := range cells {
		for _, q := range gg.Successors(p) {
			// Successors never repeats a neighbor or returns p itself.
			_ = g.AddEdge(p.String(), q.String())
		}
	}
	return g
}
