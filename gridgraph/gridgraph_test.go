package gridgraph_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/deepening/gridgraph"
)

// TestNewGridGraph_Errors verifies that NewGridGraph rejects empty or ragged inputs.
func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, gridgraph.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridgraph.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.DefaultGridOptions())
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGridGraph(%v) error = %v; want %v", tc.grid, err, tc.err)
			}
		})
	}
}

// TestNewGridGraph_CopiesInput ensures later edits to the input do not leak in.
func TestNewGridGraph_CopiesInput(t *testing.T) {
	grid := [][]int{{1, 1}}
	gg, err := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}
	grid[0][1] = 0
	if !gg.Open(gridgraph.Point{X: 1, Y: 0}) {
		t.Error("mutating the input changed the grid")
	}
}

// TestSuccessors_Conn4 checks compass order N, E, S, W and wall handling.
//
//	1 1 1
//	1 1 0
//	0 1 1
func TestSuccessors_Conn4(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 1, 1},
		{1, 1, 0},
		{0, 1, 1},
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}

	got := gg.Successors(gridgraph.Point{X: 1, Y: 1})
	want := []gridgraph.Point{{1, 0}, {1, 2}, {0, 1}} // N, S, W; E is a wall
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Successors(1,1) = %v; want %v", got, want)
	}
	if s := gg.Successors(gridgraph.Point{X: 2, Y: 1}); s != nil {
		t.Errorf("wall has successors %v", s)
	}
	if s := gg.Successors(gridgraph.Point{X: -1, Y: 0}); s != nil {
		t.Errorf("out-of-grid point has successors %v", s)
	}
}

// TestSuccessors_Conn8 includes diagonals in clockwise order from N.
func TestSuccessors_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph([][]int{
		{1, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
	}, opts)
	if err != nil {
		t.Fatal(err)
	}

	got := gg.Successors(gridgraph.Point{X: 1, Y: 1})
	want := []gridgraph.Point{{2, 0}, {2, 2}, {0, 2}, {0, 0}} // NE, SE, SW, NW
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Successors(1,1) = %v; want %v", got, want)
	}
}

// TestLandThreshold treats values below the threshold as walls.
func TestLandThreshold(t *testing.T) {
	opts := gridgraph.GridOptions{LandThreshold: 3, Conn: gridgraph.Conn4}
	gg, err := gridgraph.NewGridGraph([][]int{{3, 2, 5}}, opts)
	if err != nil {
		t.Fatal(err)
	}
	want := []gridgraph.Point{{0, 0}, {2, 0}}
	if got := gg.OpenCells(); !reflect.DeepEqual(got, want) {
		t.Errorf("OpenCells = %v; want %v", got, want)
	}
}

// TestToCoreGraph_Conn4 verifies vertex IDs and that only open cells appear.
func TestToCoreGraph_Conn4(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{{1, 0}, {1, 1}}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}
	g := gg.ToCoreGraph()

	if got, want := g.Vertices(), []string{"0,0", "0,1", "1,1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices = %v; want %v", got, want)
	}
	// two symmetric links: (0,0)-(0,1) and (0,1)-(1,1)
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount = %d; want 4", g.EdgeCount())
	}
	if got, want := g.Successors("0,1"), []string{"0,0", "1,1"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Successors(0,1) = %v; want %v", got, want)
	}
}

// TestConnectedComponents_Simple4 finds two islands under Conn4.
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
func TestConnectedComponents_Simple4(t *testing.T) {
	gg, err := gridgraph.NewGridGraph([][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}, gridgraph.DefaultGridOptions())
	if err != nil {
		t.Fatal(err)
	}

	comps := gg.ConnectedComponents()
	want := [][]gridgraph.Point{
		{{1, 0}, {2, 0}, {1, 1}, {0, 1}},
		{{2, 2}, {3, 2}},
	}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("components = %v; want %v", comps, want)
	}
}

// TestConnectedComponents_Diagonal8 joins corner-touching cells into one island.
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg, err := gridgraph.NewGridGraph(grid, opts)
	if err != nil {
		t.Fatal(err)
	}
	if comps := gg.ConnectedComponents(); len(comps) != 1 || len(comps[0]) != 9 {
		t.Errorf("Conn8: got %d components; want one of size 9", len(comps))
	}

	gg4, _ := gridgraph.NewGridGraph(grid, gridgraph.DefaultGridOptions())
	if comps := gg4.ConnectedComponents(); len(comps) != 9 {
		t.Errorf("Conn4: got %d components; want 9", len(comps))
	}
}

// TestConnectedComponents_AllWalls returns no components.
func TestConnectedComponents_AllWalls(t *testing.T) {
	gg, _ := gridgraph.NewGridGraph([][]int{{0, 0}, {0, 0}}, gridgraph.DefaultGridOptions())
	if comps := gg.ConnectedComponents(); len(comps) != 0 {
		t.Errorf("got %d components; want 0", len(comps))
	}
}
