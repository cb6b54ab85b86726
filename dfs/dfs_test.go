package dfs_test

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deepening/builder"
	"github.com/katalvlaran/deepening/core"
	"github.com/katalvlaran/deepening/dfs"
)

// buildUneven creates the long-chain-plus-shallow-branch graph:
// X1→X2→…→Xn, A→[X1,B], B→[C,E], C→[D].
func buildUneven(n int) core.Map[string] {
	m := core.Map[string]{}
	for i := 1; i < n; i++ {
		m["X"+strconv.Itoa(i)] = []string{"X" + strconv.Itoa(i+1)}
	}
	m["A"] = []string{"X1", "B"}
	m["B"] = []string{"C", "E"}
	m["C"] = []string{"D"}

	return m
}

// buildChain creates a directed chain N0→N1→…→N(n-1).
func buildChain(n int) core.Map[string] {
	m := core.Map[string]{}
	for i := 0; i < n-1; i++ {
		m["N"+strconv.Itoa(i)] = []string{"N" + strconv.Itoa(i+1)}
	}

	return m
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS[string](nil, "A", "B")
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_UnevenBranches(t *testing.T) {
	res, err := dfs.DFS(buildUneven(15), "A", "E")
	require.NoError(t, err)

	want := []string{"A"}
	for i := 1; i <= 15; i++ {
		want = append(want, fmt.Sprintf("X%d", i))
	}
	want = append(want, "B", "C", "D", "E")

	if diff := cmp.Diff(want, res.Order); diff != "" {
		t.Errorf("exploration order mismatch (-want +got):\n%s", diff)
	}
	assert.Len(t, res.Order, 20)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "E"}, res.Path)
	// X15..X1, then D and C, are abandoned on the way.
	assert.Equal(t, 17, res.Backtracks)
	assert.Equal(t, 2, res.Depth["E"])
	assert.Equal(t, 15, res.Depth["X15"])
}

func TestDFS_StartIsGoal(t *testing.T) {
	var expanded bool
	g := core.Map[string]{"A": {"B"}}

	res, err := dfs.DFS(g, "A", "A", dfs.WithOnBacktrack(func(string, int) { expanded = true }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.False(t, expanded)
}

func TestDFS_StartWithoutSuccessors(t *testing.T) {
	res, err := dfs.DFS(core.Map[string]{}, "lonely", "E")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, []string{"lonely"}, res.Order)
}

func TestDFS_Unreachable(t *testing.T) {
	g := core.Map[string]{"A": {"B"}, "B": {"C"}, "Z": {"Goal"}}

	res, err := dfs.DFS(g, "A", "Goal")
	require.NoError(t, err, "an unreachable goal is a result, not an error")
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)
	assert.Equal(t, 3, res.Backtracks)
}

func TestDFS_CyclicGraphTerminates(t *testing.T) {
	g := core.Map[string]{
		"A": {"B"},
		"B": {"C", "A"},
		"C": {"A", "B", "D"},
		"D": {"D"},
	}

	res, err := dfs.DFS(g, "A", "missing")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.False(t, res.Found)
}

// TestDFS_RingAndStar runs over builder rings and stars: the ring is
// walked once around from any start, and a star is a single fan-out.
func TestDFS_RingAndStar(t *testing.T) {
	ring, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(5))
	require.NoError(t, err)

	res, err := dfs.DFS[string](ring, "C", "B")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"C", "D", "E", "A", "B"}, res.Path)

	res, err = dfs.DFS[string](ring, "C", "missing")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, []string{"C", "D", "E", "A", "B"}, res.Order)

	star, err := builder.BuildGraph(nil, nil, builder.Star(4))
	require.NoError(t, err)
	res, err = dfs.DFS[string](star, builder.CenterVertexID, "3")
	require.NoError(t, err)
	assert.Equal(t, []string{builder.CenterVertexID, "1", "2", "3"}, res.Order)
	assert.Equal(t, []string{builder.CenterVertexID, "3"}, res.Path)
}

func TestDFS_GlobalVisitedNeverRevisits(t *testing.T) {
	// D is reachable through B and through C; the second route is skipped.
	g := core.Map[string]{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D", "G"},
	}

	res, err := dfs.DFS(g, "A", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C", "G"}, res.Order)
	assert.Equal(t, []string{"A", "C", "G"}, res.Path)
}

func TestDFS_PathNotShortest(t *testing.T) {
	// The goal is one edge away but DFS reaches it through the long branch first.
	g := core.Map[string]{
		"S": {"L1", "G"},
		"L1": {"L2"},
		"L2": {"G"},
	}

	res, err := dfs.DFS(g, "S", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "L1", "L2", "G"}, res.Path)
}

func TestDFS_DeepChainDoesNotOverflow(t *testing.T) {
	const n = 200000
	res, err := dfs.DFS(buildChain(n), "N0", "N"+strconv.Itoa(n-1))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Len(t, res.Path, n)
}

func TestDFS_OnVisitError(t *testing.T) {
	halt := errors.New("halt at X3")
	res, err := dfs.DFS(buildUneven(5), "A", "E", dfs.WithOnVisit(func(id string, depth int) error {
		if id == "X3" {
			assert.Equal(t, 3, depth)
			return halt
		}
		return nil
	}))
	assert.ErrorIs(t, err, halt)
	assert.Contains(t, err.Error(), "dfs: OnVisit hook for X3")
	require.NotNil(t, res)
	assert.Equal(t, []string{"A", "X1", "X2", "X3"}, res.Order)
	assert.False(t, res.Found)
}

func TestDFS_BacktrackHook(t *testing.T) {
	var popped []string
	g := core.Map[string]{"A": {"B", "C"}, "B": {"D"}}

	_, err := dfs.DFS(g, "A", "C", dfs.WithOnBacktrack(func(id string, _ int) {
		popped = append(popped, id)
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"D", "B"}, popped)
}

func TestDFS_Deterministic(t *testing.T) {
	g := buildUneven(15)
	first, err := dfs.DFS(g, "A", "E")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := dfs.DFS(g, "A", "E")
		require.NoError(t, err)
		assert.Equal(t, first.Order, again.Order)
		assert.Equal(t, first.Path, again.Path)
	}
}

func TestDFS_OnCoreGraph(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 4))

	res, err := dfs.DFS[int](g, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2, 4}, res.Order)
	assert.Equal(t, []int{1, 2, 4}, res.Path)
}
