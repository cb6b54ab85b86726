package ids_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deepening/bfs"
	"github.com/katalvlaran/deepening/builder"
	"github.com/katalvlaran/deepening/core"
	"github.com/katalvlaran/deepening/dfs"
	"github.com/katalvlaran/deepening/dls"
	"github.com/katalvlaran/deepening/ids"
)

func uneven(t testing.TB, chain int) *core.Graph[string] {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.UnevenBranches(chain))
	require.NoError(t, err)

	return g
}

func TestIDS_Errors(t *testing.T) {
	_, err := ids.IDS[string](nil, "A", "B", 3)
	assert.ErrorIs(t, err, ids.ErrGraphNil)

	_, err = ids.IDS(core.Map[string]{}, "A", "B", -1)
	assert.ErrorIs(t, err, ids.ErrNegativeDepth)
}

func TestIDS_UnevenBranches(t *testing.T) {
	res, err := ids.IDS[string](uneven(t, 15), "A", "E", 10)
	require.NoError(t, err)

	assert.True(t, res.Found())
	assert.Equal(t, []string{"A", "B", "E"}, res.Path)
	assert.Equal(t, 2, res.Depth)

	want := []string{
		"A", // L=0
		"A", "X1", "B", // L=1
		"A", "X1", "X2", "B", "C", "E", // L=2
	}
	if diff := cmp.Diff(want, res.Order); diff != "" {
		t.Errorf("total order (-want +got):\n%s", diff)
	}
	assert.Equal(t, []ids.Iteration{
		{Limit: 0, Outcome: dls.Cutoff, Visited: 1},
		{Limit: 1, Outcome: dls.Cutoff, Visited: 3},
		{Limit: 2, Outcome: dls.Found, Visited: 6},
	}, res.Iterations)

	plain, err := dfs.DFS[string](uneven(t, 15), "A", "E")
	require.NoError(t, err)
	assert.Less(t, len(res.Order), len(plain.Order), "IDS should touch fewer vertices than DFS here")
}

func TestIDS_StartIsGoal(t *testing.T) {
	visits := 0
	res, err := ids.IDS(core.Map[string]{"A": {"B"}}, "A", "A", 5,
		ids.WithOnVisit(func(string, int) error { visits++; return nil }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Equal(t, 0, res.Depth)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 1, visits)
}

func TestIDS_MaxDepthTooSmall(t *testing.T) {
	res, err := ids.IDS[string](uneven(t, 15), "A", "E", 1)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Nil(t, res.Path)
	assert.Equal(t, ids.NotFound, res.Depth)
	assert.Equal(t, []string{"A", "A", "X1", "B"}, res.Order)
	assert.Len(t, res.Iterations, 2)
}

func TestIDS_UnreachableRunsEveryBound(t *testing.T) {
	g := core.Map[string]{"A": {"B"}, "B": {"A"}}

	res, err := ids.IDS(g, "A", "Z", 4)
	require.NoError(t, err)
	assert.Equal(t, ids.NotFound, res.Depth)
	assert.Len(t, res.Iterations, 5)
	assert.False(t, res.Exhausted)
	// From L=1 on, the A↔B cycle is pruned and each run sees exactly A, B.
	assert.Equal(t, []string{"A", "A", "B", "A", "B", "A", "B", "A", "B"}, res.Order)
}

func TestIDS_StopOnExhaustion(t *testing.T) {
	g := core.Map[string]{"A": {"B"}, "B": {"A"}}

	res, err := ids.IDS(g, "A", "Z", ids.DefaultMaxDepth, ids.WithStopOnExhaustion[string]())
	require.NoError(t, err)
	assert.True(t, res.Exhausted)
	assert.False(t, res.Found())
	// L=0 clips A (B is off-path), L=1 reaches B whose only successor is on the path.
	assert.Len(t, res.Iterations, 2)
	assert.Equal(t, dls.Exhausted, res.Iterations[1].Outcome)
}

// TestIDS_RingExhaustsAtItsLength checks that IDS stops going around a
// ring: once the bound equals the ring length minus one, the only
// successor left is the start, already on the path.
func TestIDS_RingExhaustsAtItsLength(t *testing.T) {
	ring, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSymbolIDs()}, builder.Cycle(4))
	require.NoError(t, err)

	res, err := ids.IDS[string](ring, "A", "missing", 6)
	require.NoError(t, err)
	assert.False(t, res.Found())
	assert.Len(t, res.Iterations, 7)
	assert.Len(t, res.Order, 1+2+3+4+4+4+4)
	assert.Equal(t, dls.Cutoff, res.Iterations[2].Outcome)
	assert.Equal(t, dls.Exhausted, res.Iterations[3].Outcome)

	res, err = ids.IDS[string](ring, "A", "missing", 6, ids.WithStopOnExhaustion[string]())
	require.NoError(t, err)
	assert.Len(t, res.Iterations, 4)
	assert.Equal(t, []string{"A", "A", "B", "A", "B", "C", "A", "B", "C", "D"}, res.Order)

	res, err = ids.IDS[string](ring, "B", "A", 6)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Depth)
	assert.Equal(t, []string{"B", "C", "D", "A"}, res.Path)
}

func TestIDS_OnIterationError(t *testing.T) {
	enough := errors.New("enough")
	res, err := ids.IDS[string](uneven(t, 15), "A", "E", 10,
		ids.WithOnIteration[string](func(it ids.Iteration) error {
			if it.Limit == 1 {
				return enough
			}
			return nil
		}))
	assert.ErrorIs(t, err, enough)
	assert.Contains(t, err.Error(), "bound 1")
	assert.Len(t, res.Iterations, 2)
}

func TestIDS_OnVisitErrorWrapsBound(t *testing.T) {
	boom := errors.New("boom")
	_, err := ids.IDS[string](uneven(t, 15), "A", "E", 10,
		ids.WithOnVisit(func(id string, depth int) error {
			if id == "B" {
				return boom
			}
			return nil
		}))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "ids: bound 1")
}

func TestIDS_Deterministic(t *testing.T) {
	g := uneven(t, 15)
	first, err := ids.IDS[string](g, "A", "D", 10)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := ids.IDS[string](g, "A", "D", 10)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestIDS_DepthEqualsShortestDistance compares IDS against BFS distances
// on seeded random graphs, including cyclic ones.
func TestIDS_DepthEqualsShortestDistance(t *testing.T) {
	const n = 12
	for seed := int64(1); seed <= 25; seed++ {
		g, err := builder.BuildGraph(
			nil,
			[]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(n, 0.15),
		)
		require.NoError(t, err)

		ref, err := bfs.BFS[string](g, "0")
		require.NoError(t, err)

		for target := 0; target < n; target++ {
			goal := strconv.Itoa(target)
			res, err := ids.IDS[string](g, "0", goal, n)
			require.NoError(t, err)

			want, reachable := ref.Depth[goal]
			if !reachable {
				assert.Equal(t, ids.NotFound, res.Depth, "seed %d goal %s", seed, goal)
				continue
			}
			assert.Equal(t, want, res.Depth, "seed %d goal %s", seed, goal)
			assert.Len(t, res.Path, want+1)
		}
	}
}

// TestIDS_TerminatesOnDenseCycles uses a complete-looking random graph.
func TestIDS_TerminatesOnDenseCycles(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithLoops()},
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.RandomSparse(7, 0.9),
	)
	require.NoError(t, err)

	res, err := ids.IDS[string](g, "0", "missing", 6, ids.WithStopOnExhaustion[string]())
	require.NoError(t, err)
	assert.False(t, res.Found())
}
