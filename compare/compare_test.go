package compare_test

import (
	"bytes"
	"context"
	"log/slog"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deepening/builder"
	"github.com/katalvlaran/deepening/compare"
	"github.com/katalvlaran/deepening/core"
	"github.com/katalvlaran/deepening/ids"
)

func uneven(t testing.TB) *core.Graph[string] {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, builder.UnevenBranches(15))
	require.NoError(t, err)
	return g
}

// TestRun_UnevenBranches reproduces the walkthrough figures: DFS wanders
// the whole chain while IDS touches ten vertices over three bounds.
func TestRun_UnevenBranches(t *testing.T) {
	rep, err := compare.Run[string](context.Background(), uneven(t), compare.Query[string]{Start: "A", Goal: "E", MaxDepth: 10})
	require.NoError(t, err)

	assert.Equal(t, 20, rep.DFSVisits)
	assert.Equal(t, 10, rep.IDSVisits)
	assert.Equal(t, 2, rep.ShortestDepth)
	assert.Equal(t, 2, rep.IDS.Depth)
	assert.Equal(t, 2, rep.DFSPathLen)
	assert.True(t, rep.IDSOptimal)
	assert.True(t, rep.DFSOptimal)
	assert.Equal(t, []string{"A", "B", "E"}, rep.IDS.Path)
}

// TestRun_DFSNotShortest uses a graph where DFS commits to a detour.
func TestRun_DFSNotShortest(t *testing.T) {
	g := core.Map[string]{"A": {"B", "D"}, "B": {"D"}}

	rep, err := compare.Run[string](context.Background(), g, compare.Query[string]{Start: "A", Goal: "D", MaxDepth: 5})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "D"}, rep.DFS.Path)
	assert.Equal(t, 2, rep.DFSPathLen)
	assert.Equal(t, 1, rep.ShortestDepth)
	assert.False(t, rep.DFSOptimal)
	assert.True(t, rep.IDSOptimal)
	assert.Equal(t, []string{"A", "D"}, rep.IDS.Path)
}

func TestRun_Unreachable(t *testing.T) {
	g := core.Map[string]{"A": {"B"}, "C": nil}

	rep, err := compare.Run[string](context.Background(), g, compare.Query[string]{Start: "A", Goal: "C", MaxDepth: 3})
	require.NoError(t, err)

	assert.Equal(t, ids.NotFound, rep.ShortestDepth)
	assert.Equal(t, ids.NotFound, rep.DFSPathLen)
	assert.False(t, rep.IDS.Found())
	assert.True(t, rep.IDSOptimal)
	assert.False(t, rep.DFSOptimal)
}

// TestRun_BeyondBudget: the goal exists but lies deeper than MaxDepth.
func TestRun_BeyondBudget(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)

	rep, err := compare.Run[string](context.Background(), g, compare.Query[string]{Start: "0", Goal: "4", MaxDepth: 2})
	require.NoError(t, err)

	assert.Equal(t, 4, rep.ShortestDepth)
	assert.False(t, rep.IDS.Found())
	assert.True(t, rep.IDSOptimal)
	assert.True(t, rep.DFSOptimal)
}

func TestRun_Errors(t *testing.T) {
	_, err := compare.Run[string](context.Background(), nil, compare.Query[string]{Start: "A", Goal: "B"})
	assert.ErrorIs(t, err, compare.ErrGraphNil)

	_, err = compare.Run[string](context.Background(), core.Map[string]{}, compare.Query[string]{Start: "A", Goal: "B", MaxDepth: -1})
	assert.ErrorIs(t, err, compare.ErrNegativeDepth)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = compare.Run[string](ctx, uneven(t), compare.Query[string]{Start: "A", Goal: "E", MaxDepth: 3})
	assert.ErrorIs(t, err, context.Canceled)
}

// cancelAfter cancels its context once Successors has been called limit
// times.
type cancelAfter struct {
	g      core.Adjacency[string]
	calls  atomic.Int64
	limit  int64
	cancel context.CancelFunc
}

func (c *cancelAfter) Successors(id string) []string {
	if c.calls.Add(1) == c.limit {
		c.cancel()
	}
	return c.g.Successors(id)
}

// complete returns the complete digraph on n vertices "0".."n-1".
func complete(n int) core.Map[string] {
	m := make(core.Map[string], n)
	for i := 0; i < n; i++ {
		from := strconv.Itoa(i)
		for j := 0; j < n; j++ {
			if j != i {
				m[from] = append(m[from], strconv.Itoa(j))
			}
		}
	}
	return m
}

// TestRun_CancelStopsRunningSearch cancels while IDS enumerates the simple
// paths of a complete digraph, a walk far too long to finish on its own.
func TestRun_CancelStopsRunningSearch(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g := &cancelAfter{g: complete(12), limit: 5000, cancel: cancel}

	begin := time.Now()
	rep, err := compare.Run[string](ctx, g, compare.Query[string]{Start: "0", Goal: "missing", MaxDepth: 11})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, rep)
	assert.Less(t, time.Since(begin), 10*time.Second)
	assert.GreaterOrEqual(t, g.calls.Load(), g.limit)
}

func TestRun_StopOnExhaustion(t *testing.T) {
	g := core.Map[string]{"A": {"B"}, "B": {"A"}}

	full, err := compare.Run[string](context.Background(), g, compare.Query[string]{Start: "A", Goal: "Z", MaxDepth: 6})
	require.NoError(t, err)
	short, err := compare.Run[string](context.Background(), g, compare.Query[string]{Start: "A", Goal: "Z", MaxDepth: 6},
		compare.WithStopOnExhaustion())
	require.NoError(t, err)

	assert.Len(t, full.IDS.Iterations, 7)
	assert.Len(t, short.IDS.Iterations, 2)
	assert.True(t, short.IDS.Exhausted)
	assert.Less(t, short.IDSVisits, full.IDSVisits)
}

func TestRun_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := compare.Run[string](context.Background(), uneven(t), compare.Query[string]{Start: "A", Goal: "E", MaxDepth: 4},
		compare.WithLogger(logger))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "query compared")
	assert.Contains(t, buf.String(), "dfs_visits=20")
}

// TestBatch_KeepsQueryOrder runs more queries than workers.
func TestBatch_KeepsQueryOrder(t *testing.T) {
	g := uneven(t)
	goals := []string{"E", "D", "X3", "C", "missing", "A"}
	queries := make([]compare.Query[string], len(goals))
	for i, goal := range goals {
		queries[i] = compare.Query[string]{Start: "A", Goal: goal, MaxDepth: 5}
	}

	reports, err := compare.Batch[string](context.Background(), g, queries, 2)
	require.NoError(t, err)
	require.Len(t, reports, len(goals))

	wantDepth := []int{2, 3, 3, 2, ids.NotFound, 0}
	for i, rep := range reports {
		assert.Equal(t, goals[i], rep.Query.Goal)
		assert.Equal(t, wantDepth[i], rep.ShortestDepth, "goal %s", goals[i])
		assert.True(t, rep.IDSOptimal, "goal %s", goals[i])
	}

	sum := compare.Summarize(reports)
	assert.Equal(t, 6, sum.Queries)
	assert.Equal(t, 5, sum.Reachable)
	assert.Equal(t, 5, sum.IDSFound)
	assert.Equal(t, 6, sum.IDSOptimal)
}

func TestBatch_Errors(t *testing.T) {
	_, err := compare.Batch[string](context.Background(), nil, nil, 1)
	assert.ErrorIs(t, err, compare.ErrGraphNil)

	queries := []compare.Query[string]{
		{Start: "A", Goal: "E", MaxDepth: 3},
		{Start: "A", Goal: "E", MaxDepth: -2},
	}
	_, err = compare.Batch[string](context.Background(), uneven(t), queries, 0)
	assert.ErrorIs(t, err, compare.ErrNegativeDepth)
	assert.Contains(t, err.Error(), "query 1")
}
