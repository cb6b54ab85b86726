package compare

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/deepening/bfs"
	"github.com/katalvlaran/deepening/core"
	"github.com/katalvlaran/deepening/dfs"
	"github.com/katalvlaran/deepening/ids"
)

// Run executes DFS, IDS and BFS for q concurrently and derives the
// comparison figures. Every search checks ctx as it visits vertices, so
// cancellation stops a running search and Run returns the context error
// wrapped.
func Run[N comparable](ctx context.Context, g core.Adjacency[N], q Query[N], opts ...Option) (*Report[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if q.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, q.MaxDepth)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rep := &Report[N]{Query: q}
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := egCtx.Err(); err != nil {
			return err
		}
		start := time.Now()
		res, err := dfs.DFS(g, q.Start, q.Goal,
			dfs.WithOnVisit[N](func(N, int) error { return egCtx.Err() }))
		if err != nil {
			return fmt.Errorf("compare: dfs: %w", err)
		}
		rep.DFS, rep.DFSTime = res, time.Since(start)
		return nil
	})

	eg.Go(func() error {
		if err := egCtx.Err(); err != nil {
			return err
		}
		iopts := []ids.Option[N]{
			ids.WithOnVisit[N](func(N, int) error { return egCtx.Err() }),
			ids.WithOnIteration[N](func(ids.Iteration) error { return egCtx.Err() }),
		}
		if o.StopOnExhaustion {
			iopts = append(iopts, ids.WithStopOnExhaustion[N]())
		}
		start := time.Now()
		res, err := ids.IDS(g, q.Start, q.Goal, q.MaxDepth, iopts...)
		if err != nil {
			return fmt.Errorf("compare: ids: %w", err)
		}
		rep.IDS, rep.IDSTime = res, time.Since(start)
		return nil
	})

	eg.Go(func() error {
		start := time.Now()
		res, err := bfs.BFS(g, q.Start, bfs.WithContext[N](egCtx))
		if err != nil {
			return fmt.Errorf("compare: bfs: %w", err)
		}
		rep.BFS, rep.BFSTime = res, time.Since(start)
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	rep.derive()
	o.Logger.Debug("query compared",
		"start", q.Start,
		"goal", q.Goal,
		"max_depth", q.MaxDepth,
		"dfs_visits", rep.DFSVisits,
		"ids_visits", rep.IDSVisits,
		"shortest", rep.ShortestDepth,
		"ids_optimal", rep.IDSOptimal,
	)
	return rep, nil
}

// derive fills the comparison figures from the three raw results.
func (r *Report[N]) derive() {
	r.DFSVisits = len(r.DFS.Order)
	r.IDSVisits = len(r.IDS.Order)

	r.ShortestDepth = ids.NotFound
	if d, ok := r.BFS.Depth[r.Query.Goal]; ok {
		r.ShortestDepth = d
	}

	r.DFSPathLen = ids.NotFound
	if r.DFS.Found {
		r.DFSPathLen = len(r.DFS.Path) - 1
	}
	r.DFSOptimal = r.DFS.Found && r.DFSPathLen == r.ShortestDepth

	withinBudget := r.ShortestDepth != ids.NotFound && r.ShortestDepth <= r.Query.MaxDepth
	if withinBudget {
		r.IDSOptimal = r.IDS.Depth == r.ShortestDepth
	} else {
		r.IDSOptimal = !r.IDS.Found()
	}
}

// Batch runs every query through Run with at most parallel queries in
// flight and returns the reports in query order. The first error cancels
// the remaining queries.
func Batch[N comparable](ctx context.Context, g core.Adjacency[N], queries []Query[N], parallel int, opts ...Option) ([]*Report[N], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if parallel < 1 {
		parallel = 1
	}

	reports := make([]*Report[N], len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(parallel)
	for i, q := range queries {
		eg.Go(func() error {
			rep, err := Run(egCtx, g, q, opts...)
			if err != nil {
				return fmt.Errorf("query %d (%v→%v): %w", i, q.Start, q.Goal, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// Summary aggregates a batch of reports.
type Summary struct {
	Queries    int
	Reachable  int // goal reachable at all (BFS)
	IDSFound   int
	IDSOptimal int
	DFSOptimal int
	DFSVisits  int
	IDSVisits  int
}

// Summarize totals the figures of reports.
func Summarize[N comparable](reports []*Report[N]) Summary {
	var s Summary
	for _, r := range reports {
		s.Queries++
		if r.ShortestDepth != ids.NotFound {
			s.Reachable++
		}
		if r.IDS.Found() {
			s.IDSFound++
		}
		if r.IDSOptimal {
			s.IDSOptimal++
		}
		if r.DFSOptimal {
			s.DFSOptimal++
		}
		s.DFSVisits += r.DFSVisits
		s.IDSVisits += r.IDSVisits
	}
	return s
}
