package compare

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/deepening/bfs"
	"github.com/katalvlaran/deepening/dfs"
	"github.com/katalvlaran/deepening/ids"
	"github.com/katalvlaran/deepening/internal/logging"
)

// Sentinel errors.
var (
	ErrGraphNil      = errors.New("compare: graph is nil")
	ErrNegativeDepth = errors.New("compare: max depth is negative")
)

// Query is one start/goal pair with the iterative-deepening budget.
type Query[N comparable] struct {
	Start    N
	Goal     N
	MaxDepth int
}

// Options configures Run and Batch.
type Options struct {
	// StopOnExhaustion is forwarded to ids.WithStopOnExhaustion.
	StopOnExhaustion bool
	// Logger receives one debug record per finished query.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{Logger: logging.New("compare")}
}

// WithStopOnExhaustion lets IDS stop as soon as a bound is exhausted.
func WithStopOnExhaustion() Option {
	return func(o *Options) { o.StopOnExhaustion = true }
}

// WithLogger replaces the component logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Report holds the raw results of the three searches and the derived
// comparison figures.
type Report[N comparable] struct {
	Query Query[N]

	DFS *dfs.Result[N]
	IDS *ids.Result[N]
	BFS *bfs.BFSResult[N]

	// DFSVisits and IDSVisits are the exploration order lengths. IDS
	// counts a vertex once per iteration that reaches it.
	DFSVisits int
	IDSVisits int

	// DFSPathLen is the edge count of the DFS path, ids.NotFound if none.
	DFSPathLen int

	// ShortestDepth is the BFS distance from start to goal, ids.NotFound
	// if the goal is unreachable.
	ShortestDepth int

	// IDSOptimal is true when IDS agrees with BFS within the budget: it
	// found the goal at exactly ShortestDepth, or the goal is unreachable
	// or farther than MaxDepth and IDS reported not found.
	IDSOptimal bool

	// DFSOptimal is true when DFS returned a shortest path.
	DFSOptimal bool

	DFSTime, IDSTime, BFSTime time.Duration
}
