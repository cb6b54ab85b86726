package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/deepening/bfs"
	"github.com/katalvlaran/deepening/converters"
	"github.com/katalvlaran/deepening/dfs"
	"github.com/katalvlaran/deepening/dls"
	"github.com/katalvlaran/deepening/ids"
	"github.com/katalvlaran/deepening/internal/logging"
)

var searchAlgos = []string{"dfs", "dls", "ids", "bfs"}

type searchFlags struct {
	file     string
	algo     string
	start    string
	goal     string
	maxDepth int
	limit    int
}

func newSearchCmd(gf *globalFlags) *cobra.Command {
	sf := &searchFlags{}
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run one search algorithm over a scenario file",
		Long: `Loads a YAML or JSON scenario and runs a single algorithm on it.
--start, --goal and --max-depth override the scenario's values; --limit is
the bound for dls and defaults to the max depth.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd, gf, sf)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&sf.file, "file", "f", "", "scenario file (required)")
	f.StringVar(&sf.algo, "algo", "ids", "algorithm: "+strings.Join(searchAlgos, ", "))
	f.StringVar(&sf.start, "start", "", "start vertex (overrides the scenario)")
	f.StringVar(&sf.goal, "goal", "", "goal vertex (overrides the scenario)")
	f.IntVar(&sf.maxDepth, "max-depth", ids.DefaultMaxDepth, "largest IDS bound (overrides the scenario)")
	f.IntVar(&sf.limit, "limit", 0, "DLS depth bound (default: max depth)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runSearch(cmd *cobra.Command, gf *globalFlags, sf *searchFlags) error {
	log := logging.New("search")

	s, err := converters.Load(sf.file)
	if err != nil {
		return err
	}
	if sf.start != "" {
		s.Start = sf.start
	}
	if sf.goal != "" {
		s.Goal = sf.goal
	}
	if cmd.Flags().Changed("max-depth") {
		s.MaxDepth = sf.maxDepth
	}
	limit := s.MaxDepth
	if cmd.Flags().Changed("limit") {
		limit = sf.limit
	}
	log.Debug("scenario loaded", "file", sf.file, "vertices", s.Graph.VertexCount(), "algo", sf.algo)

	v := newView(cmd.OutOrStdout(), gf.noColor)
	v.field("start", s.Start)
	v.field("goal", s.Goal)
	v.blank()

	switch sf.algo {
	case "dfs":
		res, err := dfs.DFS[string](s.Graph, s.Start, s.Goal)
		if err != nil {
			return err
		}
		v.section("Depth-first search")
		v.field("result", v.verdict(res.Found, foundText(res.Found)))
		v.field("path", joinPath(res.Path))
		v.field("trail", joinPath(res.Order))
		v.field("visited", fmt.Sprint(len(res.Order)))

	case "dls":
		res, err := dls.DLS[string](s.Graph, s.Goal, []string{s.Start}, limit)
		if err != nil {
			return err
		}
		v.section(fmt.Sprintf("Depth-limited search (L=%d)", limit))
		v.field("result", v.verdict(res.Found(), res.Outcome.String()))
		v.field("path", joinPath(res.Path))
		v.field("trail", joinPath(res.Order))
		v.field("visited", fmt.Sprint(len(res.Order)))

	case "ids":
		var opts []ids.Option[string]
		if gf.stopOnExhaustion {
			opts = append(opts, ids.WithStopOnExhaustion[string]())
		}
		res, err := ids.IDS[string](s.Graph, s.Start, s.Goal, s.MaxDepth, opts...)
		if err != nil {
			return err
		}
		v.section(fmt.Sprintf("Iterative deepening (max depth %d)", s.MaxDepth))
		v.field("result", v.verdict(res.Found(), foundText(res.Found())))
		v.field("depth", depthString(res.Depth))
		v.field("path", joinPath(res.Path))
		writeIterations(v, res)
		v.field("visited", fmt.Sprintf("%d (with repeats)", len(res.Order)))

	case "bfs":
		res, err := bfs.BFS[string](s.Graph, s.Start, bfs.WithContext[string](cmd.Context()))
		if err != nil {
			return err
		}
		path, perr := res.PathTo(s.Goal)
		v.section("Breadth-first search")
		v.field("result", v.verdict(perr == nil, foundText(perr == nil)))
		if perr == nil {
			v.field("depth", fmt.Sprint(res.Depth[s.Goal]))
		}
		v.field("path", joinPath(path))
		v.field("trail", joinPath(res.Order))
		v.field("visited", fmt.Sprint(len(res.Order)))

	default:
		return fmt.Errorf("unknown algorithm %q (want one of %s)", sf.algo, strings.Join(searchAlgos, ", "))
	}
	return nil
}

func foundText(found bool) string {
	if found {
		return "found"
	}
	return "not found"
}
