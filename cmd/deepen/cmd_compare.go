package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/deepening/compare"
	"github.com/katalvlaran/deepening/converters"
	"github.com/katalvlaran/deepening/internal/logging"
)

func newCompareCmd(gf *globalFlags) *cobra.Command {
	var (
		file     string
		parallel int
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare DFS, IDS and BFS on every query of a scenario",
		Long: `Runs the scenario's main start/goal pair plus every entry under "queries"
through DFS, IDS and BFS, then tabulates visit counts, path lengths and
whether IDS matched the BFS shortest distance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd, gf, file, parallel)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "scenario file (required)")
	cmd.Flags().IntVar(&parallel, "parallel", 4, "queries compared concurrently")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runCompare(cmd *cobra.Command, gf *globalFlags, file string, parallel int) error {
	log := logging.New("compare")

	s, err := converters.Load(file)
	if err != nil {
		return err
	}

	queries := make([]compare.Query[string], 0, len(s.Queries)+1)
	for _, q := range s.AllQueries() {
		queries = append(queries, compare.Query[string]{Start: q.Start, Goal: q.Goal, MaxDepth: q.Depth(s.MaxDepth)})
	}

	opts := []compare.Option{compare.WithLogger(log)}
	if gf.stopOnExhaustion {
		opts = append(opts, compare.WithStopOnExhaustion())
	}
	log.Info("comparing", "file", file, "queries", len(queries), "parallel", parallel)
	reports, err := compare.Batch[string](cmd.Context(), s.Graph, queries, parallel, opts...)
	if err != nil {
		return err
	}

	v := newView(cmd.OutOrStdout(), gf.noColor)
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Query.Start,
			r.Query.Goal,
			fmt.Sprint(r.Query.MaxDepth),
			depthString(r.ShortestDepth),
			depthString(r.IDS.Depth),
			depthString(r.DFSPathLen),
			fmt.Sprint(r.DFSVisits),
			fmt.Sprint(r.IDSVisits),
			yesNo(r.IDSOptimal),
		})
	}
	v.section(fmt.Sprintf("%s: %d queries", file, len(reports)))
	v.table([]string{"start", "goal", "max", "shortest", "ids", "dfs", "dfs visits", "ids visits", "ids optimal"}, rows)

	sum := compare.Summarize(reports)
	v.field("reachable", fmt.Sprintf("%d/%d", sum.Reachable, sum.Queries))
	v.field("IDS found", fmt.Sprintf("%d/%d", sum.IDSFound, sum.Queries))
	v.field("optimal", fmt.Sprintf("IDS %s, DFS %s",
		v.verdict(sum.IDSOptimal == sum.Queries, fmt.Sprintf("%d/%d", sum.IDSOptimal, sum.Queries)),
		v.verdict(sum.DFSOptimal == sum.Reachable, fmt.Sprintf("%d/%d", sum.DFSOptimal, sum.Reachable))))
	v.field("visits", fmt.Sprintf("DFS %d, IDS %d", sum.DFSVisits, sum.IDSVisits))
	return nil
}
