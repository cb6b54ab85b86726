package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/deepening/builder"
	"github.com/katalvlaran/deepening/compare"
	"github.com/katalvlaran/deepening/ids"
	"github.com/katalvlaran/deepening/internal/logging"
)

func newDemoCmd(gf *globalFlags) *cobra.Command {
	var (
		chain    int
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Walk through DFS and IDS on the uneven-branches graph",
		Long: `Builds the two-branch demonstration graph (A→[X1,B], B→[C,E], C→D plus a
chain X1→…→X<chain>) and searches it from A for E. DFS follows the chain to
its end before finding E; IDS finds E at depth 2 after three short passes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, gf, chain, maxDepth)
		},
	}
	cmd.Flags().IntVar(&chain, "chain", 15, "length of the X chain under A")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 10, "largest bound iterative deepening may try")
	return cmd
}

func runDemo(cmd *cobra.Command, gf *globalFlags, chain, maxDepth int) error {
	log := logging.New("demo")

	g, err := builder.BuildGraph(nil, nil, builder.UnevenBranches(chain))
	if err != nil {
		return fmt.Errorf("build demo graph: %w", err)
	}
	log.Info("demo graph built", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	var opts []compare.Option
	if gf.stopOnExhaustion {
		opts = append(opts, compare.WithStopOnExhaustion())
	}
	q := compare.Query[string]{Start: builder.UnevenRoot, Goal: builder.UnevenGoal, MaxDepth: maxDepth}
	rep, err := compare.Run[string](cmd.Context(), g, q, opts...)
	if err != nil {
		return err
	}

	v := newView(cmd.OutOrStdout(), gf.noColor)
	v.field("start", q.Start)
	v.field("goal", q.Goal)
	v.blank()

	v.section("Depth-first search")
	if rep.DFS.Found {
		v.field("path", joinPath(rep.DFS.Path))
	} else {
		v.field("path", v.fail.Render("goal not found"))
	}
	v.field("trail", joinPath(rep.DFS.Order))
	v.field("visited", fmt.Sprint(rep.DFSVisits))
	v.blank()

	v.section("Iterative deepening")
	if rep.IDS.Found() {
		v.field("found", fmt.Sprintf("at depth L=%d", rep.IDS.Depth))
		v.field("path", joinPath(rep.IDS.Path))
	} else {
		v.field("found", v.fail.Render(fmt.Sprintf("not within max depth %d", maxDepth)))
	}
	writeIterations(v, rep.IDS)
	v.field("visited", fmt.Sprintf("%d (with repeats)", rep.IDSVisits))
	v.blank()

	v.section("Comparison")
	v.field("DFS", fmt.Sprintf("%d vertices, path length %s", rep.DFSVisits, depthString(rep.DFSPathLen)))
	v.field("IDS", fmt.Sprintf("%d vertices, path length %s", rep.IDSVisits, depthString(rep.IDS.Depth)))
	v.field("shortest", depthString(rep.ShortestDepth))
	v.field("optimal", "IDS "+v.verdict(rep.IDSOptimal, yesNo(rep.IDSOptimal))+
		", DFS "+v.verdict(rep.DFSOptimal, yesNo(rep.DFSOptimal)))
	return nil
}

// writeIterations prints one trail line per depth bound.
func writeIterations(v *view, res *ids.Result[string]) {
	counts := make([]int, len(res.Iterations))
	for i, it := range res.Iterations {
		counts[i] = it.Visited
	}
	for i, trail := range splitIterations(res.Order, counts) {
		it := res.Iterations[i]
		name := fmt.Sprintf("L=%d", it.Limit)
		v.field(name, joinPath(trail)+" "+v.subtle.Render("("+it.Outcome.String()+")"))
	}
}
