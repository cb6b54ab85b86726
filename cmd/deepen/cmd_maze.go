package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/deepening/compare"
	"github.com/katalvlaran/deepening/gridgraph"
	"github.com/katalvlaran/deepening/internal/logging"
)

func newMazeCmd(gf *globalFlags) *cobra.Command {
	var (
		file     string
		diagonal bool
		maxDepth int
	)
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Solve a text maze with DFS and IDS and draw both routes",
		Long: `Reads a maze of '#' walls, '.' open cells, one 'S' and one 'G', searches
it with DFS, IDS and BFS over the implicit grid graph and draws the DFS and
IDS routes. Neighbours are tried north, east, south, west; --diagonal
adds the corners and tries all eight clockwise from north.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMaze(cmd, gf, file, diagonal, maxDepth)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "maze file (required)")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "allow diagonal moves")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "largest IDS bound (default: open cells - 1)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runMaze(cmd *cobra.Command, gf *globalFlags, file string, diagonal bool, maxDepth int) error {
	log := logging.New("maze")

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read maze: %w", err)
	}
	conn := gridgraph.Conn4
	if diagonal {
		conn = gridgraph.Conn8
	}
	m, err := gridgraph.ParseMaze(strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), conn)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	if maxDepth <= 0 {
		// No simple path is longer than the open cell count minus one.
		maxDepth = len(m.OpenCells()) - 1
	}
	log.Info("maze loaded", "width", m.Width, "height", m.Height, "max_depth", maxDepth)

	var opts []compare.Option
	if gf.stopOnExhaustion {
		opts = append(opts, compare.WithStopOnExhaustion())
	}
	q := compare.Query[gridgraph.Point]{Start: m.Start, Goal: m.Goal, MaxDepth: maxDepth}
	rep, err := compare.Run[gridgraph.Point](cmd.Context(), m, q, opts...)
	if err != nil {
		return err
	}

	v := newView(cmd.OutOrStdout(), gf.noColor)
	v.section(fmt.Sprintf("Depth-first search: %d cells visited, route length %s",
		rep.DFSVisits, depthString(rep.DFSPathLen)))
	for _, line := range m.Render(rep.DFS.Path) {
		fmt.Fprintln(v.w, "  "+line)
	}
	v.blank()
	v.section(fmt.Sprintf("Iterative deepening: %d cells visited, route length %s",
		rep.IDSVisits, depthString(rep.IDS.Depth)))
	for _, line := range m.Render(rep.IDS.Path) {
		fmt.Fprintln(v.w, "  "+line)
	}
	v.blank()
	v.field("shortest", depthString(rep.ShortestDepth))
	v.field("optimal", "IDS "+v.verdict(rep.IDSOptimal, yesNo(rep.IDSOptimal))+
		", DFS "+v.verdict(rep.DFSOptimal, yesNo(rep.DFSOptimal)))
	return nil
}
