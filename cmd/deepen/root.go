package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/deepening/internal/logging"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel         string
	logFormat        string
	noColor          bool
	stopOnExhaustion bool
}

func newRootCmd() *cobra.Command {
	gf := &globalFlags{}

	root := &cobra.Command{
		Use:   "deepen",
		Short: "Compare depth-first search with iterative deepening",
		Long: "deepen runs depth-first search, depth-limited search, iterative deepening\n" +
			"and breadth-first search over ordered directed graphs and shows how\n" +
			"their exploration orders and paths differ.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(gf.logLevel)
			if err != nil {
				return err
			}
			switch gf.logFormat {
			case "text", "json":
			default:
				return fmt.Errorf("unknown log format %q (want text or json)", gf.logFormat)
			}
			logging.Init(level, gf.logFormat, cmd.ErrOrStderr())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&gf.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&gf.logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVar(&gf.noColor, "no-color", false, "disable styled output")
	pf.BoolVar(&gf.stopOnExhaustion, "stop-on-exhaustion", false, "stop iterative deepening once a bound explores the whole reachable graph")

	root.AddCommand(newDemoCmd(gf))
	root.AddCommand(newSearchCmd(gf))
	root.AddCommand(newCompareCmd(gf))
	root.AddCommand(newMazeCmd(gf))
	root.Version = version

	return root
}
