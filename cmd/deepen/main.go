// deepen contrasts depth-first search with iterative deepening.
//
// Usage:
//
//	deepen demo [--chain 15] [--max-depth 10]
//	deepen search --file scenario.yaml [--algo ids] [--start A] [--goal E] [--max-depth 20] [--limit 3]
//	deepen compare --file scenario.yaml [--parallel 4]
//	deepen maze --file maze.txt [--diagonal] [--max-depth 40]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
