// Command trailmaze reports the longest trail through a text maze.
//
//	trailmaze solve maze.txt              # both modes, one line each
//	trailmaze solve --mode undirected -   # read stdin
//	trailmaze graph maze.txt | dot -Tsvg  # junction graph for Graphviz
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
