package main

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/trailmaze"
	"github.com/katalvlaran/trailmaze/maze"
)

// report is one mode's outcome in JSON output.
type report struct {
	Mode      string  `json:"mode"`
	Longest   int     `json:"longest"`
	Found     bool    `json:"found"`
	Nodes     int     `json:"nodes"`
	Edges     int     `json:"edges"`
	Expanded  int64   `json:"expanded"`
	Tasks     int64   `json:"tasks"`
	ElapsedMS float64 `json:"elapsed_ms"`
}

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the longest trail length for each selected mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(cmd, args)
			if err != nil {
				return err
			}
			reports := make([]report, 0, len(a.settings.modes))
			for _, m := range a.settings.modes {
				r, err := a.solve(cmd.Context(), g, m)
				if err != nil {
					return err
				}
				reports = append(reports, r)
			}

			out := cmd.OutOrStdout()
			if a.settings.format == "json" {
				data, err := json.MarshalIndent(reports, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}
			for _, r := range reports {
				if _, err := fmt.Fprintf(out, "%s: %d\n", r.Mode, r.Longest); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

// options maps the resolved settings onto facade options.
func (a *app) options(ctx context.Context) []trailmaze.Option {
	return []trailmaze.Option{
		trailmaze.WithContext(ctx),
		trailmaze.WithPruning(a.settings.prune),
		trailmaze.WithParallelDepth(a.settings.parallelDepth),
		trailmaze.WithLogger(a.logger),
	}
}

// solve compiles g in mode m and searches it from the entrance.
func (a *app) solve(ctx context.Context, g *maze.Grid, m maze.Mode) (report, error) {
	r, err := trailmaze.Analyze(g, m, a.options(ctx)...)
	if err != nil {
		return report{}, err
	}

	return report{
		Mode:      m.String(),
		Longest:   r.Result.Longest,
		Found:     r.Result.Found,
		Nodes:     r.Graph.NodeCount(),
		Edges:     r.Graph.EdgeCount(),
		Expanded:  r.Result.Expanded,
		Tasks:     r.Result.Tasks,
		ElapsedMS: float64(r.Result.Elapsed.Microseconds()) / 1000,
	}, nil
}
