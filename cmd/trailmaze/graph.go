package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/trailmaze"
)

func newGraphCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "graph [file]",
		Short: "Print the compiled junction graph in Graphviz DOT format",
		Long: "Print the compiled junction graph in Graphviz DOT format.\n" +
			"When several modes are selected, one graph is printed per mode.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(cmd, args)
			if err != nil {
				return err
			}
			for _, m := range a.settings.modes {
				jg, err := trailmaze.Compile(g, m, a.options(cmd.Context())...)
				if err != nil {
					return err
				}
				data, err := jg.DOT(m.String())
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(data)); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
