package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skypath/render"
)

func newRenderCmd(g *globals) *cobra.Command {
	var sample bool

	cmd := &cobra.Command{
		Use:   "render [mission.yaml]",
		Short: "Draw mission terrain without planning",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := missionsFor(args, sample)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			opts := g.mapOptions(out)
			for i, m := range ms {
				grid, err := m.Grid()
				if err != nil {
					return fmt.Errorf("mission %q: %w", m.Name, err)
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "Mission: %s (%dx%d, %d passable regions)\n",
					m.Name, grid.Rows(), grid.Cols(), len(grid.Regions()))
				fmt.Fprint(out, render.Map(grid, nil, opts...))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sample, "sample", false, "draw the built-in drone survey instead of a file")
	return cmd
}
