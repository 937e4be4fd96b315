package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/skypath/astar"
	"github.com/katalvlaran/skypath/mission"
	"github.com/katalvlaran/skypath/render"
)

// errNoPath is returned under --strict when a mission has no route.
var errNoPath = errors.New("no path found")

type solveFlags struct {
	sample   bool
	precheck bool
	strict   bool
}

func newSolveCmd(g *globals) *cobra.Command {
	var f solveFlags

	cmd := &cobra.Command{
		Use:   "solve [mission.yaml]",
		Short: "Plan every mission in a file and draw the flight path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, err := missionsFor(args, f.sample)
			if err != nil {
				return err
			}
			return runSolve(cmd, g, f, ms)
		},
	}

	cmd.Flags().BoolVar(&f.sample, "sample", false, "plan the built-in drone survey instead of a file")
	cmd.Flags().BoolVar(&f.precheck, "precheck", false, "skip the search when the goal is not connected to the start")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "exit with an error when no path exists")
	return cmd
}

// missionsFor loads the file named in args, or the sample mission.
func missionsFor(args []string, sample bool) ([]*mission.Mission, error) {
	switch {
	case sample && len(args) > 0:
		return nil, errors.New("--sample takes no mission file")
	case sample:
		return []*mission.Mission{mission.Sample()}, nil
	case len(args) == 0:
		return nil, errors.New("mission file required (or --sample)")
	}
	return mission.LoadFile(args[0])
}

func runSolve(cmd *cobra.Command, g *globals, f solveFlags, ms []*mission.Mission) error {
	out := cmd.OutOrStdout()
	solver := mission.NewSolver(mission.WithLogger(g.logger))
	opts := g.mapOptions(out)

	missing := 0
	for i, m := range ms {
		if i > 0 {
			fmt.Fprintln(out)
		}
		if f.precheck {
			skip, err := unreachable(m)
			if err != nil {
				return err
			}
			if skip {
				g.logger.Info("precheck: goal not connected to start", slog.String("mission", m.Name))
				fmt.Fprintf(out, "Mission: %s (precheck)\n", m.Name)
				fmt.Fprint(out, render.Summary(astar.Result{}))
				missing++
				continue
			}
		}

		rep, err := solver.Solve(cmd.Context(), m)
		if err != nil {
			return err
		}
		printReport(out, rep, opts)
		if !rep.Result.Found {
			missing++
		}
	}

	if f.strict && missing > 0 {
		return fmt.Errorf("%w for %d of %d missions", errNoPath, missing, len(ms))
	}
	return nil
}

// unreachable reports whether the mission's endpoints lie on the grid but in
// different passable regions. Off-grid endpoints are left to the search,
// which rejects them with an error.
func unreachable(m *mission.Mission) (bool, error) {
	grid, err := m.Grid()
	if err != nil {
		return false, fmt.Errorf("mission %q: %w", m.Name, err)
	}
	start, goal := m.Endpoints(grid)
	if !grid.InBounds(start) || !grid.InBounds(goal) {
		return false, nil
	}
	return !grid.Reachable(start, goal), nil
}

func printReport(out io.Writer, rep mission.Report, opts []render.Option) {
	fmt.Fprintf(out, "Mission: %s (run %s)\n", rep.Name, rep.ID)
	fmt.Fprint(out, render.Map(rep.Grid, rep.Result.Path, opts...))
	fmt.Fprint(out, render.Summary(rep.Result))
}
