package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/skypath/mission"
)

func newBatchCmd(g *globals) *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "batch mission.yaml...",
		Short: "Plan missions from many files concurrently and print a summary table",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ms []*mission.Mission
			for _, path := range args {
				loaded, err := mission.LoadFile(path)
				if err != nil {
					return err
				}
				ms = append(ms, loaded...)
			}

			solver := mission.NewSolver(
				mission.WithLogger(g.logger),
				mission.WithConcurrency(jobs),
			)
			reps, err := solver.SolveAll(cmd.Context(), ms)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), reportTable(reps))
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "missions planned in parallel (0 = number of CPUs)")
	return cmd
}

// reportTable lays out one row per report, in input order.
func reportTable(reps []mission.Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "MISSION", "RUN", "STATUS", "COST", "STEPS", "EXPANDED")

	for i, rep := range reps {
		status, cost, steps := "no path", "-", "-"
		if rep.Result.Found {
			status = "ok"
			cost = strconv.FormatInt(rep.Result.Cost, 10)
			steps = strconv.Itoa(len(rep.Result.Path) - 1)
		}
		t.Row(strconv.Itoa(i+1), rep.Name, rep.ID, status, cost, steps, strconv.Itoa(rep.Result.Expanded))
	}
	return t.String()
}
