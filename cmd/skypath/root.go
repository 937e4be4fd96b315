package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/skypath/render"
)

// Colour modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

// globals carries the persistent flags shared by all subcommands.
type globals struct {
	logLevel string
	color    string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	g := &globals{}

	root := &cobra.Command{
		Use:   "skypath",
		Short: "Plan minimum-cost drone flights over terrain grids",
		Long: `skypath runs A* search over mission terrain files: S marks the start,
G the goal, # a no-fly cell and every number the cost of flying into it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			switch g.color {
			case colorAuto, colorAlways, colorNever:
			default:
				return fmt.Errorf("--color: want auto, always or never, got %q", g.color)
			}
			g.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&g.color, "color", colorAuto, "colour maps: auto, always or never")

	root.AddCommand(newSolveCmd(g), newBatchCmd(g), newRenderCmd(g))
	return root
}

// mapOptions resolves --color against the command's output stream.
func (g *globals) mapOptions(out io.Writer) []render.Option {
	switch g.color {
	case colorNever:
		return nil
	case colorAlways:
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI256)
		return []render.Option{render.WithStyle(render.PaletteFor(r))}
	}
	f, ok := out.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return nil
	}
	return []render.Option{render.WithStyle(render.PaletteFor(lipgloss.NewRenderer(f)))}
}
