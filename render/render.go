package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/skypath/astar"
	"github.com/katalvlaran/skypath/terrain"
)

// PathMarker replaces the cost of every route cell that is not an S or G marker.
const PathMarker = "*"

// Palette holds one style per cell class. Ramp styles Open cells from the
// cheapest to the most expensive; an empty Ramp leaves costs unstyled.
type Palette struct {
	Start lipgloss.Style
	Goal  lipgloss.Style
	Wall  lipgloss.Style
	Path  lipgloss.Style
	Ramp  []lipgloss.Style
}

// rampColors runs from low ground to high ground, in ANSI-256 codes.
var rampColors = []lipgloss.Color{"31", "37", "71", "107", "179", "137", "250"}

// DefaultPalette styles cells for the default lipgloss renderer (stdout).
func DefaultPalette() Palette {
	return PaletteFor(lipgloss.DefaultRenderer())
}

// PaletteFor builds the default colours on a specific renderer, so the
// caller controls colour profile detection.
func PaletteFor(r *lipgloss.Renderer) Palette {
	p := Palette{
		Start: r.NewStyle().Foreground(lipgloss.Color("208")),
		Goal:  r.NewStyle().Foreground(lipgloss.Color("40")),
		Wall:  r.NewStyle().Foreground(lipgloss.Color("240")),
		Path:  r.NewStyle().Foreground(lipgloss.Color("33")),
	}
	for _, c := range rampColors {
		p.Ramp = append(p.Ramp, r.NewStyle().Foreground(c))
	}
	return p
}

// Option customizes Map.
type Option func(*options)

type options struct {
	palette *Palette
}

// WithStyle colours the map with p. Without it Map returns plain text.
func WithStyle(p Palette) Option {
	return func(o *options) { o.palette = &p }
}

// Map draws g as text, one line per row with cells separated by a space and
// right-aligned to the widest token. Cells on path other than S and G are
// drawn as PathMarker. A nil path draws the bare terrain.
func Map(g *terrain.Grid, path astar.Path, opts ...Option) string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	onPath := make(map[terrain.Cell]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}

	tokens := g.Tokens()
	width, maxCost := 1, int64(0)
	for _, row := range tokens {
		for _, t := range row {
			if n := len(t.String()); n > width {
				width = n
			}
			if t.Kind == terrain.Open && t.Cost > maxCost {
				maxCost = t.Cost
			}
		}
	}

	var b strings.Builder
	for r, row := range tokens {
		for c, t := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			text := t.String()
			marked := t.Kind == terrain.Open && onPath[terrain.At(r, c)]
			if marked {
				text = PathMarker
			}
			text = fmt.Sprintf("%*s", width, text)
			if o.palette != nil {
				text = o.palette.style(t, marked, maxCost).Render(text)
			}
			b.WriteString(text)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// style picks the cell style. Open costs map linearly onto the ramp.
func (p *Palette) style(t terrain.Token, marked bool, maxCost int64) lipgloss.Style {
	switch {
	case marked:
		return p.Path
	case t.Kind == terrain.Start:
		return p.Start
	case t.Kind == terrain.Goal:
		return p.Goal
	case t.Kind == terrain.Impassable:
		return p.Wall
	}
	if len(p.Ramp) == 0 {
		return lipgloss.NewStyle()
	}
	if maxCost == 0 {
		return p.Ramp[0]
	}
	i := int(float64(t.Cost) / float64(maxCost) * float64(len(p.Ramp)-1))
	return p.Ramp[i]
}

// Summary reports a search result the way the command line prints it:
//
//	Flight path: [(0,0) (0,1) ...]
//	Total cost: 40 (23 cells expanded)
//
// or "No path found!" when the goal is unreachable.
func Summary(res astar.Result) string {
	if !res.Found {
		return "No path found!\n"
	}
	return fmt.Sprintf("Flight path: %v\nTotal cost: %d (%d cells expanded)\n",
		res.Path, res.Cost, res.Expanded)
}
