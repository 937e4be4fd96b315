package mission

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/skypath/astar"
	"github.com/katalvlaran/skypath/terrain"
)

// Heuristic names accepted in mission files.
const (
	HeuristicManhattan = "manhattan"
	HeuristicZero      = "zero"
)

// Sentinel errors for mission loading.
var (
	// ErrEmptyDocument indicates a stream with no YAML document.
	ErrEmptyDocument = errors.New("mission: no mission document")
	// ErrInvalidMission wraps struct validation failures.
	ErrInvalidMission = errors.New("mission: invalid mission")
)

// Mission is one planning request as stored in YAML.
//
// Terrain holds one token list per row; Layout is the same map as a
// whitespace-separated text block. Exactly one of them must be set.
// Start and Goal are optional [row, col] overrides of the S/G markers.
type Mission struct {
	Name      string     `yaml:"name" validate:"required,max=128"`
	Heuristic string     `yaml:"heuristic,omitempty" validate:"omitempty,oneof=manhattan zero"`
	Settled   bool       `yaml:"settled,omitempty"`
	Terrain   [][]string `yaml:"terrain,omitempty" validate:"required_without=Layout,excluded_with=Layout"`
	Layout    string     `yaml:"layout,omitempty" validate:"required_without=Terrain"`
	Start     []int      `yaml:"start,omitempty" validate:"omitempty,len=2,dive,gte=0"`
	Goal      []int      `yaml:"goal,omitempty" validate:"omitempty,len=2,dive,gte=0"`
}

// missionValidate is the shared validator instance for mission files.
var missionValidate = validator.New()

// Validate checks the struct-level constraints. It does not parse the terrain;
// Grid reports terrain problems.
func (m *Mission) Validate() error {
	if err := missionValidate.Struct(m); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidMission, m.Name, err)
	}
	return nil
}

// Grid parses the mission terrain.
func (m *Mission) Grid() (*terrain.Grid, error) {
	if m.Layout != "" {
		return terrain.ParseText(m.Layout)
	}
	return terrain.ParseGrid(m.Terrain)
}

// Endpoints returns the search endpoints on g: the overrides when present,
// otherwise the grid's S and G markers.
func (m *Mission) Endpoints(g *terrain.Grid) (start, goal terrain.Cell) {
	start, goal = g.Start(), g.Goal()
	if len(m.Start) == 2 {
		start = terrain.At(m.Start[0], m.Start[1])
	}
	if len(m.Goal) == 2 {
		goal = terrain.At(m.Goal[0], m.Goal[1])
	}
	return start, goal
}

// Options maps the mission settings to search options.
func (m *Mission) Options() []astar.Option {
	var opts []astar.Option
	switch m.Heuristic {
	case HeuristicZero:
		opts = append(opts, astar.WithHeuristic(astar.Zero))
	case HeuristicManhattan, "":
		opts = append(opts, astar.WithHeuristic(astar.Manhattan))
	}
	if m.Settled {
		opts = append(opts, astar.WithSettled())
	}
	return opts
}

// Load decodes and validates a single mission from r. Unknown keys are rejected.
func Load(r io.Reader) (*Mission, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Mission
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("mission: decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadAll decodes every document of a multi-document YAML stream.
func LoadAll(r io.Reader) ([]*Mission, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []*Mission
	for i := 0; ; i++ {
		var m Mission
		err := dec.Decode(&m)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("mission: decode document %d: %w", i, err)
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		out = append(out, &m)
	}
	if len(out) == 0 {
		return nil, ErrEmptyDocument
	}
	return out, nil
}

// LoadFile reads every mission stored in the file at path.
func LoadFile(path string) ([]*Mission, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mission: %w", err)
	}
	defer f.Close()

	ms, err := LoadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ms, nil
}

// Encode writes m as a YAML document.
func (m *Mission) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("mission: encode: %w", err)
	}
	return enc.Close()
}

// sampleLayout is the 5×7 survey area used by Sample.
const sampleLayout = `
S 1 2 3 # 5 6
1 # 2 4 5 # 7
2 2 3 # 6 7 8
3 # 4 5 6 # 9
4 5 6 7 8 9 G
`

// Sample returns the built-in drone survey mission.
func Sample() *Mission {
	return &Mission{
		Name:      "drone-survey",
		Heuristic: HeuristicManhattan,
		Layout:    strings.TrimSpace(sampleLayout),
	}
}
