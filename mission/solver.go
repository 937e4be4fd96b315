package mission

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/skypath/astar"
	"github.com/katalvlaran/skypath/terrain"
)

// Report is the outcome of planning one mission.
type Report struct {
	ID       string        // short run identifier, also logged
	Name     string        // mission name
	Grid     *terrain.Grid // parsed terrain
	Start    terrain.Cell  // search origin
	Goal     terrain.Cell  // search target
	Result   astar.Result  // search outcome; Result.Found == false is NOT_FOUND
	Duration time.Duration // parse + search wall time
}

// Solver plans missions. The zero value is not usable; call NewSolver.
type Solver struct {
	logger      *slog.Logger
	concurrency int
}

// SolverOption configures a Solver.
type SolverOption func(*Solver)

// WithLogger sets the structured logger. nil keeps the discard logger.
func WithLogger(l *slog.Logger) SolverOption {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithConcurrency limits how many missions SolveAll plans at once.
// Values below 1 are ignored.
func WithConcurrency(n int) SolverOption {
	return func(s *Solver) {
		if n >= 1 {
			s.concurrency = n
		}
	}
}

// NewSolver returns a Solver that logs nowhere and runs up to NumCPU
// missions in parallel unless configured otherwise.
func NewSolver(opts ...SolverOption) *Solver {
	s := &Solver{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Solve parses the mission terrain and runs one search.
// The context is checked before work starts; a search in progress runs to
// completion. An unreachable goal is reported in Report.Result, not as an error.
func (s *Solver) Solve(ctx context.Context, m *Mission) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if m == nil {
		return Report{}, fmt.Errorf("%w: nil mission", ErrInvalidMission)
	}

	rep := Report{ID: uuid.New().String()[:8], Name: m.Name}
	log := s.logger.With(slog.String("run", rep.ID), slog.String("mission", m.Name))
	began := time.Now()

	g, err := m.Grid()
	if err != nil {
		log.Error("terrain rejected", slog.Any("error", err))
		return Report{}, fmt.Errorf("mission %q: %w", m.Name, err)
	}
	rep.Grid = g
	rep.Start, rep.Goal = m.Endpoints(g)

	log.Debug("planning",
		slog.Int("rows", g.Rows()),
		slog.Int("cols", g.Cols()),
		slog.String("start", rep.Start.String()),
		slog.String("goal", rep.Goal.String()),
	)

	res, err := astar.FindPath(g, rep.Start, rep.Goal, m.Options()...)
	if err != nil {
		log.Error("search rejected", slog.Any("error", err))
		return Report{}, fmt.Errorf("mission %q: %w", m.Name, err)
	}
	rep.Result = res
	rep.Duration = time.Since(began)

	if res.Found {
		log.Info("path found",
			slog.Int64("cost", res.Cost),
			slog.Int("steps", len(res.Path)-1),
			slog.Int("expanded", res.Expanded),
			slog.Duration("elapsed", rep.Duration),
		)
	} else {
		log.Warn("no path",
			slog.Int("expanded", res.Expanded),
			slog.Duration("elapsed", rep.Duration),
		)
	}
	return rep, nil
}

// SolveAll plans every mission concurrently and returns the reports in input
// order. The first failure cancels missions that have not started yet and is
// returned; reports of missions that did not complete are left zero.
func (s *Solver) SolveAll(ctx context.Context, ms []*Mission) ([]Report, error) {
	reports := make([]Report, len(ms))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, m := range ms {
		i, m := i, m
		g.Go(func() error {
			rep, err := s.Solve(gCtx, m)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}

	s.logger.Info("batch complete", slog.Int("missions", len(ms)))
	return reports, nil
}
