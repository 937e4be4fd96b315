package mission_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/skypath/astar"
	"github.com/katalvlaran/skypath/mission"
	"github.com/katalvlaran/skypath/terrain"
)

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSolve_Sample(t *testing.T) {
	var logs bytes.Buffer
	s := mission.NewSolver(mission.WithLogger(bufferLogger(&logs)))

	rep, err := s.Solve(context.Background(), mission.Sample())
	require.NoError(t, err)
	assert.Len(t, rep.ID, 8)
	assert.Equal(t, "drone-survey", rep.Name)
	assert.Equal(t, terrain.At(0, 0), rep.Start)
	assert.Equal(t, terrain.At(4, 6), rep.Goal)
	require.True(t, rep.Result.Found)
	assert.Equal(t, int64(40), rep.Result.Cost)
	assert.NoError(t, rep.Result.Path.Validate(rep.Grid))

	out := logs.String()
	assert.Contains(t, out, "msg=planning")
	assert.Contains(t, out, `msg="path found"`)
	assert.Contains(t, out, "cost=40")
	assert.Contains(t, out, "run="+rep.ID)
}

func TestSolve_NoPath(t *testing.T) {
	var logs bytes.Buffer
	s := mission.NewSolver(mission.WithLogger(bufferLogger(&logs)))

	m := &mission.Mission{Name: "walled", Layout: "S # G"}
	rep, err := s.Solve(context.Background(), m)
	require.NoError(t, err)
	assert.False(t, rep.Result.Found)
	assert.Empty(t, rep.Result.Path)
	assert.Contains(t, logs.String(), `msg="no path"`)
}

func TestSolve_Overrides(t *testing.T) {
	m := mission.Sample()
	m.Start = []int{4, 6}
	m.Goal = []int{0, 0}

	rep, err := mission.NewSolver().Solve(context.Background(), m)
	require.NoError(t, err)
	require.True(t, rep.Result.Found)
	assert.Equal(t, terrain.At(4, 6), rep.Result.Path[0])
	assert.Equal(t, terrain.At(0, 0), rep.Result.Path[len(rep.Result.Path)-1])
}

func TestSolve_Errors(t *testing.T) {
	s := mission.NewSolver()

	_, err := s.Solve(context.Background(), nil)
	require.ErrorIs(t, err, mission.ErrInvalidMission)

	_, err = s.Solve(context.Background(), &mission.Mission{Name: "bad", Layout: "S 1 1"})
	require.ErrorIs(t, err, terrain.ErrMissingGoal)
	assert.Contains(t, err.Error(), `mission "bad"`)

	far := mission.Sample()
	far.Start = []int{9, 9}
	_, err = s.Solve(context.Background(), far)
	require.ErrorIs(t, err, astar.ErrStartOutOfBounds)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Solve(ctx, mission.Sample())
	require.ErrorIs(t, err, context.Canceled)
}

func TestSolveAll_KeepsInputOrder(t *testing.T) {
	var ms []*mission.Mission
	for i := 0; i < 12; i++ {
		m := mission.Sample()
		m.Name = fmt.Sprintf("m%02d", i)
		m.Settled = i%2 == 0
		ms = append(ms, m)
	}

	var logs bytes.Buffer
	s := mission.NewSolver(mission.WithConcurrency(3), mission.WithLogger(bufferLogger(&logs)))
	reps, err := s.SolveAll(context.Background(), ms)
	require.NoError(t, err)
	require.Len(t, reps, len(ms))
	for i, rep := range reps {
		assert.Equal(t, ms[i].Name, rep.Name)
		assert.Equal(t, int64(40), rep.Result.Cost)
	}
	assert.Equal(t, reps[0].Result.Path, reps[1].Result.Path)
	assert.Contains(t, logs.String(), `msg="batch complete" missions=12`)
}

func TestSolveAll_FirstError(t *testing.T) {
	ms := []*mission.Mission{
		mission.Sample(),
		{Name: "broken", Layout: "S 1\n1"},
		mission.Sample(),
	}
	_, err := mission.NewSolver(mission.WithConcurrency(1)).SolveAll(context.Background(), ms)
	require.ErrorIs(t, err, terrain.ErrNonRectangular)
	assert.Contains(t, err.Error(), "broken")
}

func TestSolveAll_Empty(t *testing.T) {
	reps, err := mission.NewSolver().SolveAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, reps)
}

func TestNewSolver_IgnoresBadOptions(t *testing.T) {
	s := mission.NewSolver(mission.WithLogger(nil), mission.WithConcurrency(0))
	rep, err := s.Solve(context.Background(), mission.Sample())
	require.NoError(t, err)
	assert.True(t, rep.Result.Found)
}
