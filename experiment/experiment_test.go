package experiment

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/agent/tabular/qlearning"
	"github.com/samuelfneumann/gomdp/experiment/trackers"
	"github.com/samuelfneumann/gomdp/logging"
	"github.com/samuelfneumann/gomdp/policy"
	"github.com/samuelfneumann/gomdp/problem/grid"
	"github.com/samuelfneumann/gomdp/problem/problemconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pos = grid.Position

func corridorConfig(t agent.Type, length int, stepCost, slip float64) Config {
	return Config{
		Algorithm: t,
		Problem: problemconfig.Config{
			Problem:  problemconfig.Corridor,
			Size:     length,
			StepCost: stepCost,
			Slip:     slip,
		},
		Gamma: 0.9,
		Seed:  42,
	}
}

func bufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf,
		&slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestRunValueIteration(t *testing.T) {
	var logs bytes.Buffer
	cfg := corridorConfig(agent.ValueIteration, 3, 0, 0)
	cfg.Params = []string{"abc"}

	deltas := trackers.NewConvergence(filepath.Join(t.TempDir(), "d.bin"))
	o, err := Run(context.Background(), cfg, bufferLogger(&logs), deltas)
	require.NoError(t, err)

	want := policy.Policy[pos, grid.Action]{
		{X: 0}: grid.Right,
		{X: 1}: grid.Right,
	}
	assert.True(t, want.Equal(o.Policy), o.Policy.String())
	assert.InDelta(t, 81.0, o.Utilities[pos{X: 0}], 0.01)
	assert.Equal(t, 3, o.Sweeps)
	assert.Equal(t, []float64{90, 81, 0}, o.Deltas)
	assert.Equal(t, []float64{90, 81, 0}, deltas.Data())
	assert.Nil(t, o.QTable)
	assert.NotEmpty(t, o.ID)

	out := logs.String()
	assert.Contains(t, out, "using default parameter")
	assert.Contains(t, out, "run finished")
	assert.Contains(t, out, "run_id="+o.ID)

	var table bytes.Buffer
	require.NoError(t, o.Report(&table))
	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	require.Len(t, lines, 2+len(o.States))
	assert.Equal(t, []string{"(0,", "0)", "RIGHT", "81.0000"},
		strings.Fields(lines[2]))
}

func TestRunPolicyIteration(t *testing.T) {
	o, err := Run(context.Background(),
		corridorConfig(agent.PolicyIteration, 4, 0, 0.2), logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, agent.PolicyIteration, o.Algorithm)
	assert.Positive(t, o.Iterations)
	assert.Len(t, o.Deltas, o.Sweeps)
	for x := 0; x < 3; x++ {
		a, ok := o.Policy.Action(pos{X: x})
		require.True(t, ok)
		assert.Equal(t, grid.Right, a)
	}
}

func TestRunQLearning(t *testing.T) {
	returns := trackers.NewReturn(filepath.Join(t.TempDir(), "r.bin"))
	lengths := trackers.NewEpisodeLength(filepath.Join(t.TempDir(), "l.bin"))

	o, err := Run(context.Background(),
		corridorConfig(agent.QLearning, 5, 1, 0), logging.Discard(),
		returns, lengths)
	require.NoError(t, err)

	assert.NotNil(t, o.QTable)
	assert.Len(t, o.Returns, qlearning.DefaultIterations)
	assert.Equal(t, o.Returns, returns.Data())
	assert.Len(t, lengths.Data(), qlearning.DefaultIterations)
	for x := 0; x < 4; x++ {
		a, ok := o.Policy.Action(pos{X: x})
		require.True(t, ok)
		assert.Equal(t, grid.Right, a)
	}

	var table bytes.Buffer
	require.NoError(t, o.Report(&table))
	assert.Contains(t, table.String(), "ALL VALUES")
}

func TestRunMaze(t *testing.T) {
	cfg := Config{
		Algorithm: agent.ValueIteration,
		Problem:   problemconfig.Default(),
		Gamma:     0.9,
	}
	cfg.Problem.Size = 7
	cfg.Problem.Seed = 1

	o, err := Run(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.NotEmpty(t, o.States)
	assert.NotEmpty(t, o.Policy)
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()
	logger := logging.Discard()

	_, err := Run(ctx, corridorConfig("Sarsa", 3, 0, 0), logger)
	assert.Error(t, err)

	// Model-free corridors need a step cost
	_, err = Run(ctx, corridorConfig(agent.QLearning, 3, 0, 0), logger)
	assert.Error(t, err)

	cfg := corridorConfig(agent.ValueIteration, 3, 0, 0)
	cfg.Gamma = 1
	_, err = Run(ctx, cfg, logger)
	assert.ErrorIs(t, err, agent.ErrConfiguration)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Run(cancelled, corridorConfig(agent.ValueIteration, 3, 0, 0),
		logger)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompare(t *testing.T) {
	cfg := corridorConfig("", 6, 0, 0.2)
	cfg.Params = []string{"1e-6"}

	c, err := Compare(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, agent.PolicyIteration, c.PolicyIteration.Algorithm)
	assert.Equal(t, agent.ValueIteration, c.ValueIteration.Algorithm)
	assert.Equal(t, 1.0, c.Agreement)
	assert.Empty(t, c.Disagreements)
	assert.Less(t, c.MaxUtilityDiff, 1e-3)
}

func TestSweep(t *testing.T) {
	var progress bytes.Buffer
	list := qlearning.ConfigList{
		Alpha:      []float64{qlearning.DefaultAlpha},
		Iterations: []int{qlearning.DefaultIterations},
	}
	returns := trackers.NewReturn(filepath.Join(t.TempDir(), "r.bin"))

	results, err := Sweep(context.Background(),
		corridorConfig(agent.QLearning, 5, 1, 0), list, 3, logging.Discard(),
		&progress, returns)
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	assert.Equal(t, []uint64{42, 43, 44}, r.Seeds)
	assert.Equal(t, []float64{1, 1, 1}, r.Agreement)
	assert.Equal(t, 1.0, r.MeanAgreement)
	assert.Equal(t, 1.0, r.MinAgreement)
	assert.Len(t, r.EpisodeReturns, qlearning.DefaultIterations)
	assert.Len(t, returns.Data(), 3*qlearning.DefaultIterations)
	assert.Contains(t, progress.String(), "100.00%")
}

func TestSweepErrors(t *testing.T) {
	ctx := context.Background()
	cfg := corridorConfig(agent.QLearning, 5, 1, 0)
	list := qlearning.ConfigList{Alpha: []float64{0.1}, Iterations: []int{10}}

	_, err := Sweep(ctx, cfg, qlearning.ConfigList{}, 1, logging.Discard(), nil)
	assert.Error(t, err)

	_, err = Sweep(ctx, cfg, list, 0, logging.Discard(), nil)
	assert.Error(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = Sweep(cancelled, cfg, list, 1, logging.Discard(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAgreement(t *testing.T) {
	states := []string{"a", "b", "c", "d"}
	p := policy.Policy[string, int]{"a": 1, "b": 2, "c": 3}
	q := policy.Policy[string, int]{"a": 1, "b": 0, "d": 4}

	agree, differ := agreement(states, p, q)
	assert.Equal(t, 0.25, agree)
	assert.Equal(t, []string{"b", "c", "d"}, differ)

	agree, differ = agreement(nil, p, q)
	assert.Equal(t, 1.0, agree)
	assert.Empty(t, differ)

	assert.Equal(t, []string{"a", "b", "c"}, decided(states, p))
}
