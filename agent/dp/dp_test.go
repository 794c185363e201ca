package dp

import (
	"testing"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/policy"
	"github.com/samuelfneumann/gomdp/problem"
	"github.com/samuelfneumann/gomdp/problem/corridor"
	"github.com/samuelfneumann/gomdp/problem/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

type pos = grid.Position

// sampleOnly hides the model of a corridor
type sampleOnly struct {
	problem.ModelFree[pos, grid.Action]
}

func TestModel(t *testing.T) {
	c, err := corridor.New(3, 0, 0)
	require.NoError(t, err)

	_, err = Model[pos, grid.Action](c, agent.ValueIteration)
	assert.NoError(t, err)

	_, err = Model[pos, grid.Action](sampleOnly{c}, agent.ValueIteration)
	assert.ErrorIs(t, err, agent.ErrConfiguration)
}

func TestThreshold(t *testing.T) {
	assert.InDelta(t, 0.01*0.1/0.9, Threshold(0.01, 0.9), 1e-15)
	assert.Greater(t, Threshold(0.01, 0.5), Threshold(0.01, 0.9))
}

func TestInitialUtilities(t *testing.T) {
	c, err := corridor.New(3, 0, 0)
	require.NoError(t, err)

	u := InitialUtilities[pos, grid.Action](c, c.AllStates())
	assert.Equal(t, policy.Utilities[pos]{{X: 0}: 0, {X: 1}: 0,
		{X: 2}: corridor.GoalReward}, u)
}

func TestGreedyTieBreak(t *testing.T) {
	c, err := corridor.New(3, 0, 0)
	require.NoError(t, err)
	u := InitialUtilities[pos, grid.Action](c, c.AllStates())

	// Both actions from the left most cell are worth 0, so the first
	// action in enumeration order is kept
	a, v, err := Greedy[pos, grid.Action](c, pos{X: 0}, u, 0.9)
	require.NoError(t, err)
	assert.Equal(t, grid.Left, a)
	assert.Equal(t, 0.0, v)

	a, v, err = Greedy[pos, grid.Action](c, pos{X: 1}, u, 0.9)
	require.NoError(t, err)
	assert.Equal(t, grid.Right, a)
	assert.InDelta(t, 90.0, v, 1e-9)
}

func TestSweepIgnoresVisitationOrder(t *testing.T) {
	c, err := corridor.New(6, 0, 0.3)
	require.NoError(t, err)
	states := c.AllStates()
	gamma := 0.9

	u := InitialUtilities[pos, grid.Action](c, states)
	backup := func(s pos) (float64, error) {
		_, v, err := Greedy[pos, grid.Action](c, s, u, gamma)
		return v, err
	}

	want, wantDelta, err := Sweep(states, u, c.IsFinal, backup)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 10; i++ {
		shuffled := append([]pos(nil), states...)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		got, delta, err := Sweep(shuffled, u, c.IsFinal, backup)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, wantDelta, delta)
	}

	// The sweep must not have written into its input
	assert.Equal(t, InitialUtilities[pos, grid.Action](c, states), u)
}

func TestSweepKeepsTerminalUtilities(t *testing.T) {
	c, err := corridor.New(3, 0, 0)
	require.NoError(t, err)

	u := InitialUtilities[pos, grid.Action](c, c.AllStates())
	next, _, err := Sweep(c.AllStates(), u, c.IsFinal,
		func(pos) (float64, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, corridor.GoalReward, next[pos{X: 2}])
	assert.Equal(t, 7.0, next[pos{X: 0}])
}

type noActions struct {
	*corridor.Corridor
}

func (noActions) PossibleActions(pos) []grid.Action { return nil }

func TestGreedyWithoutActions(t *testing.T) {
	c, err := corridor.New(3, 0, 0)
	require.NoError(t, err)
	u := InitialUtilities[pos, grid.Action](c, c.AllStates())

	_, _, err = Greedy[pos, grid.Action](noActions{c}, pos{X: 0}, u, 0.9)
	assert.ErrorIs(t, err, problem.ErrDegenerateModel)
}
