package gridworld

import (
	"testing"

	"github.com/samuelfneumann/gomdp/agent/dp/valueiteration"
	"github.com/samuelfneumann/gomdp/problem"
	"github.com/samuelfneumann/gomdp/problem/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

var (
	_ problem.ModelBased[grid.Position, grid.Action] = (*GridWorld)(nil)
	_ problem.ModelFree[grid.Position, grid.Action]  = (*GridWorld)(nil)
	_ grid.Problem                                   = (*GridWorld)(nil)
)

func newGridWorld(t *testing.T, slip float64) *GridWorld {
	goal, err := NewGoal([]int{3}, []int{0}, 3, 4, -1, 10)
	require.NoError(t, err)
	start, err := NewSingleStart(0, 2, 3, 4)
	require.NoError(t, err)

	g, err := New(3, 4, goal, start, slip)
	require.NoError(t, err)
	return g
}

func TestNewValidates(t *testing.T) {
	_, err := NewGoal([]int{1, 2}, []int{0}, 3, 3, -1, 1)
	assert.Error(t, err)

	_, err = NewGoal([]int{3}, []int{0}, 3, 3, -1, 1)
	assert.Error(t, err)

	_, err = NewSingleStart(0, 3, 3, 3)
	assert.Error(t, err)

	goal, err := NewGoal([]int{0}, []int{0}, 1, 1, -1, 1)
	require.NoError(t, err)
	start, err := NewSingleStart(0, 0, 1, 1)
	require.NoError(t, err)
	_, err = New(1, 1, goal, start, 0)
	assert.Error(t, err, "every cell is a goal")
}

func TestRewards(t *testing.T) {
	g := newGridWorld(t, 0)

	assert.Equal(t, 10.0, g.Reward(grid.Position{X: 3, Y: 0}))
	assert.Equal(t, -1.0, g.Reward(grid.Position{X: 0, Y: 0}))
	assert.Equal(t, -1.0, g.Min())
	assert.Equal(t, 10.0, g.Max())
	assert.True(t, g.IsFinal(grid.Position{X: 3, Y: 0}))
	assert.Equal(t, grid.Position{X: 0, Y: 2}, g.InitialState())
	assert.Len(t, g.AllStates(), 12)
}

func TestTransitionModel(t *testing.T) {
	g := newGridWorld(t, 0.2)
	corner := grid.Position{X: 0, Y: 0}

	// Moving up from a top corner stays in place with probability 0.9
	// and slips right with probability 0.1
	tr := g.TransitionModel(corner, grid.Up)
	require.NoError(t, tr.Validate())
	assert.Equal(t, []grid.Position{corner, {X: 1, Y: 0}}, tr.States)
	assert.InDeltaSlice(t, []float64{0.9, 0.1}, tr.Probabilities, 1e-12)

	tr = g.TransitionModel(grid.Position{X: 1, Y: 1}, grid.Right)
	require.NoError(t, tr.Validate())
	assert.Equal(t, 3, tr.Len())

	for _, s := range g.AllStates() {
		for _, a := range g.PossibleActions(s) {
			assert.NoError(t, g.TransitionModel(s, a).Validate())
		}
	}
}

func TestValueIterationReachesGoal(t *testing.T) {
	g := newGridWorld(t, 0)

	r, err := valueiteration.Solve[grid.Position, grid.Action](g, 0.9,
		valueiteration.Default())
	require.NoError(t, err)

	for _, s := range g.AllStates() {
		current := s
		for steps := 0; !g.IsFinal(current); steps++ {
			require.Less(t, steps, 6, "policy loops from %v", s)
			a, ok := r.Policy.Action(current)
			require.True(t, ok)
			current = g.TransitionModel(current, a).States[0]
		}
	}
}

func TestRandomState(t *testing.T) {
	g := newGridWorld(t, 0.1)
	rng := rand.New(rand.NewSource(9))

	seen := make(map[grid.Position]bool)
	for i := 0; i < 2000; i++ {
		s := g.RandomState(rng)
		assert.False(t, g.IsFinal(s))
		seen[s] = true
	}
	assert.Len(t, seen, 11)
}
