// Package corridor implements a one dimensional corridor problem.
//
// The agent moves LEFT or RIGHT along a single row of cells. The right
// most cell is terminal and rewards GoalReward. Moving against the left
// wall leaves the agent in place. Each move may optionally slip, leaving
// the agent where it was, and may carry a constant step cost through
// TransitionReward.
package corridor

import (
	"fmt"

	"github.com/samuelfneumann/gomdp/problem"
	"github.com/samuelfneumann/gomdp/problem/grid"
	"golang.org/x/exp/rand"
)

// GoalReward is the reward of the terminal cell
const GoalReward = 100.0

var actions = []grid.Action{grid.Left, grid.Right}

// Corridor is a corridor problem. It is both model-based and
// model-free.
type Corridor struct {
	length   int
	stepCost float64
	slip     float64
	states   []grid.Position
}

// New returns a new corridor of length cells. Every transition costs
// stepCost, and every move fails with probability slip.
func New(length int, stepCost, slip float64) (*Corridor, error) {
	if length < 2 {
		return nil, fmt.Errorf("new: corridor must have at least 2 cells, "+
			"got %d", length)
	}
	if slip < 0 || slip >= 1 {
		return nil, fmt.Errorf("new: slip probability must be in [0, 1), "+
			"got %v", slip)
	}

	states := make([]grid.Position, length)
	for x := range states {
		states[x] = grid.Position{X: x}
	}

	return &Corridor{
		length:   length,
		stepCost: stepCost,
		slip:     slip,
		states:   states,
	}, nil
}

// Dims returns the width and height of the corridor
func (c *Corridor) Dims() (int, int) {
	return c.length, 1
}

// Kind returns the contents of the cell at p
func (c *Corridor) Kind(p grid.Position) grid.CellKind {
	if !p.In(c.length, 1) {
		return grid.Wall
	}
	if c.IsFinal(p) {
		return grid.Goal
	}
	return grid.Empty
}

// InitialState returns the left most cell
func (c *Corridor) InitialState() grid.Position {
	return grid.Position{}
}

// AllStates returns every cell from left to right
func (c *Corridor) AllStates() []grid.Position {
	return c.states
}

// PossibleActions returns LEFT and RIGHT in non-terminal cells
func (c *Corridor) PossibleActions(s grid.Position) []grid.Action {
	if c.IsFinal(s) {
		return nil
	}
	return actions
}

// IsFinal returns whether s is the right most cell
func (c *Corridor) IsFinal(s grid.Position) bool {
	return s.X == c.length-1
}

// Reward returns GoalReward for the terminal cell and 0 otherwise
func (c *Corridor) Reward(s grid.Position) float64 {
	if c.IsFinal(s) {
		return GoalReward
	}
	return 0
}

// TransitionReward returns the negative step cost
func (c *Corridor) TransitionReward(grid.Position, grid.Action,
	grid.Position) float64 {
	return -c.stepCost
}

// RandomState returns a uniformly random non-terminal cell
func (c *Corridor) RandomState(rng *rand.Rand) grid.Position {
	return c.states[rng.Intn(c.length-1)]
}

// TransitionModel returns the distribution of successors of moving in
// direction a from s
func (c *Corridor) TransitionModel(s grid.Position,
	a grid.Action) problem.Transition[grid.Position] {
	target := s.Move(a)
	if !target.In(c.length, 1) {
		target = s
	}

	if target == s || c.slip == 0 {
		return problem.Deterministic(target)
	}
	return problem.NewTransition(
		[]grid.Position{target, s},
		[]float64{1 - c.slip, c.slip},
	)
}

// ApplyAction samples the successor of moving in direction a from s
func (c *Corridor) ApplyAction(s grid.Position, a grid.Action,
	rng *rand.Rand) (grid.Position, error) {
	return c.TransitionModel(s, a).Sample(rng)
}

// String returns a description of the corridor
func (c *Corridor) String() string {
	return fmt.Sprintf("Corridor | Length: %d  |  Step cost: %v  |  "+
		"Slip: %v", c.length, c.stepCost, c.slip)
}
