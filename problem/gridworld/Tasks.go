package gridworld

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gomdp/problem/grid"
	"gonum.org/v1/gonum/floats"
)

// Goal represents the task of reaching goal cells in a GridWorld
type Goal struct {
	goals          []grid.Position
	at             map[grid.Position]bool
	r, c           int // total rows and columns in the gridworld
	timeStepReward float64
	goalReward     float64
}

// NewGoal creates and returns a new goal at positions (x[i], y[i]),
// given that the gridworld has r rows and c columns. Every non-goal
// cell has reward tr and every goal cell reward gr.
func NewGoal(x, y []int, r, c int, tr, gr float64) (*Goal, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("newGoal: x length (%d) != y length (%d)",
			len(x), len(y))
	}
	if len(x) == 0 {
		return nil, fmt.Errorf("newGoal: at least one goal is required")
	}

	g := &Goal{
		at:             make(map[grid.Position]bool, len(x)),
		r:              r,
		c:              c,
		timeStepReward: tr,
		goalReward:     gr,
	}
	for i := range x {
		// Ensure that the goal is within the proper bounds
		p := grid.Position{X: x[i], Y: y[i]}
		if !p.In(c, r) {
			return nil, fmt.Errorf("newGoal: goal %v outside of %d rows "+
				"and %d cols", p, r, c)
		}
		if !g.at[p] {
			g.goals = append(g.goals, p)
			g.at[p] = true
		}
	}

	return g, nil
}

// AtGoal returns whether p is a goal cell
func (g *Goal) AtGoal(p grid.Position) bool {
	return g.at[p]
}

// Reward returns the reward of occupying cell p
func (g *Goal) Reward(p grid.Position) float64 {
	if g.AtGoal(p) {
		return g.goalReward
	}
	return g.timeStepReward
}

// String returns the Goal as a string
func (g *Goal) String() string {
	goals := make([]string, len(g.goals))
	for i, p := range g.goals {
		goals[i] = p.String()
	}
	return strings.Join(goals, " ")
}

// Min returns the minimum reward attainable in the Task
func (g *Goal) Min() float64 {
	rewards := []float64{g.timeStepReward, g.goalReward}
	return floats.Min(rewards)
}

// Max returns the maximum reward attainable in the Task
func (g *Goal) Max() float64 {
	rewards := []float64{g.timeStepReward, g.goalReward}
	return floats.Max(rewards)
}
