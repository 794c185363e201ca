// Package gridworld implements 2D gridworld problems.
//
// The agent moves UP, RIGHT, DOWN or LEFT between the cells of an r x c
// grid until it reaches one of the goal cells of its Goal. Moves that
// would leave the grid keep the agent in place. If the gridworld is
// slippery, a move goes sideways with probability slip, split evenly
// between the two perpendicular directions.
package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gomdp/problem"
	"github.com/samuelfneumann/gomdp/problem/grid"
	"golang.org/x/exp/rand"
)

// GridWorld is a gridworld problem. It is both model-based and
// model-free.
type GridWorld struct {
	*Goal
	start    grid.Position
	r, c     int
	slip     float64
	states   []grid.Position
	starting []grid.Position // non-goal states
}

// New creates a new gridworld with r rows and c columns, task t and
// starting position s. Moves slip sideways with probability slip.
func New(r, c int, t *Goal, s *SingleStart, slip float64) (*GridWorld,
	error) {
	if r < 1 || c < 1 {
		return nil, fmt.Errorf("new: gridworld must have at least one "+
			"row and column, got (%d, %d)", r, c)
	}
	if t.r != r || t.c != c {
		return nil, fmt.Errorf("new: goal bounds (%d, %d) do not match "+
			"gridworld bounds (%d, %d)", t.r, t.c, r, c)
	}
	if slip < 0 || slip >= 1 {
		return nil, fmt.Errorf("new: slip probability must be in [0, 1), "+
			"got %v", slip)
	}

	g := &GridWorld{Goal: t, start: s.Start(), r: r, c: c, slip: slip}
	for y := 0; y < r; y++ {
		for x := 0; x < c; x++ {
			p := grid.Position{X: x, Y: y}
			g.states = append(g.states, p)
			if !t.AtGoal(p) {
				g.starting = append(g.starting, p)
			}
		}
	}
	if len(g.starting) == 0 {
		return nil, fmt.Errorf("new: every cell is a goal")
	}

	return g, nil
}

// Dims returns the width and height of the gridworld
func (g *GridWorld) Dims() (int, int) {
	return g.c, g.r
}

// Kind returns the contents of the cell at p
func (g *GridWorld) Kind(p grid.Position) grid.CellKind {
	switch {
	case !p.In(g.c, g.r):
		return grid.Wall
	case g.AtGoal(p):
		return grid.Goal
	}
	return grid.Empty
}

// InitialState returns the starting position of the gridworld
func (g *GridWorld) InitialState() grid.Position {
	return g.start
}

// AllStates returns every cell in row major order
func (g *GridWorld) AllStates() []grid.Position {
	return g.states
}

// PossibleActions returns the four moves in non-goal cells
func (g *GridWorld) PossibleActions(s grid.Position) []grid.Action {
	if g.IsFinal(s) {
		return nil
	}
	return grid.Moves
}

// IsFinal returns whether s is a goal cell
func (g *GridWorld) IsFinal(s grid.Position) bool {
	return g.AtGoal(s)
}

// TransitionReward returns 0. Step costs are carried by the reward of
// non-goal cells.
func (g *GridWorld) TransitionReward(grid.Position, grid.Action,
	grid.Position) float64 {
	return 0
}

// RandomState returns a uniformly random non-goal cell
func (g *GridWorld) RandomState(rng *rand.Rand) grid.Position {
	return g.starting[rng.Intn(len(g.starting))]
}

// TransitionModel returns the distribution of successors of moving in
// direction a from s. Successors are listed once each, intended
// direction first.
func (g *GridWorld) TransitionModel(s grid.Position,
	a grid.Action) problem.Transition[grid.Position] {
	if g.slip == 0 {
		return problem.Deterministic(g.move(s, a))
	}

	var t problem.Transition[grid.Position]
	add := func(p grid.Position, prob float64) {
		for i, q := range t.States {
			if q == p {
				t.Probabilities[i] += prob
				return
			}
		}
		t.States = append(t.States, p)
		t.Probabilities = append(t.Probabilities, prob)
	}

	add(g.move(s, a), 1-g.slip)
	for _, side := range perpendicular(a) {
		add(g.move(s, side), g.slip/2)
	}
	return t
}

// ApplyAction samples the successor of moving in direction a from s
func (g *GridWorld) ApplyAction(s grid.Position, a grid.Action,
	rng *rand.Rand) (grid.Position, error) {
	return g.TransitionModel(s, a).Sample(rng)
}

// move returns the cell reached by moving deterministically from s in
// direction a
func (g *GridWorld) move(s grid.Position, a grid.Action) grid.Position {
	next := s.Move(a)
	if !next.In(g.c, g.r) {
		return s
	}
	return next
}

func perpendicular(a grid.Action) []grid.Action {
	switch a {
	case grid.Up, grid.Down:
		return []grid.Action{grid.Left, grid.Right}
	case grid.Left, grid.Right:
		return []grid.Action{grid.Up, grid.Down}
	}
	return nil
}

// String returns a description of the gridworld
func (g *GridWorld) String() string {
	str := "GridWorld | Start: %v  |   Goal: %v  |  Bounds: (%d, %d)"
	return fmt.Sprintf(str, g.start, g.Goal, g.r, g.c)
}
