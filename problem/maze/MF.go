package maze

import (
	"github.com/samuelfneumann/gomdp/problem"
	"github.com/samuelfneumann/gomdp/problem/grid"
	"golang.org/x/exp/rand"
)

// MF is the model-free maze problem. The hamster may always try every
// move. The intended move happens with probability 0.7 and each other
// direction with probability ErrorProbability. A move into a wall or
// out of the maze leaves the hamster in place and costs BumpReward.
type MF struct {
	base
}

// NewMF returns the model-free problem of maze m
func NewMF(m *Maze) (*MF, error) {
	b, err := newBase(m)
	if err != nil {
		return nil, err
	}
	return &MF{base: b}, nil
}

// PossibleActions returns UP, RIGHT, DOWN, LEFT, followed by DIVE on
// holes
func (p *MF) PossibleActions(s grid.Position) []grid.Action {
	actions := make([]grid.Action, len(grid.Moves), len(grid.Moves)+1)
	copy(actions, grid.Moves)
	if p.isHole(s) {
		actions = append(actions, grid.Dive)
	}
	return actions
}

// TransitionReward penalizes the distance travelled like the model-based
// maze, except for a move that goes nowhere. Such a move travels no
// distance, so the distance penalty alone would make it free; it is
// charged BumpReward instead of 0. DIVE is always charged by distance.
func (p *MF) TransitionReward(from grid.Position, a grid.Action,
	to grid.Position) float64 {
	if from == to && a != grid.Dive {
		return BumpReward
	}
	return p.base.TransitionReward(from, a, to)
}

// ApplyAction samples the successor of taking action a in s
func (p *MF) ApplyAction(s grid.Position, a grid.Action,
	rng *rand.Rand) (grid.Position, error) {
	return p.transition(s, a).Sample(rng)
}

// transition returns the distribution of successors of taking action a
// in s. Every direction has its own slot; blocked directions keep the
// hamster in s.
func (p *MF) transition(s grid.Position,
	a grid.Action) problem.Transition[grid.Position] {
	if a == grid.Dive {
		return p.dive(s)
	}

	success := 1 - ErrorProbability*float64(len(slots)-1)
	t := problem.Transition[grid.Position]{
		States:        make([]grid.Position, len(slots)),
		Probabilities: make([]float64, len(slots)),
	}
	for i, dir := range slots {
		next := s.Move(dir)
		if p.Cell(next) == grid.Wall {
			next = s
		}
		t.States[i] = next

		t.Probabilities[i] = ErrorProbability
		if dir == a {
			t.Probabilities[i] = success
		}
	}
	return t
}
