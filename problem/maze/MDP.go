package maze

import (
	"github.com/samuelfneumann/gomdp/problem"
	"github.com/samuelfneumann/gomdp/problem/grid"
)

// MDP is the model-based maze problem. The hamster may only try to
// move into open neighbouring cells. A move succeeds with probability
// 1 - ErrorProbability * (n - 1), where n is the number of open
// neighbours, and otherwise ends in one of the other open neighbours.
type MDP struct {
	base
	states []grid.Position
}

// NewMDP returns the model-based problem of maze m
func NewMDP(m *Maze) (*MDP, error) {
	b, err := newBase(m)
	if err != nil {
		return nil, err
	}

	p := &MDP{base: b}
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			s := grid.Position{X: x, Y: y}
			if m.Cell(s) != grid.Wall {
				p.states = append(p.states, s)
			}
		}
	}
	return p, nil
}

// AllStates returns every open cell in row major order
func (p *MDP) AllStates() []grid.Position {
	return p.states
}

// PossibleActions returns DIVE on holes followed by the moves into open
// neighbouring cells, in the order UP, DOWN, LEFT, RIGHT
func (p *MDP) PossibleActions(s grid.Position) []grid.Action {
	var actions []grid.Action
	if p.isHole(s) {
		actions = append(actions, grid.Dive)
	}
	for _, a := range slots {
		if p.Cell(s.Move(a)) != grid.Wall {
			actions = append(actions, a)
		}
	}
	return actions
}

// TransitionModel returns the distribution of successors of taking
// action a in s
func (p *MDP) TransitionModel(s grid.Position,
	a grid.Action) problem.Transition[grid.Position] {
	if a == grid.Dive {
		return p.dive(s)
	}

	var t problem.Transition[grid.Position]
	for _, dir := range slots {
		if next := s.Move(dir); p.Cell(next) != grid.Wall {
			t.States = append(t.States, next)
		}
	}

	success := 1 - ErrorProbability*float64(len(t.States)-1)
	t.Probabilities = make([]float64, len(t.States))
	for i, next := range t.States {
		if next == s.Move(a) {
			t.Probabilities[i] = success
		} else {
			t.Probabilities[i] = ErrorProbability
		}
	}
	return t
}
