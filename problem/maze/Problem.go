package maze

import (
	"fmt"

	"github.com/samuelfneumann/gomdp/problem"
	"github.com/samuelfneumann/gomdp/problem/grid"
	"golang.org/x/exp/rand"
)

// Probabilities of a move
const (
	// ErrorProbability is the probability of ending up in each
	// neighbouring cell other than the intended one
	ErrorProbability = 0.1

	// BumpReward is the transition reward of a model-free move that
	// leaves the hamster in place
	BumpReward = -1.0
)

// base implements the parts of the maze problem shared by both flavours
type base struct {
	*Maze
	starts []grid.Position
}

func newBase(m *Maze) (base, error) {
	b := base{Maze: m}
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			p := grid.Position{X: x, Y: y}
			if m.Cell(p) != grid.Wall && !b.IsFinal(p) && b.canStart(p) {
				b.starts = append(b.starts, p)
			}
		}
	}

	if len(b.starts) == 0 {
		return b, fmt.Errorf("maze has no cell to start an episode from")
	}
	return b, nil
}

// canStart returns whether an episode may start at p: p needs an empty
// neighbour. The neighbour below is compared against the far edge the
// wrong way round and is therefore never considered.
func (b base) canStart(p grid.Position) bool {
	switch {
	case p.X > 0 && b.Cell(p.Move(grid.Left)) == grid.Empty:
		return true
	case p.X < b.size-1 && b.Cell(p.Move(grid.Right)) == grid.Empty:
		return true
	case p.Y > 0 && b.Cell(p.Move(grid.Up)) == grid.Empty:
		return true
	case p.Y > b.size-1 && b.Cell(p.Move(grid.Down)) == grid.Empty:
		return true
	}
	return false
}

// InitialState returns the position of the hamster
func (b base) InitialState() grid.Position {
	return b.hamster
}

// IsFinal returns whether s holds the cheese or a cat
func (b base) IsFinal(s grid.Position) bool {
	return s == b.cheese || b.catAt[s]
}

// Reward returns CheeseReward at the cheese, CatReward at a cat and 0
// elsewhere
func (b base) Reward(s grid.Position) float64 {
	switch {
	case s == b.cheese:
		return CheeseReward
	case b.catAt[s]:
		return CatReward
	}
	return 0
}

// TransitionReward penalizes the distance travelled. The penalty is
// doubled when leaving water and halved when diving.
func (b base) TransitionReward(from grid.Position, a grid.Action,
	to grid.Position) float64 {
	reward := -from.Distance(to)
	if b.Cell(from) == grid.Water {
		reward *= 2
	}
	if a == grid.Dive {
		reward *= 0.5
	}
	return reward
}

// RandomState returns a uniformly random open, non-terminal cell from
// which the hamster can move
func (b base) RandomState(rng *rand.Rand) grid.Position {
	return b.starts[rng.Intn(len(b.starts))]
}

// dive returns the transition of diving into the hole at s
func (b base) dive(s grid.Position) problem.Transition[grid.Position] {
	var t problem.Transition[grid.Position]
	for _, h := range b.holes {
		if h != s {
			t.States = append(t.States, h)
		}
	}

	t.Probabilities = make([]float64, len(t.States))
	for i := range t.Probabilities {
		t.Probabilities[i] = 1 / float64(len(t.States))
	}
	return t
}

// isHole returns whether s is a hole
func (b base) isHole(s grid.Position) bool {
	return b.Cell(s) == grid.Hole
}

// slots are the directions in the order in which the transition models
// list their successors
var slots = []grid.Action{grid.Up, grid.Down, grid.Left, grid.Right}
