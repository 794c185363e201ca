package problem

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"
)

// ProbabilityTolerance is the absolute tolerance within which the
// probabilities of a Transition must sum to 1
const ProbabilityTolerance float64 = 1e-9

// Transition is the distribution over successor states of taking some
// action in some state. States[i] is reached with probability
// Probabilities[i].
type Transition[S comparable] struct {
	States        []S
	Probabilities []float64
}

// NewTransition returns a new Transition. NewTransition panics if the
// number of states and probabilities differ.
func NewTransition[S comparable](states []S, probabilities []float64) Transition[S] {
	if len(states) != len(probabilities) {
		panic(fmt.Sprintf("newTransition: %d states but %d probabilities",
			len(states), len(probabilities)))
	}
	return Transition[S]{states, probabilities}
}

// Deterministic returns a Transition which reaches s with probability 1
func Deterministic[S comparable](s S) Transition[S] {
	return Transition[S]{[]S{s}, []float64{1.0}}
}

// Len returns the number of successor states
func (t Transition[S]) Len() int {
	return len(t.States)
}

// Validate returns an error describing why the Transition is not a
// valid probability distribution, or nil if it is
func (t Transition[S]) Validate() error {
	if len(t.States) == 0 {
		return fmt.Errorf("transition has no successor states")
	}
	if len(t.States) != len(t.Probabilities) {
		return fmt.Errorf("transition has %d states but %d probabilities",
			len(t.States), len(t.Probabilities))
	}

	for i, p := range t.Probabilities {
		if p < 0 || math.IsNaN(p) {
			return fmt.Errorf("invalid probability %v for successor %v", p,
				t.States[i])
		}
	}

	if sum := floats.Sum(t.Probabilities); !scalar.EqualWithinAbs(sum, 1.0,
		ProbabilityTolerance) {
		return fmt.Errorf("probabilities sum to %v, not 1", sum)
	}
	return nil
}

// Sample draws a successor state from the Transition using rng. An
// error is returned, and nothing is drawn, if the Transition is not a
// valid distribution.
func (t Transition[S]) Sample(rng *rand.Rand) (S, error) {
	if err := t.Validate(); err != nil {
		var zero S
		return zero, err
	}
	if len(t.States) == 1 {
		return t.States[0], nil
	}

	dist := distuv.NewCategorical(t.Probabilities, rng)
	return t.States[int(dist.Rand())], nil
}
