// Package problem outlines the interfaces that sequential decision
// problems implement in order to be solved, and the transition model
// that the solvers query.
//
// Every problem implements Problem. Problems whose model is visible to
// the solver additionally implement ModelBased, which is required by
// Policy Iteration and Value Iteration. Problems that can only be
// sampled implement ModelFree, which is required by Q-Learning. A
// problem may implement both.
package problem

import (
	"fmt"

	"github.com/samuelfneumann/gomdp/policy"
	"golang.org/x/exp/rand"
)

// Problem implements the parts of a decision problem that every solver
// needs
type Problem[S, A comparable] interface {
	// PossibleActions returns the actions available in a state, in a
	// fixed order. The order is used to break ties between actions of
	// equal value. Terminal states may return no actions.
	PossibleActions(s S) []A

	// IsFinal returns whether s is a terminal state. The utility of a
	// terminal state equals its reward.
	IsFinal(s S) bool

	// Reward returns the reward of occupying state s
	Reward(s S) float64

	// TransitionReward returns the reward attributable to moving from
	// one state to another with some action, on top of Reward
	TransitionReward(from S, a A, to S) float64

	// RandomState returns a non-terminal state drawn with rng
	RandomState(rng *rand.Rand) S
}

// ModelBased is a Problem whose state space and transition model are
// visible to the solver
type ModelBased[S, A comparable] interface {
	Problem[S, A]

	// AllStates returns the complete state space in an order which is
	// stable across calls
	AllStates() []S

	// TransitionModel returns the distribution of successor states of
	// taking action a in state s
	TransitionModel(s S, a A) Transition[S]
}

// ModelFree is a Problem that can only be sampled
type ModelFree[S, A comparable] interface {
	Problem[S, A]

	// ApplyAction samples the successor of taking action a in state s
	// using rng. An error is returned if the distribution of successors
	// is invalid.
	ApplyAction(s S, a A, rng *rand.Rand) (S, error)
}

// ExpectedUtility returns the one-step Bellman backup of taking action
// a in state s:
//
//	Reward(s) + gamma * Σ P(s' | s, a) * u[s']
//
// The transition model of (s, a) is walked in order. A
// *DegenerateModelError is returned if the transition model is invalid
// or if it reaches a state that is not in u.
func ExpectedUtility[S, A comparable](p ModelBased[S, A], s S, a A,
	u policy.Utilities[S], gamma float64) (float64, error) {
	t := p.TransitionModel(s, a)
	if err := t.Validate(); err != nil {
		return 0, &DegenerateModelError{State: s, Action: a, Reason: err.Error()}
	}

	var expected float64
	for i, next := range t.States {
		utility, ok := u[next]
		if !ok {
			return 0, &DegenerateModelError{
				State:  s,
				Action: a,
				Reason: fmt.Sprintf("successor %v is not in the state space",
					next),
			}
		}
		expected += t.Probabilities[i] * utility
	}

	return p.Reward(s) + gamma*expected, nil
}
