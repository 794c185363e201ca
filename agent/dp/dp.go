// Package dp implements the pieces shared by the dynamic programming
// solvers: utility initialization, synchronous sweeps over the state
// space, the greedy one-step lookahead, and the stopping threshold.
package dp

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/policy"
	"github.com/samuelfneumann/gomdp/problem"
)

// Model returns p as a problem.ModelBased. If p does not expose its
// model, a *agent.ConfigurationError for solver t is returned.
func Model[S, A comparable](p problem.Problem[S, A],
	t agent.Type) (problem.ModelBased[S, A], error) {
	m, ok := p.(problem.ModelBased[S, A])
	if !ok {
		return nil, &agent.ConfigurationError{
			Algorithm: t,
			Reason:    fmt.Sprintf("problem %T is not model-based", p),
		}
	}
	return m, nil
}

// Threshold returns the largest change in utility between two sweeps
// at which a dynamic programming solver stops iterating
func Threshold(maxDelta, gamma float64) float64 {
	return maxDelta * (1 - gamma) / gamma
}

// InitialUtilities returns the utilities that every evaluation starts
// from: terminal states have a utility equal to their reward and all
// other states a utility of 0.
func InitialUtilities[S, A comparable](p problem.ModelBased[S, A],
	states []S) policy.Utilities[S] {
	u := policy.NewUtilities[S](len(states))
	for _, s := range states {
		if p.IsFinal(s) {
			u[s] = p.Reward(s)
		} else {
			u[s] = 0
		}
	}
	return u
}

// Sweep performs one synchronous sweep over states. A fresh table is
// filled with backup(s) for each non-terminal state s, and terminal
// utilities are copied unchanged from u. The backup must only read u,
// never the table being filled, so the result does not depend on the
// order of states.
//
// Sweep returns the new table together with the largest absolute change
// in utility of any state.
func Sweep[S comparable](states []S, u policy.Utilities[S],
	final func(S) bool, backup func(S) (float64, error)) (policy.Utilities[S],
	float64, error) {
	next := policy.NewUtilities[S](len(u))
	var delta float64

	for _, s := range states {
		if final(s) {
			next[s] = u[s]
			continue
		}

		value, err := backup(s)
		if err != nil {
			return nil, 0, err
		}
		next[s] = value
		delta = math.Max(delta, math.Abs(value-u[s]))
	}

	return next, delta, nil
}

// Greedy returns the action with the largest expected utility in state
// s together with that utility. Actions are considered in the order
// returned by PossibleActions and ties keep the first action.
func Greedy[S, A comparable](p problem.ModelBased[S, A], s S,
	u policy.Utilities[S], gamma float64) (A, float64, error) {
	var best A
	actions := p.PossibleActions(s)
	if len(actions) == 0 {
		return best, 0, problem.NoActions(s)
	}

	bestValue := math.Inf(-1)
	for i, a := range actions {
		value, err := problem.ExpectedUtility(p, s, a, u, gamma)
		if err != nil {
			return best, 0, err
		}
		if i == 0 || value > bestValue {
			best, bestValue = a, value
		}
	}

	return best, bestValue, nil
}
