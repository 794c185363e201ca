// Package valueiteration implements the Value Iteration algorithm.
package valueiteration

import (
	"fmt"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/agent/dp"
	"github.com/samuelfneumann/gomdp/policy"
	"github.com/samuelfneumann/gomdp/problem"
)

// Result is the outcome of Value Iteration
type Result[S, A comparable] struct {
	Policy    policy.Policy[S, A]
	Utilities policy.Utilities[S]

	Sweeps int
	Deltas []float64 // largest utility change of each sweep
}

// Solve runs Value Iteration on p with discount gamma.
//
// Each sweep backs up every non-terminal state with the best expected
// utility over its possible actions and records the maximizing action.
// Sweeping stops once the largest change in utility is at most
// c.MaxDelta * (1 - gamma) / gamma. The policy recorded during the last
// sweep is returned.
func Solve[S, A comparable](p problem.Problem[S, A], gamma float64,
	c Config) (*Result[S, A], error) {
	m, err := dp.Model(p, agent.ValueIteration)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := agent.CheckDiscount(agent.ValueIteration, gamma); err != nil {
		return nil, err
	}

	states := m.AllStates()
	threshold := dp.Threshold(c.MaxDelta, gamma)
	u := dp.InitialUtilities(m, states)
	result := &Result[S, A]{}

	for {
		pol := policy.New[S, A]()
		backup := func(s S) (float64, error) {
			a, value, err := dp.Greedy(m, s, u, gamma)
			if err != nil {
				return 0, err
			}
			pol.SetAction(s, a)
			return value, nil
		}

		next, delta, err := dp.Sweep(states, u, m.IsFinal, backup)
		if err != nil {
			return nil, fmt.Errorf("solve: sweep %d: %w", result.Sweeps+1, err)
		}
		result.Sweeps++
		result.Deltas = append(result.Deltas, delta)
		u = next

		if delta <= threshold {
			result.Policy = pol
			result.Utilities = u
			return result, nil
		}
	}
}
