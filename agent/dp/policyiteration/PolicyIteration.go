// Package policyiteration implements the Policy Iteration algorithm.
//
// Policy Iteration starts from a random policy and alternates between
// evaluating the current policy and improving it greedily with respect
// to the evaluated utilities, until improvement no longer changes the
// policy.
package policyiteration

import (
	"fmt"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/agent/dp"
	"github.com/samuelfneumann/gomdp/policy"
	"github.com/samuelfneumann/gomdp/problem"
	"golang.org/x/exp/rand"
)

// Result is the outcome of Policy Iteration
type Result[S, A comparable] struct {
	Policy    policy.Policy[S, A]
	Utilities policy.Utilities[S] // utilities of the final policy

	Iterations int       // number of improvement steps
	Sweeps     int       // evaluation sweeps over all improvement steps
	Deltas     []float64 // largest utility change of each sweep
}

// Solve runs Policy Iteration on p with discount gamma. The initial
// policy is drawn with rng.
//
// A *agent.ConfigurationError is returned if p is not model-based or if
// the configuration or discount is invalid. A
// *problem.DegenerateModelError is returned, wrapped, if the model of p
// is inconsistent.
func Solve[S, A comparable](p problem.Problem[S, A], gamma float64,
	c Config, rng *rand.Rand) (*Result[S, A], error) {
	m, err := dp.Model(p, agent.PolicyIteration)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := agent.CheckDiscount(agent.PolicyIteration, gamma); err != nil {
		return nil, err
	}

	states := m.AllStates()
	current, err := randomPolicy(m, states, rng)
	if err != nil {
		return nil, fmt.Errorf("solve: could not create initial policy: %w",
			err)
	}

	result := &Result[S, A]{}
	threshold := dp.Threshold(c.MaxDelta, gamma)
	for {
		u, deltas, err := evaluate(m, states, current, gamma, threshold)
		if err != nil {
			return nil, fmt.Errorf("solve: could not evaluate policy: %w", err)
		}
		result.Sweeps += len(deltas)
		result.Deltas = append(result.Deltas, deltas...)

		improved, err := improve(m, states, u, gamma)
		if err != nil {
			return nil, fmt.Errorf("solve: could not improve policy: %w", err)
		}
		result.Iterations++

		if improved.Equal(current) {
			result.Policy = current
			result.Utilities = u
			return result, nil
		}
		current = improved
	}
}

// randomPolicy assigns each non-terminal state an action drawn
// uniformly from its possible actions
func randomPolicy[S, A comparable](m problem.ModelBased[S, A], states []S,
	rng *rand.Rand) (policy.Policy[S, A], error) {
	pol := policy.New[S, A]()
	for _, s := range states {
		if m.IsFinal(s) {
			continue
		}

		actions := m.PossibleActions(s)
		if len(actions) == 0 {
			return nil, problem.NoActions(s)
		}
		pol.SetAction(s, actions[rng.Intn(len(actions))])
	}
	return pol, nil
}

// evaluate computes the utilities of following pol, starting from the
// initial utilities and sweeping until the largest change in utility
// drops to threshold. The largest change of every sweep is returned.
func evaluate[S, A comparable](m problem.ModelBased[S, A], states []S,
	pol policy.Policy[S, A], gamma, threshold float64) (policy.Utilities[S],
	[]float64, error) {
	u := dp.InitialUtilities(m, states)
	var deltas []float64

	for {
		backup := func(s S) (float64, error) {
			a, ok := pol.Action(s)
			if !ok {
				return 0, &problem.DegenerateModelError{
					State:  s,
					Reason: "non-terminal state has no action in the policy",
				}
			}
			return problem.ExpectedUtility(m, s, a, u, gamma)
		}

		next, delta, err := dp.Sweep(states, u, m.IsFinal, backup)
		if err != nil {
			return nil, nil, err
		}
		deltas = append(deltas, delta)
		u = next

		if delta <= threshold {
			return u, deltas, nil
		}
	}
}

// improve returns the policy that is greedy with respect to u
func improve[S, A comparable](m problem.ModelBased[S, A], states []S,
	u policy.Utilities[S], gamma float64) (policy.Policy[S, A], error) {
	pol := policy.New[S, A]()
	for _, s := range states {
		if m.IsFinal(s) {
			continue
		}

		a, _, err := dp.Greedy(m, s, u, gamma)
		if err != nil {
			return nil, err
		}
		pol.SetAction(s, a)
	}
	return pol, nil
}
