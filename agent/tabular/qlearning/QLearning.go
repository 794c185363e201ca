// Package qlearning implements tabular Q-Learning.
//
// The agent acts greedily with respect to its Q-table. A state that has
// never been updated is explored by choosing uniformly at random among
// its possible actions. Actions of an updated state that were never
// taken keep an implicit value of 0, which makes them attractive
// whenever every taken action has turned out to be costly.
package qlearning

import (
	"errors"
	"fmt"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/policy"
	"github.com/samuelfneumann/gomdp/problem"
	"golang.org/x/exp/rand"
)

// Result is the outcome of Q-Learning
type Result[S, A comparable] struct {
	Policy policy.Policy[S, A]
	QTable *policy.QTable[S, A]

	EpisodeLengths []int     // number of actions taken in each episode
	Returns        []float64 // undiscounted sum of rewards of each episode
}

// Solve runs c.Iterations episodes of Q-Learning on p with discount
// gamma and returns the greedy policy of the learned Q-table. All
// randomness is drawn from rng.
//
// Each episode starts in p.RandomState and runs until a terminal state
// is reached. Episodes are not truncated: p must guarantee that a
// terminal state is eventually reached from every state the agent can
// visit, otherwise Solve does not return.
//
// A transition into a terminal state s' updates Q(s, a) by
// alpha * Reward(s'), without a discounted continuation and without the
// transition reward. Every other transition performs the usual update
// toward Reward(s') + TransitionReward(s, a, s') + gamma * max Q(s', .).
func Solve[S, A comparable](p problem.Problem[S, A], gamma float64,
	c Config, rng *rand.Rand) (*Result[S, A], error) {
	m, ok := p.(problem.ModelFree[S, A])
	if !ok {
		return nil, &agent.ConfigurationError{
			Algorithm: agent.QLearning,
			Reason:    fmt.Sprintf("problem %T is not model-free", p),
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := agent.CheckDiscount(agent.QLearning, gamma); err != nil {
		return nil, err
	}

	q := policy.NewQTable[S, A]()
	result := &Result[S, A]{
		QTable:         q,
		EpisodeLengths: make([]int, 0, c.Iterations),
		Returns:        make([]float64, 0, c.Iterations),
	}

	for i := 0; i < c.Iterations; i++ {
		length, ret, err := episode(m, q, gamma, c.Alpha, rng)
		if err != nil {
			return nil, fmt.Errorf("solve: episode %d: %w", i, err)
		}
		result.EpisodeLengths = append(result.EpisodeLengths, length)
		result.Returns = append(result.Returns, ret)
	}

	result.Policy = q.Policy()
	return result, nil
}

// episode runs a single episode, updating q in place. It returns the
// number of actions taken and the sum of rewards received.
func episode[S, A comparable](m problem.ModelFree[S, A], q *policy.QTable[S, A],
	gamma, alpha float64, rng *rand.Rand) (int, float64, error) {
	var (
		steps int
		ret   float64
	)

	current := m.RandomState(rng)
	for !m.IsFinal(current) {
		actions := m.PossibleActions(current)
		if len(actions) == 0 {
			return steps, ret, problem.NoActions(current)
		}

		action, ok := q.BestActionAmong(current, actions)
		if !ok {
			action = actions[rng.Intn(len(actions))]
		}

		next, err := m.ApplyAction(current, action, rng)
		if err != nil {
			return steps, ret, degenerate(current, action, err)
		}
		reward := m.Reward(next) + m.TransitionReward(current, action, next)
		maxQ := q.MaxValue(next)

		value := q.Value(current, action)
		if !m.IsFinal(next) {
			value = (1-alpha)*value + alpha*(reward+gamma*maxQ)
		} else {
			reward = m.Reward(next)
			value += alpha * reward
		}
		q.SetValue(current, action, value)

		ret += reward
		steps++
		current = next
	}

	return steps, ret, nil
}

// degenerate reports a failed sample of the successor of (s, a) as a
// *problem.DegenerateModelError
func degenerate(s, a interface{}, err error) error {
	if errors.Is(err, problem.ErrDegenerateModel) {
		return err
	}
	return &problem.DegenerateModelError{State: s, Action: a,
		Reason: err.Error()}
}
