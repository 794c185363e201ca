package experiment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/experiment/tracker"
	"github.com/samuelfneumann/gomdp/problem/grid"
)

// Comparison holds the outcomes of Policy Iteration and Value Iteration
// on the same problem
type Comparison struct {
	PolicyIteration *Outcome
	ValueIteration  *Outcome

	// Fraction of the states with an action in which both policies take
	// the same action
	Agreement     float64
	Disagreements []grid.Position

	MaxUtilityDiff float64
}

// Compare solves the configured problem with Policy Iteration and Value
// Iteration. The algorithm of cfg is ignored and its parameters are
// given to both solvers.
func Compare(ctx context.Context, cfg Config, logger *slog.Logger,
	trackers ...tracker.Tracker) (*Comparison, error) {
	var outcomes [2]*Outcome
	for i, t := range []agent.Type{agent.PolicyIteration, agent.ValueIteration} {
		cfg.Algorithm = t
		o, err := Run(ctx, cfg, logger, trackers...)
		if err != nil {
			return nil, fmt.Errorf("compare: %w", err)
		}
		outcomes[i] = o
	}

	pi, vi := outcomes[0], outcomes[1]
	states := decided(pi.States, pi.Policy)
	agree, differ := agreement(states, pi.Policy, vi.Policy)

	c := &Comparison{
		PolicyIteration: pi,
		ValueIteration:  vi,
		Agreement:       agree,
		Disagreements:   differ,
		MaxUtilityDiff:  pi.Utilities.MaxAbsDiff(vi.Utilities),
	}
	logger.Info("comparison finished", "agreement", c.Agreement,
		"max_utility_diff", c.MaxUtilityDiff)
	return c, nil
}

