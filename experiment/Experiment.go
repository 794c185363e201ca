// Package experiment implements functionality for running experiments:
// a problem is created from its configuration, solved, and the data
// produced by the solver is collected for reporting.
//
// Run performs a single run of one solver. Compare solves the same
// problem with Policy Iteration and Value Iteration, and Sweep runs
// Q-Learning over a list of configurations and seeds, measuring how
// often the learned policy agrees with Value Iteration.
//
// Every run is identified by a random run ID which is attached to its
// log records and to the data given to Trackers.
package experiment

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/agent/dp/policyiteration"
	"github.com/samuelfneumann/gomdp/agent/dp/valueiteration"
	"github.com/samuelfneumann/gomdp/agent/tabular/qlearning"
	"github.com/samuelfneumann/gomdp/experiment/tracker"
	"github.com/samuelfneumann/gomdp/policy"
	"github.com/samuelfneumann/gomdp/problem"
	"github.com/samuelfneumann/gomdp/problem/grid"
	"github.com/samuelfneumann/gomdp/problem/problemconfig"
	"github.com/samuelfneumann/gomdp/report"
	"golang.org/x/exp/rand"
)

// Config represents a configuration of an experiment
type Config struct {
	Algorithm agent.Type           `json:"algorithm" yaml:"algorithm"`
	Problem   problemconfig.Config `json:"problem" yaml:"problem"`
	Gamma     float64              `json:"gamma" yaml:"gamma"`
	Seed      uint64               `json:"seed" yaml:"seed"`

	// Positional solver parameters: maxDelta for the dynamic
	// programming solvers, alpha and iterations for Q-Learning
	Params []string `json:"params" yaml:"params"`
}

// Outcome holds the result of a single run
type Outcome struct {
	ID        string
	Algorithm agent.Type
	Seed      uint64
	Problem   grid.Problem
	Policy    policy.Policy[grid.Position, grid.Action]

	// Dynamic programming only
	States     []grid.Position
	Utilities  policy.Utilities[grid.Position]
	Iterations int // Policy Iteration improvement steps
	Sweeps     int
	Deltas     []float64

	// Q-Learning only
	QTable         *policy.QTable[grid.Position, grid.Action]
	EpisodeLengths []int
	Returns        []float64

	Duration time.Duration
}

// Report writes the table of utilities of a dynamic programming run,
// or the Q-table of a Q-Learning run, to w
func (o *Outcome) Report(w io.Writer) error {
	if o.QTable != nil {
		return report.QValues(w, o.QTable)
	}
	return report.Utilities(w, o.States, o.Policy, o.Utilities)
}

// Run creates the configured problem and solves it with the configured
// algorithm. Solver parameters that cannot be parsed keep their default
// values and are logged as warnings. The outcome is given to every
// Tracker.
func Run(ctx context.Context, cfg Config, logger *slog.Logger,
	trackers ...tracker.Tracker) (*Outcome, error) {
	c, warnings, err := agent.ParseConfig(cfg.Algorithm, cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	for _, w := range warnings {
		logger.Warn("using default parameter", "algorithm", cfg.Algorithm,
			"error", w)
	}

	return run(ctx, cfg, c, logger, trackers)
}

// run solves the configured problem with the solver configuration c
func run(ctx context.Context, cfg Config, c agent.Config,
	logger *slog.Logger, trackers []tracker.Tracker) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := cfg.Problem.Create(c.Type().ModelBased())
	if err != nil {
		return nil, fmt.Errorf("run: could not create problem: %w", err)
	}

	id := uuid.NewString()
	logger = logger.With("run_id", id)
	logger.Info("run started", "algorithm", c.Type(),
		"problem", cfg.Problem.Problem, "size", cfg.Problem.Size,
		"gamma", cfg.Gamma, "seed", cfg.Seed)

	start := time.Now()
	o, err := solve(p, cfg.Gamma, c, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		logger.Error("run failed", "error", err)
		return nil, fmt.Errorf("run: %w", err)
	}
	o.ID = id
	o.Seed = cfg.Seed
	o.Duration = time.Since(start)

	logger.Info("run finished", "sweeps", o.Sweeps,
		"episodes", len(o.Returns), "duration", o.Duration)

	r := tracker.Run{
		ID:             o.ID,
		Algorithm:      o.Algorithm,
		Seed:           o.Seed,
		Deltas:         o.Deltas,
		EpisodeLengths: o.EpisodeLengths,
		Returns:        o.Returns,
	}
	for _, t := range trackers {
		t.Track(r)
	}
	return o, nil
}

// solve dispatches to the solver configured by c
func solve(p grid.Problem, gamma float64, c agent.Config,
	rng *rand.Rand) (*Outcome, error) {
	o := &Outcome{Algorithm: c.Type(), Problem: p}
	if m, ok := p.(problem.ModelBased[grid.Position, grid.Action]); ok {
		o.States = m.AllStates()
	}

	switch c := c.(type) {
	case policyiteration.Config:
		r, err := policyiteration.Solve[grid.Position, grid.Action](p, gamma,
			c, rng)
		if err != nil {
			return nil, err
		}
		o.Policy, o.Utilities = r.Policy, r.Utilities
		o.Iterations, o.Sweeps, o.Deltas = r.Iterations, r.Sweeps, r.Deltas

	case valueiteration.Config:
		r, err := valueiteration.Solve[grid.Position, grid.Action](p, gamma, c)
		if err != nil {
			return nil, err
		}
		o.Policy, o.Utilities = r.Policy, r.Utilities
		o.Sweeps, o.Deltas = r.Sweeps, r.Deltas

	case qlearning.Config:
		r, err := qlearning.Solve[grid.Position, grid.Action](p, gamma, c,
			rng)
		if err != nil {
			return nil, err
		}
		o.Policy, o.QTable = r.Policy, r.QTable
		o.EpisodeLengths, o.Returns = r.EpisodeLengths, r.Returns

	default:
		panic(fmt.Sprintf("solve: no solver for configuration %T", c))
	}

	return o, nil
}

// agreement returns the fraction of states in which both policies take
// the same action, and the states in which they do not. A state without
// an action in one of the policies counts as a disagreement. The
// agreement over no states is 1.
func agreement[S, A comparable](states []S, p, q policy.Policy[S, A]) (
	float64, []S) {
	if len(states) == 0 {
		return 1, nil
	}

	var differ []S
	for _, s := range states {
		a, okA := p.Action(s)
		b, okB := q.Action(s)
		if okA != okB || a != b {
			differ = append(differ, s)
		}
	}
	return 1 - float64(len(differ))/float64(len(states)), differ
}

// decided returns the states in which pol takes an action, in the order
// of states
func decided[S, A comparable](states []S, pol policy.Policy[S, A]) []S {
	var out []S
	for _, s := range states {
		if _, ok := pol.Action(s); ok {
			out = append(out, s)
		}
	}
	return out
}
