package experiment

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/agent/dp/valueiteration"
	"github.com/samuelfneumann/gomdp/agent/tabular/qlearning"
	"github.com/samuelfneumann/gomdp/experiment/tracker"
	"github.com/samuelfneumann/gomdp/utils/progressbar"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ProgressBarWidth is the width in characters of the progress bar drawn
// by Sweep
const ProgressBarWidth = 40

// SweepResult summarises the Q-Learning runs of one configuration
type SweepResult struct {
	Config qlearning.Config
	Seeds  []uint64

	// Agreement of the learned policy of each run with the policy of
	// Value Iteration
	Agreement     []float64
	MeanAgreement float64
	MinAgreement  float64

	// Mean and standard deviation across runs of the mean episodic
	// return of each run. The standard deviation of a single run is NaN.
	MeanReturn float64
	StdReturn  float64

	// Return of each episode averaged across runs
	EpisodeReturns []float64
}

// Sweep runs Q-Learning with every configuration of list for seeds
// consecutive seeds starting at cfg.Seed. The learned policies are
// compared against the policy of Value Iteration on the model-based
// flavour of the same problem, over the states in which Value Iteration
// takes an action.
//
// If progress is not nil, a progress bar is drawn to it after each run.
// The context is checked between runs. The results of the
// configurations completed before an error are returned with it.
func Sweep(ctx context.Context, cfg Config, list qlearning.ConfigList,
	seeds int, logger *slog.Logger, progress io.Writer,
	trackers ...tracker.Tracker) ([]SweepResult, error) {
	if err := list.Validate(); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}
	if seeds < 1 {
		return nil, fmt.Errorf("sweep: need at least one seed, got %d",
			seeds)
	}

	reference := cfg
	reference.Algorithm = agent.ValueIteration
	vi, err := run(ctx, reference, valueiteration.Default(), logger, nil)
	if err != nil {
		return nil, fmt.Errorf("sweep: could not compute reference "+
			"policy: %w", err)
	}
	states := decided(vi.States, vi.Policy)

	var bar *progressbar.ManualProgressBar
	if progress != nil {
		bar = progressbar.NewManualProgressBar(progress, ProgressBarWidth,
			list.Len()*seeds)
		defer bar.Close()
	}

	results := make([]SweepResult, 0, list.Len())
	for _, c := range list.Configs() {
		res := SweepResult{
			Config:         c,
			EpisodeReturns: make([]float64, c.Iterations),
		}
		meanReturns := make([]float64, 0, seeds)

		for i := 0; i < seeds; i++ {
			runCfg := cfg
			runCfg.Algorithm = agent.QLearning
			runCfg.Seed = cfg.Seed + uint64(i)

			o, err := run(ctx, runCfg, c, logger, trackers)
			if err != nil {
				return results, fmt.Errorf("sweep: %w", err)
			}

			agree, _ := agreement(states, vi.Policy, o.Policy)
			res.Seeds = append(res.Seeds, runCfg.Seed)
			res.Agreement = append(res.Agreement, agree)
			meanReturns = append(meanReturns, stat.Mean(o.Returns, nil))
			floats.Add(res.EpisodeReturns, o.Returns)

			if bar != nil {
				bar.Increment()
				bar.Display()
			}
		}

		floats.Scale(1/float64(seeds), res.EpisodeReturns)
		res.MeanAgreement = stat.Mean(res.Agreement, nil)
		res.MinAgreement = floats.Min(res.Agreement)
		res.MeanReturn, res.StdReturn = stat.MeanStdDev(meanReturns, nil)

		logger.Info("configuration finished", "alpha", c.Alpha,
			"iterations", c.Iterations, "mean_agreement", res.MeanAgreement,
			"mean_return", res.MeanReturn)
		results = append(results, res)
	}

	return results, nil
}
