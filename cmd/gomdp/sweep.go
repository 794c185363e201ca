package main

import (
	"fmt"
	"io"

	"github.com/samuelfneumann/gomdp/experiment"
	"github.com/samuelfneumann/gomdp/report"
	"github.com/samuelfneumann/gomdp/report/chart"
	"github.com/spf13/cobra"
)

type sweepFlags struct {
	alpha      []float64
	iterations []int
	seeds      int
	quiet      bool
}

func newSweepCmd(g *globalFlags) *cobra.Command {
	s := &sweepFlags{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep Q-Learning hyperparameters over several seeds",
		Long: `Run Q-Learning with every combination of learning rate and number
of episodes, once for each of several consecutive seeds, and report how
often the learned policy agrees with the policy of Value Iteration.

Examples:
  gomdp sweep --alpha 0.05,0.1,0.5 --iterations 500,2000 --seeds 10
  gomdp sweep --problem corridor --size 8 --chart returns.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, g, s)
		},
	}

	cmd.Flags().Float64SliceVar(&s.alpha, "alpha", nil, "Learning rates to sweep over")
	cmd.Flags().IntSliceVar(&s.iterations, "iterations", nil, "Numbers of episodes to sweep over")
	cmd.Flags().IntVar(&s.seeds, "seeds", 0, "Number of seeds of each configuration")
	cmd.Flags().BoolVarP(&s.quiet, "quiet", "q", false, "Do not draw the progress bar")
	return cmd
}

func runSweep(cmd *cobra.Command, g *globalFlags, s *sweepFlags) error {
	cfg, logger, err := g.setup(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("alpha") {
		cfg.Sweep.QLearning.Alpha = s.alpha
	}
	if flags.Changed("iterations") {
		cfg.Sweep.QLearning.Iterations = s.iterations
	}
	if flags.Changed("seeds") {
		cfg.Sweep.Seeds = s.seeds
	}

	ts, err := dataTrackers(cfg.Output.Data)
	if err != nil {
		return err
	}

	var progress io.Writer
	if !s.quiet {
		progress = cmd.ErrOrStderr()
	}
	results, err := experiment.Sweep(cmd.Context(), experimentConfig(cfg),
		cfg.Sweep.QLearning, cfg.Sweep.Seeds, logger, progress, ts...)
	if err != nil {
		return err
	}

	t := report.NewTable(cmd.OutOrStdout(), "ALPHA", "ITERATIONS",
		"MEAN AGREEMENT", "MIN AGREEMENT", "MEAN RETURN", "STD RETURN")
	series := make([]chart.Series, 0, len(results))
	for _, r := range results {
		t.AddRow(fmt.Sprint(r.Config.Alpha), fmt.Sprint(r.Config.Iterations),
			fmt.Sprintf("%.4f", r.MeanAgreement),
			fmt.Sprintf("%.4f", r.MinAgreement),
			fmt.Sprintf("%.4f", r.MeanReturn),
			fmt.Sprintf("%.4f", r.StdReturn))

		series = append(series, chart.Series{
			Name: fmt.Sprintf("alpha=%v iterations=%v", r.Config.Alpha,
				r.Config.Iterations),
			Values: r.EpisodeReturns,
		})
	}
	if err := t.Render(); err != nil {
		return err
	}

	if path := cfg.Output.Chart; path != "" {
		err := writeFile(path, func(w io.Writer) error {
			return chart.Lines(w, "Q-Learning returns", "episode", series...)
		})
		if err != nil {
			return fmt.Errorf("could not write chart: %w", err)
		}
	}
	return saveAll(ts)
}
