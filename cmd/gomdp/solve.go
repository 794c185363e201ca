package main

import (
	"fmt"
	"io"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/config"
	"github.com/samuelfneumann/gomdp/experiment"
	"github.com/samuelfneumann/gomdp/report"
	"github.com/samuelfneumann/gomdp/report/chart"
	"github.com/samuelfneumann/gomdp/report/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"
)

func newSolveCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <algorithm> [params...]",
		Short: "Solve a problem with one algorithm",
		Long: `Solve the configured problem and print the policy.

Algorithms and their positional parameters:
  pi, PolicyIteration  [maxDelta]
  vi, ValueIteration   [maxDelta]
  ql, QLearning        [alpha] [iterations]

Parameters that cannot be parsed keep their default value.

Examples:
  gomdp solve vi
  gomdp solve pi 0.001 --problem gridworld --size 5
  gomdp solve ql 0.2 5000 --problem corridor --size 8`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, g, args)
		},
	}
}

func runSolve(cmd *cobra.Command, g *globalFlags, args []string) error {
	t, err := agent.ParseType(args[0])
	if err != nil {
		return err
	}

	cfg, logger, err := g.setup(cmd)
	if err != nil {
		return err
	}
	ts, err := dataTrackers(cfg.Output.Data)
	if err != nil {
		return err
	}

	ec := experimentConfig(cfg)
	ec.Algorithm = t
	ec.Params = args[1:]
	o, err := experiment.Run(cmd.Context(), ec, logger, ts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%v on %v (size %d, gamma %v)\n\n", o.Algorithm,
		cfg.Problem.Problem, cfg.Problem.Size, cfg.Gamma)
	if err := o.Report(out); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err := report.Grid(out, o.Problem, o.Policy, cfg.Output.Color); err != nil {
		return err
	}

	if t.ModelBased() {
		fmt.Fprintf(out, "\nsweeps: %d\n", o.Sweeps)
	} else {
		fmt.Fprintf(out, "\nepisodes: %d, mean return: %.4f\n",
			len(o.Returns), stat.Mean(o.Returns, nil))
	}

	if err := writeOutputs(cfg, o); err != nil {
		return err
	}
	return saveAll(ts)
}

// writeOutputs writes the chart and the image of the outcome requested
// by cfg
func writeOutputs(cfg *config.Config, o *experiment.Outcome) error {
	title := fmt.Sprintf("%v on %v", o.Algorithm, cfg.Problem.Problem)

	if path := cfg.Output.Chart; path != "" {
		err := writeFile(path, func(w io.Writer) error {
			if o.Algorithm.ModelBased() {
				return chart.Convergence(w, title, o.Deltas)
			}
			return chart.Returns(w, title, o.Returns)
		})
		if err != nil {
			return fmt.Errorf("could not write chart: %w", err)
		}
	}

	if path := cfg.Output.PNG; path != "" {
		if err := render.PNG(path, o.Problem, o.Policy); err != nil {
			return err
		}
	}
	return nil
}
