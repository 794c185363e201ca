package main

import (
	"fmt"
	"io"

	"github.com/samuelfneumann/gomdp/experiment"
	"github.com/samuelfneumann/gomdp/report"
	"github.com/samuelfneumann/gomdp/report/chart"
	"github.com/spf13/cobra"
)

func newCompareCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [maxDelta]",
		Short: "Compare Policy Iteration and Value Iteration",
		Long: `Solve the configured problem with Policy Iteration and with Value
Iteration and report where their policies and utilities differ.

Examples:
  gomdp compare
  gomdp compare 0.0001 --problem gridworld --slip 0.2`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, g, args)
		},
	}
}

func runCompare(cmd *cobra.Command, g *globalFlags, args []string) error {
	cfg, logger, err := g.setup(cmd)
	if err != nil {
		return err
	}
	ts, err := dataTrackers(cfg.Output.Data)
	if err != nil {
		return err
	}

	ec := experimentConfig(cfg)
	ec.Params = args
	c, err := experiment.Compare(cmd.Context(), ec, logger, ts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	t := report.NewTable(out, "ALGORITHM", "ITERATIONS", "SWEEPS", "DURATION")
	for _, o := range []*experiment.Outcome{c.PolicyIteration, c.ValueIteration} {
		t.AddRow(string(o.Algorithm), fmt.Sprint(o.Iterations),
			fmt.Sprint(o.Sweeps), o.Duration.String())
	}
	if err := t.Render(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nagreement: %.2f%%\nmax utility difference: %.6f\n",
		100*c.Agreement, c.MaxUtilityDiff)
	if len(c.Disagreements) > 0 {
		fmt.Fprintf(out, "policies differ in: %v\n", c.Disagreements)
	}

	fmt.Fprintln(out)
	if err := report.Grid(out, c.ValueIteration.Problem,
		c.ValueIteration.Policy, cfg.Output.Color); err != nil {
		return err
	}

	if path := cfg.Output.Chart; path != "" {
		err := writeFile(path, func(w io.Writer) error {
			return chart.Lines(w, "Convergence", "sweep",
				chart.Series{Name: "PolicyIteration", Values: c.PolicyIteration.Deltas},
				chart.Series{Name: "ValueIteration", Values: c.ValueIteration.Deltas},
			)
		})
		if err != nil {
			return fmt.Errorf("could not write chart: %w", err)
		}
	}
	return saveAll(ts)
}
