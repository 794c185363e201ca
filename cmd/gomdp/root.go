package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/samuelfneumann/gomdp/config"
	"github.com/samuelfneumann/gomdp/experiment"
	"github.com/samuelfneumann/gomdp/experiment/tracker"
	"github.com/samuelfneumann/gomdp/experiment/trackers"
	"github.com/samuelfneumann/gomdp/logging"
	"github.com/samuelfneumann/gomdp/problem/problemconfig"
	"github.com/spf13/cobra"
)

// globalFlags holds the values of the persistent flags. They override
// the loaded configuration only when given on the command line.
type globalFlags struct {
	cfgFile   string
	gamma     float64
	seed      uint64
	problem   string
	size      int
	stepCost  float64
	slip      float64
	logLevel  string
	logFormat string
	chart     string
	png       string
	data      string
	color     bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "gomdp",
		Short: "Solve tabular Markov decision problems",
		Long: `gomdp solves grid shaped Markov decision problems with dynamic
programming and with Q-Learning.

Problems:
  corridor   a 1xN corridor with the goal at its right end
  gridworld  a square grid with the goal in the top right corner
  maze       a random hamster maze with water, holes, cats and cheese

Commands:
  solve      solve a problem with one algorithm
  compare    compare Policy Iteration and Value Iteration
  sweep      sweep Q-Learning hyperparameters over several seeds

Configuration is read from --config, $GOMDP_CONFIG or ./.gomdp.yaml,
then overridden by GOMDP_* environment variables and by flags.`,
		SilenceUsage: true,
	}

	f := root.PersistentFlags()
	f.StringVar(&g.cfgFile, "config", "", "Config file (default: $GOMDP_CONFIG or ./.gomdp.yaml)")
	f.Float64Var(&g.gamma, "gamma", 0.9, "Discount factor")
	f.Uint64Var(&g.seed, "seed", 0, "Seed of the solvers' random source")
	f.StringVar(&g.problem, "problem", string(problemconfig.Maze), "Problem to solve (corridor, gridworld, maze)")
	f.IntVar(&g.size, "size", 10, "Size of the problem")
	f.Float64Var(&g.stepCost, "step-cost", 1, "Cost of each corridor step")
	f.Float64Var(&g.slip, "slip", 0, "Slip probability of the corridor and gridworld")
	f.StringVar(&g.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	f.StringVar(&g.logFormat, "log-format", "text", "Log format (text, json)")
	f.StringVar(&g.chart, "chart", "", "Write an HTML chart to this path")
	f.StringVar(&g.png, "png", "", "Write an image of the policy to this path")
	f.StringVar(&g.data, "data", "", "Save the data of every run to this directory")
	f.BoolVar(&g.color, "color", true, "Colour terminal output")

	root.AddCommand(newSolveCmd(g), newCompareCmd(g), newSweepCmd(g))
	return root
}

// load loads the configuration of cmd, applying the flags that were
// changed on the command line last
func (g *globalFlags) load(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()
	var parseErr error

	cfg, err := config.Load(g.cfgFile, func(c *config.Config) {
		if flags.Changed("gamma") {
			c.Gamma = g.gamma
		}
		if flags.Changed("seed") {
			c.Seed = g.seed
		}
		if flags.Changed("problem") {
			name, err := problemconfig.ParseName(g.problem)
			if err != nil {
				parseErr = err
				return
			}
			c.Problem.Problem = name
		}
		if flags.Changed("size") {
			c.Problem.Size = g.size
		}
		if flags.Changed("step-cost") {
			c.Problem.StepCost = g.stepCost
		}
		if flags.Changed("slip") {
			c.Problem.Slip = g.slip
		}
		if flags.Changed("log-level") {
			c.Log.Level = g.logLevel
		}
		if flags.Changed("log-format") {
			c.Log.Format = g.logFormat
		}
		if flags.Changed("chart") {
			c.Output.Chart = g.chart
		}
		if flags.Changed("png") {
			c.Output.PNG = g.png
		}
		if flags.Changed("data") {
			c.Output.Data = g.data
		}
		if flags.Changed("color") {
			c.Output.Color = g.color
		}
	})
	if err != nil {
		return nil, err
	}
	if parseErr != nil {
		return nil, parseErr
	}
	return cfg, nil
}

// setup loads the configuration and creates the logger of cmd
func (g *globalFlags) setup(cmd *cobra.Command) (*config.Config,
	*slog.Logger, error) {
	cfg, err := g.load(cmd)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Format: logging.Format(cfg.Log.Format),
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// experimentConfig returns the experiment described by cfg
func experimentConfig(cfg *config.Config) experiment.Config {
	return experiment.Config{
		Problem: cfg.Problem,
		Gamma:   cfg.Gamma,
		Seed:    cfg.Seed,
	}
}

// dataTrackers returns the trackers saving run data to dir, or none if
// dir is empty
func dataTrackers(dir string) ([]tracker.Tracker, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create data directory: %w", err)
	}
	return []tracker.Tracker{
		trackers.NewReturn(filepath.Join(dir, "returns.bin")),
		trackers.NewEpisodeLength(filepath.Join(dir, "episode_lengths.bin")),
		trackers.NewConvergence(filepath.Join(dir, "deltas.bin")),
	}, nil
}

// saveAll saves the data of every tracker
func saveAll(ts []tracker.Tracker) error {
	for _, t := range ts {
		if err := t.Save(); err != nil {
			return err
		}
	}
	return nil
}

// writeFile creates path and writes to it with write
func writeFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
