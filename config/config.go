// Package config provides configuration management for gomdp.
// Configuration is loaded from (highest to lowest priority):
// 1. Command-line flags
// 2. Environment variables (GOMDP_*)
// 3. Config file (--config, $GOMDP_CONFIG or .gomdp.yaml in cwd)
// 4. Defaults
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/samuelfneumann/gomdp/agent/tabular/qlearning"
	"github.com/samuelfneumann/gomdp/problem/problemconfig"
	"gopkg.in/yaml.v3"
)

// ProjectFile is the config file looked up in the working directory
const ProjectFile = ".gomdp.yaml"

// EnvFile names the environment variable holding the config file path
const EnvFile = "GOMDP_CONFIG"

// Config holds all gomdp configuration.
type Config struct {
	// Problem selects and parameterizes the problem to solve.
	Problem problemconfig.Config `yaml:"problem" json:"problem"`

	// Gamma is the discount factor.
	Gamma float64 `yaml:"gamma" json:"gamma"`

	// Seed seeds the random source of the solvers.
	Seed uint64 `yaml:"seed" json:"seed"`

	Log    LogConfig    `yaml:"log" json:"log"`
	Output OutputConfig `yaml:"output" json:"output"`
	Sweep  SweepConfig  `yaml:"sweep" json:"sweep"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// OutputConfig holds report settings.
type OutputConfig struct {
	// Color enables coloured terminal grids.
	Color bool `yaml:"color" json:"color"`

	// Chart is the path of an HTML chart to write, if any.
	Chart string `yaml:"chart" json:"chart"`

	// PNG is the path of a policy image to write, if any.
	PNG string `yaml:"png" json:"png"`

	// Data is a directory in which the returns, episode lengths and
	// convergence of every run are saved, if any.
	Data string `yaml:"data" json:"data"`
}

// SweepConfig holds the settings of Q-Learning sweeps.
type SweepConfig struct {
	// Seeds is the number of seeds run for every configuration.
	Seeds int `yaml:"seeds" json:"seeds"`

	// QLearning lists the hyperparameters to sweep over.
	QLearning qlearning.ConfigList `yaml:"qlearning" json:"qlearning"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Problem: problemconfig.Default(),
		Gamma:   0.9,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{Color: true},
		Sweep: SweepConfig{
			Seeds: 5,
			QLearning: qlearning.ConfigList{
				Alpha:      []float64{qlearning.DefaultAlpha},
				Iterations: []int{qlearning.DefaultIterations},
			},
		},
	}
}

// Load loads configuration with proper precedence. path names the
// config file; if empty, $GOMDP_CONFIG and then ProjectFile are tried.
// A missing ProjectFile is not an error. flags is applied last and
// should only set the values of flags given on the command line.
func Load(path string, flags func(*Config)) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvFile)
		explicit = path != ""
	}
	if !explicit {
		path = ProjectFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(cfg, data); err != nil {
			return nil, fmt.Errorf("load: %v: %w", path, err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("load: %w", err)
	}

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}

	if flags != nil {
		flags(cfg)
	}
	return cfg, nil
}

// decode merges YAML data into cfg. Keys absent from data keep their
// value in cfg; unknown keys are an error.
func decode(cfg *Config, data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// applyEnv overrides cfg with the GOMDP_* environment variables found
// by lookup
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("GOMDP_PROBLEM"); ok {
		name, err := problemconfig.ParseName(v)
		if err != nil {
			return fmt.Errorf("GOMDP_PROBLEM: %w", err)
		}
		cfg.Problem.Problem = name
	}
	if v, ok := lookup("GOMDP_SIZE"); ok {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GOMDP_SIZE: %w", err)
		}
		cfg.Problem.Size = size
	}
	if v, ok := lookup("GOMDP_GAMMA"); ok {
		gamma, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("GOMDP_GAMMA: %w", err)
		}
		cfg.Gamma = gamma
	}
	if v, ok := lookup("GOMDP_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("GOMDP_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v, ok := lookup("GOMDP_LOG_LEVEL"); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup("GOMDP_LOG_FORMAT"); ok {
		cfg.Log.Format = v
	}
	if v, ok := lookup("GOMDP_COLOR"); ok {
		color, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GOMDP_COLOR: %w", err)
		}
		cfg.Output.Color = color
	}
	return nil
}
