package qlearning

import (
	"fmt"

	"github.com/samuelfneumann/gomdp/agent"
)

// Default hyperparameters
const (
	DefaultAlpha      = 0.1
	DefaultIterations = 1000
)

func init() {
	agent.Register(agent.QLearning, func(args []string) (agent.Config,
		[]error) {
		return ParseConfig(args)
	})
}

// Config represents a configuration for Q-Learning
type Config struct {
	Alpha      float64 `json:"alpha" yaml:"alpha"`           // learning rate
	Iterations int     `json:"iterations" yaml:"iterations"` // episodes
}

// Default returns the default Config
func Default() Config {
	return Config{Alpha: DefaultAlpha, Iterations: DefaultIterations}
}

// ParseConfig creates a Config from the positional parameters
// [alpha iterations]. Parameters that cannot be parsed keep their
// default and are reported in the returned errors.
func ParseConfig(args []string) (Config, []error) {
	var errs []error
	c := Default()

	alpha, err := agent.ParseFloat(args, 0, "alpha", c.Alpha)
	if err != nil {
		errs = append(errs, err)
	}
	c.Alpha = alpha

	iterations, err := agent.ParseInt(args, 1, "iterations", c.Iterations)
	if err != nil {
		errs = append(errs, err)
	}
	c.Iterations = iterations

	return c, errs
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !(c.Alpha > 0 && c.Alpha <= 1) {
		return &agent.ConfigurationError{
			Algorithm: c.Type(),
			Reason:    fmt.Sprintf("alpha %v must lie in (0, 1]", c.Alpha),
		}
	}
	if c.Iterations < 0 {
		return &agent.ConfigurationError{
			Algorithm: c.Type(),
			Reason: fmt.Sprintf("iterations %d cannot be negative",
				c.Iterations),
		}
	}
	return nil
}

// Type returns the type of solver configured by the Config
func (c Config) Type() agent.Type {
	return agent.QLearning
}

// ConfigList stores a number of Configs compactly. Instead of storing a
// slice of Configs, the ConfigList stores each field's values and
// produces a Config for every combination of them.
type ConfigList struct {
	Alpha      []float64 `json:"alpha" yaml:"alpha"`
	Iterations []int     `json:"iterations" yaml:"iterations"`
}

// Len returns the number of Configs stored by the list
func (c ConfigList) Len() int {
	return len(c.Alpha) * len(c.Iterations)
}

// At returns the Config at index i. The learning rate varies fastest.
func (c ConfigList) At(i int) Config {
	if i < 0 || i >= c.Len() {
		panic(fmt.Sprintf("at: index %d out of range [0, %d)", i, c.Len()))
	}
	return Config{
		Alpha:      c.Alpha[i%len(c.Alpha)],
		Iterations: c.Iterations[i/len(c.Alpha)],
	}
}

// Configs returns every Config stored by the list
func (c ConfigList) Configs() []Config {
	configs := make([]Config, c.Len())
	for i := range configs {
		configs[i] = c.At(i)
	}
	return configs
}

// Validate ensures that every Config stored by the list is valid
func (c ConfigList) Validate() error {
	if c.Len() == 0 {
		return &agent.ConfigurationError{
			Algorithm: agent.QLearning,
			Reason:    "config list is empty",
		}
	}
	for _, config := range c.Configs() {
		if err := config.Validate(); err != nil {
			return err
		}
	}
	return nil
}
