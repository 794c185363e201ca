package valueiteration

import (
	"math"

	"github.com/samuelfneumann/gomdp/agent"
)

// DefaultMaxDelta is the default precision of the utilities
const DefaultMaxDelta = 0.01

func init() {
	agent.Register(agent.ValueIteration, func(args []string) (agent.Config,
		[]error) {
		return ParseConfig(args)
	})
}

// Config represents a configuration for Value Iteration
type Config struct {
	MaxDelta float64 `json:"maxDelta" yaml:"maxDelta"`
}

// Default returns the default Config
func Default() Config {
	return Config{MaxDelta: DefaultMaxDelta}
}

// ParseConfig creates a Config from the positional parameters
// [maxDelta]
func ParseConfig(args []string) (Config, []error) {
	c := Default()

	maxDelta, err := agent.ParseFloat(args, 0, "maxDelta", c.MaxDelta)
	c.MaxDelta = maxDelta
	if err != nil {
		return c, []error{err}
	}
	return c, nil
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if !(c.MaxDelta > 0) || math.IsInf(c.MaxDelta, 1) {
		return &agent.ConfigurationError{
			Algorithm: c.Type(),
			Reason:    "maxDelta must be positive and finite",
		}
	}
	return nil
}

// Type returns the type of solver configured by the Config
func (c Config) Type() agent.Type {
	return agent.ValueIteration
}
