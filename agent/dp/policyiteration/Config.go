package policyiteration

import (
	"math"

	"github.com/samuelfneumann/gomdp/agent"
)

// DefaultMaxDelta is the default precision of policy evaluation
const DefaultMaxDelta = 0.01

func init() {
	agent.Register(agent.PolicyIteration, func(args []string) (agent.Config,
		[]error) {
		return ParseConfig(args)
	})
}

// Config represents a configuration for Policy Iteration
type Config struct {
	// MaxDelta sets the precision of each policy evaluation
	MaxDelta float64 `json:"maxDelta" yaml:"maxDelta"`
}

// Default returns the default Config
func Default() Config {
	return Config{MaxDelta: DefaultMaxDelta}
}

// ParseConfig creates a Config from the positional parameters
// [maxDelta]. A parameter that cannot be parsed keeps its default and
// is reported in the returned errors.
func ParseConfig(args []string) (Config, []error) {
	var errs []error
	c := Default()

	maxDelta, err := agent.ParseFloat(args, 0, "maxDelta", c.MaxDelta)
	if err != nil {
		errs = append(errs, err)
	}
	c.MaxDelta = maxDelta

	return c, errs
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
	return agent.PolicyIteration
}
