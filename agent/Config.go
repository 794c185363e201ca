package agent

import (
	"fmt"
	"sync"
)

// Config represents a configuration of a solver
type Config interface {
	// Validate returns an error describing whether or not the
	// configuration is valid or not.
	Validate() error

	// Type returns the type of solver that the Config configures
	Type() Type
}

// Parser creates a Config from positional parameters. Parameters that
// cannot be parsed keep their default value and are reported as
// *ParamError's in the returned slice.
type Parser func(args []string) (Config, []error)

// Registered parsers. No Type's are registered with this package upon
// initialization; each solver package registers its own Type to avoid
// circular imports.
var (
	registeredMu      sync.RWMutex
	registeredParsers = make(map[Type]Parser)
)

// Register registers the Parser for Configs of type t
func Register(t Type, p Parser) {
	registeredMu.Lock()
	defer registeredMu.Unlock()

	registeredParsers[t] = p
}

// ParseConfig creates the Config of type t from positional parameters
// using the Parser registered for t
func ParseConfig(t Type, args []string) (Config, []error, error) {
	registeredMu.RLock()
	p, ok := registeredParsers[t]
	registeredMu.RUnlock()

	if !ok {
		return nil, nil, fmt.Errorf("parseConfig: no parser registered "+
			"for solver type %v", t)
	}

	c, warnings := p(args)
	return c, warnings, nil
}
