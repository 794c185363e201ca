// Package agent defines the types, configurations, and errors shared by
// the solvers.
//
// Each solver package registers a parser for its Config with this
// package on initialization, so that a Config can be created from a
// Type and a list of positional parameters without importing the
// solver package directly.
package agent

import (
	"fmt"
	"sort"
	"strings"
)

// Type represents a type of solver
type Type string

const (
	// Dynamic programming methods
	PolicyIteration Type = "PolicyIteration"
	ValueIteration  Type = "ValueIteration"

	// Model-free methods
	QLearning Type = "QLearning"
)

// aliases maps the short names accepted on the command line to Types
var aliases = map[string]Type{
	"pi":              PolicyIteration,
	"policyiteration": PolicyIteration,
	"vi":              ValueIteration,
	"valueiteration":  ValueIteration,
	"ql":              QLearning,
	"qlearning":       QLearning,
}

// ParseType returns the Type with the given name. Names are case
// insensitive and may be either the full Type or its abbreviation (pi,
// vi, ql).
func ParseType(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := aliases[key]; ok {
		return t, nil
	}

	names := make([]string, 0, len(aliases))
	for alias := range aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return "", fmt.Errorf("parseType: no such solver %q (want one of %v)",
		name, strings.Join(names, ", "))
}

// ModelBased returns whether solvers of type t need the model of a
// problem
func (t Type) ModelBased() bool {
	return t == PolicyIteration || t == ValueIteration
}
