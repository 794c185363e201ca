// Package policy implements the tabular data structures produced by the
// solvers: deterministic policies, utility tables, and Q-tables.
//
// All structures are keyed by comparable state and action types, so two
// states with the same value are the same state.
package policy

import (
	"fmt"
	"sort"
	"strings"
)

// Policy maps states to the action chosen in that state. States without
// an action are implicitly terminal.
type Policy[S, A comparable] map[S]A

// New returns a new, empty Policy
func New[S, A comparable]() Policy[S, A] {
	return make(Policy[S, A])
}

// Action returns the action chosen in state s and whether an action
// has been assigned to s
func (p Policy[S, A]) Action(s S) (A, bool) {
	a, ok := p[s]
	return a, ok
}

// SetAction assigns action a to state s
func (p Policy[S, A]) SetAction(s S, a A) {
	p[s] = a
}

// Equal returns whether p and other agree on every state that is mapped
// by either of them
func (p Policy[S, A]) Equal(other Policy[S, A]) bool {
	if len(p) != len(other) {
		return false
	}

	for s, a := range p {
		if b, ok := other[s]; !ok || a != b {
			return false
		}
	}
	return true
}

// Clone returns a copy of the Policy
func (p Policy[S, A]) Clone() Policy[S, A] {
	clone := make(Policy[S, A], len(p))
	for s, a := range p {
		clone[s] = a
	}
	return clone
}

// String returns one "state -> action" line per mapped state, sorted by
// the textual form of the states
func (p Policy[S, A]) String() string {
	lines := make([]string, 0, len(p))
	for s, a := range p {
		lines = append(lines, fmt.Sprintf("%v -> %v", s, a))
	}
	sort.Strings(lines)

	return strings.Join(lines, "\n")
}
