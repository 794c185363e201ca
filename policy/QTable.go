package policy

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gomdp/utils/floatutils"
)

// qRow stores the action values of a single state in the order in which
// the actions were first given a value
type qRow[A comparable] struct {
	actions []A
	values  []float64
	index   map[A]int
}

// QTable stores the learned value of (state, action) pairs.
//
// Absent entries have an implicit value of 0. For each state, actions
// are remembered in the order in which they were first stored, and every
// maximisation over a state's entries walks them in that order, keeping
// the first strictly largest value.
type QTable[S, A comparable] struct {
	rows  map[S]*qRow[A]
	order []S
}

// NewQTable returns a new, empty QTable
func NewQTable[S, A comparable]() *QTable[S, A] {
	return &QTable[S, A]{
		rows: make(map[S]*qRow[A]),
	}
}

// Value returns the value of action a in state s, or 0 if no value has
// been stored for the pair
func (q *QTable[S, A]) Value(s S, a A) float64 {
	row, ok := q.rows[s]
	if !ok {
		return 0
	}
	i, ok := row.index[a]
	if !ok {
		return 0
	}
	return row.values[i]
}

// SetValue stores the value of action a in state s
func (q *QTable[S, A]) SetValue(s S, a A, value float64) {
	row, ok := q.rows[s]
	if !ok {
		row = &qRow[A]{index: make(map[A]int)}
		q.rows[s] = row
		q.order = append(q.order, s)
	}

	if i, ok := row.index[a]; ok {
		row.values[i] = value
		return
	}
	row.index[a] = len(row.actions)
	row.actions = append(row.actions, a)
	row.values = append(row.values, value)
}

// Has returns whether any action value has been stored for state s
func (q *QTable[S, A]) Has(s S) bool {
	_, ok := q.rows[s]
	return ok
}

// BestAction returns the stored action with the largest value in state
// s. The boolean is false if no value has been stored for s.
func (q *QTable[S, A]) BestAction(s S) (A, bool) {
	var zero A
	row, ok := q.rows[s]
	if !ok {
		return zero, false
	}
	return row.actions[floatutils.ArgMax(row.values)], true
}

// BestActionAmong returns the action of actions with the largest value
// in state s, walking actions in order and valuing unstored pairs at 0.
// The boolean is false if no value has been stored for s yet, or if
// actions is empty.
func (q *QTable[S, A]) BestActionAmong(s S, actions []A) (A, bool) {
	var zero A
	if !q.Has(s) || len(actions) == 0 {
		return zero, false
	}

	values := make([]float64, len(actions))
	for i, a := range actions {
		values[i] = q.Value(s, a)
	}
	return actions[floatutils.ArgMax(values)], true
}

// MaxValue returns the largest stored value in state s, or 0 if no
// value has been stored for s.
//
// Unlike BestActionAmong, MaxValue does not value unstored actions at
// 0: once every stored value of s is negative, MaxValue is negative even
// though BestActionAmong still prefers an untried action worth 0. The
// Q-Learning target bootstraps from MaxValue.
func (q *QTable[S, A]) MaxValue(s S) float64 {
	row, ok := q.rows[s]
	if !ok {
		return 0
	}
	return row.values[floatutils.ArgMax(row.values)]
}

// States returns the states with at least one stored value, in the order
// in which they were first stored
func (q *QTable[S, A]) States() []S {
	states := make([]S, len(q.order))
	copy(states, q.order)
	return states
}

// Actions returns the actions with a stored value in state s, in the
// order in which they were first stored
func (q *QTable[S, A]) Actions(s S) []A {
	row, ok := q.rows[s]
	if !ok {
		return nil
	}
	actions := make([]A, len(row.actions))
	copy(actions, row.actions)
	return actions
}

// Len returns the number of states with at least one stored value
func (q *QTable[S, A]) Len() int {
	return len(q.order)
}

// Policy returns the greedy policy with respect to the QTable. Every
// state with at least one stored value is mapped to its best action.
func (q *QTable[S, A]) Policy() Policy[S, A] {
	p := make(Policy[S, A], len(q.order))
	for _, s := range q.order {
		a, _ := q.BestAction(s)
		p[s] = a
	}
	return p
}

func (q *QTable[S, A]) String() string {
	var b strings.Builder
	for _, s := range q.order {
		row := q.rows[s]
		fmt.Fprintf(&b, "%v:", s)
		for i, a := range row.actions {
			fmt.Fprintf(&b, " %v=%.4f", a, row.values[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}
