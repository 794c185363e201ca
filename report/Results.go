package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/samuelfneumann/gomdp/policy"
)

// Utilities writes a table of the policy and utility of every state, in
// the order of states. States without an action are shown with "-".
func Utilities[S, A comparable](w io.Writer, states []S,
	pol policy.Policy[S, A], u policy.Utilities[S]) error {
	t := NewTable(w, "STATE", "ACTION", "UTILITY")
	for _, s := range states {
		action := "-"
		if a, ok := pol.Action(s); ok {
			action = fmt.Sprint(a)
		}
		t.AddRow(fmt.Sprint(s), action, fmt.Sprintf("%.4f", u[s]))
	}
	return t.Render()
}

// QValues writes a table of every state with at least one stored value
// in q: its greedy action, the value of that action, and the value of
// every stored action.
func QValues[S, A comparable](w io.Writer, q *policy.QTable[S, A]) error {
	t := NewTable(w, "STATE", "ACTION", "VALUE", "ALL VALUES")
	for _, s := range q.States() {
		best, _ := q.BestAction(s)

		actions := q.Actions(s)
		values := make([]string, len(actions))
		for i, a := range actions {
			values[i] = fmt.Sprintf("%v=%.4f", a, q.Value(s, a))
		}

		t.AddRow(fmt.Sprint(s), fmt.Sprint(best),
			fmt.Sprintf("%.4f", q.Value(s, best)), strings.Join(values, " "))
	}
	return t.Render()
}
