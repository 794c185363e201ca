package problem

import (
	"errors"
	"fmt"
)

// ErrDegenerateModel is matched by every *DegenerateModelError using
// errors.Is
var ErrDegenerateModel = errors.New("degenerate model")

// DegenerateModelError reports a problem model that cannot produce
// correct expected utilities: an invalid transition distribution, a
// successor outside of the state space, or a non-terminal state without
// actions.
type DegenerateModelError struct {
	State  interface{}
	Action interface{} // nil if the error is not tied to an action
	Reason string
}

func (e *DegenerateModelError) Error() string {
	if e.Action == nil {
		return fmt.Sprintf("degenerate model at state %v: %v", e.State,
			e.Reason)
	}
	return fmt.Sprintf("degenerate model at state %v, action %v: %v",
		e.State, e.Action, e.Reason)
}

// Is reports whether target is ErrDegenerateModel
func (e *DegenerateModelError) Is(target error) bool {
	return target == ErrDegenerateModel
}

// NoActions returns the error reported when non-terminal state s has no
// possible actions
func NoActions(s interface{}) error {
	return &DegenerateModelError{
		State:  s,
		Reason: "non-terminal state has no possible actions",
	}
}
