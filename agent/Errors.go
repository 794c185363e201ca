package agent

import (
	"errors"
	"fmt"

	"github.com/samuelfneumann/gomdp/utils/floatutils"
	"gonum.org/v1/gonum/spatial/r1"
)

// ErrConfiguration is matched by every *ConfigurationError using
// errors.Is
var ErrConfiguration = errors.New("configuration error")

// ConfigurationError reports a solver that cannot be applied to a
// problem, or that was given an invalid configuration. It is detected
// before any iteration begins.
type ConfigurationError struct {
	Algorithm Type
	Reason    string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("the algorithm %v can not be applied: %v",
		e.Algorithm, e.Reason)
}

// Is reports whether target is ErrConfiguration
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// ParamError reports a positional parameter that could not be parsed.
// The parameter keeps its Default value.
type ParamError struct {
	Name    string
	Value   string
	Default interface{}
	Err     error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("the value %q for %v is not correct, using %v",
		e.Value, e.Name, e.Default)
}

func (e *ParamError) Unwrap() error {
	return e.Err
}

// Discount is the interval that discount factors must lie in. Dynamic
// programming solvers need a discount strictly inside the interval,
// since their stopping threshold divides by the discount and vanishes
// at 1.
var Discount = r1.Interval{Min: 0, Max: 1}

// CheckDiscount returns a *ConfigurationError if gamma is not a valid
// discount factor for solvers of type t
func CheckDiscount(t Type, gamma float64) error {
	if t.ModelBased() {
		if !floatutils.InOpenInterval(gamma, Discount) {
			return &ConfigurationError{
				Algorithm: t,
				Reason: fmt.Sprintf("discount %v must lie in (%v, %v)",
					gamma, Discount.Min, Discount.Max),
			}
		}
		return nil
	}

	if !floatutils.InClosedInterval(gamma, Discount) {
		return &ConfigurationError{
			Algorithm: t,
			Reason: fmt.Sprintf("discount %v must lie in [%v, %v]",
				gamma, Discount.Min, Discount.Max),
		}
	}
	return nil
}
