package agent

import (
	"strconv"
	"strings"
)

// ParseFloat parses the positional parameter args[i] as a float64. If
// args has no element i, def is returned without error. If args[i]
// cannot be parsed, def is returned together with a *ParamError.
func ParseFloat(args []string, i int, name string, def float64) (float64,
	error) {
	if i >= len(args) {
		return def, nil
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(args[i]), 64)
	if err != nil {
		return def, &ParamError{Name: name, Value: args[i], Default: def,
			Err: err}
	}
	return value, nil
}

// ParseInt parses the positional parameter args[i] as an int. If args
// has no element i, def is returned without error. If args[i] cannot
// be parsed, def is returned together with a *ParamError.
func ParseInt(args []string, i int, name string, def int) (int, error) {
	if i >= len(args) {
		return def, nil
	}

	value, err := strconv.Atoi(strings.TrimSpace(args[i]))
	if err != nil {
		return def, &ParamError{Name: name, Value: args[i], Default: def,
			Err: err}
	}
	return value, nil
}
