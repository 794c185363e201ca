// Package floatutils provides utilities for working with floats:
// argmax with a fixed tie-break and interval membership
package floatutils

import (
	"gonum.org/v1/gonum/spatial/r1"
)

// InOpenInterval returns whether value lies strictly inside interval
func InOpenInterval(value float64, interval r1.Interval) bool {
	return value > interval.Min && value < interval.Max
}

// InClosedInterval returns whether value lies inside interval,
// including its end points
func InClosedInterval(value float64, interval r1.Interval) bool {
	return value >= interval.Min && value <= interval.Max
}

// ArgMax returns the index of the first maximum value in values. Later
// values only replace the current maximum if they are strictly larger,
// so ties are broken in favour of the earliest index. If values is
// empty, ArgMax returns -1.
func ArgMax(values []float64) int {
	if len(values) == 0 {
		return -1
	}

	index, max := 0, values[0]
	for i := 1; i < len(values); i++ {
		if values[i] > max {
			max = values[i]
			index = i
		}
	}
	return index
}
