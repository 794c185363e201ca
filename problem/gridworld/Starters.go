package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gomdp/problem/grid"
)

// SingleStart is the starting position of a gridworld
type SingleStart struct {
	state grid.Position
}

// NewSingleStart returns a starting position (x, y) in a gridworld with
// r rows and c columns
func NewSingleStart(x, y, r, c int) (*SingleStart, error) {
	if x < 0 || x >= c {
		return nil, fmt.Errorf("newSingleStart: x = %d outside of %d cols",
			x, c)
	} else if y < 0 || y >= r {
		return nil, fmt.Errorf("newSingleStart: y = %d outside of %d rows",
			y, r)
	}

	return &SingleStart{grid.Position{X: x, Y: y}}, nil
}

// Start returns the starting position
func (s *SingleStart) Start() grid.Position {
	return s.state
}
