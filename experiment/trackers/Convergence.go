package trackers

import (
	"github.com/samuelfneumann/gomdp/experiment/tracker"
)

// Convergence tracks and saves the largest utility change of every
// sweep of the tracked dynamic programming runs
type Convergence struct {
	deltas   []float64
	filename string
}

// NewConvergence creates and returns a new *Convergence Tracker
func NewConvergence(filename string) *Convergence {
	return &Convergence{filename: filename}
}

func (c *Convergence) Track(r tracker.Run) {
	c.deltas = append(c.deltas, r.Deltas...)
}

func (c *Convergence) Data() []float64 {
	return c.deltas
}

func (c *Convergence) Save() error {
	return tracker.SaveData(c.filename, c.deltas)
}
