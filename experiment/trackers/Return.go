package trackers

import (
	"github.com/samuelfneumann/gomdp/experiment/tracker"
)

// Return tracks and saves the episodic return of every Q-Learning
// episode of the tracked runs, run after run.
//
// Note: the return is the undiscounted sum of the rewards collected in
// the episode, including the reward of the terminal state.
type Return struct {
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn(filename string) *Return {
	return &Return{filename: filename}
}

// Track caches the episodic returns of r
func (r *Return) Track(run tracker.Run) {
	r.episodeReturns = append(r.episodeReturns, run.Returns...)
}

// Data returns the returns tracked so far
func (r *Return) Data() []float64 {
	return r.episodeReturns
}

// Save saves the tracked returns to disk
func (r *Return) Save() error {
	return tracker.SaveData(r.filename, r.episodeReturns)
}
