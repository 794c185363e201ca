// Package trackers implements Trackers of the data produced by solver
// runs
package trackers

import (
	"github.com/samuelfneumann/gomdp/experiment/tracker"
)

// EpisodeLength tracks and saves the lengths of the Q-Learning episodes
// of every tracked run, run after run. Runs of dynamic programming
// solvers contribute nothing.
type EpisodeLength struct {
	episodeLengths []float64
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength tracker which will save
// its data at the specified location filename
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode lengths of r
func (e *EpisodeLength) Track(r tracker.Run) {
	for _, length := range r.EpisodeLengths {
		e.episodeLengths = append(e.episodeLengths, float64(length))
	}
}

// Data returns the episode lengths tracked so far
func (e *EpisodeLength) Data() []float64 {
	return e.episodeLengths
}

// Save saves the tracked episode lengths to disk
func (e *EpisodeLength) Save() error {
	return tracker.SaveData(e.filename, e.episodeLengths)
}
