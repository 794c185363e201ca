// Package tracker defines Trackers, which keep track of the data
// produced by the runs of an experiment and save the data after the
// experiment has finished
package tracker

import (
	"encoding/gob"
	"fmt"
	"os"

	"github.com/samuelfneumann/gomdp/agent"
)

// Run holds the data produced by a single solver run
type Run struct {
	ID        string
	Algorithm agent.Type
	Seed      uint64

	Deltas         []float64 // largest utility change of each sweep
	EpisodeLengths []int
	Returns        []float64
}

// Interface Tracker keeps track of experiment data and saves the data
// after the experiment has finished
type Tracker interface {
	Track(r Run)
	Save() error
}

// SaveData gob encodes data to filename
func SaveData(filename string, data []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("saveData: could not open save file: %w", err)
	}
	if err := gob.NewEncoder(file).Encode(data); err != nil {
		file.Close()
		return fmt.Errorf("saveData: could not encode data: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("saveData: could not close save file: %w", err)
	}
	return nil
}

// LoadData loads and returns the data saved by a Tracker
func LoadData(filename string) ([]float64, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("loadData: could not open data file: %w", err)
	}
	defer file.Close()

	var data []float64
	if err := gob.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("loadData: could not decode data: %w", err)
	}
	return data, nil
}
