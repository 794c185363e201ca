package trackers

import (
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gomdp/agent"
	"github.com/samuelfneumann/gomdp/experiment/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackers(t *testing.T) {
	dir := t.TempDir()
	lengths := NewEpisodeLength(filepath.Join(dir, "lengths.bin"))
	returns := NewReturn(filepath.Join(dir, "returns.bin"))
	deltas := NewConvergence(filepath.Join(dir, "deltas.bin"))

	runs := []tracker.Run{
		{
			Algorithm:      agent.QLearning,
			EpisodeLengths: []int{3, 1},
			Returns:        []float64{97, 99},
		},
		{Algorithm: agent.ValueIteration, Deltas: []float64{90, 81, 0}},
		{Algorithm: agent.QLearning, EpisodeLengths: []int{2}, Returns: []float64{98}},
	}
	for _, tr := range []tracker.Tracker{lengths, returns, deltas} {
		for _, r := range runs {
			tr.Track(r)
		}
		require.NoError(t, tr.Save())
	}

	assert.Equal(t, []float64{3, 1, 2}, lengths.Data())
	assert.Equal(t, []float64{97, 99, 98}, returns.Data())
	assert.Equal(t, []float64{90, 81, 0}, deltas.Data())

	for name, want := range map[string][]float64{
		"lengths.bin": {3, 1, 2},
		"returns.bin": {97, 99, 98},
		"deltas.bin":  {90, 81, 0},
	} {
		got, err := tracker.LoadData(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}
}

func TestSaveErrors(t *testing.T) {
	r := NewReturn(filepath.Join(t.TempDir(), "missing", "returns.bin"))
	assert.Error(t, r.Save())

	_, err := tracker.LoadData(filepath.Join(t.TempDir(), "none.bin"))
	assert.Error(t, err)
}
