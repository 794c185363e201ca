package tracker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, SaveData(path, []float64{1.5, -2, 0}))

	data, err := LoadData(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, -2, 0}, data)

	// Saving again truncates the previous data
	require.NoError(t, SaveData(path, []float64{7}))
	data, err = LoadData(path)
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, data)
}

func TestSaveDataErrors(t *testing.T) {
	assert.Error(t, SaveData(filepath.Join(t.TempDir(), "missing", "x.bin"),
		nil))

	// A directory cannot be opened as a save file
	assert.Error(t, SaveData(t.TempDir(), []float64{1}))
}

func TestLoadDataCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.bin")
	require.NoError(t, os.WriteFile(path, []byte("not gob"), 0o644))

	_, err := LoadData(path)
	assert.Error(t, err)
}
