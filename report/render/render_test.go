package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/gomdp/policy"
	"github.com/samuelfneumann/gomdp/problem/grid"
	"github.com/samuelfneumann/gomdp/problem/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMaze(t *testing.T) *maze.Maze {
	m, err := maze.Parse([]string{
		"####",
		"#H~#",
		"#C*#",
		"####",
	})
	require.NoError(t, err)
	return m
}

func TestImage(t *testing.T) {
	m := testMaze(t)
	img := Image(m, policy.Policy[grid.Position, grid.Action]{
		{X: 1, Y: 1}: grid.Right,
	})

	bounds := img.Bounds()
	assert.Equal(t, 4*CellSize, bounds.Dx())
	assert.Equal(t, 4*CellSize, bounds.Dy())

	// Sample the middle of a cell, away from the grid lines and arrows
	at := func(x, y int) color.Color {
		return img.At(x*CellSize+CellSize/4, y*CellSize+CellSize/4)
	}
	assertColour := func(want color.Color, got color.Color) {
		wr, wg, wb, _ := want.RGBA()
		gr, gn, gb, _ := got.RGBA()
		assert.Equal(t, [3]uint32{wr, wg, wb}, [3]uint32{gr, gn, gb})
	}
	assertColour(cellColours[grid.Wall], at(0, 0))
	assertColour(cellColours[grid.Water], at(2, 1))
	assertColour(cellColours[grid.Cat], at(1, 2))
	assertColour(cellColours[grid.Cheese], at(2, 2))
	assertColour(background, at(1, 1))

	// The arrow crosses the centre of the cell
	centre := img.At(CellSize+CellSize/2, CellSize+CellSize/2)
	r, _, _, _ := centre.RGBA()
	br, _, _, _ := background.RGBA()
	assert.Less(t, r, br)
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.png")
	require.NoError(t, PNG(path, testMaze(t), nil))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	img, err := gg.LoadPNG(path)
	require.NoError(t, err)
	assert.Equal(t, 4*CellSize, img.Bounds().Dx())

	assert.Error(t, PNG(filepath.Join(t.TempDir(), "missing", "x.png"),
		testMaze(t), nil))
}
