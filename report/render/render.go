// Package render draws policies over grid shaped problems as images.
package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/samuelfneumann/gomdp/policy"
	"github.com/samuelfneumann/gomdp/problem/grid"
)

// CellSize is the width and height in pixels of each cell
const CellSize = 32

var (
	background  = color.RGBA{R: 0xf5, G: 0xf5, B: 0xf0, A: 0xff}
	gridColour  = color.RGBA{R: 0xc8, G: 0xc8, B: 0xc8, A: 0xff}
	arrowColour = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

	cellColours = map[grid.CellKind]color.Color{
		grid.Wall:   color.RGBA{R: 0x40, G: 0x40, B: 0x48, A: 0xff},
		grid.Water:  color.RGBA{R: 0x7f, G: 0xb8, B: 0xe8, A: 0xff},
		grid.Hole:   color.RGBA{R: 0x8a, G: 0x5a, B: 0x2b, A: 0xff},
		grid.Cat:    color.RGBA{R: 0xd9, G: 0x3a, B: 0x3a, A: 0xff},
		grid.Cheese: color.RGBA{R: 0xf2, G: 0xc9, B: 0x1d, A: 0xff},
		grid.Goal:   color.RGBA{R: 0x4c, G: 0xaf, B: 0x50, A: 0xff},
	}
)

// Image draws the cells of layout and the action of pol in each cell
func Image(layout grid.Layout,
	pol policy.Policy[grid.Position, grid.Action]) image.Image {
	width, height := layout.Dims()
	dc := gg.NewContext(width*CellSize, height*CellSize)
	dc.SetColor(background)
	dc.Clear()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := grid.Position{X: x, Y: y}
			px, py := float64(x*CellSize), float64(y*CellSize)

			if c, ok := cellColours[layout.Kind(p)]; ok {
				dc.DrawRectangle(px, py, CellSize, CellSize)
				dc.SetColor(c)
				dc.Fill()
			}

			if a, ok := pol.Action(p); ok {
				drawAction(dc, px+CellSize/2, py+CellSize/2, a)
			}
		}
	}

	// Grid lines
	dc.SetColor(gridColour)
	dc.SetLineWidth(1)
	for x := 0; x <= width; x++ {
		dc.DrawLine(float64(x*CellSize), 0, float64(x*CellSize),
			float64(height*CellSize))
	}
	for y := 0; y <= height; y++ {
		dc.DrawLine(0, float64(y*CellSize), float64(width*CellSize),
			float64(y*CellSize))
	}
	dc.Stroke()

	return dc.Image()
}

// PNG draws the policy like Image and saves it to path
func PNG(path string, layout grid.Layout,
	pol policy.Policy[grid.Position, grid.Action]) error {
	if err := gg.SavePNG(path, Image(layout, pol)); err != nil {
		return fmt.Errorf("png: %w", err)
	}
	return nil
}

// drawAction draws an arrow centred on (cx, cy) pointing in the direction
// of a, or a ring for Dive
func drawAction(dc *gg.Context, cx, cy float64, a grid.Action) {
	dc.SetColor(arrowColour)
	dc.SetLineWidth(2)

	const length = CellSize * 0.35
	if a == grid.Dive {
		dc.DrawCircle(cx, cy, length*0.6)
		dc.Stroke()
		return
	}

	// Screen coordinates grow downwards, so Up points to -y
	var angle float64
	switch a {
	case grid.Up:
		angle = -math.Pi / 2
	case grid.Right:
		angle = 0
	case grid.Down:
		angle = math.Pi / 2
	case grid.Left:
		angle = math.Pi
	}

	dx, dy := math.Cos(angle)*length, math.Sin(angle)*length
	tipX, tipY := cx+dx, cy+dy
	dc.DrawLine(cx-dx, cy-dy, tipX, tipY)
	dc.Stroke()

	head := length * 0.6
	for _, side := range []float64{-1, 1} {
		back := angle + math.Pi + side*math.Pi/6
		dc.MoveTo(tipX, tipY)
		dc.LineTo(tipX+math.Cos(back)*head, tipY+math.Sin(back)*head)
	}
	dc.Stroke()
}
