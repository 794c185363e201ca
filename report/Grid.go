package report

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/gomdp/policy"
	"github.com/samuelfneumann/gomdp/problem/grid"
)

// Grid draws the policy over a grid shaped problem, one character per
// cell: walls (#), cats (C), cheese (*), goals (G), and the arrow of the
// policy's action elsewhere. Cells without an action are drawn as dots.
// If color is true, cells are coloured by their kind.
func Grid(w io.Writer, layout grid.Layout,
	pol policy.Policy[grid.Position, grid.Action], color bool) error {
	au := aurora.NewAurora(color)
	width, height := layout.Dims()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}

			p := grid.Position{X: x, Y: y}
			if _, err := fmt.Fprint(w, cell(au, layout.Kind(p), pol, p)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func cell(au aurora.Aurora, kind grid.CellKind,
	pol policy.Policy[grid.Position, grid.Action],
	p grid.Position) aurora.Value {
	switch kind {
	case grid.Wall:
		return au.Faint("#")
	case grid.Cat:
		return au.Red("C")
	case grid.Cheese:
		return au.Yellow("*")
	case grid.Goal:
		return au.Green("G")
	}

	symbol := "."
	if a, ok := pol.Action(p); ok {
		symbol = a.Arrow()
	}

	switch kind {
	case grid.Water:
		return au.Blue(symbol)
	case grid.Hole:
		return au.Magenta(symbol)
	}
	return au.White(symbol)
}
