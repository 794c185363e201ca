// Package grid implements the positions, actions and cell kinds shared
// by problems that take place on a two dimensional grid.
//
// Positions are (x, y) coordinates where x is the column and y is the
// row. Row 0 is the top row of the grid, so moving Up decreases y.
package grid

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gomdp/problem"
)

// Position is a cell of a grid
type Position struct {
	X, Y int
}

// String returns the position as "(x, y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Move returns the position one cell away from p in the direction of a.
// Dive does not move.
func (p Position) Move(a Action) Position {
	switch a {
	case Up:
		return Position{p.X, p.Y - 1}
	case Right:
		return Position{p.X + 1, p.Y}
	case Down:
		return Position{p.X, p.Y + 1}
	case Left:
		return Position{p.X - 1, p.Y}
	}
	return p
}

// Distance returns the euclidean distance between p and q
func (p Position) Distance(q Position) float64 {
	return math.Hypot(float64(p.X-q.X), float64(p.Y-q.Y))
}

// In returns whether p lies in a grid of the given width and height
func (p Position) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

// Action is a move on a grid
type Action int

const (
	Up Action = iota
	Right
	Down
	Left
	Dive
)

// Moves are the four directions in the order that problems enumerate
// them
var Moves = []Action{Up, Right, Down, Left}

// String returns the name of the action
func (a Action) String() string {
	switch a {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	case Dive:
		return "DIVE"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Arrow returns a single character depicting the action
func (a Action) Arrow() string {
	switch a {
	case Up:
		return "↑"
	case Right:
		return "→"
	case Down:
		return "↓"
	case Left:
		return "←"
	case Dive:
		return "○"
	}
	return "?"
}

// CellKind describes the contents of a cell
type CellKind int

const (
	Empty CellKind = iota
	Wall
	Water
	Hole
	Cat
	Cheese
	Goal
)

// String returns the name of the cell kind
func (k CellKind) String() string {
	switch k {
	case Empty:
		return "empty"
	case Wall:
		return "wall"
	case Water:
		return "water"
	case Hole:
		return "hole"
	case Cat:
		return "cat"
	case Cheese:
		return "cheese"
	case Goal:
		return "goal"
	}
	return fmt.Sprintf("CellKind(%d)", int(k))
}

// Layout describes the cells of a grid for rendering
type Layout interface {
	// Dims returns the width and height of the grid
	Dims() (width, height int)

	// Kind returns the contents of the cell at p
	Kind(p Position) CellKind
}

// Problem is a decision problem on a grid
type Problem interface {
	problem.Problem[Position, Action]
	Layout
}
