// Package maze implements the hamster maze problem.
//
// A hamster moves through a square maze of walls, empty cells, water
// and holes looking for the cheese while avoiding the cats. Reaching the
// cheese or a cat ends the episode. Holes are tunnels: diving into one
// comes out of another hole chosen uniformly at random.
//
// The problem comes in two flavours. MDP exposes the transition model
// and is solved with Policy Iteration or Value Iteration. MF can only
// be sampled and is solved with Q-Learning.
package maze

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gomdp/problem/grid"
)

// Rewards of terminal cells
const (
	CheeseReward = 100.0
	CatReward    = -100.0
)

// Characters used by Parse and String
const (
	wallChar    = '#'
	emptyChar   = '.'
	waterChar   = '~'
	holeChar    = 'O'
	catChar     = 'C'
	cheeseChar  = '*'
	hamsterChar = 'H'
)

// Maze is a square maze. Cells hold walls, empty space, water or holes;
// the cats, the cheese and the hamster stand on empty cells.
type Maze struct {
	size    int
	cells   []grid.CellKind // row major
	holes   []grid.Position
	cats    []grid.Position
	catAt   map[grid.Position]bool
	cheese  grid.Position
	hamster grid.Position
}

func newMaze(size int) *Maze {
	cells := make([]grid.CellKind, size*size)
	for i := range cells {
		cells[i] = grid.Wall
	}
	return &Maze{size: size, cells: cells, catAt: make(map[grid.Position]bool)}
}

// Parse creates a maze from the rows of its character representation:
//
//	#  wall
//	.  empty
//	~  water
//	O  hole
//	C  cat
//	*  cheese
//	H  hamster
//
// The maze must be square with exactly one cheese, exactly one hamster
// and either no holes or at least two.
func Parse(rows []string) (*Maze, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("parse: empty maze")
	}

	m := newMaze(size)
	var cheese, hamster int
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != size {
			return nil, fmt.Errorf("parse: row %d has %d cells, want %d", y,
				len(runes), size)
		}

		for x, r := range runes {
			p := grid.Position{X: x, Y: y}
			kind := grid.Empty
			switch r {
			case wallChar:
				kind = grid.Wall
			case emptyChar:
			case waterChar:
				kind = grid.Water
			case holeChar:
				kind = grid.Hole
				m.holes = append(m.holes, p)
			case catChar:
				m.cats = append(m.cats, p)
				m.catAt[p] = true
			case cheeseChar:
				m.cheese = p
				cheese++
			case hamsterChar:
				m.hamster = p
				hamster++
			default:
				return nil, fmt.Errorf("parse: unknown cell %q at %v", r, p)
			}
			m.set(p, kind)
		}
	}

	if cheese != 1 || hamster != 1 {
		return nil, fmt.Errorf("parse: want exactly one cheese and one "+
			"hamster, got %d and %d", cheese, hamster)
	}
	if len(m.holes) == 1 {
		return nil, fmt.Errorf("parse: a single hole leads nowhere")
	}
	return m, nil
}

// Size returns the number of rows and columns of the maze
func (m *Maze) Size() int {
	return m.size
}

// Dims returns the width and height of the maze
func (m *Maze) Dims() (int, int) {
	return m.size, m.size
}

// Cell returns the kind of cell at p, ignoring cats and cheese. Cells
// outside of the maze are walls.
func (m *Maze) Cell(p grid.Position) grid.CellKind {
	if !p.In(m.size, m.size) {
		return grid.Wall
	}
	return m.cells[p.Y*m.size+p.X]
}

// Kind returns the contents of the cell at p, including cats and
// cheese
func (m *Maze) Kind(p grid.Position) grid.CellKind {
	switch {
	case p == m.cheese:
		return grid.Cheese
	case m.catAt[p]:
		return grid.Cat
	}
	return m.Cell(p)
}

func (m *Maze) set(p grid.Position, kind grid.CellKind) {
	m.cells[p.Y*m.size+p.X] = kind
}

// Holes returns the holes of the maze
func (m *Maze) Holes() []grid.Position {
	return m.holes
}

// Cats returns the positions of the cats
func (m *Maze) Cats() []grid.Position {
	return m.cats
}

// Cheese returns the position of the cheese
func (m *Maze) Cheese() grid.Position {
	return m.cheese
}

// Hamster returns the starting position of the hamster
func (m *Maze) Hamster() grid.Position {
	return m.hamster
}

// String returns the character representation of the maze, one row per
// line, as accepted by Parse
func (m *Maze) String() string {
	var b strings.Builder
	for y := 0; y < m.size; y++ {
		for x := 0; x < m.size; x++ {
			p := grid.Position{X: x, Y: y}
			switch {
			case p == m.hamster:
				b.WriteRune(hamsterChar)
			case p == m.cheese:
				b.WriteRune(cheeseChar)
			case m.catAt[p]:
				b.WriteRune(catChar)
			default:
				b.WriteRune(cellChar(m.Cell(p)))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func cellChar(k grid.CellKind) rune {
	switch k {
	case grid.Wall:
		return wallChar
	case grid.Water:
		return waterChar
	case grid.Hole:
		return holeChar
	}
	return emptyChar
}
