package maze

import (
	"fmt"

	"github.com/samuelfneumann/gomdp/problem/grid"
	"golang.org/x/exp/rand"
)

// MinSize is the smallest maze that Generate creates
const MinSize = 5

// Generate creates a random maze with size rows and columns from seed.
// The same size and seed always produce the same maze.
//
// Corridors are carved by a randomized depth first search between the
// cells with odd coordinates, so that every open cell is connected.
// Some walls between corridors are then knocked down to create loops.
// Finally, the hamster, the cheese, the cats, the holes and the water
// are placed on distinct open cells.
func Generate(size int, seed uint64) (*Maze, error) {
	if size < MinSize {
		return nil, fmt.Errorf("generate: maze size must be at least %d, "+
			"got %d", MinSize, size)
	}

	rng := rand.New(rand.NewSource(seed))
	m := newMaze(size)
	m.carve(rng)
	m.knockDownWalls(rng, size*size/10)

	var open []grid.Position
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := grid.Position{X: x, Y: y}
			if m.Cell(p) == grid.Empty {
				open = append(open, p)
			}
		}
	}
	rng.Shuffle(len(open), func(i, j int) {
		open[i], open[j] = open[j], open[i]
	})

	numCats := max(1, size/6)
	numHoles := max(2, size/5)
	numWater := len(open) / 10
	if need := 2 + numCats + numHoles; len(open) < need {
		return nil, fmt.Errorf("generate: only %d open cells, need %d",
			len(open), need)
	}

	m.hamster, m.cheese = open[0], open[1]
	open = open[2:]

	for _, p := range open[:numCats] {
		m.cats = append(m.cats, p)
		m.catAt[p] = true
	}
	open = open[numCats:]

	for _, p := range open[:numHoles] {
		m.holes = append(m.holes, p)
		m.set(p, grid.Hole)
	}
	open = open[numHoles:]

	for _, p := range open[:min(numWater, len(open))] {
		m.set(p, grid.Water)
	}

	return m, nil
}

// carve opens the corridors of the maze with a randomized depth first
// search starting at (1, 1)
func (m *Maze) carve(rng *rand.Rand) {
	last := m.size - 2
	start := grid.Position{X: 1, Y: 1}
	m.set(start, grid.Empty)

	stack := []grid.Position{start}
	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var next []grid.Position
		for _, a := range grid.Moves {
			p := current.Move(a).Move(a)
			if p.X >= 1 && p.X <= last && p.Y >= 1 && p.Y <= last &&
				m.Cell(p) == grid.Wall {
				next = append(next, p)
			}
		}

		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		p := next[rng.Intn(len(next))]
		between := grid.Position{X: (p.X + current.X) / 2,
			Y: (p.Y + current.Y) / 2}
		m.set(between, grid.Empty)
		m.set(p, grid.Empty)
		stack = append(stack, p)
	}
}

// knockDownWalls opens up to n inner walls that separate two open
// cells, either horizontally or vertically
func (m *Maze) knockDownWalls(rng *rand.Rand, n int) {
	open := func(p grid.Position) bool {
		return m.Cell(p) != grid.Wall
	}

	for attempts := 0; n > 0 && attempts < 20*m.size*m.size; attempts++ {
		p := grid.Position{
			X: 1 + rng.Intn(m.size-2),
			Y: 1 + rng.Intn(m.size-2),
		}
		if m.Cell(p) != grid.Wall {
			continue
		}

		horizontal := open(p.Move(grid.Left)) && open(p.Move(grid.Right))
		vertical := open(p.Move(grid.Up)) && open(p.Move(grid.Down))
		if horizontal != vertical {
			m.set(p, grid.Empty)
			n--
		}
	}
}
