// Package problemconfig provides configuration structs for creating the
// problems of this module with default parameters. Problem
// configurations in this package are JSON and YAML serializable.
package problemconfig

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gomdp/problem/corridor"
	"github.com/samuelfneumann/gomdp/problem/grid"
	"github.com/samuelfneumann/gomdp/problem/gridworld"
	"github.com/samuelfneumann/gomdp/problem/maze"
)

// Name stores the name of problems that can be configured with this
// package
type Name string

// Problems available for configuration
const (
	Corridor  Name = "corridor"
	GridWorld Name = "gridworld"
	Maze      Name = "maze"
)

// Names lists every problem available for configuration
var Names = []Name{Corridor, GridWorld, Maze}

// Default rewards of the gridworld
const (
	GridWorldStepReward = -1.0
	GridWorldGoalReward = 10.0
)

// Config implements a specific configuration of a specific problem.
// Not every field applies to every problem:
//
//	Problem		Fields
//	corridor	Size (length), StepCost, Slip
//	gridworld	Size (rows and columns), Slip
//	maze		Size (rows and columns), Seed
type Config struct {
	Problem  Name    `json:"problem" yaml:"problem"`
	Size     int     `json:"size" yaml:"size"`
	Seed     uint64  `json:"seed" yaml:"seed"`
	StepCost float64 `json:"stepCost" yaml:"stepCost"`
	Slip     float64 `json:"slip" yaml:"slip"`
}

// Default returns the default problem Config: a 10 x 10 maze
func Default() Config {
	return Config{Problem: Maze, Size: 10, StepCost: 1}
}

// ParseName returns the Name of a problem, ignoring case
func ParseName(name string) (Name, error) {
	for _, n := range Names {
		if strings.EqualFold(string(n), strings.TrimSpace(name)) {
			return n, nil
		}
	}
	return "", fmt.Errorf("parseName: no such problem %q", name)
}

// Validate ensures that the Config is valid for creating a problem
// which is model-based or not
func (c Config) Validate(modelBased bool) error {
	if _, err := ParseName(string(c.Problem)); err != nil {
		return fmt.Errorf("validate: %v", err)
	}
	if c.Size < 1 {
		return fmt.Errorf("validate: size must be positive, got %d", c.Size)
	}

	// A corridor without step cost lets a greedy learner bounce against
	// the left wall forever
	if c.Problem == Corridor && !modelBased && !(c.StepCost > 0) {
		return fmt.Errorf("validate: a model-free corridor needs a "+
			"positive step cost, got %v", c.StepCost)
	}
	return nil
}

// Create returns the problem described by the Config. If modelBased is
// true, the problem implements problem.ModelBased, otherwise it
// implements problem.ModelFree. The corridor and the gridworld
// implement both.
func (c Config) Create(modelBased bool) (grid.Problem, error) {
	if err := c.Validate(modelBased); err != nil {
		return nil, fmt.Errorf("create: %w", err)
	}

	switch c.Problem {
	case Corridor:
		return CreateCorridor(c.Size, c.StepCost, c.Slip)

	case GridWorld:
		return CreateGridWorld(c.Size, c.Slip)

	case Maze:
		return CreateMaze(c.Size, c.Seed, modelBased)
	}

	panic(fmt.Sprintf("create: cannot create problem %v, no such "+
		"problem", c.Problem))
}

// CreateCorridor is a factory for creating a corridor of the given
// length
func CreateCorridor(length int, stepCost, slip float64) (grid.Problem,
	error) {
	c, err := corridor.New(length, stepCost, slip)
	if err != nil {
		return nil, fmt.Errorf("createCorridor: %w", err)
	}
	return c, nil
}

// CreateGridWorld is a factory for creating a square gridworld with the
// goal in the top right corner and the start in the bottom left corner
func CreateGridWorld(size int, slip float64) (grid.Problem, error) {
	goal, err := gridworld.NewGoal([]int{size - 1}, []int{0}, size, size,
		GridWorldStepReward, GridWorldGoalReward)
	if err != nil {
		return nil, fmt.Errorf("createGridWorld: %w", err)
	}

	start, err := gridworld.NewSingleStart(0, size-1, size, size)
	if err != nil {
		return nil, fmt.Errorf("createGridWorld: %w", err)
	}

	g, err := gridworld.New(size, size, goal, start, slip)
	if err != nil {
		return nil, fmt.Errorf("createGridWorld: %w", err)
	}
	return g, nil
}

// CreateMaze is a factory for creating a random maze. The model-based
// flavour is returned if modelBased is true and the model-free flavour
// otherwise.
func CreateMaze(size int, seed uint64, modelBased bool) (grid.Problem,
	error) {
	m, err := maze.Generate(size, seed)
	if err != nil {
		return nil, fmt.Errorf("createMaze: %w", err)
	}

	if modelBased {
		p, err := maze.NewMDP(m)
		if err != nil {
			return nil, fmt.Errorf("createMaze: %w", err)
		}
		return p, nil
	}

	p, err := maze.NewMF(m)
	if err != nil {
		return nil, fmt.Errorf("createMaze: %w", err)
	}
	return p, nil
}
