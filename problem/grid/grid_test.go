package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	p := Position{2, 2}
	assert.Equal(t, Position{2, 1}, p.Move(Up))
	assert.Equal(t, Position{3, 2}, p.Move(Right))
	assert.Equal(t, Position{2, 3}, p.Move(Down))
	assert.Equal(t, Position{1, 2}, p.Move(Left))
	assert.Equal(t, p, p.Move(Dive))
}

func TestDistanceAndBounds(t *testing.T) {
	assert.InDelta(t, 5.0, Position{0, 0}.Distance(Position{3, 4}), 1e-12)
	assert.True(t, Position{0, 0}.In(3, 2))
	assert.False(t, Position{3, 0}.In(3, 2))
	assert.False(t, Position{0, -1}.In(3, 2))
}

func TestActionNames(t *testing.T) {
	assert.Equal(t, "RIGHT", Right.String())
	assert.Equal(t, "DIVE", Dive.String())
	assert.Equal(t, "←", Left.Arrow())
	assert.Equal(t, "Action(9)", Action(9).String())
}
