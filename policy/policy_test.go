package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyEqual(t *testing.T) {
	a := Policy[string, string]{"s1": "left", "s2": "right"}
	b := Policy[string, string]{"s2": "right", "s1": "left"}
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	// Extra key in either policy breaks equality
	c := b.Clone()
	c.SetAction("s3", "left")
	assert.False(t, a.Equal(c))
	assert.False(t, c.Equal(a))

	// Same keys, different action
	d := a.Clone()
	d.SetAction("s1", "right")
	assert.False(t, a.Equal(d))

	assert.True(t, New[string, string]().Equal(Policy[string, string]{}))
}

func TestPolicyString(t *testing.T) {
	p := Policy[string, string]{"b": "up", "a": "down"}
	assert.Equal(t, "a -> down\nb -> up", p.String())
}

func TestUtilitiesMaxAbsDiff(t *testing.T) {
	u := Utilities[int]{0: 1.0, 1: 5.0}
	v := Utilities[int]{0: 1.5, 1: 3.0}
	assert.InDelta(t, 2.0, u.MaxAbsDiff(v), 1e-12)

	clone := u.Clone()
	clone[0] = 10
	assert.Equal(t, 1.0, u[0])
}

func TestQTableDefaults(t *testing.T) {
	q := NewQTable[string, string]()

	assert.False(t, q.Has("s"))
	assert.Equal(t, 0.0, q.Value("s", "a"))
	assert.Equal(t, 0.0, q.MaxValue("s"))

	_, ok := q.BestAction("s")
	assert.False(t, ok)
	_, ok = q.BestActionAmong("s", []string{"a", "b"})
	assert.False(t, ok)
	assert.Empty(t, q.Policy())
}

func TestQTableTieBreak(t *testing.T) {
	q := NewQTable[string, string]()
	q.SetValue("s", "b", 1.0)
	q.SetValue("s", "a", 1.0)
	q.SetValue("s", "c", 0.5)

	// Stored order is b, a, c: the first stored maximum wins
	best, ok := q.BestAction("s")
	require.True(t, ok)
	assert.Equal(t, "b", best)
	assert.Equal(t, []string{"b", "a", "c"}, q.Actions("s"))

	// Candidate order decides among the given actions
	best, ok = q.BestActionAmong("s", []string{"a", "b", "c"})
	require.True(t, ok)
	assert.Equal(t, "a", best)

	// Overwriting keeps the original position
	q.SetValue("s", "c", 2.0)
	best, _ = q.BestAction("s")
	assert.Equal(t, "c", best)
	assert.Equal(t, 2.0, q.MaxValue("s"))
	assert.Equal(t, 1, q.Len())
}

func TestQTableUnstoredActionsValuedAtZero(t *testing.T) {
	q := NewQTable[string, string]()
	q.SetValue("s", "a", -0.1)

	best, ok := q.BestActionAmong("s", []string{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, "b", best)

	// MaxValue only looks at stored entries
	assert.Equal(t, -0.1, q.MaxValue("s"))
}

func TestQTableMaxValueIgnoresUnstoredActions(t *testing.T) {
	q := NewQTable[string, string]()
	q.SetValue("s", "left", -3)
	q.SetValue("s", "right", -1)
	actions := []string{"left", "right", "up"}

	// The greedy choice values the untried action at 0
	best, ok := q.BestActionAmong("s", actions)
	require.True(t, ok)
	assert.Equal(t, "up", best)
	assert.Equal(t, 0.0, q.Value("s", best))

	// The largest stored value is still negative
	assert.Equal(t, -1.0, q.MaxValue("s"))
	stored, ok := q.BestAction("s")
	require.True(t, ok)
	assert.Equal(t, "right", stored)

	// A state without stored values has a maximum of 0
	assert.Equal(t, 0.0, q.MaxValue("t"))
}

func TestQTablePolicy(t *testing.T) {
	q := NewQTable[int, string]()
	q.SetValue(1, "left", 3)
	q.SetValue(1, "right", 4)
	q.SetValue(2, "left", -1)

	p := q.Policy()
	assert.Equal(t, Policy[int, string]{1: "right", 2: "left"}, p)
	assert.Equal(t, []int{1, 2}, q.States())
}
