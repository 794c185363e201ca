package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvergence(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Convergence(&out, "Value Iteration", []float64{90, 81, 0}))

	html := out.String()
	assert.Contains(t, html, "Value Iteration")
	assert.Contains(t, html, "max delta")
	assert.Contains(t, html, "echarts")
}

func TestReturns(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Returns(&out, "Q-Learning", []float64{-3, 97, 98}))
	assert.Contains(t, out.String(), "return")
}

func TestLines(t *testing.T) {
	var out bytes.Buffer
	err := Lines(&out, "sweep", "seed",
		Series{Name: "alpha=0.1", Values: []float64{1, 2}},
		Series{Name: "alpha=0.5", Values: []float64{3}},
	)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "alpha=0.5")

	assert.Error(t, Lines(&out, "empty", "x"))
}
