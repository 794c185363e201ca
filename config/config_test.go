package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samuelfneumann/gomdp/problem/problemconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "gomdp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, `
gamma: 0.8
seed: 3
problem:
  problem: corridor
  size: 6
sweep:
  qlearning:
    alpha: [0.1, 0.5]
`)
	t.Setenv(EnvFile, "")
	t.Setenv("GOMDP_SEED", "11")

	cfg, err := Load(path, func(c *Config) { c.Gamma = 0.95 })
	require.NoError(t, err)

	assert.Equal(t, 0.95, cfg.Gamma, "flags win over the file")
	assert.Equal(t, uint64(11), cfg.Seed, "env wins over the file")
	assert.Equal(t, problemconfig.Corridor, cfg.Problem.Problem)
	assert.Equal(t, 6, cfg.Problem.Size)
	assert.Equal(t, 1.0, cfg.Problem.StepCost, "defaults fill the gaps")
	assert.Equal(t, []float64{0.1, 0.5}, cfg.Sweep.QLearning.Alpha)
	assert.Equal(t, Default().Sweep.QLearning.Iterations,
		cfg.Sweep.QLearning.Iterations)
}

func TestLoadWithoutFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
	t.Setenv(EnvFile, "")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv(EnvFile, writeFile(t, "gamma: 0.5\n"))

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, cfg.Gamma)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "gama: 0.5\n"), nil)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GOMDP_PROBLEM":    "GridWorld",
		"GOMDP_SIZE":       "4",
		"GOMDP_GAMMA":      "0.7",
		"GOMDP_LOG_FORMAT": "json",
		"GOMDP_COLOR":      "false",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	require.NoError(t, applyEnv(cfg, lookup))
	assert.Equal(t, problemconfig.GridWorld, cfg.Problem.Problem)
	assert.Equal(t, 4, cfg.Problem.Size)
	assert.Equal(t, 0.7, cfg.Gamma)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Output.Color)

	env["GOMDP_SIZE"] = "big"
	assert.Error(t, applyEnv(Default(), lookup))
}
