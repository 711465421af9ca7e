package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppConfig_Defaults(t *testing.T) {
	cfg, err := LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, "hedge", cfg.Solver)
	assert.Equal(t, "rock-paper-scissors", cfg.Preset)
	assert.Equal(t, 0.1, cfg.LearningRate)
	assert.Equal(t, 100000, cfg.Iterations)
	assert.Equal(t, 5000, cfg.LogInterval)
	assert.Equal(t, int64(0), cfg.Seed)
}

func TestLoadAppConfig_Environment(t *testing.T) {
	t.Setenv("NASHLEARN_LR", "0.25")
	t.Setenv("NASHLEARN_ITERATIONS", "42")
	t.Setenv("NASHLEARN_SOLVER", "fictitious")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.LearningRate)
	assert.Equal(t, 42, cfg.Iterations)
	assert.Equal(t, "fictitious", cfg.Solver)
}

func TestLoadAppConfig_BadValue(t *testing.T) {
	t.Setenv("NASHLEARN_ITERATIONS", "many")

	_, err := LoadAppConfig()
	assert.Error(t, err)
}

func TestUsage(t *testing.T) {
	usage, err := Usage()
	require.NoError(t, err)
	assert.Contains(t, usage, "NASHLEARN_LR")
}
