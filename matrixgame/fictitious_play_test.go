package matrixgame

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFictitiousPlay_RockPaperScissors(t *testing.T) {
	game, err := NewGame(Presets["rock-paper-scissors"])
	require.NoError(t, err)

	p0, p1, err := FictitiousPlay(game, 100000, 0, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	t.Logf("Player 0 Nash equilibrium policy: %v", p0)
	t.Logf("Player 1 Nash equilibrium policy: %v", p1)

	uniform := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	assert.InDeltaSlice(t, uniform, p0, 0.05)
	assert.InDeltaSlice(t, uniform, p1, 0.05)
}

func TestFictitiousPlay_Reproducible(t *testing.T) {
	game, err := NewGame(Presets["matching-pennies"])
	require.NoError(t, err)

	a0, a1, err := FictitiousPlay(game, 5000, 0.2, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b0, b1, err := FictitiousPlay(game, 5000, 0.2, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	assert.Equal(t, a0, b0)
	assert.Equal(t, a1, b1)
}

func TestFictitiousPlay_FullyMixed(t *testing.T) {
	game, err := NewGame(Presets["biased-pennies"])
	require.NoError(t, err)

	// With lambda = 1 both players always pick uniformly at random.
	p0, p1, err := FictitiousPlay(game, 100000, 1, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, p0, 0.02)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, p1, 0.02)
}

func TestFictitiousPlay_InvalidParams(t *testing.T) {
	game, err := NewGame(Presets["matching-pennies"])
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(1))

	_, _, err = FictitiousPlay(game, 0, 0, rng)
	assert.True(t, errors.Is(err, ErrInvalidParam), "got %v", err)
	_, _, err = FictitiousPlay(game, 10, 1.5, rng)
	assert.True(t, errors.Is(err, ErrInvalidParam), "got %v", err)
}
