package matrixgame

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMatrix(t *testing.T) {
	input := "  0 -1 1\n\n1 0\t-1\n-1 1 0  \n"
	m, err := ParseMatrix(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, Presets["rock-paper-scissors"], m)

	m, err = ParseMatrix(strings.NewReader("1.5e1 -0.25"))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{15, -0.25}}, m)
}

func TestParseMatrix_Errors(t *testing.T) {
	_, err := ParseMatrix(strings.NewReader(" \n\n"))
	assert.True(t, errors.Is(err, ErrBadShape), "got %v", err)

	_, err = ParseMatrix(strings.NewReader("1 2\n3\n"))
	assert.True(t, errors.Is(err, ErrBadShape), "got %v", err)
	assert.Contains(t, err.Error(), "line 2")

	_, err = ParseMatrix(strings.NewReader("1 2\n3 x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2, column 2")
}

func TestPresetNames(t *testing.T) {
	assert.Equal(t, []string{"biased-pennies", "matching-pennies", "rock-paper-scissors"}, PresetNames())
}
