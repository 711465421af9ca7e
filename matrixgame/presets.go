package matrixgame

import (
	"sort"
)

// Presets are well-known games, keyed by name.
var Presets = map[string][][]float64{
	// Unique equilibrium is uniform, value 0.
	"rock-paper-scissors": {
		{0, -1, 1}, // Rock vs (Rock, Paper, Scissors).
		{1, 0, -1}, // Paper.
		{-1, 1, 0}, // Scissors.
	},
	// Unique equilibrium is uniform, value 0.
	"matching-pennies": {
		{1, -1},
		{-1, 1},
	},
	// Unique equilibrium is (3/5, 2/5) for both players, value 1/5.
	"biased-pennies": {
		{1, -1},
		{-1, 2},
	},
}

// PresetNames returns the names of all presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
