package config

import (
	_ "embed"
)

//go:embed defaults/2048.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the classic 2048 rules: a 4×4 board, two
// starting tiles, and a 10% chance of spawning a 4.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Size:       4,
			StartTiles: 2,
		},
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGameYAML
}
