// Package config provides YAML-based game configuration loading.
package config

// GameConfig contains the tunable rules of the puzzle.
type GameConfig struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
}

// BoardConfig defines the grid and the initial placement.
type BoardConfig struct {
	Size       int `yaml:"size"`        // grid dimension N (N >= 2)
	StartTiles int `yaml:"start_tiles"` // tiles placed at the start of a game
}

// SpawnConfig defines how new tiles are chosen.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // chance of a 4 instead of a 2
}
