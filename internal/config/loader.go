package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.2048/config.yaml -> ./configs/2048.yaml -> embedded default
func Load(customPath string) (GameConfig, error) {
	var cfg GameConfig

	// Custom path is authoritative: failing to read it is an error.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
		}
	}

	if data, err := os.ReadFile("configs/2048.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
	}

	if err := yaml.Unmarshal(defaultGameYAML, &cfg); err != nil {
		return DefaultGameConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// normalize fills in zero values with defaults so a partial YAML file
// still yields a playable configuration.
func normalize(cfg GameConfig) GameConfig {
	def := DefaultGameConfig()
	if cfg.Board.Size < 2 {
		cfg.Board.Size = def.Board.Size
	}
	if cfg.Board.StartTiles <= 0 {
		cfg.Board.StartTiles = def.Board.StartTiles
	}
	if cfg.Spawn.FourProbability < 0 || cfg.Spawn.FourProbability > 1 {
		cfg.Spawn.FourProbability = def.Spawn.FourProbability
	}
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".2048", filename)
}
