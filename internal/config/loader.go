package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSurvival loads the survival configuration.
// Search order: customPath -> ~/.survival/configs/survival.yaml -> ./configs/survival.yaml -> embedded default.
// Files only need to list the keys they override; everything else keeps its default.
func LoadSurvival(customPath string) (SurvivalConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSurvivalConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseSurvival(data)
		if err != nil {
			return DefaultSurvivalConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("survival.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseSurvival(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "survival.yaml")); err == nil {
		if cfg, err := parseSurvival(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseSurvival(defaultSurvivalYAML)
	if err != nil {
		return DefaultSurvivalConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseSurvival overlays YAML data on the hardcoded defaults and validates the result.
func parseSurvival(data []byte) (SurvivalConfig, error) {
	cfg := DefaultSurvivalConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".survival", "configs", filename)
}

// Validate reports configuration values the simulation cannot run with.
func Validate(cfg SurvivalConfig) error {
	var errs []error

	w := cfg.World
	if w.Width <= 0 || w.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %dx%d", w.Width, w.Height))
	}
	if w.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("tile_size must be positive, got %v", w.TileSize))
	}
	if w.SurfaceMin > w.SurfaceMax {
		errs = append(errs, fmt.Errorf("surface_min %d exceeds surface_max %d", w.SurfaceMin, w.SurfaceMax))
	}
	if w.SurfaceMax >= w.Height {
		errs = append(errs, fmt.Errorf("surface_max %d must be below world height %d", w.SurfaceMax, w.Height))
	}
	if w.Trees.TrunkMin <= 0 || w.Trees.TrunkMin > w.Trees.TrunkMax {
		errs = append(errs, fmt.Errorf("invalid trunk range [%d,%d]", w.Trees.TrunkMin, w.Trees.TrunkMax))
	}
	if w.Trees.Count > 0 && w.Width-2*w.Trees.EdgeMargin <= 0 {
		errs = append(errs, fmt.Errorf("edge_margin %d leaves no room for trees", w.Trees.EdgeMargin))
	}
	if w.House.Width < 3 || w.House.Height < 3 {
		errs = append(errs, fmt.Errorf("house must be at least 3x3, got %dx%d", w.House.Width, w.House.Height))
	}

	if cfg.Physics.MaxDT <= 0 {
		errs = append(errs, fmt.Errorf("max_dt must be positive, got %v", cfg.Physics.MaxDT))
	}
	if cfg.Player.InventorySlots <= 0 {
		errs = append(errs, fmt.Errorf("inventory_slots must be positive, got %d", cfg.Player.InventorySlots))
	}
	if cfg.Player.HotbarSlots > cfg.Player.InventorySlots {
		errs = append(errs, fmt.Errorf("hotbar_slots %d exceeds inventory_slots %d", cfg.Player.HotbarSlots, cfg.Player.InventorySlots))
	}
	if cfg.Chest.Slots <= 0 {
		errs = append(errs, fmt.Errorf("chest slots must be positive, got %d", cfg.Chest.Slots))
	}
	if cfg.Progression.DayCycleSec <= 0 {
		errs = append(errs, fmt.Errorf("day_cycle_sec must be positive, got %v", cfg.Progression.DayCycleSec))
	}

	return errors.Join(errs...)
}

// ApplySurvivalPreset modifies the config based on a difficulty preset.
func ApplySurvivalPreset(cfg *SurvivalConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Progression.WinDays = 5
		cfg.Player.HungerDrainPerSec /= 2
		cfg.Player.StarveDamagePerSec = 5
	case DifficultyHard:
		cfg.Progression.WinDays = 10
		cfg.Player.HungerDrainPerSec *= 1.5
		cfg.Player.StarveDamagePerSec = 15
	case DifficultyEndless:
		cfg.Progression.WinDays = 0
	}
}
