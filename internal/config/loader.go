package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in each search location.
const FileName = "cycle.yaml"

// LoadCycle loads the puzzle configuration.
// Search order: customPath -> ~/.snakecycle/configs/cycle.yaml -> ./configs/cycle.yaml -> embedded default
// Files are decoded over the defaults, so they only need the keys they change.
func LoadCycle(customPath string) (CycleConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CycleConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return CycleConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(FileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", FileName)); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	return EmbeddedCycleConfig(), nil
}

func decode(data []byte) (CycleConfig, error) {
	cfg := EmbeddedCycleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CycleConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CycleConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snakecycle", "configs", filename)
}

// ApplyCyclePreset scales every budget for a difficulty preset.
// Easy doubles budgets, hard halves them (rounding down), normal keeps them.
func ApplyCyclePreset(cfg *CycleConfig, preset DifficultyPreset) {
	scale := func(b BudgetConfig) BudgetConfig {
		switch preset {
		case DifficultyEasy:
			return BudgetConfig{Total: b.Total * 2, Individual: b.Individual * 2}
		case DifficultyHard:
			return BudgetConfig{Total: b.Total / 2, Individual: b.Individual / 2}
		default:
			return b
		}
	}

	budgets := make(map[string]BudgetConfig, len(cfg.Budgets))
	for name, b := range cfg.Budgets {
		budgets[name] = scale(b)
	}
	cfg.Budgets = budgets
	cfg.FallbackBudget = scale(cfg.FallbackBudget)
}
