package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/cycle.yaml
var defaultCycleYAML []byte

// DefaultCycleConfig returns the hardcoded configuration.
func DefaultCycleConfig() CycleConfig {
	return CycleConfig{
		Snake: SnakeConfig{
			Color: "bright_green",
			Size:  1,
		},
		Timing: TimingConfig{
			MoveMS:        300,
			FadeMS:        500,
			SpikePeriodMS: 3500,
			SpikeActiveMS: 500,
		},
		Campaign: []string{"map_1", "map_2", "map_3", "map_4", "map_5"},
		Budgets: map[string]BudgetConfig{
			"map_1": {Total: 2, Individual: 1},
		},
		FallbackBudget: BudgetConfig{Total: 100, Individual: 100},
	}
}

// EmbeddedCycleConfig returns the configuration shipped with the binary,
// falling back to DefaultCycleConfig if it cannot be parsed.
func EmbeddedCycleConfig() CycleConfig {
	cfg := DefaultCycleConfig()
	if err := yaml.Unmarshal(defaultCycleYAML, &cfg); err != nil {
		return DefaultCycleConfig()
	}
	return cfg
}
