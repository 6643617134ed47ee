// Package config provides YAML-based configuration for the snake-cycle
// puzzle: snake appearance, timings, the campaign order and the rewind
// budget of every level.
package config

import (
	"errors"
	"fmt"
	"time"
)

// CycleConfig contains all configuration for the puzzle.
type CycleConfig struct {
	Snake          SnakeConfig             `yaml:"snake"`
	Timing         TimingConfig            `yaml:"timing"`
	Campaign       []string                `yaml:"campaign"`
	Budgets        map[string]BudgetConfig `yaml:"budgets"`
	FallbackBudget BudgetConfig            `yaml:"fallback_budget"`
}

// SnakeConfig defines how new segments look.
type SnakeConfig struct {
	Color string  `yaml:"color"`
	Size  float64 `yaml:"size"`
}

// TimingConfig holds animation and hazard timings in milliseconds.
type TimingConfig struct {
	MoveMS        int `yaml:"move_ms"`
	FadeMS        int `yaml:"fade_ms"`
	SpikePeriodMS int `yaml:"spike_period_ms"`
	SpikeActiveMS int `yaml:"spike_active_ms"`
}

// Move returns the transit duration.
func (t TimingConfig) Move() time.Duration { return ms(t.MoveMS) }

// Fade returns the fade-out duration of rewound segments.
func (t TimingConfig) Fade() time.Duration { return ms(t.FadeMS) }

// SpikePeriod returns the length of one spike cycle.
func (t TimingConfig) SpikePeriod() time.Duration { return ms(t.SpikePeriodMS) }

// SpikeActive returns how long spikes stay deadly each cycle.
func (t TimingConfig) SpikeActive() time.Duration { return ms(t.SpikeActiveMS) }

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// BudgetConfig is the rewind allowance of a level.
type BudgetConfig struct {
	Total      int `yaml:"total"`
	Individual int `yaml:"individual"`
}

// BudgetFor returns the budget of a level, or the fallback when the level
// has none configured.
func (c CycleConfig) BudgetFor(level string) BudgetConfig {
	if b, ok := c.Budgets[level]; ok {
		return b
	}
	return c.FallbackBudget
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks value ranges.
func (c CycleConfig) Validate() error {
	t := c.Timing
	if t.MoveMS < 0 || t.FadeMS < 0 || t.SpikePeriodMS < 0 || t.SpikeActiveMS < 0 {
		return fmt.Errorf("%w: timings must not be negative", ErrInvalidConfig)
	}
	if t.SpikePeriodMS > 0 && t.SpikeActiveMS > t.SpikePeriodMS {
		return fmt.Errorf("%w: spike_active_ms %d exceeds spike_period_ms %d", ErrInvalidConfig, t.SpikeActiveMS, t.SpikePeriodMS)
	}
	if c.Snake.Size < 0 {
		return fmt.Errorf("%w: snake size must not be negative", ErrInvalidConfig)
	}
	for name, b := range c.Budgets {
		if b.Total < 0 || b.Individual < 0 {
			return fmt.Errorf("%w: budget of %s must not be negative", ErrInvalidConfig, name)
		}
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
