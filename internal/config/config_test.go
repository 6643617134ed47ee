package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

// isolate points HOME and the working directory at empty temp dirs.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	emb := EmbeddedCycleConfig()
	def := DefaultCycleConfig()

	if emb.Timing != def.Timing {
		t.Errorf("timing = %+v, want %+v", emb.Timing, def.Timing)
	}
	if emb.Snake != def.Snake {
		t.Errorf("snake = %+v, want %+v", emb.Snake, def.Snake)
	}
	if len(emb.Campaign) != len(def.Campaign) {
		t.Errorf("campaign = %v, want %v", emb.Campaign, def.Campaign)
	}
	if emb.BudgetFor("map_1") != (BudgetConfig{Total: 2, Individual: 1}) {
		t.Errorf("map_1 budget = %+v", emb.BudgetFor("map_1"))
	}
	if emb.FallbackBudget != (BudgetConfig{Total: 100, Individual: 100}) {
		t.Errorf("fallback = %+v", emb.FallbackBudget)
	}
}

func TestBudgetForUnknownLevel(t *testing.T) {
	cfg := DefaultCycleConfig()
	if got := cfg.BudgetFor("map_42"); got != cfg.FallbackBudget {
		t.Errorf("got %+v, want fallback %+v", got, cfg.FallbackBudget)
	}
}

func TestTimingDurations(t *testing.T) {
	tm := DefaultCycleConfig().Timing
	if tm.Move() != 300*time.Millisecond || tm.Fade() != 500*time.Millisecond {
		t.Errorf("move/fade = %v/%v", tm.Move(), tm.Fade())
	}
	if tm.SpikePeriod() != 3500*time.Millisecond || tm.SpikeActive() != 500*time.Millisecond {
		t.Errorf("spike = %v/%v", tm.SpikePeriod(), tm.SpikeActive())
	}
}

func TestLoadCycleSearchOrder(t *testing.T) {
	home, work := isolate(t)

	cfg, err := LoadCycle("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timing.MoveMS != 300 {
		t.Fatalf("expected embedded default, got move_ms %d", cfg.Timing.MoveMS)
	}

	writeFile(t, filepath.Join(work, "configs", FileName), "timing:\n  move_ms: 100\n")
	cfg, _ = LoadCycle("")
	if cfg.Timing.MoveMS != 100 {
		t.Errorf("expected local config, got move_ms %d", cfg.Timing.MoveMS)
	}
	if cfg.Timing.FadeMS != 500 {
		t.Errorf("unset keys should keep defaults, got fade_ms %d", cfg.Timing.FadeMS)
	}

	writeFile(t, filepath.Join(home, ".snakecycle", "configs", FileName), "timing:\n  move_ms: 200\n")
	cfg, _ = LoadCycle("")
	if cfg.Timing.MoveMS != 200 {
		t.Errorf("expected user config, got move_ms %d", cfg.Timing.MoveMS)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "timing:\n  move_ms: 0\nbudgets:\n  map_2:\n    total: 3\n    individual: 4\n")
	cfg, err = LoadCycle(custom)
	if err != nil {
		t.Fatalf("load custom: %v", err)
	}
	if cfg.Timing.MoveMS != 0 {
		t.Errorf("expected custom config, got move_ms %d", cfg.Timing.MoveMS)
	}
	if cfg.BudgetFor("map_2") != (BudgetConfig{Total: 3, Individual: 4}) {
		t.Errorf("map_2 budget = %+v", cfg.BudgetFor("map_2"))
	}
	if cfg.BudgetFor("map_1") != (BudgetConfig{Total: 2, Individual: 1}) {
		t.Errorf("map_1 budget should be merged from defaults, got %+v", cfg.BudgetFor("map_1"))
	}
}

func TestLoadCycleSkipsBrokenUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".snakecycle", "configs", FileName), "timing: [not a map\n")

	cfg, err := LoadCycle("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Timing.MoveMS != 300 {
		t.Errorf("broken user config should fall through, got move_ms %d", cfg.Timing.MoveMS)
	}
}

func TestLoadCycleCustomErrors(t *testing.T) {
	_, work := isolate(t)

	if _, err := LoadCycle(filepath.Join(work, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(work, "bad.yaml")
	writeFile(t, bad, "timing:\n  spike_period_ms: 100\n  spike_active_ms: 200\n")
	_, err := LoadCycle(bad)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestApplyCyclePreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		map1     BudgetConfig
		fallback BudgetConfig
	}{
		{DifficultyEasy, BudgetConfig{4, 2}, BudgetConfig{200, 200}},
		{DifficultyNormal, BudgetConfig{2, 1}, BudgetConfig{100, 100}},
		{DifficultyHard, BudgetConfig{1, 0}, BudgetConfig{50, 50}},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultCycleConfig()
			ApplyCyclePreset(&cfg, tt.preset)
			if got := cfg.BudgetFor("map_1"); got != tt.map1 {
				t.Errorf("map_1 = %+v, want %+v", got, tt.map1)
			}
			if cfg.FallbackBudget != tt.fallback {
				t.Errorf("fallback = %+v, want %+v", cfg.FallbackBudget, tt.fallback)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"normal", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePreset(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParsePreset(%q) = %q, %v", tt.in, got, err)
		}
	}
}
