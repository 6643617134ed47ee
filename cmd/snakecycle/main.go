// snakecycle is a terminal puzzle game: grow the snake onto the exit,
// rewinding it when it gets stuck.
//
// Usage:
//
//	snakecycle play [level]    - Play the campaign or a single level
//	snakecycle levels          - List available levels
//	snakecycle check <file>... - Validate map files and print them
//	snakecycle serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Custom cycle.yaml
//	--difficulty <name> - easy, normal or hard (scales rewind budgets)
//	--maps <dir>        - Load levels from a directory instead of the built-in campaign
//	--fps <rate>        - Set tick rate (default: 60)
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-cycle/internal/config"
	"github.com/vovakirdan/snake-cycle/internal/games/cycle"
	"github.com/vovakirdan/snake-cycle/internal/games/cycle/levels"
	"github.com/vovakirdan/snake-cycle/internal/platform/tui"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagMapsDir    string
	flagFPS        int
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snakecycle",
	Short: "Snake Cycle - a rewind puzzle in your terminal",
	Long: `Snake Cycle is a grid puzzle. Every move grows the snake by one
segment; the only way back is to rewind. Step on plates to open doors,
avoid spikes and reach the exit.

Available commands:
  play     - Play the campaign or a single level
  levels   - Show all available levels
  check    - Validate map files
  serve    - Start SSH server for remote play

Examples:
  snakecycle play
  snakecycle play map_3 --difficulty easy
  snakecycle levels --maps ./my_maps
  snakecycle check ./my_maps/map_1.game_map
  snakecycle serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom cycle.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagMapsDir, "maps", "", "Directory with .game_map files (default: built-in campaign)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates the CLI logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// setup holds what every command needs: config, map source and logger.
type setup struct {
	cfg    config.CycleConfig
	loader *levels.Loader
	logger *log.Logger
}

func loadSetup(logger *log.Logger) (*setup, error) {
	cfg, err := config.LoadCycle(flagConfig)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyCyclePreset(&cfg, preset)

	loader := levels.Campaign()
	if flagMapsDir != "" {
		info, statErr := os.Stat(flagMapsDir)
		if statErr != nil {
			return nil, fmt.Errorf("maps directory: %w", statErr)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("maps directory: %s is not a directory", flagMapsDir)
		}
		loader = levels.NewLoader(flagMapsDir)
		// A custom map set plays in file order unless the config says otherwise.
		if flagConfig == "" {
			cfg.Campaign = nil
		}
	}
	loader.Logger = logger

	return &setup{cfg: cfg, loader: loader, logger: logger}, nil
}

// levelIDs returns the menu entries: the campaign order if configured,
// else every map the loader can see.
func (s *setup) levelIDs() ([]string, error) {
	if len(s.cfg.Campaign) > 0 {
		return s.cfg.Campaign, nil
	}
	return s.loader.ListIDs()
}

// factory creates a fresh game for every session.
func (s *setup) factory() tui.GameFactory {
	return func(level string) tui.Game {
		g := cycle.New(s.cfg, s.loader, s.logger)
		g.SetStartLevel(level)
		return g
	}
}
