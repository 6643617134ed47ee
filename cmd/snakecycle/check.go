package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-cycle/internal/games/cycle"
	"github.com/vovakirdan/snake-cycle/internal/games/cycle/core"
	"github.com/vovakirdan/snake-cycle/internal/games/cycle/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate map files",
	Long: `Parses each map file, builds the starting position and prints it.
Hint table warnings are listed under the board. Exits non-zero if any
file fails to load.

Examples:
  snakecycle check ./maps/map_1.game_map
  snakecycle check ./maps/*.game_map`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

var errCheckFailed = errors.New("some maps failed to load")

func runCheck(_ *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr, "snakecycle")
	if err != nil {
		return err
	}
	s, err := loadSetup(logger)
	if err != nil {
		return err
	}

	failed := 0
	for _, p := range args {
		if err := checkFile(s, p); err != nil {
			fmt.Printf("FAIL %s: %v\n\n", p, err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w (%d of %d)", errCheckFailed, failed, len(args))
	}
	return nil
}

func checkFile(s *setup, p string) error {
	data, err := os.ReadFile(p)
	if err != nil {
		return err
	}
	id := levels.IDFromPath(p)
	lvl, err := levels.Parse(id, data)
	if err != nil {
		return err
	}
	eng, err := core.New(lvl.Grid, cycle.EngineOptions(s.cfg, id, s.logger))
	if err != nil {
		return err
	}

	fmt.Printf("OK   %s (%dx%d)\n", p, lvl.Grid.W, lvl.Grid.H)
	fmt.Print(core.RenderASCII(eng))
	for i := range levels.MaxHints {
		if text, ok := lvl.Hint(i); ok {
			fmt.Printf("  hint %d: %s\n", i, text)
		}
	}
	for _, w := range lvl.Warnings {
		fmt.Printf("  warning: %s\n", w)
	}
	fmt.Println()
	return nil
}
