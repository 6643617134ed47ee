package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-cycle/internal/core"
	"github.com/vovakirdan/snake-cycle/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play the campaign or a single level",
	Long: `Start playing. Without a level a menu lets you pick where to start.

Controls:
  Arrows/hjkl  - Grow the snake
  c<n> Enter   - Rewind n segments (digits read last-typed first: c12 rewinds 21)
  Enter        - Continue after a win, retry after death
  Ctrl+R       - Restart the level
  P            - Pause
  Esc          - Back to the level menu
  Ctrl+S       - Save a screenshot to ~/.snakecycle/screenshots
  Q/Ctrl+C     - Quit

Examples:
  snakecycle play
  snakecycle play map_2
  snakecycle play --difficulty hard --log-file /tmp/cycle.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file (the screen is owned by the game)")
}

func runPlay(_ *cobra.Command, args []string) error {
	// The alternate screen owns stdout and stderr while playing.
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return err
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "snakecycle")
	if err != nil {
		return err
	}

	s, err := loadSetup(logger)
	if err != nil {
		return err
	}
	ids, err := s.levelIDs()
	if err != nil {
		return fmt.Errorf("listing levels: %w", err)
	}

	start := ""
	if len(args) == 1 {
		start = args[0]
		if _, err := s.loader.LoadByID(start); err != nil {
			return fmt.Errorf("level %q: %w", start, err)
		}
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.Run(tui.SessionOptions{
		Levels:     ids,
		NewGame:    s.factory(),
		StartLevel: start,
		Logger:     logger,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
	})
}
