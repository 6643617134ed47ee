package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows every valid map with its size, rewind budget and campaign position.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "snakecycle")
	if err != nil {
		return err
	}
	s, err := loadSetup(logger)
	if err != nil {
		return err
	}

	lvls, err := s.loader.LoadAll()
	if err != nil {
		return err
	}
	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
	}

	fmt.Println("Available levels:")
	fmt.Println()
	fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxIDLen, "ID", "Size", "Rewinds", "Campaign")
	fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxIDLen, "--", "----", "-------", "--------")

	for _, l := range lvls {
		b := s.cfg.BudgetFor(l.ID)
		pos := "-"
		if i := slices.Index(s.cfg.Campaign, l.ID); i >= 0 {
			pos = fmt.Sprintf("#%d", i+1)
		}
		fmt.Printf("  %-*s  %-7s  %-9s  %s\n", maxIDLen, l.ID,
			fmt.Sprintf("%dx%d", l.Grid.W, l.Grid.H),
			fmt.Sprintf("%d/%d", b.Total, b.Individual),
			pos)
	}

	fmt.Println()
	fmt.Println("Run 'snakecycle play <id>' to play a level.")
	return nil
}
