package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available courses",
	Long:  `Shows a list of all registered courses.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No courses available.")
		return
	}

	fmt.Println("Available courses:")
	fmt.Println()

	maxIDLen := 0
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
		if g.Summary != "" {
			fmt.Printf("  %-*s  %s\n", maxIDLen, "", g.Summary)
		}
	}

	fmt.Println()
	fmt.Println("Run 'dash play <id>' to play a course.")
}
