package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dash-runner/internal/registry"
	"github.com/vovakirdan/dash-runner/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresStats  bool
	flagScoresClear  bool
	flagScoresRecent bool
)

// stepRate converts stored tick counts to play time.
const stepRate = 120

var scoresCmd = &cobra.Command{
	Use:   "scores [course]",
	Short: "Show high scores for a course",
	Long: `Display the top scores for the specified course, or aggregated
statistics for every course with --stats.

Examples:
  dash scores dash
  dash scores dash-blocks --limit 20
  dash scores --stats
  dash scores --recent
  dash scores dash --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresStats, "stats", false, "Show per-course statistics")
	scoresCmd.Flags().BoolVar(&flagScoresRecent, "recent", false, "Show the latest runs across all courses")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history and best score of the course")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresStats {
		return printStats(store)
	}
	if flagScoresRecent {
		return printRecent(store)
	}
	if len(args) == 0 {
		return fmt.Errorf("a course is required unless --stats or --recent is set")
	}

	gameID := args[0]
	game, ok := registry.Lookup(gameID)
	if !ok {
		return fmt.Errorf("unknown course %q (run 'dash list' to see available courses)", gameID)
	}

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s\n", game.Title)
		return nil
	}

	runs, err := store.TopRuns(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dash play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %-22s  %s\n", "Rank", "Score", "Cleared", "Time", "Ended", "Date")
	fmt.Printf("  %-4s  %-8s  %-7s  %-6s  %-22s  %s\n", "----", "-----", "-------", "----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-7d  %-6s  %-22s  %s\n",
			i+1, r.Score, r.Cleared, playTime(r), r.Cause, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.Best(gameID); err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %-8s  %s\n", "Course", "Runs", "Best", "Average", "Cleared", "Last played")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-12s  %-6d  %-6d  %-8.1f  %-8d  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.Cleared, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printRecent(store *storage.Store) error {
	runs, err := store.RecentRuns(flagScoresLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-12s  %-8s  %-6s  %s\n", "Date", "Course", "Score", "Time", "Ended")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-12s  %-8d  %-6s  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.GameID, r.Score, playTime(r), r.Cause)
	}
	return nil
}

func playTime(r storage.RunRecord) string {
	d := r.Duration(stepRate)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
