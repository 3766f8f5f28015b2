package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duckhunt/internal/storage"
)

var flagStats bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top 10 runs recorded in the runs database.

Examples:
  duckhunt scores
  duckhunt scores --stats`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-level statistics instead of top runs")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStats {
		printStats(store)
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Duck Hunt")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'duckhunt play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-14s  %s\n", "Rank", "Score", "Level", "Outcome", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-14s  %s\n", "----", "-----", "-----", "-------", "----")

	for i, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-6d  %-14s  %s\n", i+1, run.Score, run.LevelID, run.Outcome, dateStr)
	}

	best, err := store.BestScore()
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", best)
	}
}

func printStats(store *storage.Store) {
	stats, err := store.StatsByLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Per-Level Stats - Duck Hunt")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-6s  %-6s  %-8s  %-8s  %s\n", "Level", "Runs", "Best", "Avg", "Wins")
	fmt.Printf("  %-6s  %-6s  %-8s  %-8s  %s\n", "-----", "----", "----", "---", "----")

	for _, st := range stats {
		fmt.Printf("  %-6d  %-6d  %-8d  %-8.1f  %d\n",
			st.LevelID, st.RunsCount, st.BestScore, st.AvgScore, st.Wins)
	}
}
