package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duckhunt/internal/level"
)

var flagLevelsFile string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long: `Display the campaign level parameters.

Examples:
  duckhunt levels
  duckhunt levels --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagLevelsFile, "levels", "", "Path to custom campaign YAML")
}

func runLevels(cmd *cobra.Command, args []string) {
	campaign, err := level.LoadCampaign(flagLevelsFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Campaign (%d levels)\n\n", campaign.Len())
	fmt.Printf("  %-5s  %-6s  %-6s  %-7s  %-9s  %-8s  %s\n",
		"Level", "Time", "Quota", "Decoys", "Interval", "Penalty", "Lifetime")
	fmt.Printf("  %-5s  %-6s  %-6s  %-7s  %-9s  %-8s  %s\n",
		"-----", "----", "-----", "------", "--------", "-------", "--------")

	for _, cfg := range campaign.All() {
		fmt.Printf("  %-5d  %-6.0fs %-6d  %-7d  %-9.2f  %-8.0fs %.1fs\n",
			cfg.ID, cfg.TimeLimit, cfg.GoodRequired, cfg.DecoyTotal,
			cfg.SpawnInterval, cfg.DecoyPenalty, cfg.DuckLifetime)
	}
}
