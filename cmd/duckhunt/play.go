package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-duckhunt/internal/core"
	"github.com/vovakirdan/tui-duckhunt/internal/level"
	"github.com/vovakirdan/tui-duckhunt/internal/platform/tui"
	"github.com/vovakirdan/tui-duckhunt/internal/storage"
)

var (
	flagLevels     string
	flagStartLevel int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the campaign",
	Long: `Start playing the duckhunt campaign.

Controls:
  tag key    - Shoot the duck carrying that letter
  mouse      - Click a duck to shoot it
  Enter      - Start / next level
  P/Esc      - Pause
  R          - Restart from level 1
  Q/Ctrl+C   - Quit

Examples:
  duckhunt play
  duckhunt play --level 3
  duckhunt play --levels ./my-levels.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Path to custom campaign YAML")
	playCmd.Flags().IntVar(&flagStartLevel, "level", 0, "Campaign level to start from (default: first)")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "duckhunt"})

	campaign, err := level.LoadCampaign(flagLevels)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if flagStartLevel > 0 {
		if _, err := campaign.Load(flagStartLevel); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'duckhunt levels' to see the campaign.")
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(campaignFrom(campaign, flagStartLevel), store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// campaignFrom returns the campaign trimmed to start at the given level id,
// or the campaign itself when no start level was requested.
func campaignFrom(c *level.Campaign, startID int) *level.Campaign {
	if startID <= 0 || startID == c.FirstID() {
		return c
	}

	all := c.All()
	for i := range all {
		if all[i].ID == startID {
			trimmed, err := level.NewCampaign(all[i:])
			if err == nil {
				return trimmed
			}
			break
		}
	}
	return c
}
