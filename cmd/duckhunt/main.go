// duckhunt is a terminal arcade game: click the good ducks before time
// runs out, avoid the decoys.
//
// Usage:
//
//	duckhunt play            - Play the campaign
//	duckhunt levels          - List campaign levels
//	duckhunt scores          - Show the best runs
//	duckhunt serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible spawning
//	--db <path>     - Set database path (default: ~/.duckhunt/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "duckhunt",
	Short: "Duck Hunt - a timed click-the-duck arcade game for your terminal",
	Long: `duckhunt is a terminal arcade game. Good ducks appear inside the play
area for a few seconds each; shoot them by pressing the tag key shown next
to a duck or by clicking it with the mouse. Decoy ducks cost you time.
Clear the good-duck quota before the clock runs out to advance.

Available commands:
  play     - Play the campaign
  levels   - List campaign levels
  scores   - Show the best runs
  serve    - Start SSH server for remote play

Examples:
  duckhunt play
  duckhunt play --level 3
  duckhunt serve --ssh :2222
  duckhunt scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.duckhunt/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
