// snake is a wrap-around grid snake for the terminal.
//
// Usage:
//
//	snake play             - Play in this terminal
//	snake serve            - Start SSH server for remote play
//	snake config dump      - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible apple placement
//	--config <path>  - Load game config from a YAML file
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
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - a wrap-around grid snake in your terminal",
	Long: `Snake is a grid snake whose field wraps at every edge: leave on the
right and you come back on the left.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Inspect the game configuration

Examples:
  snake play
  snake play --seed 42 --config ./my-snake.yaml
  snake serve --ssh :2222
  snake config dump > ~/.snake/configs/snake.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
