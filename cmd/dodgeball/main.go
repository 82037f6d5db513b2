// dodgeball is a single-screen arcade game: move a square to dodge falling
// circles until one of them hits you.
//
// Usage:
//
//	dodgeball play       - Play in the terminal (default)
//	dodgeball window     - Play in a 600x600 desktop window
//	dodgeball config     - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Game config YAML (default: search path, then built-in)
//	--seed <value>     - RNG seed for reproducible obstacles
//	--log-file <path>  - Write logs to a file
//	--debug            - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodgeball",
	Short: "Dodge Ball - dodge the falling balls",
	Long: `Dodge Ball is a tiny arcade game. Move the square with the arrow keys
(or WASD) and avoid the falling balls. The first hit ends the game.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  dodgeball
  dodgeball play --seed 42
  dodgeball window
  dodgeball config --config ./my-dodgeball.yaml`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
