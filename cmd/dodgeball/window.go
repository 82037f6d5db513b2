package main

import (
	"fmt"
	"os"

	_ "github.com/ebitengine/hideconsole"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/games/dodgeball"
	"github.com/vovakirdan/dodgeball/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a window sized to the world (600x600 by default).

Controls:
  Arrows/WASD  - Move
  Q/Esc        - Quit (or close the window)

Examples:
  dodgeball window
  dodgeball window --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	logger.Debug("config loaded", "source", source, "seed", flagSeed)

	sim := dodgeball.New(cfg, dodgeball.NewRandSource(flagSeed))
	if err := window.Run(sim, cfg.Loop.TickInterval, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
