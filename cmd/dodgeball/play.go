package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodgeball/internal/config"
	"github.com/vovakirdan/dodgeball/internal/core"
	"github.com/vovakirdan/dodgeball/internal/games/dodgeball"
	"github.com/vovakirdan/dodgeball/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Arrows/WASD  - Move
  Q/Esc        - Quit

The world is scaled to fit the terminal. Logs are discarded unless
--log-file is given, so they do not draw over the game.

Examples:
  dodgeball play
  dodgeball play --seed 42 --log-file dodgeball.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close of the log file

	// Get terminal size early so the first frame fits
	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:      width,
		ScreenH:      height,
		TickInterval: cfg.Loop.TickInterval,
		Seed:         flagSeed,
	}
	logger.Debug("config loaded", "source", source, "seed", rt.Seed)

	sim := dodgeball.New(cfg, dodgeball.NewRandSource(rt.Seed))
	if err := tui.Run(sim, rt, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
