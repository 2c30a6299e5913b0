package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kaya/internal/config"
	"github.com/vovakirdan/kaya/internal/core"
	"github.com/vovakirdan/kaya/internal/games/rocket"
	"github.com/vovakirdan/kaya/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the rocket scene",
	Long: `Start a rocket session.

The scene waits for the first tap. Each tap cancels the rocket's fall and
pushes it upward. A run ends on the first contact with an obstacle bar or
the edge of the scene; the final score stays on screen until you quit.

Controls:
  Space/Up/W/Enter - Thrust
  ?                - Toggle help
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  kaya play
  kaya play --fps 120
  kaya play --config ./my-rocket.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closer, err := openLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	game, err := rocket.New(gameCfg, logger)
	if err != nil {
		return err
	}

	logger.Info("session started", "fps", cfg.TickRate, "screen", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(game, logger, cfg); err != nil {
		logger.Error("session failed", "err", err)
		return err
	}
	logger.Info("session ended", "score", game.Score(), "phase", game.State().Phase)
	return nil
}
