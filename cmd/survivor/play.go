package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-survivor/internal/core"
	"github.com/vovakirdan/tui-survivor/internal/platform/tui"
	"github.com/vovakirdan/tui-survivor/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a run in the terminal.

Controls:
  WASD/Arrows  - Move
  1/2/3        - Pick an upgrade card
  Enter        - Start
  R            - New run (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Logs are written to ~/.survivor/survivor.log.

Examples:
  survivor play
  survivor play --difficulty easy
  survivor play --upgrades gemini --log-level debug
  survivor play --seed 42 --config ./my-survivor.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, preset, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile)
	if err != nil {
		return err
	}

	svc, err := newService(flagSeed, logger)
	if err != nil {
		return err
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	// Run history is optional; the game works without it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("run history disabled", "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Upgrades:   svc,
		Store:      store,
		Logger:     logger,
		Difficulty: string(preset),
	})
}
