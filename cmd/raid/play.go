package main

import (
	"io"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/river-raid/internal/core"
	"github.com/vovakirdan/river-raid/internal/games/raid"
	"github.com/vovakirdan/river-raid/internal/platform/tui"
	"github.com/vovakirdan/river-raid/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Fly in this terminal",
	Long: `Start a game of River Raid.

Controls:
  Left/Right, A/D  - Steer
  Up/Down, W/S     - Throttle up / down
  Space            - Fire
  Enter            - Start, restart after game over
  P                - Pause
  Ctrl+S           - Screenshot to ~/.raid/screenshots
  ?                - Toggle key help
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Extra lives, slower narrowing, thriftier engine
  normal - The configured values
  hard   - Fewer lives, faster narrowing, more traffic
  fixed  - No progression, the river stays at the start level

Logs are written to ~/.raid/raid.log.

Examples:
  raid play
  raid play --difficulty easy
  raid play --seed 42 --fps 30
  raid play --config ./my-raid.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if f, fileErr := openLogFile(); fileErr == nil {
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, "raid")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(raid.New(cfg), rc, tui.Options{
		Store:  store,
		Pilot:  pilotName(),
		Logger: logger,
	})

	if store != nil {
		store.Close()
	}
	return runErr
}

// pilotName is the local user name recorded with finished runs.
func pilotName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
