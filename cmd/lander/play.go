package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lunar-lander/internal/config"
	"github.com/vovakirdan/lunar-lander/internal/core"
	"github.com/vovakirdan/lunar-lander/internal/lander"
	"github.com/vovakirdan/lunar-lander/internal/platform/tui"
	"github.com/vovakirdan/lunar-lander/internal/registry"
	"github.com/vovakirdan/lunar-lander/internal/storage"
)

var (
	flagConfig      string
	flagDifficulty  string
	flagHold        time.Duration
	flagHoldInitial time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing in this terminal. The game defaults to lander.

Controls:
  Enter        - Start
  Space/Up     - Thrust (hold)
  Left/Right   - Rotate (hold)
  P            - Pause
  Tab          - Scoreboard
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Gravity and drift ramp slowly
  normal - The configured ramp
  hard   - Gravity and drift ramp quickly
  fixed  - No progression, the ship and pad never get harder

Terminals do not report key releases, so a held key counts as held until
--hold passes without an auto-repeat. The first press is held for
--hold-initial to bridge the terminal's repeat delay.

Examples:
  lander play
  lander play --difficulty hard
  lander play --config ./my-lander.yaml
  lander play --hold 120ms`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldRepeat, "How long a key stays held after an auto-repeat press")
	playCmd.Flags().DurationVar(&flagHoldInitial, "hold-initial", tui.DefaultHoldInitial, "How long a key stays held after its first press")
}

func gameArg(args []string) (string, error) {
	gameID := lander.ID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown game %q, run 'lander list' to see available games", gameID)
	}
	return gameID, nil
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	if err := applyLanderFlags(); err != nil {
		return err
	}

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

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Continue without storage - game still works
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(game, store, cfg, tui.Options{
		Player:      localPlayer(),
		HoldInitial: flagHoldInitial,
		HoldRepeat:  flagHold,
		Logger:      logger,
	})
}

// applyLanderFlags hands --config and --difficulty to the lander package and
// reports a bad config before the terminal switches to the game screen.
func applyLanderFlags() error {
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return err
		}
		lander.SetDifficultyPreset(preset)
	}
	lander.SetConfigPath(flagConfig)

	if _, err := lander.LoadConfig(); err != nil {
		logger.Warn("using default lander config", "error", err)
	}
	return nil
}

func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}
