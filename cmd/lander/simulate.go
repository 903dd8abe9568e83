package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lunar-lander/internal/core"
	"github.com/vovakirdan/lunar-lander/internal/lander"
	"github.com/vovakirdan/lunar-lander/internal/replay"
	"github.com/vovakirdan/lunar-lander/internal/schedule"
)

var (
	flagScript   string
	flagTicks    uint64
	flagRealtime bool
	flagWidth    int
	flagHeight   int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Replay a scripted run without a terminal",
	Long: `Run a YAML replay script against a fresh session and print a summary.
The same script and seed always produce the same final state hash.

Script format:
  seed: 42          # optional, overrides --seed
  ticks: 600        # optional, defaults to 300 ticks after the last event
  events:
    - {tick: 1, command: start}
    - {tick: 10, command: thrust-on}
    - {tick: 40, command: thrust-off}

Commands: start, thrust-on, thrust-off, rotate-left-on, rotate-left-off,
rotate-right-on, rotate-right-off, pause.

Examples:
  lander simulate --script runs/landing.yaml
  lander simulate --script runs/landing.yaml --ticks 2000
  lander simulate --script runs/landing.yaml --realtime --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Path to replay script YAML")
	simulateCmd.Flags().Uint64Var(&flagTicks, "ticks", 0, "Override the script length in ticks")
	simulateCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run at --fps instead of as fast as possible")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Screen width in cells the world is sized for")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Screen height in cells the world is sized for")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	_ = simulateCmd.MarkFlagRequired("script")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	script, err := replay.LoadFile(flagScript)
	if err != nil {
		return err
	}
	if flagTicks > 0 {
		script.Ticks = flagTicks
	}

	if err := applyLanderFlags(); err != nil {
		return err
	}
	cfg, err := lander.LoadConfig()
	if err != nil {
		logger.Warn("using default lander config", "error", err)
	}

	seed := flagSeed
	if script.HasSeed {
		seed = script.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runtime := core.RuntimeConfig{ScreenW: flagWidth, ScreenH: flagHeight, TickRate: flagFPS, Seed: seed}
	sess := lander.NewSession(cfg, lander.WorldFor(cfg, runtime), flagFPS, seed)

	var sched schedule.Scheduler = schedule.Stepper{Max: script.Ticks}
	if flagRealtime {
		sched = schedule.Ticker{Period: schedule.Period(flagFPS), Max: script.Ticks}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	logger.Debug("replay starting", "script", flagScript, "seed", seed, "ticks", script.Ticks)
	sum, err := replay.Run(ctx, sched, sess, script, logger)
	printSummary(sum, seed)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func printSummary(sum replay.Summary, seed int64) {
	fmt.Printf("Seed:       %d\n", seed)
	fmt.Printf("Ticks:      %d\n", sum.Ticks)
	fmt.Printf("Landings:   %d\n", sum.Landings)
	fmt.Printf("Crashes:    %d\n", sum.Crashes)
	fmt.Printf("Lives lost: %d\n", sum.LivesLost)
	fmt.Printf("Game overs: %d\n", sum.GameOvers)
	fmt.Printf("Score:      %d\n", sum.Score)
	fmt.Printf("Top score:  %d\n", sum.TopScore)
	fmt.Printf("Hash:       %016x\n", sum.Hash)
}
