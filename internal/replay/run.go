package replay

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lunar-lander/internal/lander"
	"github.com/vovakirdan/lunar-lander/internal/schedule"
)

// Summary describes a finished replay.
type Summary struct {
	Ticks     uint64 // Scheduler ticks run, including idle ones
	Landings  int
	Crashes   int
	LivesLost int
	GameOvers int
	Score     int
	TopScore  int
	Hash      uint64 // Snapshot hash of the final state
}

func (s *Summary) record(e lander.Event) {
	switch e.Kind {
	case lander.EventLanded:
		s.Landings++
	case lander.EventCrashed:
		s.Crashes++
	case lander.EventLifeLost:
		s.LivesLost++
	case lander.EventGameOver:
		s.GameOvers++
	}
}

// Run plays script against sess, one scheduler tick per simulation step.
// Commands for a tick are applied before that tick is stepped. The run ends
// after script.Ticks ticks or earlier if the scheduler stops it.
func Run(ctx context.Context, sched schedule.Scheduler, sess *lander.Session, script Script, logger *log.Logger) (Summary, error) {
	var sum Summary
	next := 0

	err := sched.Run(ctx, func(tick uint64) bool {
		for next < len(script.Steps) && script.Steps[next].Tick <= tick {
			cmd := script.Steps[next].Command
			logger.Debug("apply", "tick", tick, "command", cmd)
			sess.Apply(cmd)
			next++
		}

		for _, e := range sess.Step() {
			sum.record(e)
			logEvent(logger, e)
		}
		sum.Ticks = tick
		return tick < script.Ticks
	})

	sum.Score = sess.Score()
	sum.TopScore = sess.TopScore()
	sum.Hash = sess.Snapshot().Hash()
	if err != nil {
		return sum, fmt.Errorf("replay: %w", err)
	}
	return sum, nil
}

func logEvent(logger *log.Logger, e lander.Event) {
	switch e.Kind {
	case lander.EventCrashed:
		logger.Warn(e.Kind, "tick", e.Tick, "score", e.Score, "cause", e.Outcome)
	case lander.EventFuelEmpty:
		logger.Warn(e.Kind, "tick", e.Tick)
	default:
		logger.Info(e.Kind, "tick", e.Tick, "score", e.Score)
	}
}
