// Package schedule drives a fixed-rate simulation outside the Bubble Tea loop.
// A Scheduler calls a task once per tick until the task asks to stop, a tick
// limit is reached or the context is cancelled.
package schedule

import (
	"context"
	"time"
)

// Task runs one tick. Ticks are numbered from 1. Returning false stops the run.
type Task func(tick uint64) bool

// Scheduler calls a Task repeatedly. Tasks never run concurrently with each other.
type Scheduler interface {
	Run(ctx context.Context, task Task) error
}

// Period returns the wall-clock length of one tick at the given rate.
func Period(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 30
	}
	return time.Second / time.Duration(tickRate)
}

// Ticker runs a task in real time, once per Period.
type Ticker struct {
	Period time.Duration
	Max    uint64 // 0 = unlimited
}

// Run blocks until the task stops, Max ticks have run or ctx is done.
// It returns ctx.Err() only when cancelled before finishing.
func (t Ticker) Run(ctx context.Context, task Task) error {
	ticker := time.NewTicker(t.Period)
	defer ticker.Stop()

	for tick := uint64(1); t.Max == 0 || tick <= t.Max; tick++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !task(tick) {
				return nil
			}
		}
	}
	return nil
}

// Stepper runs a task back to back with no delay, for headless replays and tests.
type Stepper struct {
	Max uint64 // 0 = unlimited
}

// Run blocks until the task stops, Max ticks have run or ctx is done.
func (s Stepper) Run(ctx context.Context, task Task) error {
	for tick := uint64(1); s.Max == 0 || tick <= s.Max; tick++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !task(tick) {
			return nil
		}
	}
	return nil
}
