package schedule

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestStepperMax(t *testing.T) {
	var ticks []uint64
	err := Stepper{Max: 5}.Run(context.Background(), func(tick uint64) bool {
		ticks = append(ticks, tick)
		return true
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(ticks) != 5 || ticks[0] != 1 || ticks[4] != 5 {
		t.Errorf("ticks = %v, expected 1..5", ticks)
	}
}

func TestStepperTaskStops(t *testing.T) {
	n := 0
	err := Stepper{}.Run(context.Background(), func(tick uint64) bool {
		n++
		return tick < 3
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if n != 3 {
		t.Errorf("task ran %d times, expected 3", n)
	}
}

func TestStepperCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	n := 0
	err := Stepper{}.Run(ctx, func(tick uint64) bool {
		n++
		if tick == 4 {
			cancel()
		}
		return true
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if n != 4 {
		t.Errorf("task ran %d times, expected 4", n)
	}
}

func TestTickerMax(t *testing.T) {
	n := 0
	err := Ticker{Period: time.Millisecond, Max: 3}.Run(context.Background(), func(uint64) bool {
		n++
		return true
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if n != 3 {
		t.Errorf("task ran %d times, expected 3", n)
	}
}

func TestTickerCancelled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Ticker{Period: time.Hour}.Run(ctx, func(uint64) bool {
		t.Error("task should not run before the first tick")
		return true
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() error = %v, expected context.DeadlineExceeded", err)
	}
}

func TestPeriod(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{30, time.Second / 30},
		{60, time.Second / 60},
		{0, time.Second / 30},
	}
	for _, tt := range tests {
		if got := Period(tt.rate); got != tt.want {
			t.Errorf("Period(%d) = %v, expected %v", tt.rate, got, tt.want)
		}
	}
}
