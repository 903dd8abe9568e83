package tui

import (
	"time"

	"github.com/vovakirdan/lunar-lander/internal/core"
)

// Default hold windows. Terminals wait a while before auto-repeating a held
// key and then repeat every few tens of milliseconds.
const (
	DefaultHoldInitial = 500 * time.Millisecond
	DefaultHoldRepeat  = 180 * time.Millisecond
)

// HoldLatch turns a stream of key presses into held actions.
// Terminals report no key releases, so an action counts as held until no
// press has arrived for the latch window. The first press of a hold gets
// the longer Initial window to cover the auto-repeat delay.
type HoldLatch struct {
	Initial time.Duration
	Repeat  time.Duration

	until map[core.Action]time.Time
}

// NewHoldLatch creates a latch. Non-positive windows use the defaults.
func NewHoldLatch(initial, repeat time.Duration) *HoldLatch {
	if repeat <= 0 {
		repeat = DefaultHoldRepeat
	}
	if initial <= 0 {
		initial = DefaultHoldInitial
	}
	if initial < repeat {
		initial = repeat
	}
	return &HoldLatch{
		Initial: initial,
		Repeat:  repeat,
		until:   make(map[core.Action]time.Time),
	}
}

// Press records a key press for a at time now.
func (h *HoldLatch) Press(a core.Action, now time.Time) {
	window := h.Initial
	if h.Held(a, now) {
		window = h.Repeat
	}
	if exp := now.Add(window); exp.After(h.until[a]) {
		h.until[a] = exp
	}
}

// Held reports whether a is still held at time now.
func (h *HoldLatch) Held(a core.Action, now time.Time) bool {
	exp, ok := h.until[a]
	return ok && now.Before(exp)
}

// Release drops a immediately.
func (h *HoldLatch) Release(a core.Action) {
	delete(h.until, a)
}

// Reset drops every held action.
func (h *HoldLatch) Reset() {
	clear(h.until)
}

// Fill sets every action held at time now on the frame.
func (h *HoldLatch) Fill(frame *core.InputFrame, now time.Time) {
	for a, exp := range h.until {
		if now.Before(exp) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
}
