// Package replay runs scripted command sequences against a lander session.
// Scripts make runs reproducible: the same seed and script always produce
// the same final state hash.
package replay

import (
	"errors"
	"fmt"
	"os"

	"github.com/vovakirdan/lunar-lander/internal/lander"
	"gopkg.in/yaml.v3"
)

// TailTicks is how long a script without an explicit length keeps running
// after its last command.
const TailTicks = 300

// ErrInvalidScript is wrapped by every script validation failure.
var ErrInvalidScript = errors.New("invalid replay script")

// YAMLScript represents the YAML structure for a replay file.
type YAMLScript struct {
	Seed   *int64      `yaml:"seed,omitempty"`
	Ticks  uint64      `yaml:"ticks,omitempty"`
	Events []YAMLEvent `yaml:"events"`
}

// YAMLEvent is one scripted command.
type YAMLEvent struct {
	Tick    uint64 `yaml:"tick"`
	Command string `yaml:"command"`
}

// Step is a parsed command scheduled for a tick. It is applied just before
// that tick is simulated.
type Step struct {
	Tick    uint64
	Command lander.Command
}

// Script is a parsed replay ready to run.
type Script struct {
	Seed    int64
	HasSeed bool
	Ticks   uint64
	Steps   []Step
}

// LoadFile reads and parses a replay file.
func LoadFile(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Script{}, fmt.Errorf("replay: %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a replay script.
// Ticks start at 1 and must not decrease.
func Parse(data []byte) (Script, error) {
	var ys YAMLScript
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Script{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	s := Script{Ticks: ys.Ticks}
	if ys.Seed != nil {
		s.Seed, s.HasSeed = *ys.Seed, true
	}

	var last uint64
	for i, e := range ys.Events {
		if e.Tick == 0 {
			return Script{}, fmt.Errorf("%w: event %d: ticks start at 1", ErrInvalidScript, i)
		}
		if e.Tick < last {
			return Script{}, fmt.Errorf("%w: event %d: tick %d before tick %d", ErrInvalidScript, i, e.Tick, last)
		}
		cmd, err := lander.ParseCommand(e.Command)
		if err != nil {
			return Script{}, fmt.Errorf("%w: event %d: %w", ErrInvalidScript, i, err)
		}
		s.Steps = append(s.Steps, Step{Tick: e.Tick, Command: cmd})
		last = e.Tick
	}

	if s.Ticks == 0 {
		s.Ticks = last + TailTicks
	} else if s.Ticks < last {
		return Script{}, fmt.Errorf("%w: ticks %d ends before the last event at tick %d", ErrInvalidScript, s.Ticks, last)
	}
	return s, nil
}
