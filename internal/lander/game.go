// Package lander implements Lunar Lander: steer a falling ship onto a landing
// pad without crashing into the ground or touching down too fast.
//
// Session holds the simulation and is driven by discrete commands. Game
// adapts it to the registry's per-tick InputFrame model.
package lander

import (
	"github.com/vovakirdan/lunar-lander/internal/config"
	"github.com/vovakirdan/lunar-lander/internal/core"
	"github.com/vovakirdan/lunar-lander/internal/registry"
)

// ID is the registry identifier and the score table key.
const ID = "lander"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// LoadConfig loads the lander config from the configured path and applies
// the selected difficulty preset.
func LoadConfig() (config.LanderConfig, error) {
	cfg, err := config.LoadLander(configPath)
	if err != nil {
		return config.DefaultLanderConfig(), err
	}
	if difficultyPreset != "" {
		config.ApplyLanderPreset(&cfg, difficultyPreset)
	}
	return cfg, nil
}

// WorldFor returns the world that fills a screen of the given runtime size.
func WorldFor(cfg config.LanderConfig, runtime core.RuntimeConfig) World {
	rows := max(1, runtime.ScreenH-cfg.World.HUDRows)
	return World{
		Width:  float64(max(1, runtime.ScreenW)) * cfg.World.CellWidth,
		Height: float64(rows) * cfg.World.CellHeight,
	}
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	runtime   core.RuntimeConfig
	cfg       config.LanderConfig
	configErr error
	sess      *Session

	// Held state from the previous frame, for release edges.
	thrustHeld bool
	leftHeld   bool
	rightHeld  bool

	// Resize requested mid-flight, applied once the session is idle again.
	pendingResize *core.RuntimeConfig

	events []Event
}

// New creates a new Lunar Lander game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Lunar Lander"
}

// Reset initializes or restarts the game. The top score survives.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg, g.configErr = LoadConfig()

	old := g.sess
	g.sess = NewSession(g.cfg, WorldFor(g.cfg, runtime), runtime.TickRate, runtime.Seed)
	if old != nil {
		g.sess.SeedTopScore(old.TopScore())
	}
	g.thrustHeld, g.leftHeld, g.rightHeld = false, false, false
	g.pendingResize = nil
}

// ConfigErr returns the error from the last config load, if the game fell
// back to the built-in defaults.
func (g *Game) ConfigErr() error {
	return g.configErr
}

// Step maps one frame of input to session commands and advances the session.
// Hold actions re-issue their On command every tick so that a thrust
// cut by an empty tank resumes after a landing refuels the ship.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionStart) {
		g.sess.Apply(CmdStart)
	}
	if in.Has(core.ActionPause) {
		g.sess.Apply(CmdTogglePause)
	}

	thrust := in.Has(core.ActionThrust)
	left := in.Has(core.ActionRotateLeft)
	right := in.Has(core.ActionRotateRight)

	// Releases first so a key still held wins.
	if g.thrustHeld && !thrust {
		g.sess.Apply(CmdThrustOff)
	}
	if g.leftHeld && !left {
		g.sess.Apply(CmdRotateLeftOff)
	}
	if g.rightHeld && !right {
		g.sess.Apply(CmdRotateRightOff)
	}
	if thrust {
		g.sess.Apply(CmdThrustOn)
	}
	if left {
		g.sess.Apply(CmdRotateLeftOn)
	}
	if right {
		g.sess.Apply(CmdRotateRightOn)
	}
	g.thrustHeld, g.leftHeld, g.rightHeld = thrust, left, right

	g.events = append(g.events[:0], g.sess.Step()...)

	if g.pendingResize != nil && g.sess.Phase() == PhaseIdle {
		rt := *g.pendingResize
		g.pendingResize = nil
		g.rebuild(rt)
	}

	return core.StepResult{State: g.State()}
}

// Events returns the events produced by the last Step.
func (g *Game) Events() []Event {
	return g.events
}

// Render draws the current game state into the provided screen buffer.
func (g *Game) Render(dst *core.Screen) {
	g.sess.Render(dst)
}

// State returns the current game state. Once a run ends the score reported
// is that run's final score until the next run starts.
func (g *Game) State() core.GameState {
	if g.sess.Phase() == PhaseIdle && g.sess.RunsEnded() > 0 {
		return core.GameState{Score: g.sess.LastRunScore(), GameOver: true}
	}
	return core.GameState{
		Score:  g.sess.Score(),
		Paused: g.sess.Paused(),
	}
}

// SeedTopScore shows a persisted best score on the HUD.
func (g *Game) SeedTopScore(score int) {
	g.sess.SeedTopScore(score)
}

// Resize adapts the world to a new screen size. The world only changes
// between runs; a resize during a run is deferred until the run ends.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	if g.sess.Phase() != PhaseIdle {
		g.pendingResize = &runtime
		return
	}
	g.rebuild(runtime)
}

func (g *Game) rebuild(runtime core.RuntimeConfig) {
	old := g.sess
	g.runtime = runtime
	g.sess = NewSession(g.cfg, WorldFor(g.cfg, runtime), runtime.TickRate, runtime.Seed)
	g.sess.carryScores(old)
}

// Session exposes the underlying simulation.
func (g *Game) Session() *Session {
	return g.sess
}

// carryScores copies the cross-run scoreboard from another session.
func (s *Session) carryScores(old *Session) {
	s.topScore = old.topScore
	s.lastRunScore = old.lastRunScore
	s.runsEnded = old.runsEnded
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
