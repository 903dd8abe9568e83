package lander

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/lunar-lander/internal/config"
)

// World is the size of the playfield in world units. Y grows downward and
// the bottom edge is the ground.
type World struct {
	Width  float64
	Height float64
}

// Phase is the coarse state of a session.
type Phase int

const (
	PhaseIdle      Phase = iota // Title screen, waiting for Start
	PhaseFlying                 // Under player control
	PhaseExploding              // Explosion countdown, controls ignored
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFlying:
		return "flying"
	case PhaseExploding:
		return "exploding"
	default:
		return "unknown"
	}
}

// Command is a discrete player input. Hold-style controls arrive as On/Off pairs.
type Command int

const (
	CmdStart Command = iota
	CmdThrustOn
	CmdThrustOff
	CmdRotateLeftOn
	CmdRotateLeftOff
	CmdRotateRightOn
	CmdRotateRightOff
	CmdTogglePause
)

var commandNames = map[Command]string{
	CmdStart:          "start",
	CmdThrustOn:       "thrust-on",
	CmdThrustOff:      "thrust-off",
	CmdRotateLeftOn:   "rotate-left-on",
	CmdRotateLeftOff:  "rotate-left-off",
	CmdRotateRightOn:  "rotate-right-on",
	CmdRotateRightOff: "rotate-right-off",
	CmdTogglePause:    "pause",
}

// String returns the command's script name.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCommand converts a script name such as "thrust-on" to a Command.
func ParseCommand(s string) (Command, error) {
	for c, name := range commandNames {
		if name == s {
			return c, nil
		}
	}
	return 0, fmt.Errorf("lander: unknown command %q", s)
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventLanded        EventKind = iota // Safe landing, score incremented
	EventCrashed                        // Explosion started
	EventLifeLost                       // Explosion finished, ship respawned
	EventGameOver                       // Explosion finished on the last life
	EventThrustUpgrade                  // Engine got stronger
	EventFuelEmpty                      // Tank ran dry, thrust cut
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLanded:
		return "landed"
	case EventCrashed:
		return "crashed"
	case EventLifeLost:
		return "life-lost"
	case EventGameOver:
		return "game-over"
	case EventThrustUpgrade:
		return "thrust-upgrade"
	case EventFuelEmpty:
		return "fuel-empty"
	default:
		return "unknown"
	}
}

// Event records a notable state change for logging and tests.
type Event struct {
	Kind    EventKind
	Tick    uint64
	Score   int
	Outcome Outcome // Set for EventCrashed
}

// Session owns one lander game: the ship, the pad and the scores.
// A Session is not safe for concurrent use; callers serialize Apply and Step.
type Session struct {
	cfg   config.LanderConfig
	ramp  *config.Ramp
	rng   *rand.Rand
	world World
	fps   int

	ship   Ship
	target Target

	score        int
	topScore     int
	lastRunScore int
	runsEnded    int
	playing      bool
	paused       bool
	tick         uint64

	events []Event
}

// NewSession creates an idle session. fps is the tick rate all per-second
// constants are divided by.
func NewSession(cfg config.LanderConfig, world World, fps int, seed int64) *Session {
	if fps <= 0 {
		fps = 30
	}
	s := &Session{
		cfg:   cfg,
		ramp:  config.NewRamp(cfg.Difficulty),
		rng:   rand.New(rand.NewSource(seed)),
		world: world,
		fps:   fps,
	}
	s.ship = newShip(cfg, world)
	s.target = newTarget(s.rng, cfg, world)
	return s
}

// Apply feeds one player command into the session.
func (s *Session) Apply(cmd Command) {
	switch cmd {
	case CmdStart:
		if !s.playing {
			s.playing = true
			s.paused = false
		}
	case CmdThrustOn:
		s.ship.Thrusting = s.ship.Fuel > 0
	case CmdThrustOff:
		s.ship.Thrusting = false
	case CmdRotateLeftOn:
		s.ship.Rot = s.turnRate()
	case CmdRotateRightOn:
		s.ship.Rot = -s.turnRate()
	case CmdRotateLeftOff, CmdRotateRightOff:
		s.ship.Rot = 0
	case CmdTogglePause:
		if s.playing {
			s.paused = !s.paused
		}
	}
}

// turnRate converts the configured degrees per second to radians per tick.
func (s *Session) turnRate() float64 {
	return s.cfg.Physics.TurnSpeed / 180 * math.Pi / float64(s.fps)
}

// Step advances the simulation by one tick and returns the events it produced.
// The returned slice is reused by the next call.
func (s *Session) Step() []Event {
	s.events = s.events[:0]
	if !s.playing || s.paused {
		return s.events
	}
	s.tick++

	if s.ship.Exploding() {
		s.ship.ExplodeTicks--
		if s.ship.ExplodeTicks <= 0 {
			s.destroyShip()
		}
		return s.events
	}

	s.fly()
	return s.events
}

// fly runs one tick of controlled flight.
func (s *Session) fly() {
	if s.ship.Fuel <= 0 {
		s.ship.Thrusting = false
	}

	outcome := Classify(s.contact())
	switch {
	case outcome == OutcomeLanded:
		s.land()
	case outcome.Fatal():
		s.explode(outcome)
	case s.ship.Thrusting:
		s.burn()
	default:
		s.coast()
	}

	s.integrate()
}

func (s *Session) contact() Contact {
	return Contact{
		Ship:      s.ship,
		Target:    s.target,
		World:     s.world,
		SafeSpeed: s.cfg.Physics.SafeSpeed,
	}
}

// land scores a safe landing and sets up the next approach.
func (s *Session) land() {
	s.score++
	s.ship.resetPose(s.cfg, s.world)
	s.target = newTarget(s.rng, s.cfg, s.world)
	s.emit(Event{Kind: EventLanded})

	if s.ramp.ThrustStep(s.score) {
		s.ship.ThrustSpeed++
		s.emit(Event{Kind: EventThrustUpgrade})
	}
}

// explode starts the explosion countdown and kills all momentum.
func (s *Session) explode(cause Outcome) {
	s.ship.ExplodeTicks = max(1, int(math.Ceil(s.cfg.Ship.ExplodeDuration*float64(s.fps))))
	s.ship.Vel.X = 0
	s.ship.Vel.Y = 0
	s.emit(Event{Kind: EventCrashed, Outcome: cause})
}

// destroyShip runs once the explosion has played out.
func (s *Session) destroyShip() {
	if s.ship.Lives <= 1 {
		if s.score > s.topScore {
			s.topScore = s.score
		}
		s.lastRunScore = s.score
		s.runsEnded++
		s.emit(Event{Kind: EventGameOver})

		s.score = 0
		s.target = newTarget(s.rng, s.cfg, s.world)
		s.ship = newShip(s.cfg, s.world)
		s.playing = false
		return
	}

	s.ship.Lives--
	s.ship.resetPose(s.cfg, s.world)
	s.emit(Event{Kind: EventLifeLost})
}

// burn fires the engine along the ship's heading.
func (s *Session) burn() {
	fps := float64(s.fps)
	s.ship.Vel.X += s.ship.ThrustSpeed * math.Cos(s.ship.Angle) / fps
	s.ship.Vel.Y -= s.ship.ThrustSpeed * math.Sin(s.ship.Angle) / fps

	s.ship.Fuel--
	if s.ship.Fuel <= 0 {
		s.ship.Fuel = 0
		s.ship.Thrusting = false
		s.emit(Event{Kind: EventFuelEmpty})
	}
}

// coast applies drag and gravity. Drag only slows ascent, never the fall.
func (s *Session) coast() {
	fps := float64(s.fps)
	friction := s.cfg.Physics.Friction

	s.ship.Vel.X -= friction * s.ship.Vel.X / fps
	if s.ship.Vel.Y < 0 {
		s.ship.Vel.Y -= friction * s.ship.Vel.Y / fps
	}

	s.ship.Vel.Y += s.ramp.Gravity(s.cfg.Physics.Gravity, s.score) / fps
}

// integrate moves everything and keeps the ship inside the side walls.
func (s *Session) integrate() {
	s.ship.Angle += s.ship.Rot
	s.ship.Pos = s.ship.Pos.Add(s.ship.Vel)

	if s.ramp.DriftX(s.score) {
		s.target.driftX(s.world)
	}
	if s.ramp.DriftY(s.score) {
		s.target.driftY(s.world)
	}

	// Soft bounce: nudge back inward rather than reflect.
	if s.ship.Pos.X < s.ship.R {
		s.ship.Vel.X = 1
	} else if s.ship.Pos.X > s.world.Width-s.ship.R {
		s.ship.Vel.X = -1
	}
}

func (s *Session) emit(e Event) {
	e.Tick = s.tick
	e.Score = s.score
	s.events = append(s.events, e)
}

// SeedTopScore raises the top score, e.g. from persisted history.
// It never lowers it.
func (s *Session) SeedTopScore(score int) {
	if score > s.topScore {
		s.topScore = score
	}
}

// Phase returns the current coarse state.
func (s *Session) Phase() Phase {
	switch {
	case !s.playing:
		return PhaseIdle
	case s.ship.Exploding():
		return PhaseExploding
	default:
		return PhaseFlying
	}
}

// Ship returns a copy of the ship.
func (s *Session) Ship() Ship { return s.ship }

// Target returns a copy of the landing pad.
func (s *Session) Target() Target { return s.target }

// World returns the playfield size.
func (s *Session) World() World { return s.world }

// Score returns the score of the current run.
func (s *Session) Score() int { return s.score }

// TopScore returns the best finished run seen by this session.
func (s *Session) TopScore() int { return s.topScore }

// LastRunScore returns the final score of the most recently finished run.
func (s *Session) LastRunScore() int { return s.lastRunScore }

// RunsEnded returns how many runs have ended in game over.
func (s *Session) RunsEnded() int { return s.runsEnded }

// Paused reports whether the session is paused.
func (s *Session) Paused() bool { return s.paused }

// Tick returns the number of simulated ticks.
func (s *Session) Tick() uint64 { return s.tick }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.LanderConfig { return s.cfg }
