package lander

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot contains the complete observable state of a session.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Paused    bool
	Score     int
	TopScore  int
	RunsEnded int

	ShipX, ShipY   float64
	ShipVX, ShipVY float64
	ShipAngle      float64
	ShipRot        float64
	ThrustSpeed    float64
	Thrusting      bool
	Fuel           int
	Lives          int
	ExplodeTicks   int

	TargetX, TargetY float64
	TargetW, TargetH float64
	TargetDX         int
	TargetDY         int
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:      s.tick,
		Phase:     s.Phase(),
		Paused:    s.paused,
		Score:     s.score,
		TopScore:  s.topScore,
		RunsEnded: s.runsEnded,

		ShipX:        s.ship.Pos.X,
		ShipY:        s.ship.Pos.Y,
		ShipVX:       s.ship.Vel.X,
		ShipVY:       s.ship.Vel.Y,
		ShipAngle:    s.ship.Angle,
		ShipRot:      s.ship.Rot,
		ThrustSpeed:  s.ship.ThrustSpeed,
		Thrusting:    s.ship.Thrusting,
		Fuel:         s.ship.Fuel,
		Lives:        s.ship.Lives,
		ExplodeTicks: s.ship.ExplodeTicks,

		TargetX:  s.target.X,
		TargetY:  s.target.Y,
		TargetW:  s.target.W,
		TargetH:  s.target.H,
		TargetDX: s.target.DirX,
		TargetDY: s.target.DirY,
	}
}

// Hash returns an xxhash digest of the snapshot for determinism testing.
// Floats are hashed by their exact bit patterns.
func (snap Snapshot) Hash() uint64 {
	d := xxhash.New()
	var buf [8]byte

	putU := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		d.Write(buf[:]) //nolint:errcheck // xxhash.Digest.Write never fails
	}
	putI := func(v int) { putU(uint64(int64(v))) } //#nosec G115 -- hash computation
	putF := func(v float64) { putU(math.Float64bits(v)) }
	putB := func(v bool) {
		if v {
			putU(1)
		} else {
			putU(0)
		}
	}

	putU(snap.Tick)
	putI(int(snap.Phase))
	putB(snap.Paused)
	putI(snap.Score)
	putI(snap.TopScore)
	putI(snap.RunsEnded)

	putF(snap.ShipX)
	putF(snap.ShipY)
	putF(snap.ShipVX)
	putF(snap.ShipVY)
	putF(snap.ShipAngle)
	putF(snap.ShipRot)
	putF(snap.ThrustSpeed)
	putB(snap.Thrusting)
	putI(snap.Fuel)
	putI(snap.Lives)
	putI(snap.ExplodeTicks)

	putF(snap.TargetX)
	putF(snap.TargetY)
	putF(snap.TargetW)
	putF(snap.TargetH)
	putI(snap.TargetDX)
	putI(snap.TargetDY)

	return d.Sum64()
}
