package lander

import (
	"math"

	"github.com/vovakirdan/lunar-lander/internal/config"
	"github.com/vovakirdan/lunar-lander/internal/core"
)

// Ship is the player's lander.
type Ship struct {
	Pos          core.Vec2 // Center, world units
	R            float64   // Collision radius (half the ship size)
	Angle        float64   // Heading in radians, counter-clockwise, 0 = pointing right
	Rot          float64   // Angular velocity, radians per tick
	Vel          core.Vec2 // Units per tick
	ThrustSpeed  float64   // Engine acceleration, units per second per second
	Thrusting    bool
	Fuel         int
	Lives        int
	ExplodeTicks int // Remaining explosion frames; 0 = not exploding
}

// newShip creates a ship for the start of a run.
func newShip(cfg config.LanderConfig, world World) Ship {
	s := Ship{
		R:           cfg.Ship.Size / 2,
		ThrustSpeed: cfg.Ship.Thrust,
		Lives:       cfg.Ship.Lives,
	}
	s.resetPose(cfg, world)
	return s
}

// resetPose puts the ship back on the launch point with a full tank.
// Lives and engine upgrades survive.
func (s *Ship) resetPose(cfg config.LanderConfig, world World) {
	s.Pos = core.Vec2{X: cfg.Ship.SpawnX, Y: world.Height / 2}
	s.Angle = math.Pi / 2
	s.Rot = 0
	s.Vel = core.Vec2{}
	s.Thrusting = false
	s.Fuel = cfg.Ship.Fuel
	s.ExplodeTicks = 0
}

// Exploding reports whether the explosion countdown is running.
func (s Ship) Exploding() bool {
	return s.ExplodeTicks > 0
}

// Top returns the y-coordinate of the ship's upper edge.
func (s Ship) Top() float64 {
	return s.Pos.Y - s.R
}

// Bottom returns the y-coordinate of the ship's lower edge.
func (s Ship) Bottom() float64 {
	return s.Pos.Y + s.R
}

// Left returns the x-coordinate of the ship's left edge.
func (s Ship) Left() float64 {
	return s.Pos.X - s.R
}

// Right returns the x-coordinate of the ship's right edge.
func (s Ship) Right() float64 {
	return s.Pos.X + s.R
}

// Hull returns the nose, rear-left and rear-right corners of the ship triangle.
func (s Ship) Hull() [3]core.Vec2 {
	cos, sin := math.Cos(s.Angle), math.Sin(s.Angle)
	x, y, r := s.Pos.X, s.Pos.Y, s.R
	return [3]core.Vec2{
		{X: x + 4.0/3.0*r*cos, Y: y - 4.0/3.0*r*sin},
		{X: x - r*(2.0/3.0*cos+sin), Y: y + r*(2.0/3.0*sin-cos)},
		{X: x - r*(2.0/3.0*cos-sin), Y: y + r*(2.0/3.0*sin+cos)},
	}
}

// Flame returns the rear-left, tail and rear-right corners of the exhaust.
func (s Ship) Flame() [3]core.Vec2 {
	cos, sin := math.Cos(s.Angle), math.Sin(s.Angle)
	x, y, r := s.Pos.X, s.Pos.Y, s.R
	return [3]core.Vec2{
		{X: x - r*(2.0/3.0*cos+0.5*sin), Y: y + r*(2.0/3.0*sin-0.5*cos)},
		{X: x - r*5.0/3.0*cos, Y: y + r*5.0/3.0*sin},
		{X: x - r*(2.0/3.0*cos-0.5*sin), Y: y + r*(2.0/3.0*sin+0.5*cos)},
	}
}
