package lander

import (
	"math/rand"

	"github.com/vovakirdan/lunar-lander/internal/config"
	"github.com/vovakirdan/lunar-lander/internal/core"
)

// Target is the landing pad. Only its top edge is safe to touch.
type Target struct {
	core.RectF
	DirX int // Horizontal drift per tick once drifting is unlocked
	DirY int // Vertical drift per tick once drifting is unlocked
}

// newTarget places a pad somewhere in the lower half of the world.
func newTarget(rng *rand.Rand, cfg config.LanderConfig, world World) Target {
	span := cfg.Target.MaxSize - cfg.Target.MinSize
	return Target{
		RectF: core.RectF{
			X: rng.Float64() * world.Width,
			Y: rng.Float64()*(world.Height/2) + world.Height/2,
			W: rng.Float64()*span + cfg.Target.MinSize,
			H: rng.Float64()*span + cfg.Target.MinSize,
		},
		DirX: driftDirection(rng, cfg.Target.DriftMode),
		DirY: driftDirection(rng, cfg.Target.DriftMode),
	}
}

// driftDirection draws a drift step.
// Classic mode adds two coin flips of ±1, so it yields -2, 0 or +2 with
// probabilities 1/4, 1/2, 1/4; a zero means the pad never moves on that axis.
func driftDirection(rng *rand.Rand, mode string) int {
	flip := func() int { return rng.Intn(2)*2 - 1 }
	if mode == config.DriftUnit {
		return flip()
	}
	return flip() + flip()
}

// driftX moves the pad sideways, reversing when an edge reaches a wall.
func (t *Target) driftX(world World) {
	if t.X <= 0 || t.Right() >= world.Width {
		t.DirX = -t.DirX
	}
	t.X += float64(t.DirX)
}

// driftY moves the pad vertically, reversing at the top or the ground.
func (t *Target) driftY(world World) {
	if t.Y <= 0 || t.Bottom() >= world.Height {
		t.DirY = -t.DirY
	}
	t.Y += float64(t.DirY)
}
