package config

// Ramp calculates score-driven difficulty: stronger gravity, a stronger
// engine at regular intervals and a target that starts to wander.
type Ramp struct {
	cfg DifficultyConfig
}

// NewRamp creates a new difficulty ramp.
func NewRamp(cfg DifficultyConfig) *Ramp {
	return &Ramp{cfg: cfg}
}

// IsEnabled returns whether difficulty progression is active.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled
}

// Gravity returns the gravity for the given score: base + (score/divisor)².
func (r *Ramp) Gravity(base float64, score int) float64 {
	if !r.cfg.Enabled || r.cfg.GravityDivisor <= 0 {
		return base
	}
	k := float64(score) / r.cfg.GravityDivisor
	return base + k*k
}

// ThrustStep reports whether reaching this score upgrades the engine.
func (r *Ramp) ThrustStep(score int) bool {
	if !r.cfg.Enabled || r.cfg.ThrustStepEvery <= 0 || score <= 0 {
		return false
	}
	return score%r.cfg.ThrustStepEvery == 0
}

// DriftX reports whether the target drifts horizontally at this score.
func (r *Ramp) DriftX(score int) bool {
	return r.cfg.Enabled && score >= r.cfg.DriftXAt
}

// DriftY reports whether the target drifts vertically at this score.
func (r *Ramp) DriftY(score int) bool {
	return r.cfg.Enabled && score >= r.cfg.DriftYAt
}
