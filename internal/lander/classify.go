package lander

// Outcome is the result of checking the ship against the world for one tick.
type Outcome int

const (
	OutcomeNone         Outcome = iota // Free flight
	OutcomeLanded                      // Touched the pad top slowly enough
	OutcomeHardLanding                 // Touched the pad top too fast
	OutcomeGroundImpact                // Fell below the bottom of the world
	OutcomeTargetImpact                // Hit the side or underside of the pad
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLanded:
		return "landed"
	case OutcomeHardLanding:
		return "hard-landing"
	case OutcomeGroundImpact:
		return "ground-impact"
	case OutcomeTargetImpact:
		return "target-impact"
	default:
		return "unknown"
	}
}

// Fatal reports whether the outcome destroys the ship.
func (o Outcome) Fatal() bool {
	return o == OutcomeHardLanding || o == OutcomeGroundImpact || o == OutcomeTargetImpact
}

// Contact is everything a classifier looks at.
type Contact struct {
	Ship      Ship
	Target    Target
	World     World
	SafeSpeed float64
}

// Classifier recognizes one kind of contact.
type Classifier struct {
	Name  string
	Match func(c Contact) (Outcome, bool)
}

// Classifiers lists the contact checks in priority order; the first match wins.
// A ship resting on the pad top also overlaps the pad body, so the landing
// check must stay ahead of the body check.
var Classifiers = []Classifier{
	{Name: "landing", Match: matchLanding},
	{Name: "ground", Match: matchGround},
	{Name: "target-body", Match: matchTargetBody},
}

// Classify runs the classifiers in order and returns the first outcome.
func Classify(c Contact) Outcome {
	for _, cl := range Classifiers {
		if o, ok := cl.Match(c); ok {
			return o
		}
	}
	return OutcomeNone
}

func matchLanding(c Contact) (Outcome, bool) {
	s, t := c.Ship, c.Target
	onTop := s.Bottom() >= t.Y && s.Pos.Y < t.Y && t.OverlapsX(s.Left(), s.Right())
	if !onTop {
		return OutcomeNone, false
	}
	if s.Vel.Y < c.SafeSpeed && s.Vel.X < c.SafeSpeed && !s.Exploding() {
		return OutcomeLanded, true
	}
	return OutcomeHardLanding, true
}

func matchGround(c Contact) (Outcome, bool) {
	if c.Ship.Bottom() > c.World.Height {
		return OutcomeGroundImpact, true
	}
	return OutcomeNone, false
}

func matchTargetBody(c Contact) (Outcome, bool) {
	s, t := c.Ship, c.Target
	if t.OverlapsX(s.Left(), s.Right()) && t.OverlapsY(s.Top(), s.Bottom()) {
		return OutcomeTargetImpact, true
	}
	return OutcomeNone, false
}
