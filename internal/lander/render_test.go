package lander

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lunar-lander/internal/config"
	"github.com/vovakirdan/lunar-lander/internal/core"
)

// newScreenSession builds a session that exactly fills an 80x24 screen.
func newScreenSession() (*Session, *core.Screen) {
	cfg := config.DefaultLanderConfig()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
	return NewSession(cfg, WorldFor(cfg, rt), 30, 1), core.NewScreen(80, 24)
}

func TestRenderTitle(t *testing.T) {
	s, scr := newScreenSession()
	s.SeedTopScore(12)

	s.Render(scr)
	out := scr.String()

	if !strings.Contains(out, "Press Enter to begin") {
		t.Error("title screen should tell the player how to start")
	}
	if !strings.Contains(out, "top score: 12") {
		t.Error("title screen should show the top score")
	}
	if strings.Contains(out, "GAME OVER") {
		t.Error("first title screen should not say game over")
	}
}

func TestRenderGameOver(t *testing.T) {
	s, scr := newScreenSession()
	s.Apply(CmdStart)
	s.score = 4
	s.ship.Lives = 1
	s.explode(OutcomeGroundImpact)
	s.destroyShip()

	s.Render(scr)
	out := scr.String()

	if !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "Score: 4") {
		t.Errorf("expected game over with the final score, got:\n%s", out)
	}
}

func TestRenderFlight(t *testing.T) {
	s, scr := newScreenSession()
	s.Apply(CmdStart)
	s.Apply(CmdThrustOn)
	s.Step()

	s.Render(scr)

	hud := scr.Row(0)
	for _, want := range []string{"vertical speed: 0", "fuel: 99%", "lives: 3", "score: 0", "top score: 0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if scr.Count(NoseChar) != 1 {
		t.Errorf("Count(NoseChar) = %d, expected 1", scr.Count(NoseChar))
	}
	if scr.Count(HullChar) == 0 {
		t.Error("ship hull not drawn")
	}
	if scr.Count(TailChar) != 1 {
		t.Errorf("Count(TailChar) = %d, expected 1 while thrusting", scr.Count(TailChar))
	}

	green := 0
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if scr.GetCell(x, y).Color == core.ColorBrightGreen {
				green++
			}
		}
	}
	if green == 0 {
		t.Error("target not drawn")
	}
}

func TestRenderExplosion(t *testing.T) {
	s, scr := newScreenSession()
	s.Apply(CmdStart)
	s.ship.Pos = core.Vec2{X: 400, Y: 200}
	s.explode(OutcomeTargetImpact)

	s.Render(scr)

	if scr.Count(NoseChar) != 0 {
		t.Error("ship should not be drawn while exploding")
	}
	if scr.Count('█') == 0 || scr.Count('░') == 0 {
		t.Error("explosion rings not drawn")
	}
	// Center of the blast is the innermost ring.
	if c := scr.GetCell(40, 11); c.Color != core.ColorBrightWhite {
		t.Errorf("blast center color = %v, expected bright white", c.Color)
	}
}

func TestRenderPaused(t *testing.T) {
	s, scr := newScreenSession()
	s.Apply(CmdStart)
	s.Apply(CmdTogglePause)

	s.Render(scr)

	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("pause overlay missing")
	}
}

func TestRenderTinyScreen(t *testing.T) {
	cfg := config.DefaultLanderConfig()
	rt := core.RuntimeConfig{ScreenW: 5, ScreenH: 3, TickRate: 30}
	s := NewSession(cfg, WorldFor(cfg, rt), 30, 1)
	scr := core.NewScreen(5, 3)

	s.Render(scr)
	s.Apply(CmdStart)
	s.Step()
	s.Render(scr)
}
