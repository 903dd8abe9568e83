package lander

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lunar-lander/internal/core"
)

// Visual characters for rendering
const (
	HullChar  = '*'
	NoseChar  = 'A'
	FlameChar = '░'
	TailChar  = '▒'
)

// explosionRings are drawn outermost first, each scaled from the ship radius.
var explosionRings = []struct {
	scale float64
	char  rune
	color core.Color
}{
	{1.7, '░', core.ColorDarkRed},
	{1.4, '▒', core.ColorRed},
	{1.1, '▓', core.ColorOrange},
	{0.8, '█', core.ColorYellow},
	{0.5, '█', core.ColorBrightWhite},
}

var instructions = []string{
	"Welcome to Lunar Lander!",
	"Land gently on top of the target.",
	"Don't hit the ground or touch down too fast.",
	"Watch your fuel!",
	"Space: thrust   Left/Right: rotate   P: pause",
	"Press Enter to begin",
}

// Render draws the session into dst. World units are mapped onto cells using
// the configured cell size; the top HUD rows are reserved for status text.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	if !s.playing {
		s.drawTitle(dst)
		return
	}

	s.drawTarget(dst)
	if s.ship.Exploding() {
		s.drawExplosion(dst)
	} else {
		if s.ship.Thrusting {
			s.drawFlame(dst)
		}
		s.drawShip(dst)
	}
	s.drawHUD(dst)

	if s.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// project converts a world point to a cell.
func (s *Session) project(p core.Vec2) (int, int) {
	w := s.cfg.World
	x := int(math.Floor(p.X / w.CellWidth))
	y := int(math.Floor(p.Y/w.CellHeight)) + w.HUDRows
	return x, y
}

func (s *Session) drawHUD(dst *core.Screen) {
	fuel := 0
	if s.cfg.Ship.Fuel > 0 {
		fuel = core.Clamp(s.ship.Fuel*100/s.cfg.Ship.Fuel, 0, 100)
	}
	left := fmt.Sprintf(" vertical speed: %d  fuel: %d%%  lives: %d ",
		-int(s.ship.Vel.Y), fuel, s.ship.Lives)
	dst.DrawText(0, 0, left)

	right := fmt.Sprintf(" score: %d  top score: %d ", s.score, s.topScore)
	dst.DrawText(dst.Width()-len(right), 0, right)
}

func (s *Session) drawTitle(dst *core.Screen) {
	s.drawHUD(dst)

	y := (dst.Height() - len(instructions)) / 2
	if s.runsEnded > 0 {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d", s.lastRunScore))
		y = (dst.Height()+5)/2 + 1
	}
	for i, line := range instructions {
		dst.DrawTextCentered(y+i, line)
	}
}

func (s *Session) drawTarget(dst *core.Screen) {
	w := s.cfg.World
	t := s.target
	x0, y0 := s.project(core.Vec2{X: t.X, Y: t.Y})
	x1 := int(math.Ceil(t.Right() / w.CellWidth))
	y1 := int(math.Ceil(t.Bottom()/w.CellHeight)) + w.HUDRows
	dst.DrawBox(core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0)), core.ColorBrightGreen)
}

func (s *Session) drawShip(dst *core.Screen) {
	hull := s.ship.Hull()
	s.drawTriangle(dst, hull, HullChar, core.ColorBrightWhite)
	nx, ny := s.project(hull[0])
	dst.SetColored(nx, ny, NoseChar, core.ColorBrightCyan)
}

func (s *Session) drawFlame(dst *core.Screen) {
	flame := s.ship.Flame()
	s.drawTriangle(dst, flame, FlameChar, core.ColorRed)
	tx, ty := s.project(flame[1])
	dst.SetColored(tx, ty, TailChar, core.ColorYellow)
}

func (s *Session) drawTriangle(dst *core.Screen, pts [3]core.Vec2, r rune, c core.Color) {
	for i := range pts {
		x0, y0 := s.project(pts[i])
		x1, y1 := s.project(pts[(i+1)%len(pts)])
		dst.DrawLine(x0, y0, x1, y1, r, c)
	}
}

func (s *Session) drawExplosion(dst *core.Screen) {
	w := s.cfg.World
	x, y := s.project(s.ship.Pos)
	// Centered on the middle of the ship's cell so the core is always visible.
	cx, cy := float64(x)+0.5, float64(y)+0.5
	for _, ring := range explosionRings {
		r := ring.scale * s.ship.R
		dst.FillEllipse(cx, cy, r/w.CellWidth, r/w.CellHeight, ring.char, ring.color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
