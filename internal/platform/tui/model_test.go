package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lunar-lander/internal/core"
	"github.com/vovakirdan/lunar-lander/internal/storage"
)

// fakeGame records the frames it is stepped with.
type fakeGame struct {
	frames []core.InputFrame
	resets []core.RuntimeConfig
	state  core.GameState
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets = append(g.resets, cfg)
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState { return g.state }

func (g *fakeGame) last() core.InputFrame {
	return g.frames[len(g.frames)-1]
}

var t0 = time.Unix(1000, 0)

func newTestModel(game *fakeGame, store *storage.Store) Model {
	m := NewModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 30, Seed: 1},
		Options{Player: "tester", HoldInitial: 500 * time.Millisecond, HoldRepeat: 100 * time.Millisecond})
	m.clock = func() time.Time { return t0 }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelReservesHelpRow(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)
	m.Init()

	if len(game.resets) != 1 {
		t.Fatalf("Reset() called %d times, expected 1", len(game.resets))
	}
	if cfg := game.resets[0]; cfg.ScreenW != 80 || cfg.ScreenH != 24 {
		t.Errorf("Reset() config = %dx%d, expected 80x24", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestModelHeldThrust(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = update(t, m, keyMsg(" "))
	m, _ = update(t, m, TickMsg(t0.Add(100*time.Millisecond)))
	if !game.last().Has(core.ActionThrust) {
		t.Error("thrust should be held right after the press")
	}

	m, _ = update(t, m, TickMsg(t0.Add(400*time.Millisecond)))
	if !game.last().Has(core.ActionThrust) {
		t.Error("thrust should stay held through the initial window")
	}

	update(t, m, TickMsg(t0.Add(600*time.Millisecond)))
	if game.last().Has(core.ActionThrust) {
		t.Error("thrust should release once the window expires")
	}
}

func TestModelTurnReleasesOtherTurn(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = update(t, m, keyMsg("a"))
	m, _ = update(t, m, keyMsg("d"))
	update(t, m, TickMsg(t0))

	if game.last().Has(core.ActionRotateLeft) {
		t.Error("left turn should end when right is pressed")
	}
	if !game.last().Has(core.ActionRotateRight) {
		t.Error("right turn should be held")
	}
}

func TestModelPressActionsLastOneTick(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = update(t, m, keyMsg("p"))
	m, _ = update(t, m, TickMsg(t0))
	if !game.last().Has(core.ActionPause) {
		t.Fatal("pause should reach the game on the next tick")
	}

	m, _ = update(t, m, TickMsg(t0))
	if game.last().Has(core.ActionPause) {
		t.Error("pause should fire only once")
	}

	m, _ = update(t, m, keyMsg("enter"))
	update(t, m, TickMsg(t0))
	if !game.last().Has(core.ActionStart) {
		t.Error("enter should start the game")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)

	m, cmd := update(t, m, keyMsg("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelScoreboardFreezesGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	m, _ = update(t, m, keyMsg(" "))
	m, _ = update(t, m, keyMsg("tab"))
	if !m.ShowingScores() {
		t.Fatal("tab should open the scoreboard")
	}

	m, _ = update(t, m, TickMsg(t0))
	if len(game.frames) != 0 {
		t.Errorf("game stepped %d times while scores were shown", len(game.frames))
	}

	m, _ = update(t, m, keyMsg("esc"))
	if m.ShowingScores() {
		t.Fatal("esc should close the scoreboard")
	}

	update(t, m, TickMsg(t0))
	if game.last().Has(core.ActionThrust) {
		t.Error("held keys should be released when the scoreboard opens")
	}
}

func TestModelResizeResetsPlainGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game, nil)

	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if len(game.resets) != 1 {
		t.Fatalf("Reset() called %d times, expected 1", len(game.resets))
	}
	if cfg := game.resets[0]; cfg.ScreenW != 100 || cfg.ScreenH != 39 {
		t.Errorf("Reset() config = %dx%d, expected 100x39", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{}
	m := newTestModel(game, store)

	game.state = core.GameState{GameOver: true, Score: 4}
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, TickMsg(t0))

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(scores))
	}
	if scores[0].Player != "tester" || scores[0].Score != 4 {
		t.Errorf("saved run = %+v, expected tester with 4", scores[0])
	}
	if m.LastRunID() != scores[0].RunID {
		t.Errorf("LastRunID() = %q, expected %q", m.LastRunID(), scores[0].RunID)
	}

	// A new run ending saves again
	game.state = core.GameState{}
	m, _ = update(t, m, TickMsg(t0))
	game.state = core.GameState{GameOver: true, Score: 2}
	update(t, m, TickMsg(t0))

	scores, _ = store.AllScores("fake")
	if len(scores) != 2 {
		t.Errorf("saved %d runs, expected 2", len(scores))
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &fakeGame{state: core.GameState{GameOver: true}}
	m := newTestModel(game, store)
	update(t, m, TickMsg(t0))

	if high, _ := store.HighScore("fake"); high != 0 {
		t.Errorf("HighScore() = %d, expected nothing saved", high)
	}
	scores, _ := store.AllScores("fake")
	if len(scores) != 0 {
		t.Errorf("saved %d runs, expected 0", len(scores))
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{}, nil)
	if v := m.View(); v == "" {
		t.Error("View() should render the game")
	}
}
