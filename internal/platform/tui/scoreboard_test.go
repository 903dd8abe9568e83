package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lunar-lander/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(nil, "fake", "", 80, 24)

	view := m.View()
	if !strings.Contains(view, "No landings recorded yet") {
		t.Errorf("View() should show the empty message, got:\n%s", view)
	}
	if m.Selected() != nil {
		t.Error("Selected() should be nil on an empty board")
	}
}

func TestScoreboardSelectsHighlightedRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun(storage.Run{GameID: "fake", Player: "ann", Score: 9})
	mine, _ := store.SaveRun(storage.Run{GameID: "fake", Player: "bo", Score: 3})
	store.SaveRun(storage.Run{GameID: "fake", Player: "cy", Score: 5})

	m := NewScoreboardModel(store, "fake", mine, 80, 24)

	sel := m.Selected()
	if sel == nil || sel.RunID != mine {
		t.Fatalf("Selected() = %+v, expected run %s", sel, mine)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Fake", "best 9", "runs 3", "ann"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	m = next.(ScoreboardModel)
	if sel := m.Selected(); sel == nil || sel.Score != 9 {
		t.Errorf("Selected() = %+v after g, expected the best run", sel)
	}
}

func TestScoreboardBack(t *testing.T) {
	m := NewScoreboardModel(nil, "fake", "", 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("tab should go back without quitting")
	}
	if cmd != nil {
		t.Error("embedded scoreboard should not quit the program on back")
	}

	m = NewScoreboardModel(nil, "fake", "", 80, 24)
	m.standalone = true
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if cmd == nil {
		t.Error("standalone scoreboard should quit on back")
	}
}
