package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lunar-lander/internal/core"
	"github.com/vovakirdan/lunar-lander/internal/registry"
	"github.com/vovakirdan/lunar-lander/internal/storage"
)

// helpRows is the number of rows under the game reserved for the key help.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

var opposingTurn = map[core.Action]core.Action{
	core.ActionRotateLeft:  core.ActionRotateRight,
	core.ActionRotateRight: core.ActionRotateLeft,
}

// Options tunes a Model.
type Options struct {
	Player      string        // Recorded with saved runs
	HoldInitial time.Duration // Latch for the first press of a held key
	HoldRepeat  time.Duration // Latch for each auto-repeat press
	Logger      *log.Logger   // Optional; score saves are logged here
}

// Model is the Bubble Tea model for running a game.
// Tab switches to the scoreboard; the game is frozen while it is shown.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       GameKeyMap
	help       help.Model
	latch      *HoldLatch
	pressed    core.InputFrame // Press-style actions since the last tick
	gameState  core.GameState
	scoreboard *ScoreboardModel
	width      int
	height     int
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	lastRunID  string
	clock      func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg holds the full terminal size; the game gets all but the help row.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = max(1, height-helpRows)

	h := help.New()
	h.Width = width

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:   store,
		config:  cfg,
		opts:    opts,
		keys:    DefaultGameKeyMap(),
		help:    h,
		latch:   NewHoldLatch(opts.HoldInitial, opts.HoldRepeat),
		pressed: core.NewInputFrame(),
		width:   width,
		height:  height,
		clock:   time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.seedTopScore()
	return tickCmd(m.config.TickRate)
}

// seedTopScore shows the persisted best score on games that support it.
func (m Model) seedTopScore() {
	seeder, ok := m.game.(registry.TopScoreSeeder)
	if !ok || m.store == nil {
		return
	}
	high, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.warn("could not load high score", "error", err)
		return
	}
	seeder.SeedTopScore(high)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Scores):
		sb := NewScoreboardModel(m.store, m.game.ID(), m.lastRunID, m.width, m.height)
		m.scoreboard = &sb
		m.latch.Reset()
		m.pressed.Clear()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	action, hold := m.keys.MapKey(msg)
	switch {
	case action == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case hold:
		// Terminals only auto-repeat the newest key, so turning one way
		// ends a turn the other way at once.
		if other, ok := opposingTurn[action]; ok {
			m.latch.Release(other)
		}
		m.latch.Press(action, m.clock())
	case action != core.ActionNone:
		m.pressed.Set(action)
	}

	return m, nil
}

// updateScoreboard forwards input to the scoreboard until the player leaves it.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.scoreboard.Update(msg)
	sb, ok := updated.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(1, msg.Height-helpRows)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(m.config)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.seedTopScore()
	}

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m, tickCmd(m.config.TickRate)
	}

	m.latch.Fill(&m.pressed, now)
	result := m.game.Step(m.pressed)
	m.gameState = result.State
	m.saveScore()

	// Clear input for next frame
	m.pressed.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run once per game over.
func (m *Model) saveScore() {
	if !m.gameState.GameOver {
		m.scoreSaved = false
		return
	}
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	runID, err := m.store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
	})
	if err != nil {
		m.warn("could not save score", "score", m.gameState.Score, "error", err)
		return
	}
	m.lastRunID = runID
	if m.opts.Logger != nil {
		m.opts.Logger.Info("run saved", "game", m.game.ID(), "score", m.gameState.Score, "run", runID)
	}
}

func (m Model) warn(msg string, keyvals ...any) {
	if m.opts.Logger != nil {
		m.opts.Logger.Warn(msg, keyvals...)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".lander", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// GameState returns the state seen on the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// LastRunID returns the ID of the most recently saved run, if any.
func (m Model) LastRunID() string {
	return m.lastRunID
}

// ShowingScores reports whether the scoreboard is open.
func (m Model) ShowingScores() bool {
	return m.scoreboard != nil
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
