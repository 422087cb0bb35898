package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/config"
	"github.com/vovakirdan/robot-arena/internal/core"
	"github.com/vovakirdan/robot-arena/internal/match"
	"github.com/vovakirdan/robot-arena/internal/storage"
)

// historyLimit is how many recent matches the history view loads.
const historyLimit = 50

// Ledger is the results store used by the viewer. It is satisfied by
// *storage.Store; a nil Ledger disables saving and the history view.
type Ledger interface {
	match.ResultSaver
	RecentMatches(limit int) ([]storage.MatchRecord, error)
	BotStats() ([]storage.BotStats, error)
}

type viewMode int

const (
	modeArena viewMode = iota
	modeHistory
)

// origin is where the arena's (0,0) lands on the screen, inside the border.
var origin = core.C(1, 1)

// Model is the Bubble Tea model for watching a match.
// The match only advances on a Step key or, in auto mode, on ticks.
type Model struct {
	cfg     config.Config
	runtime core.RuntimeConfig
	ledger  Ledger
	logger  *log.Logger
	keys    *KeyMapper
	help    help.Model

	match  *match.Match
	screen *core.Screen
	last   arena.StepReport

	auto    bool
	gen     int // Bumped whenever auto mode toggles, to drop stale ticks
	saved   bool
	saveErr error

	mode     viewMode
	history  HistoryModel
	quitting bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger handed to every match the viewer creates.
func WithLogger(logger *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = logger
	}
}

// WithAutoAdvance starts the viewer in auto mode.
func WithAutoAdvance(auto bool) ModelOption {
	return func(m *Model) {
		m.auto = auto
	}
}

// WithScreenSize records the terminal size known before the first resize.
func WithScreenSize(width, height int) ModelOption {
	return func(m *Model) {
		m.runtime.ScreenW = width
		m.runtime.ScreenH = height
	}
}

// NewModel creates a viewer for a new match built from cfg.
func NewModel(cfg config.Config, ledger Ledger, opts ...ModelOption) (Model, error) {
	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.Match.TickRate
	runtime.Seed = cfg.Match.Seed

	m := Model{
		cfg:     cfg,
		runtime: runtime,
		ledger:  ledger,
		logger:  log.New(io.Discard),
		keys:    NewKeyMapper(),
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	if err := m.newMatch(runtime.Seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newMatch replaces the current match and repaints the screen.
func (m *Model) newMatch(seed int64) error {
	mt, err := match.New(m.cfg, match.WithSeed(seed), match.WithLogger(m.logger))
	if err != nil {
		return err
	}

	m.match = mt
	m.runtime.Seed = mt.Seed()
	m.last = arena.StepReport{}
	m.saved = false
	m.saveErr = nil

	w, h := m.cfg.Arena.Width+2, m.cfg.Arena.Height+2
	if m.screen == nil {
		m.screen = core.NewScreen(w, h)
	} else {
		m.screen.Resize(w, h)
		m.screen.Clear()
	}
	m.screen.DrawBox(core.NewRect(core.C(0, 0), core.C(m.screen.Width()-1, m.screen.Height()-1)), core.ColorWall)
	mt.Redraw().Apply(m.screen, origin)
	return nil
}

// Init starts the tick loop when the viewer opens in auto mode.
func (m Model) Init() tea.Cmd {
	if m.auto {
		return tickCmd(m.runtime.TickRate, m.gen)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.mode == modeHistory {
		return m.updateHistory(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input in the arena view.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionStep:
		if !m.auto {
			m.step()
		}

	case core.ActionAuto:
		m.auto = !m.auto
		m.gen++
		if m.auto && !m.match.Done() {
			return m, tickCmd(m.runtime.TickRate, m.gen)
		}

	case core.ActionRestart:
		if !m.match.Done() {
			return m, nil
		}
		if err := m.newMatch(m.match.Seed() + 1); err != nil {
			m.logger.Error("could not start match", "error", err)
			return m, nil
		}
		if m.auto {
			m.gen++
			return m, tickCmd(m.runtime.TickRate, m.gen)
		}

	case core.ActionHistory:
		if m.ledger == nil {
			return m, nil
		}
		m.auto = false
		m.gen++
		m.history = NewHistoryModel(m.ledger, m.runtime.ScreenW, m.runtime.ScreenH)
		m.mode = modeHistory
	}

	return m, nil
}

// handleTick advances one tick in auto mode.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.auto || msg.Gen != m.gen || m.match.Done() {
		return m, nil
	}
	m.step()
	if m.match.Done() {
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate, m.gen)
}

// updateHistory forwards messages to the history view until it is closed.
func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.runtime.ScreenW = wsm.Width
		m.runtime.ScreenH = wsm.Height
		m.help.Width = wsm.Width
	}

	updated, cmd := m.history.Update(msg)
	if hm, ok := updated.(HistoryModel); ok {
		m.history = hm
	}

	switch {
	case m.history.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.history.IsGoingBack():
		m.mode = modeArena
		return m, nil
	}
	return m, cmd
}

// step advances the match and saves the result once it ends.
func (m *Model) step() {
	if m.match.Done() {
		return
	}
	m.last = m.match.Step()
	m.last.Frame.Apply(m.screen, origin)

	if !m.match.Done() || m.saved {
		return
	}
	m.saved = true
	result, _ := m.match.Result()
	m.screen.DrawTextCentered(m.screen.Height()/2, banner(result))
	if m.ledger == nil {
		return
	}
	if err := m.ledger.SaveMatchResult(result); err != nil {
		m.saveErr = err
		m.logger.Warn("could not save match result", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == modeHistory {
		return m.history.View()
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(m.renderHUD())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys.Keys())))
	return b.String()
}

// renderHUD draws the status line and each live robot's hit points.
func (m Model) renderHUD() string {
	snap := m.match.Snapshot()

	status := fmt.Sprintf("tick %d  seed %d", snap.Tick, m.match.Seed())
	if m.auto {
		status += "  auto"
	}
	if n := len(m.last.Blasts); n > 0 {
		status += fmt.Sprintf("  blasts %d", n)
	}

	robots := make([]string, 0, len(snap.Robots))
	for i, rs := range snap.Robots {
		label := fmt.Sprintf("%s %s %3d", rs.ID, m.match.Bot(rs.ID), rs.HitPoints)
		robots = append(robots, styleFor(core.PaletteColor(i)).Render(label))
	}

	lines := []string{hudStyle.Render(status), strings.Join(robots, "  ")}

	if result, ok := m.match.Result(); ok {
		lines = append(lines, resultStyle.Render(describeResult(result)))
	}
	if m.saveErr != nil {
		lines = append(lines, warnStyle.Render("result not saved: "+m.saveErr.Error()))
	}
	if m.runtime.ScreenW > 0 && m.runtime.ScreenW < m.screen.Width() {
		lines = append(lines, warnStyle.Render(fmt.Sprintf(
			"terminal is %d columns wide, the arena needs %d", m.runtime.ScreenW, m.screen.Width())))
	}
	return strings.Join(lines, "\n")
}

// describeResult is the one-line summary shown when a match ends.
func describeResult(r match.Result) string {
	if r.Winner == "" {
		return fmt.Sprintf("no winner (%s) after %d ticks, r for a new match", r.Reason, r.Ticks)
	}
	return fmt.Sprintf("%s (%s) wins (%s) after %d ticks, r for a new match",
		r.Winner, r.WinnerBot(), r.Reason, r.Ticks)
}

// banner is the short verdict painted across the arena when a match ends.
func banner(r match.Result) string {
	if r.Winner == "" {
		return " NO WINNER "
	}
	return fmt.Sprintf(" %s WINS ", r.Winner)
}

// Run starts the Bubble Tea program for one viewer session.
func Run(cfg config.Config, ledger Ledger, opts ...ModelOption) error {
	model, err := NewModel(cfg, ledger, opts...)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
