package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/robot-arena/internal/storage"
)

// HistoryKeyMap defines the key bindings for the history view.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "matches/bots"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type historyTab int

const (
	tabMatches historyTab = iota
	tabBots
)

// HistoryModel is the Bubble Tea model for browsing stored results:
// recent matches on one tab, per-bot totals on the other.
type HistoryModel struct {
	ledger    Ledger
	matches   []storage.MatchRecord
	stats     []storage.BotStats
	loadErr   error
	tab       historyTab
	table     table.Model
	help      help.Model
	keys      HistoryKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewHistoryModel creates a history view and loads the ledger.
func NewHistoryModel(ledger Ledger, width, height int) HistoryModel {
	h := help.New()
	h.Width = width

	m := HistoryModel{
		ledger: ledger,
		keys:   DefaultHistoryKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// load reads matches and bot stats from the ledger.
func (m *HistoryModel) load() {
	if m.ledger == nil {
		return
	}
	matches, err := m.ledger.RecentMatches(historyLimit)
	if err != nil {
		m.loadErr = err
		return
	}
	stats, err := m.ledger.BotStats()
	if err != nil {
		m.loadErr = err
		return
	}
	m.matches = matches
	m.stats = stats
}

// createTable creates a table with the columns of the active tab.
func (m *HistoryModel) createTable() table.Model {
	var columns []table.Column
	switch m.tab {
	case tabBots:
		columns = []table.Column{
			{Title: "Bot", Width: 14},
			{Title: "Entries", Width: 8},
			{Title: "Wins", Width: 6},
			{Title: "Win %", Width: 7},
			{Title: "Avg place", Width: 10},
			{Title: "Last played", Width: 14},
		}
	default:
		columns = []table.Column{
			{Title: "Match", Width: 10},
			{Title: "Winner", Width: 16},
			{Title: "Reason", Width: 14},
			{Title: "Ticks", Width: 7},
			{Title: "Robots", Width: 7},
			{Title: "Date", Width: 14},
		}
	}

	height := m.height - 8 // Title, tabs, help and borders
	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the loaded records.
func (m *HistoryModel) updateTableRows() {
	var rows []table.Row
	switch m.tab {
	case tabBots:
		rows = make([]table.Row, len(m.stats))
		for i, s := range m.stats {
			rows[i] = table.Row{
				s.Bot,
				fmt.Sprintf("%d", s.Entries),
				fmt.Sprintf("%d", s.Wins),
				fmt.Sprintf("%.0f", winRate(s)),
				fmt.Sprintf("%.2f", s.AvgPlace),
				s.LastPlayed.Format("Jan 02 15:04"),
			}
		}
	default:
		rows = make([]table.Row, len(m.matches))
		for i, r := range m.matches {
			winner := "-"
			if r.Winner != "" {
				winner = fmt.Sprintf("%s (%s)", r.Winner, r.WinnerBot)
			}
			rows[i] = table.Row{
				shortID(r.MatchID),
				winner,
				r.EndReason.String(),
				fmt.Sprintf("%d", r.Ticks),
				fmt.Sprintf("%d", r.RobotCount),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// winRate returns the share of entries won, in percent.
func winRate(s storage.BotStats) float64 {
	if s.Entries == 0 {
		return 0
	}
	return 100 * float64(s.Wins) / float64(s.Entries)
}

// shortID trims a match UUID to its first block.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.Switch):
			if m.tab == tabMatches {
				m.tab = tabBots
			} else {
				m.tab = tabMatches
			}
			m.table = m.createTable()
			m.updateTableRows()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history view.
func (m HistoryModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("MATCH HISTORY", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")
	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs shows which table is active.
func (m HistoryModel) renderTabs() string {
	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	names := []string{"Matches", "Bots"}
	tabs := make([]string, len(names))
	for i, name := range names {
		if historyTab(i) == m.tab {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderTableContent renders the table or an explanatory message.
func (m HistoryModel) renderTableContent() string {
	if m.loadErr != nil {
		return emptyStyle.Render("Could not load results:\n" + m.loadErr.Error())
	}
	if len(m.matches) == 0 {
		return emptyStyle.Render("No matches recorded yet.\nFinish a match to fill the ledger!")
	}
	return m.table.View()
}

// IsGoingBack returns true if the user wants to return to the arena.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}
