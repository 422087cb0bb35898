// Package tui provides the Bubble Tea viewer for robot matches.
// It handles the terminal UI loop, key mapping, rendering and the SSH front door.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/robot-arena/internal/core"
)

// maxTickRate caps auto-advance so a huge tick_rate cannot flood the program.
const maxTickRate = 60

// TickMsg is sent to trigger an auto-advance tick. Ticks from an earlier
// auto-advance run carry an old generation and are dropped.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// the interval implied by tickRate.
func tickCmd(tickRate, gen int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// tickInterval converts a ticks-per-second rate into the delay between ticks,
// clamping the rate to [1, maxTickRate].
func tickInterval(tickRate int) time.Duration {
	return time.Second / time.Duration(core.Clamp(tickRate, 1, maxTickRate))
}
