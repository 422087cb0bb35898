package bots

import (
	"math/rand"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/core"
	"github.com/vovakirdan/robot-arena/internal/registry"
)

// Timeout payloads used by Sentry.
const (
	sentryScan     = "scan"
	sentryRelocate = "relocate"
)

const (
	sentryScanEvery    = 4 // Ticks between quarter turns while idle
	sentryRelocateFor  = 3 // Ticks spent driving away after a hit
	sentryRelocateRate = 3
)

// Sentry holds its ground and fires straight at detected robots. It scans by
// turning a quarter every few ticks and drives off briefly when hit.
type Sentry struct {
	arena.NopControl[string]

	bearing    core.Bearing
	relocating bool
}

// NewSentry creates an idle Sentry.
func NewSentry() *Sentry {
	return &Sentry{}
}

func (s *Sentry) OnStart(cmd arena.Commands[string]) {
	cmd.Halt()
	cmd.RequestTimeout(sentryScanEvery, sentryScan)
}

func (s *Sentry) OnTimeout(cmd arena.Commands[string], state string) {
	switch state {
	case sentryScan:
		if !s.relocating {
			s.bearing = s.bearing.Clockwise90()
			cmd.Turn(s.bearing)
		}
		cmd.RequestTimeout(sentryScanEvery, sentryScan)
	case sentryRelocate:
		s.relocating = false
		cmd.Halt()
	}
}

func (s *Sentry) OnHit(cmd arena.Commands[string]) {
	if s.relocating {
		return
	}
	s.relocating = true
	cmd.Forward(sentryRelocateRate)
	cmd.RequestTimeout(sentryRelocateFor, sentryRelocate)
}

func (s *Sentry) OnCollided(cmd arena.Commands[string]) {
	s.bearing = s.bearing.Opposite()
	cmd.Turn(s.bearing)
}

func (s *Sentry) OnObstacleAhead(cmd arena.Commands[string]) {
	if s.relocating {
		s.bearing = s.bearing.Opposite()
		cmd.Turn(s.bearing)
	}
}

func (s *Sentry) OnEnemyDetected(cmd arena.Commands[string], enemy core.Coord) {
	cmd.FireAt(enemy)
}

func init() {
	registry.Register("sentry", "stationary turret that relocates when hit", func(*rand.Rand) registry.Policy {
		return NewSentry()
	})
}
