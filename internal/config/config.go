// Package config provides YAML-based arena and roster configuration for
// robot matches.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/robot-arena/internal/core"
	"github.com/vovakirdan/robot-arena/internal/registry"
)

// Config describes one match: the arena, pacing and the robot roster.
type Config struct {
	Arena  ArenaConfig   `yaml:"arena"`
	Match  MatchConfig   `yaml:"match"`
	Robots []RobotConfig `yaml:"robots"`
}

// ArenaConfig defines the arena size in cells.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MatchConfig defines match pacing.
type MatchConfig struct {
	Seed     int64 `yaml:"seed"`      // 0 = seed from the clock
	TickRate int   `yaml:"tick_rate"` // Ticks per second in auto-advance mode
	MaxTicks int   `yaml:"max_ticks"` // 0 = run until one robot is left
}

// RobotConfig is one roster entry.
type RobotConfig struct {
	ID     string       `yaml:"id"`
	Bot    string       `yaml:"bot"`    // Registered bot name
	At     *Position    `yaml:"at"`     // Fixed start cell; random if nil
	Facing core.Bearing `yaml:"facing"` // Start bearing for fixed placements
}

// Position is a start cell in arena coordinates.
type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Coord converts the position to a core coordinate.
func (p Position) Coord() core.Coord {
	return core.C(p.X, p.Y)
}

// Validation errors.
var (
	ErrInvalidArena    = errors.New("config: arena width and height must be positive")
	ErrInvalidTickRate = errors.New("config: tick_rate must be positive")
	ErrInvalidMaxTicks = errors.New("config: max_ticks must not be negative")
	ErrNoRobots        = errors.New("config: roster is empty")
	ErrRobotID         = errors.New("config: robot id must be a single character")
	ErrDuplicateRobot  = errors.New("config: duplicate robot id")
	ErrRobotBot        = errors.New("config: robot has no bot")
	ErrStartOutside    = errors.New("config: start cell outside arena")
	ErrStartTaken      = errors.New("config: start cell already taken")
)

// Validate checks the configuration before any match is built. Bot names
// are checked against the registry, so bots must be registered first.
func (c Config) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidArena, c.Arena.Width, c.Arena.Height)
	}
	if c.Match.TickRate <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTickRate, c.Match.TickRate)
	}
	if c.Match.MaxTicks < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxTicks, c.Match.MaxTicks)
	}
	if len(c.Robots) == 0 {
		return ErrNoRobots
	}

	bounds := core.NewRect(core.C(0, 0), core.C(c.Arena.Width-1, c.Arena.Height-1))
	ids := make(map[string]bool, len(c.Robots))
	starts := make(map[core.Coord]string, len(c.Robots))

	for i, r := range c.Robots {
		switch {
		case utf8.RuneCountInString(r.ID) != 1:
			return fmt.Errorf("robot #%d: %w, got %q", i+1, ErrRobotID, r.ID)
		case ids[r.ID]:
			return fmt.Errorf("robot #%d: %w %q", i+1, ErrDuplicateRobot, r.ID)
		case r.Bot == "":
			return fmt.Errorf("robot %q: %w", r.ID, ErrRobotBot)
		case !registry.Exists(r.Bot):
			return fmt.Errorf("robot %q: %w %q", r.ID, registry.ErrUnknownBot, r.Bot)
		}
		ids[r.ID] = true

		if r.At == nil {
			continue
		}
		at := r.At.Coord()
		if !bounds.Contains(at) {
			return fmt.Errorf("robot %q at %v: %w", r.ID, at, ErrStartOutside)
		}
		if other, ok := starts[at]; ok {
			return fmt.Errorf("robot %q at %v: %w by %q", r.ID, at, ErrStartTaken, other)
		}
		starts[at] = r.ID
	}

	if len(c.Robots) > bounds.Cells() {
		return fmt.Errorf("%w: %d robots for %d cells", ErrInvalidArena, len(c.Robots), bounds.Cells())
	}
	return nil
}
