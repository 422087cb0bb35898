package arena

import "github.com/vovakirdan/robot-arena/internal/core"

// RobotState is a read-only copy of one robot's observable state.
type RobotState struct {
	ID              string
	Glyph           rune
	Position        core.Coord
	Bearing         core.Bearing
	Velocity        int
	HitPoints       int
	Target          *core.Coord // Queued fire target, nil if none
	PendingTimeouts int
}

// Snapshot captures the observable game state between ticks.
// Mutating it has no effect on the game.
type Snapshot struct {
	Tick   int
	Arena  core.Rect
	Robots []RobotState // Live robots in registration order
}

// Robot returns the state of the robot with the given id.
func (s Snapshot) Robot(id string) (RobotState, bool) {
	for _, r := range s.Robots {
		if r.ID == id {
			return r, true
		}
	}
	return RobotState{}, false
}

// Snapshot returns the current game snapshot.
func (g *Game[S]) Snapshot() Snapshot {
	robots := make([]RobotState, len(g.robots))
	for i, r := range g.robots {
		robots[i] = r.state()
	}
	return Snapshot{
		Tick:   g.tick,
		Arena:  g.arena,
		Robots: robots,
	}
}
