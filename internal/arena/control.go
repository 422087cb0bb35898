// Package arena implements the robot combat simulation engine.
//
// A Game owns every robot and advances them one tick per Step call. Robot
// decision logic lives behind Control, an event sink the engine calls into,
// and may only act on the simulation through the Commands handle it is given
// during each callback. S is the payload type policies attach to timeouts.
package arena

//go:generate go tool mockgen -destination=./mocks/control_mock.go -package=mocks . Control,Commands

import "github.com/vovakirdan/robot-arena/internal/core"

// Control is the decision policy of a single robot.
// Handlers run synchronously inside Step and must return before the engine
// moves on to the next phase.
type Control[S any] interface {
	// OnStart is called once, on the first tick the robot takes part in.
	OnStart(cmd Commands[S])

	// OnCollided is called after movement when the robot rammed, was rammed
	// or drove into the arena edge this tick.
	OnCollided(cmd Commands[S])

	// OnTimeout delivers a timeout previously scheduled with RequestTimeout.
	OnTimeout(cmd Commands[S], state S)

	// OnObstacleAhead warns that the arena edge is within probe range along
	// the current bearing. Delivered once until the robot turns.
	OnObstacleAhead(cmd Commands[S])

	// OnHit is called each time a blast footprint covers the robot.
	OnHit(cmd Commands[S])

	// OnEnemyDetected reports another robot inside the detection footprint.
	OnEnemyDetected(cmd Commands[S], enemy core.Coord)
}

// Commands is the capability handle bound to one robot.
// Calls only record intent; movement, damage and follow-up events are
// resolved by later phases of the same or a following tick.
type Commands[S any] interface {
	// FireAt queues a blast at target. A later call in the same tick replaces
	// the earlier target.
	FireAt(target core.Coord)

	// Forward sets the velocity. Values outside [0, MaxVelocity] are ignored.
	Forward(velocity int)

	// Halt sets the velocity to zero.
	Halt()

	// Turn changes the bearing and re-arms the obstacle-ahead warning.
	Turn(bearing core.Bearing)

	// RequestTimeout schedules OnTimeout(state) for delay ticks from now.
	// Negative delays are ignored.
	RequestTimeout(delay int, state S)
}

// NopControl implements Control with handlers that do nothing.
// Policies embed it and override only the events they care about.
type NopControl[S any] struct{}

func (NopControl[S]) OnStart(Commands[S])                     {}
func (NopControl[S]) OnCollided(Commands[S])                  {}
func (NopControl[S]) OnTimeout(Commands[S], S)                {}
func (NopControl[S]) OnObstacleAhead(Commands[S])             {}
func (NopControl[S]) OnHit(Commands[S])                       {}
func (NopControl[S]) OnEnemyDetected(Commands[S], core.Coord) {}

var _ Control[int] = NopControl[int]{}
