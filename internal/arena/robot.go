package arena

import (
	"github.com/vovakirdan/robot-arena/internal/core"
)

// Robot tuning constants.
const (
	MaxVelocity     = 5
	StartHitPoints  = 100
	ProbeDistance   = 8 // Range of the obstacle-ahead probe
	BlastRadius     = 2 // Blast footprint is (2r+1)x(2r+1)
	DetectionRadius = 5 // Detection footprint is (2r+1)x(2r+1)
)

// Damage dealt by each kind of impact.
const (
	RamDamage    = 10 // Robot that drove into another robot
	RammedDamage = 5  // Robot that was driven into
	WallDamage   = 5  // Robot that drove into the arena edge
	BlastDamage  = 10
)

// Timeout is a pending OnTimeout delivery.
type Timeout[S any] struct {
	Due   int // Tick on which the timeout fires
	State S
}

// robot is the engine-owned state of one combatant.
type robot[S any] struct {
	id      string
	glyph   rune
	control Control[S]
	cmd     *commands[S]

	position  core.Coord
	bearing   core.Bearing
	velocity  int
	hitPoints int

	target    core.Coord
	hasTarget bool
	timeouts  []Timeout[S]

	turn    int
	started bool

	// Move flags, reset after every movement phase
	collided      bool
	obstacleAhead bool

	// Set once the obstacle warning went out; cleared by Turn
	obstacleWarned bool
}

func newRobot[S any](id string, control Control[S], pos core.Coord, bearing core.Bearing) *robot[S] {
	r := &robot[S]{
		id:        id,
		glyph:     []rune(id)[0],
		control:   control,
		position:  pos,
		bearing:   bearing,
		hitPoints: StartHitPoints,
	}
	r.cmd = &commands[S]{r: r}
	return r
}

// beginTurn records the current tick and fires OnStart on the game's first
// tick. Robots added after that never receive OnStart.
func (r *robot[S]) beginTurn(turn int) {
	r.turn = turn
	if turn == 1 && !r.started {
		r.started = true
		r.control.OnStart(r.cmd)
	}
}

// collide applies impact damage and stops the robot.
func (r *robot[S]) collide(damage int) {
	r.collided = true
	r.hitPoints -= damage
	r.velocity = 0
}

// processMoveFlags delivers the movement outcome. A collision outranks the
// obstacle warning; both flags reset either way.
func (r *robot[S]) processMoveFlags() {
	switch {
	case r.collided:
		r.control.OnCollided(r.cmd)
	case r.obstacleAhead:
		r.obstacleWarned = true
		r.control.OnObstacleAhead(r.cmd)
	}
	r.collided = false
	r.obstacleAhead = false
}

// processTimeouts fires every pending timeout due on the current tick, in
// scheduling order. A timeout whose tick has already passed, such as a zero
// delay requested after the timeout phase, is dropped without firing.
func (r *robot[S]) processTimeouts() {
	if len(r.timeouts) == 0 {
		return
	}

	var due []Timeout[S]
	pending := make([]Timeout[S], 0, len(r.timeouts))
	for _, t := range r.timeouts {
		switch {
		case t.Due == r.turn:
			due = append(due, t)
		case t.Due > r.turn:
			pending = append(pending, t)
		}
	}
	r.timeouts = pending

	for _, t := range due {
		r.control.OnTimeout(r.cmd, t.State)
	}
}

// takeTarget returns and clears the queued fire target.
func (r *robot[S]) takeTarget() (core.Coord, bool) {
	if !r.hasTarget {
		return core.Coord{}, false
	}
	target := r.target
	r.target = core.Coord{}
	r.hasTarget = false
	return target, true
}

// hit applies blast damage and notifies the policy.
func (r *robot[S]) hit(damage int) {
	r.hitPoints -= damage
	r.control.OnHit(r.cmd)
}

func (r *robot[S]) eliminated() bool {
	return r.hitPoints <= 0
}

func (r *robot[S]) state() RobotState {
	rs := RobotState{
		ID:              r.id,
		Glyph:           r.glyph,
		Position:        r.position,
		Bearing:         r.bearing,
		Velocity:        r.velocity,
		HitPoints:       r.hitPoints,
		PendingTimeouts: len(r.timeouts),
	}
	if r.hasTarget {
		target := r.target
		rs.Target = &target
	}
	return rs
}

// commands is the Commands handle handed to a robot's policy.
// It only exposes the five command operations, never the robot itself.
type commands[S any] struct {
	r *robot[S]
}

func (c *commands[S]) FireAt(target core.Coord) {
	c.r.target = target
	c.r.hasTarget = true
}

func (c *commands[S]) Forward(velocity int) {
	if velocity < 0 || velocity > MaxVelocity {
		return
	}
	c.r.velocity = velocity
}

func (c *commands[S]) Halt() {
	c.r.velocity = 0
}

func (c *commands[S]) Turn(bearing core.Bearing) {
	if !bearing.Valid() {
		return
	}
	c.r.obstacleWarned = false
	c.r.bearing = bearing
}

func (c *commands[S]) RequestTimeout(delay int, state S) {
	if delay < 0 {
		return
	}
	c.r.timeouts = append(c.r.timeouts, Timeout[S]{Due: c.r.turn + delay, State: state})
}

var _ Commands[int] = (*commands[int])(nil)
