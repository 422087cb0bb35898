package arena

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robot-arena/internal/core"
)

// Game is one robot combat simulation. It is not safe for concurrent use;
// independent games may run on separate goroutines.
type Game[S any] struct {
	robots []*robot[S] // Live robots in registration order
	arena  core.Rect
	tick   int
	rng    *rand.Rand
	logger *log.Logger

	// Cells painted by the previous frame
	drawn []core.Coord
}

// Option configures a Game.
type Option func(*options)

type options struct {
	rng    *rand.Rand
	logger *log.Logger
}

// WithRand sets the random source used for robot placement.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed seeds a private random source used for robot placement.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger for registration and elimination events.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// StepReport describes what happened during one Step.
type StepReport struct {
	Tick       int
	Frame      Frame
	Blasts     []core.Coord // Blast centers in resolution order
	Eliminated []string     // Robots removed at the end of the tick
}

// New creates an empty width x height arena spanning (0,0) to
// (width-1, height-1).
func New[S any](width, height int, opts ...Option) (*Game[S], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	return &Game[S]{
		arena:  core.NewRect(core.C(0, 0), core.C(width-1, height-1)),
		rng:    o.rng,
		logger: o.logger,
	}, nil
}

// Arena returns the arena bounds.
func (g *Game[S]) Arena() core.Rect {
	return g.arena
}

// Tick returns the number of completed steps.
func (g *Game[S]) Tick() int {
	return g.tick
}

// Len returns the number of live robots.
func (g *Game[S]) Len() int {
	return len(g.robots)
}

// AddRobot registers a robot at a random free cell, facing North.
func (g *Game[S]) AddRobot(id string, control Control[S]) error {
	if err := g.validate(id, control); err != nil {
		return err
	}
	if len(g.robots) >= g.arena.Cells() {
		return ErrArenaFull
	}

	pos := g.arena.RandomCoord(g.rng)
	for g.robotAt(pos) != nil {
		pos = g.arena.RandomCoord(g.rng)
	}

	g.register(newRobot(id, control, pos, core.North))
	return nil
}

// AddRobotAt registers a robot at a fixed cell and bearing.
func (g *Game[S]) AddRobotAt(id string, control Control[S], pos core.Coord, bearing core.Bearing) error {
	if err := g.validate(id, control); err != nil {
		return err
	}
	if !g.arena.Contains(pos) {
		return fmt.Errorf("%w: robot %q at %v", ErrOutOfArena, id, pos)
	}
	if other := g.robotAt(pos); other != nil {
		return fmt.Errorf("%w: robot %q at %v is taken by %q", ErrCellOccupied, id, pos, other.id)
	}
	if !bearing.Valid() {
		return fmt.Errorf("%w: robot %q", ErrInvalidBearing, id)
	}

	g.register(newRobot(id, control, pos, bearing))
	return nil
}

func (g *Game[S]) validate(id string, control Control[S]) error {
	if id == "" {
		return ErrEmptyID
	}
	if utf8.RuneCountInString(id) != 1 {
		return fmt.Errorf("%w: got %q", ErrLongID, id)
	}
	if control == nil {
		return fmt.Errorf("%w: robot %q", ErrNilControl, id)
	}
	for _, r := range g.robots {
		if r.id == id {
			return fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
	}
	return nil
}

func (g *Game[S]) register(r *robot[S]) {
	g.robots = append(g.robots, r)
	g.logger.Debug("robot registered", "id", r.id, "position", r.position, "bearing", r.bearing)
}

// robotAt returns the live robot occupying pos, if any.
func (g *Game[S]) robotAt(pos core.Coord) *robot[S] {
	for _, r := range g.robots {
		if r.position == pos {
			return r
		}
	}
	return nil
}

// Step advances the simulation by exactly one tick.
//
// Phases, each over the robots ordered by descending velocity (ties keep
// registration order):
//  1. begin turn, firing OnStart on a robot's first tick
//  2. movement, resolved one cell at a time from the top velocity down
//  3. OnCollided / OnObstacleAhead
//  4. due timeouts
//  5. blasts at every queued fire target
//  6. enemy detection
//  7. removal of robots with no hit points left
func (g *Game[S]) Step() StepReport {
	g.tick++

	frame := Frame{Clear: g.drawn}
	g.drawn = nil

	ordered := g.ordered()

	for _, r := range ordered {
		r.beginTurn(g.tick)
	}

	g.move(ordered)

	for _, r := range ordered {
		g.draw(&frame, r.position, r.glyph, core.ColorRobot)
	}

	for _, r := range ordered {
		r.processTimeouts()
	}

	blasts := g.fire(ordered, &frame)
	g.detect(ordered)
	eliminated := g.eliminate(ordered)

	return StepReport{
		Tick:       g.tick,
		Frame:      frame,
		Blasts:     blasts,
		Eliminated: eliminated,
	}
}

// ordered returns the live robots sorted by descending velocity.
func (g *Game[S]) ordered() []*robot[S] {
	ordered := make([]*robot[S], len(g.robots))
	copy(ordered, g.robots)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].velocity > ordered[j].velocity
	})
	return ordered
}

// move resolves simultaneous movement. Robots at velocity v take a single
// cell step in each of the bands v, v-1, ..., 1, so faster robots finish
// their leading steps before slower ones start.
func (g *Game[S]) move(ordered []*robot[S]) {
	top := 0
	for _, r := range ordered {
		if r.velocity > top {
			top = r.velocity
		}

		probe := r.position.MoveBy(ProbeDistance, r.bearing)
		if !g.arena.Contains(probe) && !r.obstacleWarned {
			r.obstacleAhead = true
		}
	}

	for step := top; step > 0; step-- {
		for _, r := range ordered {
			if r.velocity < step {
				continue
			}

			next := r.position.MoveBy(1, r.bearing)
			if other := g.robotAt(next); other != nil {
				r.collide(RamDamage)
				other.collide(RammedDamage)
			} else if !g.arena.Contains(next) {
				r.collide(WallDamage)
			} else {
				r.position = next
			}
		}
	}

	for _, r := range ordered {
		r.processMoveFlags()
	}
}

// fire turns every queued target into a blast and damages robots inside its
// footprint, the firer included.
func (g *Game[S]) fire(ordered []*robot[S], frame *Frame) []core.Coord {
	var targets []core.Coord
	for _, r := range ordered {
		if target, ok := r.takeTarget(); ok {
			targets = append(targets, target)
		}
	}

	for _, target := range targets {
		g.draw(frame, target, BlastGlyph, core.ColorBlast)

		footprint := core.Square(target, BlastRadius)
		for _, r := range ordered {
			if footprint.Contains(r.position) {
				r.hit(BlastDamage)
				g.draw(frame, r.position, r.glyph, core.ColorHit)
			}
		}
	}
	return targets
}

// detect reports every other robot inside each robot's detection footprint.
func (g *Game[S]) detect(ordered []*robot[S]) {
	for _, r := range ordered {
		footprint := core.Square(r.position, DetectionRadius)
		for _, candidate := range ordered {
			if candidate == r {
				continue
			}
			if footprint.Contains(candidate.position) {
				r.control.OnEnemyDetected(r.cmd, candidate.position)
			}
		}
	}
}

// eliminate removes robots whose hit points ran out this tick.
func (g *Game[S]) eliminate(ordered []*robot[S]) []string {
	var eliminated []string
	for _, r := range ordered {
		if r.eliminated() {
			eliminated = append(eliminated, r.id)
			g.logger.Debug("robot eliminated", "id", r.id, "tick", g.tick, "hp", r.hitPoints)
		}
	}
	if len(eliminated) == 0 {
		return nil
	}

	live := g.robots[:0]
	for _, r := range g.robots {
		if !r.eliminated() {
			live = append(live, r)
		}
	}
	for i := len(live); i < len(g.robots); i++ {
		g.robots[i] = nil
	}
	g.robots = live
	return eliminated
}
