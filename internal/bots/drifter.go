package bots

import (
	"math/rand"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/core"
	"github.com/vovakirdan/robot-arena/internal/registry"
)

// Timeout payloads used by Drifter.
const (
	drifterWander = "wander"
	drifterCalm   = "calm"
)

// Drifter wanders at random speeds and bearings. It holds fire until it is
// hit and then shoots at everything it detects for a while.
type Drifter struct {
	arena.NopControl[string]

	rng      *rand.Rand
	bearing  core.Bearing
	provoked int // Pending calm timeouts; fires while non-zero
}

// Drifter tuning.
const (
	drifterMinSpeed  = 1
	drifterMaxSpeed  = 4
	drifterMinWander = 3
	drifterMaxWander = 8
	drifterGrudge    = 6 // Ticks Drifter keeps firing after a hit
)

// NewDrifter creates a Drifter that draws its moves from rng.
func NewDrifter(rng *rand.Rand) *Drifter {
	return &Drifter{rng: rng}
}

func (d *Drifter) OnStart(cmd arena.Commands[string]) {
	d.wander(cmd)
}

func (d *Drifter) OnTimeout(cmd arena.Commands[string], state string) {
	switch state {
	case drifterWander:
		d.wander(cmd)
	case drifterCalm:
		d.provoked--
	}
}

func (d *Drifter) OnHit(cmd arena.Commands[string]) {
	d.provoked++
	cmd.RequestTimeout(drifterGrudge, drifterCalm)
}

func (d *Drifter) OnCollided(cmd arena.Commands[string]) {
	d.bearing = d.bearing.Opposite()
	cmd.Turn(d.bearing)
	cmd.Forward(drifterMinSpeed)
}

func (d *Drifter) OnObstacleAhead(cmd arena.Commands[string]) {
	d.bearing = d.bearing.Clockwise90()
	cmd.Turn(d.bearing)
}

func (d *Drifter) OnEnemyDetected(cmd arena.Commands[string], enemy core.Coord) {
	if d.provoked > 0 {
		cmd.FireAt(enemy)
	}
}

// wander picks a new bearing and speed and schedules the next change.
func (d *Drifter) wander(cmd arena.Commands[string]) {
	d.bearing = core.Bearings[d.rng.Intn(len(core.Bearings))]
	cmd.Turn(d.bearing)
	cmd.Forward(drifterMinSpeed + d.rng.Intn(drifterMaxSpeed-drifterMinSpeed+1))
	cmd.RequestTimeout(drifterMinWander+d.rng.Intn(drifterMaxWander-drifterMinWander+1), drifterWander)
}

func init() {
	registry.Register("drifter", "wanders at random and returns fire after being hit", func(rng *rand.Rand) registry.Policy {
		return NewDrifter(rng)
	})
}
