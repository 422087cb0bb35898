package bots

import (
	"math/rand"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/core"
	"github.com/vovakirdan/robot-arena/internal/registry"
)

// T1000 patrols along one axis and fires at anything it detects, leading
// moving targets by their last observed displacement.
type T1000 struct {
	arena.NopControl[string]

	rng     *rand.Rand
	bearing core.Bearing

	lastEnemy core.Coord
	seenEnemy bool
}

// T1000 cruising speed.
const t1000Speed = 2

// NewT1000 creates a T1000 that makes its left/right choices with rng.
func NewT1000(rng *rand.Rand) *T1000 {
	return &T1000{rng: rng}
}

func (t *T1000) OnStart(cmd arena.Commands[string]) {
	t.turn(cmd, core.South)
	cmd.Forward(t1000Speed)
}

func (t *T1000) OnCollided(cmd arena.Commands[string]) {
	t.turn(cmd, t.bearing.Opposite())
	cmd.Forward(t1000Speed)
}

func (t *T1000) OnObstacleAhead(cmd arena.Commands[string]) {
	if t.rng.Intn(2) == 0 {
		t.turn(cmd, t.bearing.Clockwise90())
	} else {
		t.turn(cmd, t.bearing.CounterClockwise90())
	}
}

func (t *T1000) OnEnemyDetected(cmd arena.Commands[string], enemy core.Coord) {
	target := enemy
	if t.seenEnemy {
		target = enemy.Move(t.lastEnemy.DistanceTo(enemy))
	}
	cmd.FireAt(target)

	t.lastEnemy = enemy
	t.seenEnemy = true
}

func (t *T1000) turn(cmd arena.Commands[string], b core.Bearing) {
	t.bearing = b
	cmd.Turn(b)
}

func init() {
	registry.Register("t1000", "patrols, bounces off walls and fires with lead", func(rng *rand.Rand) registry.Policy {
		return NewT1000(rng)
	})
}
