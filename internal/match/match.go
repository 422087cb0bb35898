// Package match builds robot matches from configuration and runs them,
// interactively one tick at a time or headless in concurrent batches.
package match

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/config"
	"github.com/vovakirdan/robot-arena/internal/registry"
)

// HeadlessTickLimit caps Run when the configuration sets no tick limit.
const HeadlessTickLimit = 100_000

// Match is one game built from a configuration, with the bookkeeping
// needed to rank its robots when it ends. Not safe for concurrent use.
type Match struct {
	id       string
	seed     int64
	maxTicks int
	game     *arena.Game[string]
	logger   *log.Logger

	bots         map[string]string // robot id -> bot name
	roster       []string          // robot ids in registration order
	eliminatedAt map[string]int

	startedAt time.Time
	result    *Result
}

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger for match and engine events.
func WithLogger(logger *log.Logger) Option {
	return func(m *Match) {
		m.logger = logger
	}
}

// WithSeed overrides the configured seed.
func WithSeed(seed int64) Option {
	return func(m *Match) {
		m.seed = seed
	}
}

// New validates cfg and builds a match. Robots with a fixed start cell are
// placed before robots placed at random, so random placement never takes a
// configured cell.
func New(cfg config.Config, opts ...Option) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		id:           uuid.NewString(),
		seed:         cfg.Match.Seed,
		maxTicks:     cfg.Match.MaxTicks,
		logger:       log.New(io.Discard),
		bots:         make(map[string]string, len(cfg.Robots)),
		eliminatedAt: make(map[string]int, len(cfg.Robots)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.seed == 0 {
		m.seed = time.Now().UnixNano()
	}
	m.logger = m.logger.With("match", m.id[:8])

	rng := rand.New(rand.NewSource(m.seed))
	game, err := arena.New[string](cfg.Arena.Width, cfg.Arena.Height,
		arena.WithRand(rng),
		arena.WithLogger(m.logger),
	)
	if err != nil {
		return nil, err
	}
	m.game = game

	for _, fixed := range []bool{true, false} {
		for _, rc := range cfg.Robots {
			if (rc.At != nil) != fixed {
				continue
			}
			if err := m.add(rc, rng); err != nil {
				return nil, err
			}
		}
	}

	m.startedAt = time.Now()
	m.logger.Debug("match created", "seed", m.seed, "robots", len(m.roster),
		"arena", fmt.Sprintf("%dx%d", cfg.Arena.Width, cfg.Arena.Height))
	return m, nil
}

func (m *Match) add(rc config.RobotConfig, rng *rand.Rand) error {
	policy, err := registry.Create(rc.Bot, rng)
	if err != nil {
		return fmt.Errorf("robot %q: %w", rc.ID, err)
	}

	if rc.At != nil {
		err = m.game.AddRobotAt(rc.ID, policy, rc.At.Coord(), rc.Facing)
	} else {
		err = m.game.AddRobot(rc.ID, policy)
	}
	if err != nil {
		return err
	}

	m.bots[rc.ID] = rc.Bot
	m.roster = append(m.roster, rc.ID)
	return nil
}

// ID returns the match's unique id.
func (m *Match) ID() string { return m.id }

// Seed returns the seed the match was built with.
func (m *Match) Seed() int64 { return m.seed }

// Bot returns the bot name driving a robot.
func (m *Match) Bot(robotID string) string { return m.bots[robotID] }

// Snapshot returns the current engine snapshot.
func (m *Match) Snapshot() arena.Snapshot { return m.game.Snapshot() }

// Redraw returns a frame repainting the whole arena.
func (m *Match) Redraw() arena.Frame { return m.game.Redraw() }

// Done reports whether the match has ended.
func (m *Match) Done() bool { return m.result != nil }

// Result returns the outcome once the match has ended.
func (m *Match) Result() (Result, bool) {
	if m.result == nil {
		return Result{}, false
	}
	return *m.result, true
}

// Step advances the match by one tick. It is a no-op once the match is done.
func (m *Match) Step() arena.StepReport {
	if m.Done() {
		return arena.StepReport{Tick: m.game.Tick()}
	}

	report := m.game.Step()

	for _, id := range report.Eliminated {
		m.eliminatedAt[id] = report.Tick
		m.logger.Info("robot eliminated", "robot", id, "bot", m.bots[id], "tick", report.Tick)
	}

	switch {
	case m.game.Len() <= 1:
		m.finish(false)
	case m.maxTicks > 0 && report.Tick >= m.maxTicks:
		m.finish(false)
	}
	return report
}

// Stop ends an unfinished match as cancelled.
func (m *Match) Stop() Result {
	if !m.Done() {
		m.finish(true)
	}
	return *m.result
}

// Run steps the match headless until it ends, ctx is cancelled or the tick
// limit is hit. A cancelled match returns its partial result and ctx.Err().
func (m *Match) Run(ctx context.Context) (Result, error) {
	limit := m.maxTicks
	if limit == 0 {
		limit = HeadlessTickLimit
	}

	for !m.Done() {
		if err := ctx.Err(); err != nil {
			return m.Stop(), err
		}
		m.Step()
		if !m.Done() && m.game.Tick() >= limit {
			m.finish(false)
		}
	}
	return *m.result, nil
}

// finish ranks the robots and freezes the result.
func (m *Match) finish(cancelled bool) {
	alive := make(map[string]int)
	for _, rs := range m.game.Snapshot().Robots {
		alive[rs.ID] = rs.HitPoints
	}

	standings := make([]Standing, 0, len(m.roster))
	for _, id := range m.roster {
		s := Standing{RobotID: id, Bot: m.bots[id]}
		if hp, ok := alive[id]; ok {
			s.HitPoints = hp
		} else {
			s.EliminatedAt = m.eliminatedAt[id]
		}
		standings = append(standings, s)
	}
	rank(standings)

	winner, reason := decide(standings, cancelled)
	arenaRect := m.game.Arena()

	m.result = &Result{
		ID:        m.id,
		Seed:      m.seed,
		Width:     arenaRect.Width(),
		Height:    arenaRect.Height(),
		Ticks:     m.game.Tick(),
		Winner:    winner,
		Reason:    reason,
		Standings: standings,
		StartedAt: m.startedAt,
		Duration:  time.Since(m.startedAt),
	}

	m.logger.Info("match finished", "winner", winner, "reason", reason, "ticks", m.result.Ticks)
}
