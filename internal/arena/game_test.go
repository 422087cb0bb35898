package arena

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/robot-arena/internal/core"
)

// script is a Control that records every event and runs optional hooks.
type script struct {
	game   *Game[string]
	events []string

	onStart    func(cmd Commands[string])
	onCollided func(cmd Commands[string])
	onObstacle func(cmd Commands[string])
	onHit      func(cmd Commands[string])
	onDetected func(cmd Commands[string], enemy core.Coord)
	onTimeout  func(cmd Commands[string], state string)
}

func (s *script) record(event string) {
	s.events = append(s.events, fmt.Sprintf("%d:%s", s.game.Tick(), event))
}

func (s *script) OnStart(cmd Commands[string]) {
	s.record("start")
	if s.onStart != nil {
		s.onStart(cmd)
	}
}

func (s *script) OnCollided(cmd Commands[string]) {
	s.record("collided")
	if s.onCollided != nil {
		s.onCollided(cmd)
	}
}

func (s *script) OnTimeout(cmd Commands[string], state string) {
	s.record("timeout:" + state)
	if s.onTimeout != nil {
		s.onTimeout(cmd, state)
	}
}

func (s *script) OnObstacleAhead(cmd Commands[string]) {
	s.record("obstacle")
	if s.onObstacle != nil {
		s.onObstacle(cmd)
	}
}

func (s *script) OnHit(cmd Commands[string]) {
	s.record("hit")
	if s.onHit != nil {
		s.onHit(cmd)
	}
}

func (s *script) OnEnemyDetected(cmd Commands[string], enemy core.Coord) {
	s.record("detected:" + enemy.String())
	if s.onDetected != nil {
		s.onDetected(cmd, enemy)
	}
}

// count returns how many recorded events have the given name (tick prefix ignored).
func (s *script) count(name string) int {
	n := 0
	for _, e := range s.events {
		if _, event, ok := strings.Cut(e, ":"); ok && event == name {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, w, h int) *Game[string] {
	t.Helper()
	g, err := New[string](w, h, WithSeed(42))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

// place adds a scripted robot at pos and returns its script.
func place(t *testing.T, g *Game[string], id string, pos core.Coord, bearing core.Bearing) *script {
	t.Helper()
	s := &script{game: g}
	if err := g.AddRobotAt(id, s, pos, bearing); err != nil {
		t.Fatalf("AddRobotAt(%q) failed: %v", id, err)
	}
	return s
}

// cruise puts a robot already in motion: started, at the given velocity.
func cruise(g *Game[string], id string, velocity int) {
	for _, r := range g.robots {
		if r.id == id {
			r.started = true
			r.velocity = velocity
		}
	}
}

func state(t *testing.T, g *Game[string], id string) RobotState {
	t.Helper()
	rs, ok := g.Snapshot().Robot(id)
	if !ok {
		t.Fatalf("robot %q not in snapshot", id)
	}
	return rs
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	tests := []struct{ w, h int }{{0, 10}, {10, 0}, {-1, 5}, {0, 0}}

	for _, tc := range tests {
		if _, err := New[string](tc.w, tc.h); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("New(%d, %d) error = %v, expected ErrInvalidDimensions", tc.w, tc.h, err)
		}
	}
}

func TestAddRobotValidation(t *testing.T) {
	g := newTestGame(t, 10, 10)
	place(t, g, "A", core.C(1, 1), core.North)

	tests := []struct {
		name    string
		add     func() error
		wantErr error
	}{
		{"duplicate id", func() error { return g.AddRobot("A", &script{game: g}) }, ErrDuplicateID},
		{"empty id", func() error { return g.AddRobot("", &script{game: g}) }, ErrEmptyID},
		{"two-character id", func() error { return g.AddRobot("AB", &script{game: g}) }, ErrLongID},
		{"long id at fixed cell", func() error { return g.AddRobotAt("AC", &script{game: g}, core.C(2, 2), core.North) }, ErrLongID},
		{"nil control", func() error { return g.AddRobot("B", nil) }, ErrNilControl},
		{"occupied cell", func() error { return g.AddRobotAt("B", &script{game: g}, core.C(1, 1), core.North) }, ErrCellOccupied},
		{"outside arena", func() error { return g.AddRobotAt("B", &script{game: g}, core.C(10, 1), core.North) }, ErrOutOfArena},
		{"invalid bearing", func() error { return g.AddRobotAt("B", &script{game: g}, core.C(2, 2), core.Bearing(9)) }, ErrInvalidBearing},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.add(); !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, expected %v", err, tc.wantErr)
			}
		})
	}

	if g.Len() != 1 {
		t.Errorf("Len() = %d after rejected registrations, expected 1", g.Len())
	}
}

func TestRandomPlacementFillsArena(t *testing.T) {
	g := newTestGame(t, 2, 2)

	for i := 0; i < 4; i++ {
		if err := g.AddRobot(fmt.Sprintf("%c", 'A'+i), &script{game: g}); err != nil {
			t.Fatalf("AddRobot #%d failed: %v", i, err)
		}
	}

	seen := make(map[core.Coord]bool)
	for _, r := range g.Snapshot().Robots {
		if seen[r.Position] {
			t.Errorf("two robots placed at %v", r.Position)
		}
		seen[r.Position] = true
		if r.HitPoints != StartHitPoints || r.Velocity != 0 || r.Bearing != core.North {
			t.Errorf("robot %s starts as %+v", r.ID, r)
		}
	}

	if err := g.AddRobot("E", &script{game: g}); !errors.Is(err, ErrArenaFull) {
		t.Errorf("AddRobot on full arena error = %v, expected ErrArenaFull", err)
	}
}

func TestPlacementDeterminism(t *testing.T) {
	g1 := newTestGame(t, 80, 40)
	g2 := newTestGame(t, 80, 40)

	for _, id := range []string{"A", "B", "C"} {
		if err := g1.AddRobot(id, &script{game: g1}); err != nil {
			t.Fatal(err)
		}
		if err := g2.AddRobot(id, &script{game: g2}); err != nil {
			t.Fatal(err)
		}
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("same seed produced different placements:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestSouthboundScenario(t *testing.T) {
	g := newTestGame(t, 80, 40)
	a := place(t, g, "A", core.C(10, 10), core.South)
	a.onStart = func(cmd Commands[string]) { cmd.Forward(2) }

	g.Step()
	if got := state(t, g, "A").Position; got != core.C(10, 12) {
		t.Errorf("after tick 1 A at %v, expected (10,12)", got)
	}

	g.Step()
	if got := state(t, g, "A").Position; got != core.C(10, 14) {
		t.Errorf("after tick 2 A at %v, expected (10,14)", got)
	}

	if a.count("start") != 1 {
		t.Errorf("OnStart fired %d times, expected 1", a.count("start"))
	}
}

func TestHeadOnCollisionTieBreak(t *testing.T) {
	g := newTestGame(t, 80, 40)
	a := place(t, g, "A", core.C(10, 10), core.East)
	b := place(t, g, "B", core.C(11, 10), core.West)
	a.onStart = func(cmd Commands[string]) { cmd.Forward(5) }
	b.onStart = func(cmd Commands[string]) { cmd.Forward(5) }

	g.Step()

	// Equal velocity keeps registration order: A moves first and is the rammer.
	sa, sb := state(t, g, "A"), state(t, g, "B")
	if sa.HitPoints != StartHitPoints-RamDamage {
		t.Errorf("A hit points = %d, expected %d", sa.HitPoints, StartHitPoints-RamDamage)
	}
	if sb.HitPoints != StartHitPoints-RammedDamage {
		t.Errorf("B hit points = %d, expected %d", sb.HitPoints, StartHitPoints-RammedDamage)
	}
	if sa.Velocity != 0 || sb.Velocity != 0 {
		t.Errorf("velocities = %d, %d, expected both 0", sa.Velocity, sb.Velocity)
	}
	if sa.Position != core.C(10, 10) || sb.Position != core.C(11, 10) {
		t.Errorf("positions = %v, %v, expected no movement", sa.Position, sb.Position)
	}
	if a.count("collided") != 1 || b.count("collided") != 1 {
		t.Errorf("OnCollided counts = %d, %d, expected 1 each", a.count("collided"), b.count("collided"))
	}
}

func TestFasterRobotMovesFirst(t *testing.T) {
	g := newTestGame(t, 80, 40)
	place(t, g, "A", core.C(10, 10), core.East)
	place(t, g, "B", core.C(11, 7), core.South)
	cruise(g, "A", 1)
	cruise(g, "B", 3)

	g.Step()

	// B runs its three steps first and ends on (11,10), so A rams B.
	sa, sb := state(t, g, "A"), state(t, g, "B")
	if sb.Position != core.C(11, 10) {
		t.Errorf("B at %v, expected (11,10)", sb.Position)
	}
	if sa.Position != core.C(10, 10) {
		t.Errorf("A at %v, expected (10,10)", sa.Position)
	}
	if sa.HitPoints != StartHitPoints-RamDamage || sb.HitPoints != StartHitPoints-RammedDamage {
		t.Errorf("hit points = %d, %d, expected A rammer and B rammed", sa.HitPoints, sb.HitPoints)
	}
}

func TestStoppedRobotSkipsSlowerBands(t *testing.T) {
	g := newTestGame(t, 80, 40)
	place(t, g, "A", core.C(10, 10), core.East)
	place(t, g, "W", core.C(12, 10), core.North)
	cruise(g, "A", 4)

	g.Step()

	// A reaches (11,10), rams W on its second step and stops there.
	if got := state(t, g, "A"); got.Position != core.C(11, 10) || got.Velocity != 0 {
		t.Errorf("A = %+v, expected stopped at (11,10)", got)
	}
	if got := state(t, g, "A").HitPoints; got != StartHitPoints-RamDamage {
		t.Errorf("A hit points = %d, expected a single ram", got)
	}
}

func TestWallCollisionAndStickyObstacleWarning(t *testing.T) {
	g := newTestGame(t, 80, 40)
	a := place(t, g, "A", core.C(40, 30), core.South)
	cruise(g, "A", 2)

	for i := 0; i < 5; i++ {
		g.Step()
	}

	sa := state(t, g, "A")
	if sa.Position != core.C(40, 39) {
		t.Errorf("A stopped at %v, expected boundary cell (40,39)", sa.Position)
	}
	if sa.HitPoints != StartHitPoints-WallDamage {
		t.Errorf("A hit points = %d, expected %d", sa.HitPoints, StartHitPoints-WallDamage)
	}
	if sa.Velocity != 0 {
		t.Errorf("A velocity = %d, expected 0", sa.Velocity)
	}

	expected := []string{"2:obstacle", "5:collided"}
	if !reflect.DeepEqual(a.events, expected) {
		t.Errorf("events = %v, expected %v", a.events, expected)
	}

	// Bearing unchanged: no second warning.
	g.Step()
	if a.count("obstacle") != 1 {
		t.Errorf("obstacle warnings = %d after tick 6, expected 1", a.count("obstacle"))
	}

	// Any turn re-arms the warning, even to the same bearing.
	g.robots[0].cmd.Turn(core.South)
	g.Step()
	if a.count("obstacle") != 2 {
		t.Errorf("obstacle warnings = %d after turning, expected 2", a.count("obstacle"))
	}
}

func TestCollisionOutranksObstacleWarning(t *testing.T) {
	g := newTestGame(t, 80, 40)
	a := place(t, g, "A", core.C(79, 5), core.East)
	cruise(g, "A", 1)

	g.Step()
	g.Step()

	// Tick 1 collided (warning suppressed, not consumed); tick 2 warns.
	expected := []string{"1:collided", "2:obstacle"}
	if !reflect.DeepEqual(a.events, expected) {
		t.Errorf("events = %v, expected %v", a.events, expected)
	}
}

func TestBlastFootprint(t *testing.T) {
	g := newTestGame(t, 80, 40)
	target := core.C(20, 20)

	firer := place(t, g, "F", core.C(60, 20), core.North)
	firer.onStart = func(cmd Commands[string]) { cmd.FireAt(target) }

	inside := map[string]core.Coord{"a": core.C(22, 22), "b": core.C(18, 20), "c": core.C(20, 20)}
	outside := map[string]core.Coord{"d": core.C(23, 20), "e": core.C(20, 17)}

	scripts := make(map[string]*script)
	for id, pos := range inside {
		scripts[id] = place(t, g, id, pos, core.North)
	}
	for id, pos := range outside {
		scripts[id] = place(t, g, id, pos, core.North)
	}

	report := g.Step()

	if !reflect.DeepEqual(report.Blasts, []core.Coord{target}) {
		t.Errorf("Blasts = %v, expected [%v]", report.Blasts, target)
	}
	for id := range inside {
		if hp := state(t, g, id).HitPoints; hp != StartHitPoints-BlastDamage {
			t.Errorf("robot %s at distance <=2 has %d hit points, expected %d", id, hp, StartHitPoints-BlastDamage)
		}
		if scripts[id].count("hit") != 1 {
			t.Errorf("robot %s OnHit fired %d times, expected 1", id, scripts[id].count("hit"))
		}
	}
	for id := range outside {
		if hp := state(t, g, id).HitPoints; hp != StartHitPoints {
			t.Errorf("robot %s at distance 3 has %d hit points, expected %d", id, hp, StartHitPoints)
		}
		if scripts[id].count("hit") != 0 {
			t.Errorf("robot %s OnHit fired outside the blast", id)
		}
	}
	if state(t, g, "F").HitPoints != StartHitPoints {
		t.Error("distant firer should not be damaged")
	}
}

func TestFirerCaughtInOwnBlast(t *testing.T) {
	g := newTestGame(t, 80, 40)
	f := place(t, g, "F", core.C(5, 5), core.North)
	f.onStart = func(cmd Commands[string]) { cmd.FireAt(core.C(6, 6)) }

	g.Step()

	if hp := state(t, g, "F").HitPoints; hp != StartHitPoints-BlastDamage {
		t.Errorf("firer hit points = %d, expected %d", hp, StartHitPoints-BlastDamage)
	}
	if f.count("hit") != 1 {
		t.Errorf("firer OnHit fired %d times, expected 1", f.count("hit"))
	}
}

func TestLaterFireAtReplacesTarget(t *testing.T) {
	g := newTestGame(t, 80, 40)
	f := place(t, g, "F", core.C(5, 5), core.North)
	v := place(t, g, "V", core.C(40, 20), core.North)
	f.onStart = func(cmd Commands[string]) {
		cmd.FireAt(core.C(40, 20))
		cmd.FireAt(core.C(70, 30))
	}

	report := g.Step()

	if !reflect.DeepEqual(report.Blasts, []core.Coord{core.C(70, 30)}) {
		t.Errorf("Blasts = %v, expected only the later target", report.Blasts)
	}
	if v.count("hit") != 0 {
		t.Error("overwritten target should not blast")
	}

	// Target is consumed by the tick.
	if report := g.Step(); len(report.Blasts) != 0 {
		t.Errorf("Blasts on tick 2 = %v, expected none", report.Blasts)
	}
}

func TestDetectionIsPairwise(t *testing.T) {
	g := newTestGame(t, 80, 40)
	a := place(t, g, "A", core.C(10, 10), core.North)
	b := place(t, g, "B", core.C(15, 15), core.North)
	c := place(t, g, "C", core.C(16, 10), core.North)

	g.Step()

	tests := []struct {
		name     string
		s        *script
		expected []string
	}{
		{"A", a, []string{"1:detected:(15,15)"}},
		{"B", b, []string{"1:detected:(10,10)", "1:detected:(16,10)"}},
		{"C", c, []string{"1:detected:(15,15)"}},
	}

	for _, tc := range tests {
		var got []string
		for _, e := range tc.s.events {
			if e != "1:start" {
				got = append(got, e)
			}
		}
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("%s detections = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}

func TestTimeoutsFireInScheduleOrder(t *testing.T) {
	g := newTestGame(t, 80, 40)
	a := place(t, g, "A", core.C(40, 20), core.North)
	a.onStart = func(cmd Commands[string]) {
		cmd.RequestTimeout(2, "a")
		cmd.RequestTimeout(2, "b")
		cmd.RequestTimeout(1, "c")
		cmd.RequestTimeout(0, "now")
		cmd.RequestTimeout(-1, "never")
	}

	g.Step()
	if pending := state(t, g, "A").PendingTimeouts; pending != 3 {
		t.Errorf("pending timeouts after tick 1 = %d, expected 3", pending)
	}
	g.Step()
	g.Step()
	g.Step()

	expected := []string{"1:start", "1:timeout:now", "2:timeout:c", "3:timeout:a", "3:timeout:b"}
	if !reflect.DeepEqual(a.events, expected) {
		t.Errorf("events = %v, expected %v", a.events, expected)
	}
	if pending := state(t, g, "A").PendingTimeouts; pending != 0 {
		t.Errorf("pending timeouts = %d, expected 0", pending)
	}
}

func TestTimeoutRequestedFromTimeout(t *testing.T) {
	g := newTestGame(t, 80, 40)
	a := place(t, g, "A", core.C(40, 20), core.North)
	a.onStart = func(cmd Commands[string]) { cmd.RequestTimeout(1, "tick") }
	a.onTimeout = func(cmd Commands[string], state string) {
		if state == "tick" {
			cmd.RequestTimeout(0, "missed")
			cmd.RequestTimeout(1, "again")
		}
	}

	for i := 0; i < 4; i++ {
		g.Step()
	}

	// The zero delay lands on tick 2, whose timeout phase is already running.
	expected := []string{"1:start", "2:timeout:tick", "3:timeout:again"}
	if !reflect.DeepEqual(a.events, expected) {
		t.Errorf("events = %v, expected %v", a.events, expected)
	}
	if pending := state(t, g, "A").PendingTimeouts; pending != 0 {
		t.Errorf("pending timeouts = %d, expected 0", pending)
	}
}

func TestTimeoutRequestedAfterTimeoutPhaseNeverFires(t *testing.T) {
	g := newTestGame(t, 80, 40)
	a := place(t, g, "A", core.C(10, 10), core.North)
	place(t, g, "B", core.C(12, 10), core.North)

	requested := false
	a.onDetected = func(cmd Commands[string], _ core.Coord) {
		if !requested {
			requested = true
			cmd.RequestTimeout(0, "late")
		}
	}

	g.Step()
	if pending := state(t, g, "A").PendingTimeouts; pending != 1 {
		t.Fatalf("pending timeouts after tick 1 = %d, expected 1", pending)
	}
	g.Step()
	g.Step()

	if n := a.count("timeout:late"); n != 0 {
		t.Errorf("late timeout fired %d times, expected 0 (events %v)", n, a.events)
	}
	if pending := state(t, g, "A").PendingTimeouts; pending != 0 {
		t.Errorf("pending timeouts = %d, expected the stale one dropped", pending)
	}
}

func TestForwardRange(t *testing.T) {
	g := newTestGame(t, 80, 40)
	place(t, g, "A", core.C(40, 20), core.North)
	cmd := g.robots[0].cmd

	tests := []struct {
		request  int
		expected int
	}{
		{3, 3},
		{6, 3},
		{-1, 3},
		{5, 5},
		{0, 0},
	}

	for _, tc := range tests {
		cmd.Forward(tc.request)
		if got := g.robots[0].velocity; got != tc.expected {
			t.Errorf("Forward(%d) left velocity %d, expected %d", tc.request, got, tc.expected)
		}
	}

	cmd.Forward(4)
	cmd.Halt()
	if got := g.robots[0].velocity; got != 0 {
		t.Errorf("Halt() left velocity %d", got)
	}
}

func TestEliminationAtEndOfTick(t *testing.T) {
	g := newTestGame(t, 80, 40)
	f := place(t, g, "F", core.C(10, 10), core.North)
	v := place(t, g, "V", core.C(13, 10), core.North)
	g.robots[1].hitPoints = BlastDamage

	f.onStart = func(cmd Commands[string]) { cmd.FireAt(core.C(13, 10)) }

	report := g.Step()

	if !reflect.DeepEqual(report.Eliminated, []string{"V"}) {
		t.Errorf("Eliminated = %v, expected [V]", report.Eliminated)
	}
	if _, ok := g.Snapshot().Robot("V"); ok {
		t.Error("eliminated robot still in snapshot")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", g.Len())
	}

	// Events of the elimination tick were still delivered, both ways.
	expected := []string{"1:start", "1:hit", "1:detected:(10,10)"}
	if !reflect.DeepEqual(v.events, expected) {
		t.Errorf("victim events = %v, expected %v", v.events, expected)
	}
	if f.count("detected:(13,10)") != 1 {
		t.Errorf("firer should have detected the victim during the final tick, events = %v", f.events)
	}

	g.Step()
	if len(v.events) != len(expected) {
		t.Errorf("eliminated robot received events after removal: %v", v.events)
	}
	if f.count("detected:(13,10)") != 1 {
		t.Error("eliminated robot was detected after removal")
	}
}

func TestStartFiresOnlyOnFirstTick(t *testing.T) {
	g := newTestGame(t, 80, 40)
	a := place(t, g, "A", core.C(5, 5), core.North)

	g.Step()
	g.Step()

	late := place(t, g, "L", core.C(70, 30), core.North)
	g.Step()
	g.Step()

	if a.count("start") != 1 {
		t.Errorf("A OnStart fired %d times, expected 1", a.count("start"))
	}
	if late.count("start") != 0 {
		t.Errorf("robot added at tick %d got OnStart: %v", 2, late.events)
	}
}

func TestStepOnEmptyArena(t *testing.T) {
	g := newTestGame(t, 5, 5)
	report := g.Step()

	if report.Tick != 1 || g.Tick() != 1 {
		t.Errorf("Tick = %d/%d, expected 1", report.Tick, g.Tick())
	}
	if len(report.Frame.Draws) != 0 || len(report.Eliminated) != 0 {
		t.Errorf("empty arena produced %+v", report)
	}
}

func TestFrameDrawAndClear(t *testing.T) {
	g := newTestGame(t, 80, 40)
	f := place(t, g, "F", core.C(10, 10), core.East)
	place(t, g, "V", core.C(30, 10), core.North)
	f.onStart = func(cmd Commands[string]) {
		cmd.Forward(1)
		cmd.FireAt(core.C(31, 10))
	}

	first := g.Step()

	expectedDraws := []DrawEvent{
		{At: core.C(11, 10), Glyph: 'F', Color: core.ColorRobot},
		{At: core.C(30, 10), Glyph: 'V', Color: core.ColorRobot},
		{At: core.C(31, 10), Glyph: BlastGlyph, Color: core.ColorBlast},
		{At: core.C(30, 10), Glyph: 'V', Color: core.ColorHit},
	}
	if len(first.Frame.Clear) != 0 {
		t.Errorf("first frame Clear = %v, expected empty", first.Frame.Clear)
	}
	if !reflect.DeepEqual(first.Frame.Draws, expectedDraws) {
		t.Errorf("first frame Draws = %+v, expected %+v", first.Frame.Draws, expectedDraws)
	}

	second := g.Step()
	expectedClear := []core.Coord{core.C(11, 10), core.C(30, 10), core.C(31, 10), core.C(30, 10)}
	if !reflect.DeepEqual(second.Frame.Clear, expectedClear) {
		t.Errorf("second frame Clear = %v, expected %v", second.Frame.Clear, expectedClear)
	}

	screen := core.NewScreen(80, 40)
	first.Frame.Apply(screen, core.C(0, 0))
	second.Frame.Apply(screen, core.C(0, 0))
	if screen.Get(31, 10) != ' ' {
		t.Errorf("blast marker should be cleared by the next frame, got %q", screen.Get(31, 10))
	}
	if screen.Get(12, 10) != 'F' {
		t.Errorf("F should be drawn at its new cell (12,10), row = %q", screen.Row(10))
	}
}

func TestFrameSkipsCellsOutsideArena(t *testing.T) {
	g := newTestGame(t, 10, 10)
	f := place(t, g, "F", core.C(1, 1), core.North)
	f.onStart = func(cmd Commands[string]) { cmd.FireAt(core.C(-1, -1)) }

	report := g.Step()

	for _, d := range report.Frame.Draws {
		if !g.Arena().Contains(d.At) {
			t.Errorf("draw event outside arena: %+v", d)
		}
	}
	// The blast still resolves even though its center cannot be drawn.
	if hp := state(t, g, "F").HitPoints; hp != StartHitPoints-BlastDamage {
		t.Errorf("F hit points = %d, expected the off-arena blast to reach (1,1)", hp)
	}
}

func TestRedrawClearsPreviousFrame(t *testing.T) {
	g := newTestGame(t, 20, 20)
	a := place(t, g, "A", core.C(5, 5), core.South)
	a.onStart = func(cmd Commands[string]) { cmd.Forward(1) }

	initial := g.Redraw()
	if !reflect.DeepEqual(initial.Draws, []DrawEvent{{At: core.C(5, 5), Glyph: 'A', Color: core.ColorRobot}}) {
		t.Errorf("Redraw() Draws = %+v", initial.Draws)
	}

	report := g.Step()
	if !reflect.DeepEqual(report.Frame.Clear, []core.Coord{core.C(5, 5)}) {
		t.Errorf("Step after Redraw Clear = %v, expected [(5,5)]", report.Frame.Clear)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, 20, 20)
	a := place(t, g, "A", core.C(5, 5), core.North)
	a.onStart = func(cmd Commands[string]) { cmd.FireAt(core.C(15, 15)) }

	snap := g.Snapshot()
	snap.Robots[0].HitPoints = 1
	if state(t, g, "A").HitPoints != StartHitPoints {
		t.Error("mutating a snapshot changed the game")
	}

	// Target is only visible between OnStart and the fire phase; after the
	// step it has been consumed.
	g.Step()
	if state(t, g, "A").Target != nil {
		t.Error("fire target should be cleared after the tick")
	}
}
