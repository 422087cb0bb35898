package arena_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/robot-arena/internal/arena"
	"github.com/vovakirdan/robot-arena/internal/arena/mocks"
	"github.com/vovakirdan/robot-arena/internal/core"
)

func TestStepDispatchOrder(t *testing.T) {
	ctrl := gomock.NewController(t)

	g, err := arena.New[string](20, 20, arena.WithSeed(1))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	a := mocks.NewMockControl[string](ctrl)
	b := mocks.NewMockControl[string](ctrl)

	if err := g.AddRobotAt("A", a, core.C(0, 5), core.West); err != nil {
		t.Fatal(err)
	}
	if err := g.AddRobotAt("B", b, core.C(3, 5), core.South); err != nil {
		t.Fatal(err)
	}

	gomock.InOrder(
		a.EXPECT().OnStart(gomock.Any()).Do(func(cmd arena.Commands[string]) {
			cmd.Forward(1)
			cmd.RequestTimeout(0, "t")
			cmd.FireAt(core.C(3, 5))
		}),
		b.EXPECT().OnStart(gomock.Any()),
		a.EXPECT().OnCollided(gomock.Any()),
		a.EXPECT().OnTimeout(gomock.Any(), "t"),
		b.EXPECT().OnHit(gomock.Any()),
		a.EXPECT().OnEnemyDetected(gomock.Any(), core.C(3, 5)),
		b.EXPECT().OnEnemyDetected(gomock.Any(), core.C(0, 5)),
	)

	report := g.Step()

	if report.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", report.Tick)
	}
	snap := g.Snapshot()
	if rs, _ := snap.Robot("A"); rs.HitPoints != arena.StartHitPoints-arena.WallDamage {
		t.Errorf("A hit points = %d, expected %d", rs.HitPoints, arena.StartHitPoints-arena.WallDamage)
	}
	if rs, _ := snap.Robot("B"); rs.HitPoints != arena.StartHitPoints-arena.BlastDamage {
		t.Errorf("B hit points = %d, expected %d", rs.HitPoints, arena.StartHitPoints-arena.BlastDamage)
	}
}

func TestCommandsHandleIsStable(t *testing.T) {
	ctrl := gomock.NewController(t)

	g, err := arena.New[int](20, 20, arena.WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	m := mocks.NewMockControl[int](ctrl)
	if err := g.AddRobotAt("A", m, core.C(10, 10), core.North); err != nil {
		t.Fatal(err)
	}

	var first arena.Commands[int]
	m.EXPECT().OnStart(gomock.Any()).Do(func(cmd arena.Commands[int]) {
		first = cmd
		cmd.RequestTimeout(1, 7)
	})
	m.EXPECT().OnTimeout(gomock.Any(), 7).Do(func(cmd arena.Commands[int], _ int) {
		if cmd != first {
			t.Error("OnTimeout received a different Commands handle than OnStart")
		}
	})

	g.Step()
	g.Step()
}

func TestNopControlIsQuiet(t *testing.T) {
	g, err := arena.New[string](10, 10, arena.WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	for _, id := range []string{"x", "y", "z"} {
		if err := g.AddRobot(id, arena.NopControl[string]{}); err != nil {
			t.Fatalf("AddRobot(%q) failed: %v", id, err)
		}
	}

	for i := 0; i < 10; i++ {
		g.Step()
	}

	for _, rs := range g.Snapshot().Robots {
		if rs.HitPoints != arena.StartHitPoints {
			t.Errorf("idle robot %s lost hit points: %d", rs.ID, rs.HitPoints)
		}
	}
}
