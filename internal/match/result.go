package match

import (
	"sort"
	"time"
)

// EndReason describes why a match ended.
type EndReason int

const (
	EndReasonLastStanding EndReason = iota // One robot left
	EndReasonAnnihilation                  // Every robot was eliminated
	EndReasonMaxTicks                      // Tick limit reached with several survivors
	EndReasonCancelled                     // Stopped before finishing
)

// String returns the reason as stored in the results ledger.
func (r EndReason) String() string {
	switch r {
	case EndReasonLastStanding:
		return "last_standing"
	case EndReasonAnnihilation:
		return "annihilation"
	case EndReasonMaxTicks:
		return "max_ticks"
	case EndReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// ParseEndReason converts a stored reason back. Unknown strings map to
// EndReasonCancelled.
func ParseEndReason(s string) EndReason {
	for r := EndReasonLastStanding; r <= EndReasonCancelled; r++ {
		if r.String() == s {
			return r
		}
	}
	return EndReasonCancelled
}

// Standing is one robot's final placement.
type Standing struct {
	RobotID      string
	Bot          string
	Place        int // 1 = best; robots that tie share a place
	HitPoints    int // At the end of the match, 0 when eliminated
	EliminatedAt int // Tick of elimination, 0 for survivors
}

// Survived reports whether the robot was still alive at the end.
func (s Standing) Survived() bool {
	return s.EliminatedAt == 0
}

// Result is the outcome of a finished match.
type Result struct {
	ID        string
	Seed      int64
	Width     int
	Height    int
	Ticks     int
	Winner    string // Robot id, empty for a draw
	Reason    EndReason
	Standings []Standing // Ordered by place
	StartedAt time.Time
	Duration  time.Duration
}

// WinnerBot returns the bot name of the winner, or "" for a draw.
func (r Result) WinnerBot() string {
	for _, s := range r.Standings {
		if s.RobotID == r.Winner {
			return s.Bot
		}
	}
	return ""
}

// ResultSaver persists finished matches.
// This allows the match runner to save results without depending on the storage package.
type ResultSaver interface {
	SaveMatchResult(result Result) error
}

// rank orders standings and assigns places. Survivors come first by hit
// points; eliminated robots follow, later eliminations placing higher.
// Equal keys share a place; otherwise roster order is kept.
func rank(standings []Standing) {
	better := func(a, b Standing) bool {
		if a.Survived() != b.Survived() {
			return a.Survived()
		}
		if a.Survived() {
			return a.HitPoints > b.HitPoints
		}
		return a.EliminatedAt > b.EliminatedAt
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return better(standings[i], standings[j])
	})

	for i := range standings {
		if i > 0 && !better(standings[i-1], standings[i]) {
			standings[i].Place = standings[i-1].Place
			continue
		}
		standings[i].Place = i + 1
	}
}

// decide picks the winner and end reason from ranked standings.
func decide(standings []Standing, cancelled bool) (string, EndReason) {
	survivors := 0
	for _, s := range standings {
		if s.Survived() {
			survivors++
		}
	}

	switch {
	case cancelled:
		return "", EndReasonCancelled
	case survivors == 0:
		return "", EndReasonAnnihilation
	case survivors == 1:
		return standings[0].RobotID, EndReasonLastStanding
	}

	// Several survivors at the tick limit: the leader wins unless tied.
	if standings[1].Place != 1 {
		return standings[0].RobotID, EndReasonMaxTicks
	}
	return "", EndReasonMaxTicks
}
