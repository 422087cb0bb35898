package match

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/robot-arena/internal/config"
)

// BatchOptions controls RunBatch.
type BatchOptions struct {
	Matches  int         // Number of matches to run
	Parallel int         // Concurrent matches; <= 0 uses GOMAXPROCS
	Saver    ResultSaver // Optional, can be nil
	Logger   *log.Logger // Optional
}

// RunBatch runs independent matches built from cfg concurrently and returns
// their results in match order. With a fixed seed, match i uses seed+i so the
// whole batch is reproducible. The first failing match cancels the rest.
func RunBatch(ctx context.Context, cfg config.Config, opts BatchOptions) ([]Result, error) {
	if opts.Matches <= 0 {
		return nil, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Parallel <= 0 {
		opts.Parallel = runtime.GOMAXPROCS(0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	base := cfg.Match.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	results := make([]Result, opts.Matches)
	var saveMu sync.Mutex

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Parallel)

	for i := 0; i < opts.Matches; i++ {
		eg.Go(func() error {
			m, err := New(cfg, WithSeed(base+int64(i)), WithLogger(logger))
			if err != nil {
				return fmt.Errorf("match %d: %w", i+1, err)
			}

			res, err := m.Run(ctx)
			if err != nil {
				return err
			}
			results[i] = res

			if opts.Saver != nil {
				saveMu.Lock()
				err := opts.Saver.SaveMatchResult(res)
				saveMu.Unlock()
				if err != nil {
					return fmt.Errorf("match %d: %w", i+1, err)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// BotTally aggregates one bot's results over a batch.
type BotTally struct {
	Bot      string
	Entries  int // Robots driven by this bot across all matches
	Wins     int
	AvgPlace float64
}

// Summarize tallies wins and average placement per bot, best first.
func Summarize(results []Result) []BotTally {
	type acc struct {
		entries, wins, places int
	}
	byBot := make(map[string]*acc)

	for _, r := range results {
		for _, s := range r.Standings {
			a, ok := byBot[s.Bot]
			if !ok {
				a = &acc{}
				byBot[s.Bot] = a
			}
			a.entries++
			a.places += s.Place
			if s.RobotID == r.Winner {
				a.wins++
			}
		}
	}

	tallies := make([]BotTally, 0, len(byBot))
	for bot, a := range byBot {
		tallies = append(tallies, BotTally{
			Bot:      bot,
			Entries:  a.entries,
			Wins:     a.wins,
			AvgPlace: float64(a.places) / float64(a.entries),
		})
	}

	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].Wins != tallies[j].Wins {
			return tallies[i].Wins > tallies[j].Wins
		}
		if tallies[i].AvgPlace != tallies[j].AvgPlace {
			return tallies[i].AvgPlace < tallies[j].AvgPlace
		}
		return tallies[i].Bot < tallies[j].Bot
	})
	return tallies
}
