package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robot-arena/internal/match"
	"github.com/vovakirdan/robot-arena/internal/storage"
)

var (
	flagMatches  int
	flagParallel int
	flagMaxTicks int
	flagNoSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run matches headless",
	Long: `Run a batch of matches without a display and print how each bot fared.
Match i uses seed + i, so a batch with a fixed --seed is reproducible.

Examples:
  arena sim --matches 100
  arena sim --matches 1000 --parallel 8 --seed 1
  arena sim --max-ticks 500 --no-save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagMatches, "matches", 10, "Number of matches to run")
	simCmd.Flags().IntVar(&flagParallel, "parallel", 4, "Matches run at the same time")
	simCmd.Flags().IntVar(&flagMaxTicks, "max-ticks", -1, "Tick limit per match (-1 = use config, 0 = none)")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results in the database")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagMaxTicks >= 0 {
		cfg.Match.MaxTicks = flagMaxTicks
	}
	logger := newLogger("arena-sim")

	opts := match.BatchOptions{
		Matches:  flagMatches,
		Parallel: flagParallel,
		Logger:   logger,
	}

	if !flagNoSave {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		opts.Saver = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := match.RunBatch(ctx, cfg, opts)
	if errors.Is(err, context.Canceled) {
		fmt.Println("Interrupted.")
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Ran %d matches on a %dx%d arena\n", len(results), cfg.Arena.Width, cfg.Arena.Height)
	fmt.Println()

	tallies := match.Summarize(results)
	if len(tallies) == 0 {
		fmt.Println("No matches finished.")
		return
	}

	fmt.Printf("  %-14s  %-7s  %-5s  %s\n", "Bot", "Entries", "Wins", "Avg place")
	fmt.Printf("  %-14s  %-7s  %-5s  %s\n", "---", "-------", "----", "---------")
	for _, t := range tallies {
		fmt.Printf("  %-14s  %-7d  %-5d  %.2f\n", t.Bot, t.Entries, t.Wins, t.AvgPlace)
	}

	draws := 0
	for _, r := range results {
		if r.Winner == "" {
			draws++
		}
	}
	if draws > 0 {
		fmt.Println()
		fmt.Printf("No winner: %d\n", draws)
	}
}
