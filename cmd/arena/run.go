package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/robot-arena/internal/platform/tui"
	"github.com/vovakirdan/robot-arena/internal/storage"
)

var (
	flagAuto     bool
	flagTickRate int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch a match",
	Long: `Build a match from the arena config and watch it in the terminal.

Controls:
  Space/Enter/N  - Advance one tick
  A              - Toggle auto-advance
  R              - New match (after the current one ends)
  H              - Results history
  Q/Ctrl+C       - Quit

Examples:
  arena run
  arena run --auto --tick-rate 20
  arena run --config ./duel.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runRun,
}

func init() {
	runCmd.Flags().BoolVar(&flagAuto, "auto", false, "Start in auto-advance mode")
	runCmd.Flags().IntVar(&flagTickRate, "tick-rate", 0, "Auto-advance ticks per second (0 = use config)")
}

func runRun(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	if flagTickRate > 0 {
		cfg.Match.TickRate = flagTickRate
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// The viewer owns the terminal; engine logs would tear the picture.
	logger := log.New(io.Discard)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - matches still run
		store = nil
	}

	var ledger tui.Ledger
	if store != nil {
		ledger = store
	}

	runErr := tui.Run(cfg, ledger,
		tui.WithLogger(logger),
		tui.WithAutoAdvance(flagAuto),
		tui.WithScreenSize(width, height),
	)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running match: %v\n", runErr)
		os.Exit(1)
	}
}
