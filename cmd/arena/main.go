// arena runs robot matches in the terminal.
//
// Usage:
//
//	arena run                - Watch a match tick by tick
//	arena sim                - Run a batch of headless matches
//	arena bots               - List available bots
//	arena history            - Show recent results and bot standings
//	arena serve              - Start SSH server for remote viewing
//
// Global flags:
//
//	--config <path>     - Arena configuration YAML
//	--seed <value>      - Set RNG seed for reproducible matches
//	--db <path>         - Set database path (default: ~/.robots/results.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/robot-arena/internal/config"

	// Import stock bots to register them
	_ "github.com/vovakirdan/robot-arena/internal/bots"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Robot Arena - pit scripted robots against each other",
	Long: `Robot Arena runs matches between scripted robots on a grid.
Robots drive, collide, scan for each other and lob blasts until one is left.

Available commands:
  run      - Watch a match in the terminal
  sim      - Run many matches headless and summarize
  bots     - Show all available bots
  history  - View stored results
  serve    - Start SSH server for remote viewing

Examples:
  arena run --auto
  arena run --config ./duel.yaml --seed 42
  arena sim --matches 200 --parallel 8
  arena history --limit 20
  arena serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to arena config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, random if unset)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.robots/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(botsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger builds the process logger from --log-level.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using warn", "level", flagLogLevel)
		level = log.WarnLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadConfig resolves the arena configuration and applies --seed.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSeed != 0 {
		cfg.Match.Seed = flagSeed
	}
	return cfg
}
