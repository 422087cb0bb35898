package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robot-arena/internal/storage"
)

var flagLimit int

var historyCmd = &cobra.Command{
	Use:   "history [match-id]",
	Short: "Show stored results",
	Long: `Display the most recent matches and every bot's record.
With a match id (or the short id from the listing) show that match's standings.

Examples:
  arena history
  arena history --limit 50
  arena history 3fa85f64`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of recent matches to show")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showMatch(store, args[0])
		return
	}

	matches, err := store.RecentMatches(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'arena run' or 'arena sim' to play some!")
		return
	}

	fmt.Printf("  %-8s  %-20s  %-13s  %-6s  %s\n", "Match", "Winner", "Reason", "Ticks", "Date")
	fmt.Printf("  %-8s  %-20s  %-13s  %-6s  %s\n", "-----", "------", "------", "-----", "----")
	for _, m := range matches {
		winner := "-"
		if m.Winner != "" {
			winner = fmt.Sprintf("%s (%s)", m.Winner, m.WinnerBot)
		}
		id := m.MatchID
		if len(id) > 8 {
			id = id[:8]
		}
		fmt.Printf("  %-8s  %-20s  %-13s  %-6d  %s\n",
			id, winner, m.EndReason, m.Ticks, m.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.BotStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving bot stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Bots")
	fmt.Println()
	fmt.Printf("  %-14s  %-7s  %-5s  %s\n", "Bot", "Entries", "Wins", "Avg place")
	fmt.Printf("  %-14s  %-7s  %-5s  %s\n", "---", "-------", "----", "---------")
	for _, s := range stats {
		fmt.Printf("  %-14s  %-7d  %-5d  %.2f\n", s.Bot, s.Entries, s.Wins, s.AvgPlace)
	}

	if total, err := store.MatchCount(); err == nil {
		fmt.Println()
		fmt.Printf("Matches recorded: %d\n", total)
	}
}

// showMatch prints one stored match with its standings.
func showMatch(store *storage.Store, id string) {
	rec, err := store.MatchByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving match: %v\n", err)
		os.Exit(1)
	}
	if rec == nil {
		fmt.Fprintf(os.Stderr, "No match with id %q\n", id)
		os.Exit(1)
	}

	winner := "none"
	if rec.Winner != "" {
		winner = fmt.Sprintf("%s (%s)", rec.Winner, rec.WinnerBot)
	}
	fmt.Printf("Match %s\n\n", rec.MatchID)
	fmt.Printf("  Seed:     %d\n", rec.Seed)
	fmt.Printf("  Arena:    %dx%d\n", rec.Width, rec.Height)
	fmt.Printf("  Ticks:    %d\n", rec.Ticks)
	fmt.Printf("  Winner:   %s\n", winner)
	fmt.Printf("  Reason:   %s\n", rec.EndReason)
	fmt.Printf("  Duration: %s\n", rec.Duration)
	fmt.Printf("  Played:   %s\n", rec.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()

	fmt.Printf("  %-5s  %-5s  %-14s  %-4s  %s\n", "Place", "Robot", "Bot", "HP", "Out at")
	fmt.Printf("  %-5s  %-5s  %-14s  %-4s  %s\n", "-----", "-----", "---", "--", "------")
	for _, st := range rec.Standings {
		out := "-"
		if st.EliminatedAt > 0 {
			out = fmt.Sprintf("tick %d", st.EliminatedAt)
		}
		fmt.Printf("  %-5d  %-5s  %-14s  %-4d  %s\n", st.Place, st.RobotID, st.Bot, st.HitPoints, out)
	}
}
