package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockduel/internal/storage"
)

var (
	flagMatchLimit   int
	flagMatchSession string
)

var matchesCmd = &cobra.Command{
	Use:   "matches [match-id]",
	Short: "Show recorded matches",
	Long: `List recently finished matches, newest first, or show one match in
detail when its ID is given.

Examples:
  blockduel matches
  blockduel matches --limit 5
  blockduel matches --session local
  blockduel matches 6f1c2a8e-3b7d-4f0e-9a51-2d4c8b7e1f03`,
	Args: cobra.MaximumNArgs(1),
	Run:  runMatches,
}

func init() {
	matchesCmd.Flags().IntVar(&flagMatchLimit, "limit", 20, "Maximum matches to list")
	matchesCmd.Flags().StringVar(&flagMatchSession, "session", "", "Only matches hosted by this session")
}

func runMatches(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		showMatch(store, args[0])
		return
	}

	var records []storage.DuelRecord
	if flagMatchSession != "" {
		records, err = store.SessionDuelResults(flagMatchSession, flagMatchLimit)
	} else {
		records, err = store.RecentDuelResults(flagMatchLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	if len(records) == 0 {
		fmt.Println("No matches recorded yet.")
		return
	}

	fmt.Printf("  %-8s  %-10s  %-10s  %-9s  %-9s  %-8s  %s\n", "ID", "Game", "Result", "P1", "P2", "Length", "When")
	fmt.Printf("  %-8s  %-10s  %-10s  %-9s  %-9s  %-8s  %s\n", "--", "----", "------", "--", "--", "------", "----")
	for _, r := range records {
		fmt.Printf("  %-8s  %-10s  %-10s  %-9s  %-9s  %-8s  %s\n",
			r.MatchID[:min(8, len(r.MatchID))],
			r.GameID,
			resultLabel(r),
			humanize.Comma(int64(r.Score1)),
			humanize.Comma(int64(r.Score2)),
			(time.Duration(r.Duration) * time.Second).String(),
			humanize.Time(r.CreatedAt),
		)
	}
}

func showMatch(store *storage.Store, id string) {
	if _, err := uuid.Parse(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %q is not a match ID: %v\n", id, err)
		os.Exit(1)
	}

	r, err := store.DuelResultByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving match: %v\n", err)
		os.Exit(1)
	}
	if r == nil {
		fmt.Fprintf(os.Stderr, "Error: no match %s\n", id)
		os.Exit(1)
	}

	fmt.Printf("Match %s\n\n", r.MatchID)
	fmt.Printf("  Game:     %s (%s)\n", r.GameID, r.Mode)
	fmt.Printf("  Result:   %s\n", resultLabel(*r))
	fmt.Printf("  Length:   %s\n", time.Duration(r.Duration)*time.Second)
	fmt.Printf("  Played:   %s (%s)\n", r.CreatedAt.Format("2006-01-02 15:04"), humanize.Time(r.CreatedAt))
	fmt.Printf("  Session:  %s\n\n", r.SessionID)
	fmt.Printf("            %10s  %10s\n", "P1", "P2")
	fmt.Printf("  Score     %10s  %10s\n", humanize.Comma(int64(r.Score1)), humanize.Comma(int64(r.Score2)))
	fmt.Printf("  Lines     %10d  %10d\n", r.Lines1, r.Lines2)
	fmt.Printf("  Garbage   %10d  %10d\n", r.Garbage1, r.Garbage2)
}

// resultLabel describes how a stored match ended.
func resultLabel(r storage.DuelRecord) string {
	switch {
	case r.EndReason == "abandoned":
		return "abandoned"
	case r.Winner == 1:
		return "P1 won"
	case r.Winner == 2:
		return "P2 won"
	case r.Mode == "Solo":
		return "finished"
	default:
		return "draw"
	}
}
