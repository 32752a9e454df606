package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockduel/internal/registry"
	"github.com/vovakirdan/blockduel/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game, and the
head-to-head record for two-player games.

In a duel the score saved is player 1's.

Examples:
  blockduel scores duel
  blockduel scores duel_solo`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockduel list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'blockduel play %s' to set the first high score!\n", gameID)
	} else {
		// Print header
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

		// Print scores
		for i, entry := range scores {
			dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4s  %-10s  %s (%s)\n",
				humanize.Ordinal(i+1), humanize.Comma(int64(entry.Score)), dateStr, humanize.Time(entry.CreatedAt))
		}

		// Show high score and play count
		fmt.Println()
		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Printf("Best: %s over %s games\n", humanize.Comma(int64(stats.HighScore)), humanize.Comma(int64(stats.GamesCount)))
		}
	}

	// Head-to-head record for duels
	h2h, err := store.HeadToHeadFor(gameID)
	if err == nil && h2h.Total() > 0 {
		fmt.Println()
		fmt.Printf("Head to head: P1 %d - %d P2, %d drawn (%d duels)\n",
			h2h.Player1Wins, h2h.Player2Wins, h2h.Draws, h2h.Total())
	}
}
