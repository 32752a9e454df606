package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockduel/internal/core"
	"github.com/vovakirdan/blockduel/internal/games/duel"
	"github.com/vovakirdan/blockduel/internal/platform/tui"
	"github.com/vovakirdan/blockduel/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: duel).

Default controls:
  Player 1   A/D move, W rotate, S soft drop, Space hard drop, 1 restart
  Player 2   Arrows move/rotate/soft drop, Enter hard drop, 2 restart
  P          Pause
  Esc/B      Back (when paused or over)
  Q/Ctrl+C   Quit

Keys can be rebound in the duel config (see --config).

Examples:
  blockduel play
  blockduel play duel_solo
  blockduel play duel --seed 7 --fps 30
  blockduel play --config ./my-duel.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := duel.IDDuel
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockduel list' to see available games.")
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger()
	logger.Debug("starting game", "game", gameID, "fps", flagFPS, "seed", flagSeed)

	// Open score storage; the game still works without it
	store := openStore()

	// Run the game
	runErr := tui.Run(game, newServices(store, logger), runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig builds the runtime config from the terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
