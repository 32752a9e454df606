// blockduel is a two-player falling-block duel for the terminal: clear
// lines on your board to push garbage rows onto your opponent's.
//
// Usage:
//
//	blockduel list              - List available games
//	blockduel play [game]       - Play a game (default: duel)
//	blockduel menu              - Start menu to pick games interactively
//	blockduel serve             - Start SSH server for remote play
//	blockduel scores <game>     - Show high scores for a game
//	blockduel matches [id]      - Show recorded matches
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.blockduel/scores.db)
//	--config <path>  - Use a custom duel config YAML
//	--verbose        - Log debug output
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockduel/internal/config"
	"github.com/vovakirdan/blockduel/internal/games/duel"
	"github.com/vovakirdan/blockduel/internal/multiplayer"
	"github.com/vovakirdan/blockduel/internal/platform/tui"
	"github.com/vovakirdan/blockduel/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool

	// Loaded before any command runs
	duelConfig config.DuelConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockduel",
	Short: "Block Duel - a two-player falling-block battle in your terminal",
	Long: `Block Duel puts two boards side by side on one keyboard. Clear two or
more lines at once to push garbage rows onto your opponent's board; the
last player standing wins.

Available commands:
  list     - Show all available games
  play     - Play a game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  matches  - View recorded matches

Examples:
  blockduel play
  blockduel play duel_solo --seed 42
  blockduel menu --config ./configs/duel.yaml
  blockduel serve --ssh :2222
  blockduel matches --limit 5`,
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockduel/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom duel config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(matchesCmd)
}

// loadConfig resolves the duel config and hands it to the games.
func loadConfig(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	cfg, err := config.LoadDuel(flagConfig)
	if err != nil {
		return err
	}
	duelConfig = cfg
	duel.SetConfig(cfg)
	return nil
}

// newLogger returns a logger for commands that own the terminal. Output
// goes to ~/.blockduel/blockduel.log so it never lands on the game screen.
func newLogger() *log.Logger {
	var w io.Writer = io.Discard
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, ".blockduel")
		if os.MkdirAll(dir, 0o755) == nil {
			f, err := os.OpenFile(filepath.Join(dir, "blockduel.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				w = f
			}
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockduel",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openStore opens the scores database, warning and returning nil on failure
// so games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newServices wires storage, the result recorder and key bindings for a
// local terminal session.
func newServices(store *storage.Store, logger *log.Logger) tui.Services {
	var saver multiplayer.MatchResultSaver
	if store != nil {
		saver = store
	}
	return tui.Services{
		Store:    store,
		Recorder: multiplayer.NewRecorder(saver, logger, multiplayer.LocalSession),
		Keys:     tui.NewKeyMapper(duelConfig.Controls),
	}
}
