package multiplayer

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// Recorder logs finished matches and hands them to a saver.
// A nil saver only logs.
type Recorder struct {
	saver   MatchResultSaver
	logger  *log.Logger
	session SessionID
}

// NewRecorder creates a recorder for matches hosted by one session.
func NewRecorder(saver MatchResultSaver, logger *log.Logger, session SessionID) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	if session == "" {
		session = LocalSession
	}
	return &Recorder{
		saver:   saver,
		logger:  logger,
		session: session,
	}
}

// Record stamps the result with the hosting session, logs it and saves it.
func (r *Recorder) Record(result MatchResult) error {
	if result.Session == "" {
		result.Session = r.session
	}

	r.logger.Info("match finished",
		"match", result.MatchID,
		"game", result.GameID,
		"mode", result.Mode,
		"reason", result.Reason,
		"winner", winnerLabel(result),
		"score1", result.Player1.Score,
		"score2", result.Player2.Score,
		"duration", result.Duration.Round(100*time.Millisecond),
	)

	if r.saver == nil {
		return nil
	}
	if err := r.saver.SaveMatchResult(result); err != nil {
		r.logger.Error("could not save match", "match", result.MatchID, "error", err)
		return fmt.Errorf("multiplayer: save match %s: %w", result.MatchID, err)
	}
	return nil
}

func winnerLabel(r MatchResult) string {
	switch {
	case r.Draw():
		return "draw"
	case r.Winner == 0:
		return "none"
	default:
		return r.Winner.String()
	}
}
