package multiplayer

import "time"

// MatchEndReason describes why a match ended.
type MatchEndReason int

const (
	MatchEndReasonCompleted MatchEndReason = iota // At least one board topped out
	MatchEndReasonAbandoned                       // Players left before a result
)

func (r MatchEndReason) String() string {
	switch r {
	case MatchEndReasonCompleted:
		return "completed"
	case MatchEndReasonAbandoned:
		return "abandoned"
	default:
		return "unknown"
	}
}

// PlayerStats is one side's tally for a match.
type PlayerStats struct {
	Score           int
	Lines           int
	Pieces          int
	GarbageSent     int
	GarbageReceived int
}

// MatchResult contains the outcome of a finished match.
type MatchResult struct {
	MatchID  MatchID
	GameID   string
	Mode     MatchMode
	Reason   MatchEndReason
	Winner   PlayerID // 0 for a draw or an abandoned match
	Player1  PlayerStats
	Player2  PlayerStats
	Duration time.Duration
	Ticks    uint64
	Session  SessionID
}

// Draw reports whether a completed match ended with no winner.
func (r MatchResult) Draw() bool {
	return r.Mode == MatchModeLocal && r.Reason == MatchEndReasonCompleted && r.Winner == 0
}

// MatchResultSaver persists finished matches.
// The storage layer implements it so this package stays free of SQL.
type MatchResultSaver interface {
	SaveMatchResult(result MatchResult) error
}

// ResultSource is implemented by games that produce match results.
// The platform drains it after every step, and calls Abandon when the
// players leave so an unfinished round can still be recorded.
type ResultSource interface {
	DrainResults() []MatchResult
	Abandon()
}
