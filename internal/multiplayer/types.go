// Package multiplayer describes two-player matches played on one terminal:
// match identity, modes, results and how finished matches are recorded.
// It has no transport; both players share a keyboard.
package multiplayer

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/blockduel/internal/core"
)

// PlayerID is an alias to core.PlayerID for convenience.
type PlayerID = core.PlayerID

// Re-export player constants for convenience.
const (
	Player1 = core.Player1
	Player2 = core.Player2
)

// SessionID identifies a terminal session (the local terminal or one SSH
// connection) that hosted a match.
type SessionID string

// LocalSession is the SessionID used when playing without SSH.
const LocalSession SessionID = "local"

// MatchID uniquely identifies one round of a game.
type MatchID string

// NewMatchID returns a fresh random match identifier.
func NewMatchID() MatchID {
	return MatchID(uuid.NewString())
}

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single board with no opponent.
	MatchModeSolo MatchMode = iota

	// MatchModeLocal is two players sharing one keyboard.
	MatchModeLocal
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeLocal:
		return "Local duel"
	default:
		return "Unknown"
	}
}
