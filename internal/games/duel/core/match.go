package core

import (
	"math/rand"
	"time"
)

// Side identifies one of the two contestants in a match.
type Side int

const (
	Player1 Side = iota
	Player2
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Player1 {
		return Player2
	}
	return Player1
}

func (s Side) String() string {
	switch s {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "?"
	}
}

// Outcome summarizes the state of a match.
type Outcome int

const (
	Ongoing Outcome = iota
	Player1Wins
	Player2Wins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Ongoing:
		return "ongoing"
	case Player1Wins:
		return "player1"
	case Player2Wins:
		return "player2"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// MatchOptions configures a Match.
type MatchOptions struct {
	Seed           int64         // Player 1 uses Seed, player 2 uses Seed+1
	GravityDelay   time.Duration // Defaults to DefaultGravityDelay
	Clock          Clock         // Defaults to time.Now
	DisableGarbage bool          // Clears never attack the opponent

	// Rands overrides the seeded source per side when non-nil.
	Rands [2]Rand
}

// Match pairs two sessions as mutual opponents. Garbage earned by one side
// is delivered to the other synchronously, within the lock that earned it.
type Match struct {
	sessions       [2]*Session
	disableGarbage bool
}

// NewMatch creates two sessions linked to each other.
func NewMatch(opts MatchOptions) *Match {
	m := &Match{disableGarbage: opts.DisableGarbage}
	for i := range m.sessions {
		rng := opts.Rands[i]
		if rng == nil {
			rng = rand.New(rand.NewSource(opts.Seed + int64(i)))
		}
		s := NewSession(Options{
			GravityDelay: opts.GravityDelay,
			Rand:         rng,
			Clock:        opts.Clock,
		})
		s.side = Side(i)
		s.router = m
		m.sessions[i] = s
	}
	return m
}

// Session returns the session playing the given side.
func (m *Match) Session(side Side) *Session {
	return m.sessions[side]
}

// Restart restarts one side only. The other board is left untouched.
func (m *Match) Restart(side Side) {
	m.sessions[side].Restart()
}

// RestartAll restarts both sides.
func (m *Match) RestartAll() {
	for _, s := range m.sessions {
		s.Restart()
	}
}

// Tick applies gravity to both sessions, player 1 first.
func (m *Match) Tick(now time.Time) {
	for _, s := range m.sessions {
		s.Tick(now)
	}
}

// Outcome reports who has won so far. A match is decided once at least one
// side has topped out.
func (m *Match) Outcome() Outcome {
	over1 := m.sessions[Player1].GameOver()
	over2 := m.sessions[Player2].GameOver()
	switch {
	case over1 && over2:
		return Draw
	case over1:
		return Player2Wins
	case over2:
		return Player1Wins
	default:
		return Ongoing
	}
}

func (m *Match) routeGarbage(from Side, lines int) bool {
	if m.disableGarbage {
		return false
	}
	target := m.sessions[from.Opponent()]
	if target.GameOver() {
		return false
	}
	target.ReceiveGarbage(lines)
	return true
}
