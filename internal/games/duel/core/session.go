package core

import (
	"math/rand"
	"time"
)

// DefaultGravityDelay is how long a piece hangs before gravity pulls it
// down one row.
const DefaultGravityDelay = 1000 * time.Millisecond

// Clock returns the current time. Sessions read it when they are created,
// restarted or soft-dropped.
type Clock func() time.Time

// garbageRouter delivers garbage to whoever plays against a session.
// It reports whether the rows were delivered (a topped-out opponent
// receives nothing).
type garbageRouter interface {
	routeGarbage(from Side, lines int) bool
}

// Options configures a Session.
type Options struct {
	GravityDelay time.Duration // Defaults to DefaultGravityDelay
	Rand         Rand          // Defaults to a time-seeded source
	Clock        Clock         // Defaults to time.Now
}

// Stats accumulates per-session counters since the last restart.
type Stats struct {
	Lines           int // Rows cleared
	Pieces          int // Pieces locked
	GarbageSent     int // Garbage rows delivered to the opponent
	GarbageReceived int // Garbage rows pushed into this board
}

// LockResult describes the most recent lock.
type LockResult struct {
	Seq     int // Increments on every lock; 0 means no lock yet
	Lines   int
	Points  int
	Garbage int // Rows delivered to the opponent
}

// Snapshot is a consistent copy of a session for renderers.
type Snapshot struct {
	Board    [Rows][Cols]Cell
	Piece    Piece
	Score    int
	GameOver bool
	Stats    Stats
	LastLock LockResult
}

// Session is one contestant: a board, the falling piece, score and
// game-over state, plus the gravity clock.
type Session struct {
	board       Board
	piece       Piece
	score       int
	gameOver    bool
	lastGravity time.Time

	gravityDelay time.Duration
	rng          Rand
	clock        Clock

	side   Side
	router garbageRouter

	stats    Stats
	lastLock LockResult
}

// NewSession creates a standalone session with an empty board and a
// freshly spawned piece. It has no opponent, so clears never send garbage.
func NewSession(opts Options) *Session {
	if opts.GravityDelay <= 0 {
		opts.GravityDelay = DefaultGravityDelay
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	s := &Session{
		gravityDelay: opts.GravityDelay,
		rng:          opts.Rand,
		clock:        opts.Clock,
	}
	s.Restart()
	return s
}

// Restart returns the session to its construction-time state.
// The opponent link is kept.
func (s *Session) Restart() {
	s.board.Clear()
	s.piece = RandomPiece(s.rng)
	s.score = 0
	s.gameOver = false
	s.lastGravity = s.clock()
	s.stats = Stats{}
	s.lastLock = LockResult{}
}

// MoveLeft shifts the piece one column left unless that collides.
func (s *Session) MoveLeft() {
	s.shift(-1)
}

// MoveRight shifts the piece one column right unless that collides.
func (s *Session) MoveRight() {
	s.shift(1)
}

func (s *Session) shift(dx int) {
	if s.gameOver {
		return
	}
	moved := s.piece
	moved.X += dx
	if !Collides(moved, &s.board) {
		s.piece = moved
	}
}

// Rotate turns the piece clockwise, nudging it one column left or right
// if the turned shape would collide in place.
func (s *Session) Rotate() {
	if s.gameOver {
		return
	}
	s.piece = s.piece.rotated(&s.board)
}

// MoveDown drops the piece one row. If it cannot descend it is locked
// into the board and MoveDown returns false.
func (s *Session) MoveDown() bool {
	if s.gameOver {
		return false
	}

	moved := s.piece
	moved.Y++
	if Collides(moved, &s.board) {
		s.lock()
		return false
	}

	s.piece = moved
	s.lastGravity = s.clock()
	return true
}

// HardDrop drops the piece until it locks.
func (s *Session) HardDrop() {
	if s.gameOver {
		return
	}
	for s.MoveDown() {
	}
}

// Tick applies gravity when more than the gravity delay has passed since
// the last descent.
func (s *Session) Tick(now time.Time) {
	if s.gameOver {
		return
	}
	if now.Sub(s.lastGravity) > s.gravityDelay {
		s.MoveDown()
		s.lastGravity = now
	}
}

// lock merges the piece into the board, clears rows, scores, attacks the
// opponent and spawns the next piece. A spawn that collides tops out.
func (s *Session) lock() {
	s.board.Lock(s.piece.Cells())

	lines := s.board.ClearFullRows()
	points := Points(lines)
	s.score += points

	sent := 0
	if garbage := GarbageFor(lines); garbage > 0 && s.router != nil {
		if s.router.routeGarbage(s.side, garbage) {
			sent = garbage
		}
	}

	s.stats.Pieces++
	s.stats.Lines += lines
	s.stats.GarbageSent += sent
	s.lastLock = LockResult{
		Seq:     s.lastLock.Seq + 1,
		Lines:   lines,
		Points:  points,
		Garbage: sent,
	}

	s.piece = RandomPiece(s.rng)
	if Collides(s.piece, &s.board) {
		s.gameOver = true
	}
}

// ReceiveGarbage pushes garbage rows into the board and lifts the falling
// piece out of any overlap. If the piece cannot be lifted clear by row 0
// the session tops out. Only upward adjustment is attempted.
func (s *Session) ReceiveGarbage(count int) {
	if s.gameOver {
		return
	}

	s.board.InsertGarbage(count, s.rng)
	s.stats.GarbageReceived += count

	for Collides(s.piece, &s.board) && s.piece.Y > 0 {
		s.piece.Y--
	}
	if Collides(s.piece, &s.board) {
		s.gameOver = true
	}
}

// Restore replaces the session state with a snapshot. The gravity clock
// restarts from now and the opponent link is kept.
func (s *Session) Restore(snap Snapshot) {
	s.board = Board{cells: snap.Board}
	s.piece = snap.Piece
	s.score = snap.Score
	s.gameOver = snap.GameOver
	s.stats = snap.Stats
	s.lastLock = snap.LastLock
	s.lastGravity = s.clock()
}

// Board returns a copy of the board.
func (s *Session) Board() Board {
	return s.board
}

// Piece returns the falling piece.
func (s *Session) Piece() Piece {
	return s.piece
}

// Score returns the points earned since the last restart.
func (s *Session) Score() int {
	return s.score
}

// GameOver reports whether the session has topped out.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Stats returns the counters since the last restart.
func (s *Session) Stats() Stats {
	return s.stats
}

// LastLock returns the outcome of the most recent lock.
func (s *Session) LastLock() LockResult {
	return s.lastLock
}

// Snapshot returns a consistent copy of the session.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Board:    s.board.Cells(),
		Piece:    s.piece,
		Score:    s.score,
		GameOver: s.gameOver,
		Stats:    s.stats,
		LastLock: s.lastLock,
	}
}
