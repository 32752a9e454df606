package core_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockduel/internal/games/duel/core"
)

func newTestSession(rng core.Rand, clock *fakeClock) *core.Session {
	return core.NewSession(core.Options{Rand: rng, Clock: clock.Now})
}

func verticalI(x, y int) core.Piece {
	p := core.NewPiece(core.CellI)
	p.Shape = p.Shape.RotateClockwise()
	p.X, p.Y = x, y
	return p
}

func TestNewSessionSpawnsPiece(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellT)), newFakeClock())

	p := s.Piece()
	assert.Equal(t, core.CellT, p.Type)
	assert.Equal(t, core.SpawnColumn, p.X)
	assert.Equal(t, 0, p.Y)
	assert.Equal(t, 0, s.Score())
	assert.False(t, s.GameOver())
}

func TestSingleLineClear(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellI)), newFakeClock())
	load(s, boardFromRows("XXXX....XX"), core.NewPiece(core.CellI))

	s.HardDrop()

	assert.Equal(t, 100, s.Score())
	assert.Equal(t, core.LockResult{Seq: 1, Lines: 1, Points: 100, Garbage: 0}, s.LastLock())
	assert.False(t, s.GameOver())

	b := s.Board()
	for r := range core.Rows {
		assert.Equal(t, core.Cols, emptyCells(b, r), "row %d", r)
	}
}

func TestMoveLeftRightWalls(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellO)), newFakeClock())

	for range core.Cols {
		s.MoveLeft()
	}
	assert.Equal(t, 0, s.Piece().X)

	for range core.Cols {
		s.MoveRight()
	}
	assert.Equal(t, core.Cols-2, s.Piece().X)
}

func TestMoveBlockedByStack(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellO)), newFakeClock())
	b := boardFromRows("..X.......")
	p := core.NewPiece(core.CellO)
	p.X, p.Y = 3, core.Rows-2
	load(s, b, p)

	s.MoveLeft()
	assert.Equal(t, 3, s.Piece().X)
}

func TestRotateKickLeft(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellL)), newFakeClock())
	p := core.NewPiece(core.CellL)
	p.Shape = p.Shape.RotateClockwise()
	p.X, p.Y = core.Cols-2, 5
	load(s, core.Board{}, p)

	s.Rotate()

	got := s.Piece()
	assert.Equal(t, core.Cols-3, got.X)
	assert.Equal(t, 5, got.Y)
	assert.True(t, got.Shape.Equal(p.Shape.RotateClockwise()))
}

func TestRotateKickRight(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellL)), newFakeClock())
	var b core.Board
	b.Set(6, 2, core.CellGarbage)
	p := core.NewPiece(core.CellL)
	p.Shape = p.Shape.RotateClockwise()
	p.X, p.Y = 0, 5
	load(s, b, p)

	s.Rotate()

	assert.Equal(t, 1, s.Piece().X)
	assert.True(t, s.Piece().Shape.Equal(p.Shape.RotateClockwise()))
}

func TestRotateRevertsWhenAllKicksFail(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellI)), newFakeClock())
	p := verticalI(core.Cols-1, 5)
	load(s, core.Board{}, p)

	s.Rotate()

	assert.Equal(t, p.X, s.Piece().X)
	assert.True(t, s.Piece().Shape.Equal(p.Shape))
}

func TestRotateFourTimesOnEmptyBoard(t *testing.T) {
	for _, pt := range core.PieceTypes {
		s := newTestSession(newSeqRand(pieceIndex(pt)), newFakeClock())
		p := core.NewPiece(pt)
		p.Y = 5
		load(s, core.Board{}, p)

		for range 4 {
			s.Rotate()
		}

		assert.Equal(t, p.X, s.Piece().X, "piece %s", pt)
		assert.True(t, s.Piece().Shape.Equal(p.Shape), "piece %s", pt)
	}
}

func TestGameOverIgnoresCommands(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellT)), newFakeClock())
	snap := s.Snapshot()
	snap.GameOver = true
	s.Restore(snap)
	before := s.Snapshot()

	s.MoveLeft()
	s.MoveRight()
	s.Rotate()
	assert.False(t, s.MoveDown())
	s.HardDrop()
	s.ReceiveGarbage(3)
	s.Tick(time.Now().Add(time.Hour))

	assert.Equal(t, before, s.Snapshot())
}

func TestHardDropNeverLeavesCollision(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := core.NewSession(core.Options{
			Rand:  rand.New(rand.NewSource(seed)),
			Clock: newFakeClock().Now,
		})

		for i := 0; i < 500 && !s.GameOver(); i++ {
			s.HardDrop()
			if s.GameOver() {
				break
			}
			b := s.Board()
			require.False(t, core.Collides(s.Piece(), &b), "seed %d drop %d", seed, i)
			require.Equal(t, 0, s.Piece().Y, "fresh piece should sit at the top")
		}

		assert.True(t, s.GameOver(), "seed %d: stacking without moves must top out", seed)
	}
}

func TestTopOutOnSpawn(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellO)), newFakeClock())
	rows := []string{"....XX...."}
	for range core.Rows - 2 {
		rows = append(rows, "XXXX.XXXXX")
	}
	p := core.NewPiece(core.CellO)
	p.X = 0
	load(s, boardFromRows(rows...), p)

	assert.False(t, s.MoveDown())
	assert.True(t, s.GameOver())
}

func TestGarbageLiftsPiece(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellO)), newFakeClock())
	rows := make([]string, 6)
	for i := range rows {
		rows[i] = "XXXXXXXXX."
	}
	p := core.NewPiece(core.CellO)
	p.Y = 12
	load(s, boardFromRows(rows...), p)

	s.ReceiveGarbage(2)

	assert.False(t, s.GameOver())
	assert.Equal(t, 10, s.Piece().Y)
	assert.Equal(t, 2, s.Stats().GarbageReceived)
	b := s.Board()
	assert.False(t, core.Collides(s.Piece(), &b))
}

func TestGarbageOverflowTopsOut(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellO)), newFakeClock())
	rows := make([]string, core.Rows-2)
	for i := range rows {
		rows[i] = "XXXXXXXXX."
	}
	load(s, boardFromRows(rows...), core.NewPiece(core.CellO))

	s.ReceiveGarbage(4)

	assert.True(t, s.GameOver())
	b := s.Board()
	for r := range core.Rows {
		assert.Equal(t, 1, emptyCells(b, r), "row %d", r)
	}
	// Four new rows at the bottom carry hole 0; the shifted stack keeps hole 9.
	for r := core.Rows - 4; r < core.Rows; r++ {
		assert.False(t, b.IsOccupied(r, 0))
	}
	assert.False(t, b.IsOccupied(0, 9))
}

func TestGravityTick(t *testing.T) {
	clock := newFakeClock()
	t0 := clock.Now()
	s := newTestSession(newSeqRand(pieceIndex(core.CellT)), clock)

	s.Tick(t0.Add(core.DefaultGravityDelay))
	assert.Equal(t, 0, s.Piece().Y, "delay must be exceeded")

	s.Tick(t0.Add(1001 * time.Millisecond))
	assert.Equal(t, 1, s.Piece().Y)

	clock.Advance(1601 * time.Millisecond)
	require.True(t, s.MoveDown())
	assert.Equal(t, 2, s.Piece().Y)

	s.Tick(t0.Add(2500 * time.Millisecond))
	assert.Equal(t, 2, s.Piece().Y, "soft drop defers gravity")

	s.Tick(t0.Add(2602 * time.Millisecond))
	assert.Equal(t, 3, s.Piece().Y)
}

func TestCustomGravityDelay(t *testing.T) {
	clock := newFakeClock()
	s := core.NewSession(core.Options{
		GravityDelay: 100 * time.Millisecond,
		Rand:         newSeqRand(0),
		Clock:        clock.Now,
	})

	s.Tick(clock.Advance(101 * time.Millisecond))
	assert.Equal(t, 1, s.Piece().Y)
}

func TestRestartResetsSession(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellI)), newFakeClock())
	load(s, boardFromRows("XXXX....XX"), core.NewPiece(core.CellI))
	s.HardDrop()
	s.HardDrop()
	require.NotZero(t, s.Score())

	s.Restart()

	assert.Equal(t, 0, s.Score())
	assert.False(t, s.GameOver())
	assert.Equal(t, core.Stats{}, s.Stats())
	assert.Equal(t, core.LockResult{}, s.LastLock())
	assert.Equal(t, 0, s.Piece().Y)
	b := s.Board()
	assert.Equal(t, core.Board{}, b)
}

func TestStandaloneSessionSendsNoGarbage(t *testing.T) {
	s := newTestSession(newSeqRand(pieceIndex(core.CellI)), newFakeClock())
	load(s, boardFromRows(
		".XXXXXXXXX",
		".XXXXXXXXX",
	), verticalI(0, 0))

	s.HardDrop()

	assert.Equal(t, 300, s.Score())
	assert.Equal(t, 0, s.Stats().GarbageSent)
}
