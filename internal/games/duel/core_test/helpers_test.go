package core_test

import (
	"time"

	"github.com/vovakirdan/blockduel/internal/games/duel/core"
)

// seqRand replays a fixed sequence of values, each reduced modulo n.
type seqRand struct {
	vals []int
	i    int
}

func newSeqRand(vals ...int) *seqRand {
	return &seqRand{vals: vals}
}

func (r *seqRand) Intn(n int) int {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// pieceIndex returns the spawn-table index of a piece tag.
func pieceIndex(t core.Cell) int {
	for i, pt := range core.PieceTypes {
		if pt == t {
			return i
		}
	}
	panic("not a piece: " + t.String())
}

// fakeClock is a manually advanced clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// boardFromRows builds a board from text rows aligned to the bottom.
// '.' is empty, 'X' garbage and piece letters their tags.
func boardFromRows(rows ...string) core.Board {
	var b core.Board
	top := core.Rows - len(rows)
	for i, line := range rows {
		for c, ch := range line {
			b.Set(top+i, c, tagFor(ch))
		}
	}
	return b
}

func tagFor(ch rune) core.Cell {
	switch ch {
	case 'O':
		return core.CellO
	case 'I':
		return core.CellI
	case 'S':
		return core.CellS
	case 'Z':
		return core.CellZ
	case 'L':
		return core.CellL
	case 'J':
		return core.CellJ
	case 'T':
		return core.CellT
	case 'X':
		return core.CellGarbage
	default:
		return core.CellEmpty
	}
}

// load replaces a session's board and falling piece.
func load(s *core.Session, b core.Board, p core.Piece) {
	snap := s.Snapshot()
	snap.Board = b.Cells()
	snap.Piece = p
	s.Restore(snap)
}

// emptyCells counts the empty cells of one board row.
func emptyCells(b core.Board, row int) int {
	n := 0
	for c := range core.Cols {
		if !b.IsOccupied(row, c) {
			n++
		}
	}
	return n
}
