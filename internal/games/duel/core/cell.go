// Package core implements the block duel rules engine: boards, falling
// pieces, line clears, scoring and the garbage exchange between two
// sessions. It has no platform dependencies; callers drive it with
// discrete commands and an external clock.
package core

// Cell is the content of a single board square.
// The seven piece tags double as the piece type of a falling piece.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellO
	CellI
	CellS
	CellZ
	CellL
	CellJ
	CellT
	CellGarbage
)

// PieceTypes lists the seven piece tags in spawn-table order.
var PieceTypes = [...]Cell{CellO, CellI, CellS, CellZ, CellL, CellJ, CellT}

// IsPiece reports whether c is one of the seven piece tags.
func (c Cell) IsPiece() bool {
	return c >= CellO && c <= CellT
}

// String returns the single-letter tag ("X" for garbage, "." for empty).
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "."
	case CellO:
		return "O"
	case CellI:
		return "I"
	case CellS:
		return "S"
	case CellZ:
		return "Z"
	case CellL:
		return "L"
	case CellJ:
		return "J"
	case CellT:
		return "T"
	case CellGarbage:
		return "X"
	default:
		return "?"
	}
}
