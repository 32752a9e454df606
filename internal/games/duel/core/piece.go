package core

// SpawnColumn is the column of a fresh piece's top-left corner.
const SpawnColumn = Cols/2 - 1

// Piece is the falling piece: its type, current orientation and the
// board offset of its bounding box's top-left corner.
type Piece struct {
	Type  Cell
	Shape Shape
	X, Y  int
}

// NewPiece returns a piece of the given type in its base orientation
// at the spawn position.
func NewPiece(t Cell) Piece {
	return Piece{
		Type:  t,
		Shape: ShapeOf(t),
		X:     SpawnColumn,
		Y:     0,
	}
}

// RandomPiece picks one of the seven piece types uniformly.
func RandomPiece(rng Rand) Piece {
	return NewPiece(PieceTypes[rng.Intn(len(PieceTypes))])
}

// Cells projects the solid cells of the piece onto board coordinates.
// Cells above the board (negative rows) are included.
func (p Piece) Cells() []LockedCell {
	cells := make([]LockedCell, 0, 4)
	for r := range p.Shape.Height() {
		for c := range p.Shape.Width() {
			if p.Shape.Filled(r, c) {
				cells = append(cells, LockedCell{Row: p.Y + r, Col: p.X + c, Tag: p.Type})
			}
		}
	}
	return cells
}

// Collides reports whether the piece leaves the board sideways or through
// the floor, or overlaps an occupied cell. Rows above the board never
// collide. Every movement, rotation, spawn and garbage check goes
// through this predicate.
func Collides(p Piece, b *Board) bool {
	for _, cell := range p.Cells() {
		if cell.Col < 0 || cell.Col >= Cols || cell.Row >= Rows {
			return true
		}
		if cell.Row >= 0 && b.IsOccupied(cell.Row, cell.Col) {
			return true
		}
	}
	return false
}

// rotated returns the piece turned clockwise with the simplified wall kick
// applied: same column, then one left, then one right of the original.
// If every attempt collides the piece is returned unchanged.
func (p Piece) rotated(b *Board) Piece {
	turned := p
	turned.Shape = p.Shape.RotateClockwise()

	for _, dx := range [...]int{0, -1, 1} {
		turned.X = p.X + dx
		if !Collides(turned, b) {
			return turned
		}
	}
	return p
}
