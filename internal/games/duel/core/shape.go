package core

// Shape is an immutable rectangular occupancy matrix.
// Rotation builds a new Shape; the rows of an existing one are never written.
type Shape struct {
	rows [][]bool
}

var canonicalShapes = map[Cell][][]bool{
	CellO: {{true, true}, {true, true}},
	CellI: {{true, true, true, true}},
	CellS: {{false, true, true}, {true, true, false}},
	CellZ: {{true, true, false}, {false, true, true}},
	CellL: {{true, false, false}, {true, true, true}},
	CellJ: {{false, false, true}, {true, true, true}},
	CellT: {{false, true, false}, {true, true, true}},
}

// NewShape copies the given matrix into a new Shape.
func NewShape(rows [][]bool) Shape {
	cp := make([][]bool, len(rows))
	for i, row := range rows {
		cp[i] = append([]bool(nil), row...)
	}
	return Shape{rows: cp}
}

// ShapeOf returns the base orientation of a piece type.
// Non-piece tags yield an empty shape.
func ShapeOf(t Cell) Shape {
	return NewShape(canonicalShapes[t])
}

// Height returns the number of rows in the bounding box.
func (s Shape) Height() int {
	return len(s.rows)
}

// Width returns the number of columns in the bounding box.
func (s Shape) Width() int {
	if len(s.rows) == 0 {
		return 0
	}
	return len(s.rows[0])
}

// Filled reports whether (row, col) of the bounding box is solid.
func (s Shape) Filled(row, col int) bool {
	if row < 0 || row >= len(s.rows) || col < 0 || col >= len(s.rows[row]) {
		return false
	}
	return s.rows[row][col]
}

// Matrix returns a copy of the occupancy matrix.
func (s Shape) Matrix() [][]bool {
	return NewShape(s.rows).rows
}

// RotateClockwise returns the shape turned 90 degrees clockwise:
// the transpose with its row order reversed.
func (s Shape) RotateClockwise() Shape {
	h, w := s.Height(), s.Width()
	rotated := make([][]bool, w)
	for c := range w {
		rotated[c] = make([]bool, h)
		for r := range h {
			rotated[c][h-1-r] = s.rows[r][c]
		}
	}
	return Shape{rows: rotated}
}

// Equal reports whether two shapes have identical matrices.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for r := range s.rows {
		for c := range s.rows[r] {
			if s.rows[r][c] != other.rows[r][c] {
				return false
			}
		}
	}
	return true
}
