package core

// Board dimensions.
const (
	Rows = 20
	Cols = 10
)

// Rand is the random source used for piece selection and garbage holes.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// LockedCell is a board coordinate together with the tag to write there.
type LockedCell struct {
	Row, Col int
	Tag      Cell
}

// Board is a fixed Rows x Cols grid, row 0 at the top.
// Only cell contents and row order ever change.
type Board struct {
	cells [Rows][Cols]Cell
}

// InBounds reports whether (row, col) lies on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Cell returns the content at (row, col), or CellEmpty outside the board.
func (b *Board) Cell(row, col int) Cell {
	if !InBounds(row, col) {
		return CellEmpty
	}
	return b.cells[row][col]
}

// IsOccupied reports whether (row, col) is on the board and non-empty.
func (b *Board) IsOccupied(row, col int) bool {
	return b.Cell(row, col) != CellEmpty
}

// Set writes a single cell. Out-of-bounds writes are ignored.
func (b *Board) Set(row, col int, c Cell) {
	if !InBounds(row, col) {
		return
	}
	b.cells[row][col] = c
}

// Lock writes every given cell into the board, skipping coordinates
// outside it.
func (b *Board) Lock(cells []LockedCell) {
	for _, lc := range cells {
		b.Set(lc.Row, lc.Col, lc.Tag)
	}
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Rows][Cols]Cell {
	return b.cells
}

// Clear empties the whole board.
func (b *Board) Clear() {
	b.cells = [Rows][Cols]Cell{}
}

// rowFull reports whether every cell in the row is non-empty.
func (b *Board) rowFull(row int) bool {
	for _, c := range b.cells[row] {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// removeRow deletes the row and shifts everything above it down by one,
// leaving an empty row at the top.
func (b *Board) removeRow(row int) {
	for r := row; r > 0; r-- {
		b.cells[r] = b.cells[r-1]
	}
	b.cells[0] = [Cols]Cell{}
}

// ClearFullRows removes every full row and returns how many were removed.
// The scan runs bottom to top and re-examines the same index after a
// removal, since the row that slid into it may be full as well.
func (b *Board) ClearFullRows() int {
	cleared := 0
	for row := Rows - 1; row >= 0; {
		if b.rowFull(row) {
			b.removeRow(row)
			cleared++
			continue
		}
		row--
	}
	return cleared
}

// InsertGarbage pushes count obstruction rows in from the bottom.
// Each row is garbage in every column except one hole chosen by rng.
// The board never grows: the top row is discarded for every row inserted.
func (b *Board) InsertGarbage(count int, rng Rand) {
	for range count {
		for r := 0; r < Rows-1; r++ {
			b.cells[r] = b.cells[r+1]
		}

		hole := rng.Intn(Cols)
		var line [Cols]Cell
		for c := range line {
			if c != hole {
				line[c] = CellGarbage
			}
		}
		b.cells[Rows-1] = line
	}
}

// String renders the board as rows of single-letter tags.
func (b *Board) String() string {
	buf := make([]byte, 0, Rows*(Cols+1))
	for r := range Rows {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for c := range Cols {
			buf = append(buf, b.cells[r][c].String()...)
		}
	}
	return string(buf)
}
