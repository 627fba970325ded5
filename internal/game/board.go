package game

// Board is the 9x9 grid. A cell holds at most one piece; nil means empty.
// A piece lives in exactly one cell at a time: the mutators below move or
// place single references, never duplicate them.
type Board struct {
	cells [Size][Size]*Piece
}

// IsValidCell reports whether (row, col) addresses a cell on the grid.
func IsValidCell(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the piece at (row, col), or nil for an empty or out-of-range
// cell.
func (b *Board) At(row, col int) *Piece {
	if !IsValidCell(row, col) {
		return nil
	}
	return b.cells[row][col]
}

func (b *Board) place(row, col int, p *Piece) {
	b.cells[row][col] = p
}

func (b *Board) clear() {
	b.cells = [Size][Size]*Piece{}
}

// move transfers the piece at the source cell to the destination cell and
// returns whatever occupied the destination. The source becomes empty.
func (b *Board) move(fromRow, fromCol, toRow, toCol int) *Piece {
	target := b.cells[toRow][toCol]
	b.cells[toRow][toCol] = b.cells[fromRow][fromCol]
	b.cells[fromRow][fromCol] = nil
	return target
}

// count returns the number of occupied cells.
func (b *Board) count() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.cells[r][c] != nil {
				n++
			}
		}
	}
	return n
}
