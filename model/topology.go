package model

// setupNeighbors gives every cell its neighbor list. Edge cells are clipped to
// the grid and never wrap around.
func (a arena) setupNeighbors(rows, cols int) {
	// Allow for 8 neighbors plus the cell.
	scratch := make([]Pos, 0, 9)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			switch {
			case rows < 3 || cols < 3:
				scratch = appendClipped(scratch, rows, cols, row, col)
			case row == 0 || row == rows-1 || col == 0 || col == cols-1:
				scratch = appendBoundary(scratch, rows, cols, row, col)
			default:
				scratch = appendInterior(scratch, rows, cols, row, col)
			}
			a[row][col].SetNeighbors(scratch)
			scratch = scratch[:0]
		}
	}
}

// appendBoundary enumerates the 3 (corner) or 5 (edge) in-bounds neighbors of
// a boundary cell. It requires rows >= 3 and cols >= 3.
func appendBoundary(dst []Pos, rows, cols, row, col int) []Pos {
	lastRow, lastCol := rows-1, cols-1
	switch {
	case row == 0 && col == 0:
		return append(dst, Pos{0, 1}, Pos{1, 0}, Pos{1, 1})
	case row == 0 && col == lastCol:
		return append(dst, Pos{0, lastCol - 1}, Pos{1, lastCol - 1}, Pos{1, lastCol})
	case row == 0:
		return append(dst,
			Pos{0, col - 1}, Pos{0, col + 1},
			Pos{1, col - 1}, Pos{1, col}, Pos{1, col + 1})
	case row == lastRow && col == 0:
		return append(dst, Pos{lastRow - 1, 0}, Pos{lastRow - 1, 1}, Pos{lastRow, 1})
	case row == lastRow && col == lastCol:
		return append(dst, Pos{lastRow - 1, lastCol - 1}, Pos{lastRow - 1, lastCol}, Pos{lastRow, lastCol - 1})
	case row == lastRow:
		return append(dst,
			Pos{lastRow, col - 1}, Pos{lastRow, col + 1},
			Pos{lastRow - 1, col - 1}, Pos{lastRow - 1, col}, Pos{lastRow - 1, col + 1})
	case col == lastCol:
		return append(dst,
			Pos{row - 1, lastCol - 1}, Pos{row - 1, lastCol},
			Pos{row, lastCol - 1},
			Pos{row + 1, lastCol - 1}, Pos{row + 1, lastCol})
	default:
		return append(dst,
			Pos{row - 1, 0}, Pos{row - 1, 1},
			Pos{row, 1},
			Pos{row + 1, 0}, Pos{row + 1, 1})
	}
}

// appendInterior enumerates the full Moore neighborhood of an interior cell.
// For grids of at least 3x3 the modulo never changes an interior index.
func appendInterior(dst []Pos, rows, cols, row, col int) []Pos {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			dst = append(dst, Pos{(row + dr) % rows, (col + dc) % cols})
		}
	}
	return dst
}

// appendClipped enumerates every in-bounds Moore neighbor. It covers grids
// with fewer than 3 rows or columns, where corners and edges coincide.
func appendClipped(dst []Pos, rows, cols, row, col int) []Pos {
	minRow, maxRow := max(0, row-1), min(rows-1, row+1)
	minCol, maxCol := max(0, col-1), min(cols-1, col+1)
	for nr := minRow; nr <= maxRow; nr++ {
		for nc := minCol; nc <= maxCol; nc++ {
			if nr == row && nc == col {
				continue // Skip the cell itself
			}
			dst = append(dst, Pos{nr, nc})
		}
	}
	return dst
}
