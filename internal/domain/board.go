package domain

import "fmt"

// InvalidInputError reports a grid that fails shape or range validation.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "invalid sudoku board: " + e.Reason
}

// BoardFromGrid validates a raw 9x9 grid (0 = empty, 1-9 = fixed clue) and
// converts it into a Board with the non-zero cells marked as givens.
func BoardFromGrid(grid [][]int) (*Board, error) {
	if len(grid) != 9 {
		return nil, &InvalidInputError{Reason: fmt.Sprintf("want 9 rows, got %d", len(grid))}
	}
	b := &Board{}
	for r, row := range grid {
		if len(row) != 9 {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("row %d: want 9 cells, got %d", r, len(row))}
		}
		for c, v := range row {
			if v < 0 || v > 9 {
				return nil, &InvalidInputError{Reason: fmt.Sprintf("cell (%d,%d): value %d out of range [0,9]", r, c, v)}
			}
			b.Values[r][c] = uint8(v)
			b.Fixed[r][c] = v != 0
		}
	}
	return b, nil
}

// Grid returns the values as a freshly allocated [][]int.
func (b *Board) Grid() [][]int {
	grid := make([][]int, 9)
	for r := 0; r < 9; r++ {
		grid[r] = make([]int, 9)
		for c := 0; c < 9; c++ {
			grid[r][c] = int(b.Values[r][c])
		}
	}
	return grid
}

// Givens counts the fixed clues on the board.
func (b *Board) Givens() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Fixed[r][c] {
				n++
			}
		}
	}
	return n
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}
