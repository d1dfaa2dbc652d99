package validator

import (
	"context"

	"github.com/kmarr21/sudoku-solver/internal/domain"
)

// CheckGrid verifies the shape and range of a raw grid: 9 rows of 9 cells,
// every value in [0,9]. This is the construction-time gate; it says nothing
// about row/column/box consistency.
func CheckGrid(grid [][]int) error {
	_, err := domain.BoardFromGrid(grid)
	return err
}

// ValidateSolution reports whether the board is a complete solution: every
// row, column, and 3x3 box contains each of 1..9. Containment over nine cells
// forces exactly-once by pigeonhole, so no separate count is needed.
func ValidateSolution(b *domain.Board) bool {
	const all = 0b1111111110 // bits 1..9
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			m |= 1 << b.Values[r][c]
		}
		if m&all != all {
			return false
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			m |= 1 << b.Values[r][c]
		}
		if m&all != all {
			return false
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					m |= 1 << b.Values[br*3+dr][bc*3+dc]
				}
			}
			if m&all != all {
				return false
			}
		}
	}
	return true
}

// FastValidator lists duplicate-value conflicts among the filled cells.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := b.Values[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := b.Values[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}
