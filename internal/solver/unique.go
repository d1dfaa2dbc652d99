package solver

import (
	"context"
	"time"

	"github.com/kmarr21/sudoku-solver/internal/domain"
	"github.com/kmarr21/sudoku-solver/internal/ports"
)

// safePlacement checks v at (r,c) against the currently-filled cells of the
// same row, column, and box.
func safePlacement(b *[9][9]uint8, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func firstEmptyCell(b *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// Unique counts solutions up to 2 over a private copy of the board and
// reports whether exactly one exists. Plain chronological backtracking is
// enough here since the counting cutoff bounds the work.
func Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := firstEmptyCell(&grid)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if safePlacement(&grid, r, c, v) {
				grid[r][c] = v
				if dfs() {
					return true
				}
				grid[r][c] = 0
			}
		}
		return false
	}
	_ = dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}
