// Package puzzle supplies the bundled sample puzzles and a parser for the
// plain-text grid format: one row per line, nine whitespace-separated
// integers, 0 for an empty cell.
package puzzle

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kmarr21/sudoku-solver/internal/domain"
)

//go:embed easy_sudoku.txt hard_sudoku.txt
var samples embed.FS

// Easy returns the bundled easy sample puzzle (30 givens, one solution).
func Easy() *domain.Board { return mustLoad("easy_sudoku.txt") }

// Hard returns the bundled hard sample puzzle (23 givens, one solution).
func Hard() *domain.Board { return mustLoad("hard_sudoku.txt") }

// Named looks up a bundled puzzle by name ("easy" or "hard").
func Named(name string) (*domain.Board, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy(), nil
	case "hard":
		return Hard(), nil
	default:
		return nil, fmt.Errorf("unknown puzzle %q: want easy or hard", name)
	}
}

func mustLoad(name string) *domain.Board {
	f, err := samples.Open(name)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	b, err := Parse(f)
	if err != nil {
		panic(err)
	}
	return b
}

// Parse reads a whitespace-separated grid and validates it into a Board.
func Parse(r io.Reader) (*domain.Board, error) {
	grid := make([][]int, 0, 9)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		row := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, &domain.InvalidInputError{
					Reason: fmt.Sprintf("row %d: %q is not an integer", len(grid), f),
				}
			}
			row = append(row, v)
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return domain.BoardFromGrid(grid)
}
