// Package render formats boards as plain text with 3x3 box separators.
package render

import (
	"strings"

	"github.com/kmarr21/sudoku-solver/internal/domain"
)

// Board renders the grid one row per line, a "|" between stacks and a dashed
// line between bands. Empty cells print as 0.
func Board(b *domain.Board) string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r%3 == 0 && r != 0 {
			sb.WriteString("- - - - - - - - - - - -\n")
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c != 0 {
				sb.WriteString("| ")
			}
			sb.WriteByte('0' + b.Values[r][c])
			if c == 8 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
