package solver

import (
	"sort"

	"github.com/kmarr21/sudoku-solver/internal/domain"
)

// nextVariable picks the cell to branch on. With MRV enabled this is the
// empty cell with the fewest remaining candidates; ties and the disabled case
// both fall back to row-major order, which keeps runs reproducible. ok is
// false when no empty cell remains.
func (e *Engine) nextVariable() (domain.CellCoord, bool) {
	if !e.cfg.useMRV {
		return e.firstEmpty()
	}
	best := domain.CellCoord{}
	bestSize := uint(10)
	found := false
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			pos := domain.CellCoord{Row: r, Col: c}
			d, ok := e.domains[pos]
			if !ok {
				continue
			}
			if n := d.Count(); n < bestSize {
				bestSize = n
				best = pos
				found = true
			}
		}
	}
	return best, found
}

func (e *Engine) firstEmpty() (domain.CellCoord, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if e.board.Values[r][c] == 0 {
				return domain.CellCoord{Row: r, Col: c}, true
			}
		}
	}
	return domain.CellCoord{}, false
}

// orderedValues returns the candidates for pos in try order. With LCV enabled
// the values are sorted ascending by how many unassigned peer domains still
// contain them, so the least constraining value comes first; ties keep
// ascending value order. Disabled means plain ascending.
func (e *Engine) orderedValues(pos domain.CellCoord) []uint8 {
	vals := domainValues(e.domains[pos])
	if !e.cfg.useLCV {
		return vals
	}
	counts := make(map[uint8]int, len(vals))
	for _, v := range vals {
		counts[v] = e.peerSupport(pos, v)
	}
	sort.SliceStable(vals, func(i, j int) bool {
		return counts[vals[i]] < counts[vals[j]]
	})
	return vals
}

// peerSupport counts the unassigned peers of pos whose domain contains v.
func (e *Engine) peerSupport(pos domain.CellCoord, v uint8) int {
	count := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			other := domain.CellCoord{Row: r, Col: c}
			if other == pos || e.board.Values[r][c] != 0 || !sameUnit(pos, other) {
				continue
			}
			if d, ok := e.domains[other]; ok && d.Test(uint(v)) {
				count++
			}
		}
	}
	return count
}
