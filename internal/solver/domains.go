package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/kmarr21/sudoku-solver/internal/domain"
)

// conflictSet records which assigned variables contributed to a failure.
type conflictSet map[domain.CellCoord]struct{}

func (s conflictSet) add(pos domain.CellCoord) { s[pos] = struct{}{} }

// mergeExcept folds other into s, leaving out self (a variable never blames
// itself for its own dead end).
func (s conflictSet) mergeExcept(other conflictSet, self domain.CellCoord) {
	for pos := range other {
		if pos != self {
			s[pos] = struct{}{}
		}
	}
}

func (s conflictSet) clone() conflictSet {
	cp := make(conflictSet, len(s))
	for pos := range s {
		cp[pos] = struct{}{}
	}
	return cp
}

// sameUnit reports whether two cells share a row, column, or 3x3 box.
func sameUnit(a, b domain.CellCoord) bool {
	return a.Row == b.Row || a.Col == b.Col ||
		(a.Row/3 == b.Row/3 && a.Col/3 == b.Col/3)
}

// fullDomain returns a candidate set holding all of 1..9.
func fullDomain() *bitset.BitSet {
	d := bitset.New(10)
	for v := uint(1); v <= 9; v++ {
		d.Set(v)
	}
	return d
}

// initDomains computes, for every empty cell, {1..9} minus every value already
// present in its row, column, and box. Pure function of the board; called once
// at construction, before any propagation runs.
func (e *Engine) initDomains() map[domain.CellCoord]*bitset.BitSet {
	domains := make(map[domain.CellCoord]*bitset.BitSet)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if e.board.Values[r][c] != 0 {
				continue
			}
			d := fullDomain()
			for i := 0; i < 9; i++ {
				if v := e.board.Values[r][i]; v != 0 {
					d.Clear(uint(v))
				}
				if v := e.board.Values[i][c]; v != 0 {
					d.Clear(uint(v))
				}
			}
			br, bc := (r/3)*3, (c/3)*3
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					if v := e.board.Values[br+dr][bc+dc]; v != 0 {
						d.Clear(uint(v))
					}
				}
			}
			domains[domain.CellCoord{Row: r, Col: c}] = d
		}
	}
	return domains
}

// domainValues lists a domain's candidates in ascending order.
func domainValues(d *bitset.BitSet) []uint8 {
	vals := make([]uint8, 0, d.Count())
	for v, ok := d.NextSet(1); ok && v <= 9; v, ok = d.NextSet(v + 1) {
		vals = append(vals, uint8(v))
	}
	return vals
}

// isSafe is the ground-truth legality check for placing value at pos, made
// directly against the board rather than the (possibly pruned) domains.
func (e *Engine) isSafe(pos domain.CellCoord, value uint8) bool {
	return safePlacement(&e.board.Values, pos.Row, pos.Col, value)
}

// snapshot deep-copies the domains and conflict sets so a failed tentative
// assignment can be rolled back wholesale.
func (e *Engine) snapshot() (map[domain.CellCoord]*bitset.BitSet, map[domain.CellCoord]conflictSet) {
	doms := make(map[domain.CellCoord]*bitset.BitSet, len(e.domains))
	for pos, d := range e.domains {
		doms[pos] = d.Clone()
	}
	confs := make(map[domain.CellCoord]conflictSet, len(e.conflicts))
	for pos, s := range e.conflicts {
		confs[pos] = s.clone()
	}
	return doms, confs
}

// assign commits value at pos: the cell leaves the domain map and joins the
// assignment order.
func (e *Engine) assign(pos domain.CellCoord, value uint8) {
	e.board.Values[pos.Row][pos.Col] = value
	delete(e.domains, pos)
	e.order = append(e.order, pos)
}

// restore undoes an assignment at pos and reinstates the snapshotted domains
// and conflict sets.
func (e *Engine) restore(pos domain.CellCoord, doms map[domain.CellCoord]*bitset.BitSet, confs map[domain.CellCoord]conflictSet) {
	e.board.Values[pos.Row][pos.Col] = 0
	e.domains = doms
	e.conflicts = confs
	e.order = e.order[:len(e.order)-1]
}
