package solver

import "github.com/kmarr21/sudoku-solver/internal/domain"

// forwardCheck prunes value from the domain of every unassigned peer of pos,
// one hop only. On the first peer whose domain empties it stops and reports a
// conflict set holding that peer and the assigning position; ok is false on
// conflict. The board itself is never touched.
func (e *Engine) forwardCheck(pos domain.CellCoord, value uint8) (conflictSet, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if e.board.Values[r][c] != 0 {
				continue
			}
			peer := domain.CellCoord{Row: r, Col: c}
			if !sameUnit(pos, peer) {
				continue
			}
			d, ok := e.domains[peer]
			if !ok {
				continue
			}
			d.Clear(uint(value))
			if d.Count() == 0 {
				conf := conflictSet{}
				conf.add(peer)
				conf.add(pos)
				return conf, false
			}
		}
	}
	return nil, true
}

// arc is a directed constraint edge between two mutually-constraining cells.
type arc struct {
	xi, xj domain.CellCoord
}

// ac3 runs arc consistency over all current domain variables with conflict
// tracking. The worklist is seeded with every arc; when a domain shrinks, the
// arcs pointing at the shrunk variable are re-enqueued. Returns ok=false with
// the conflict pair {xi, xj} as soon as any domain empties.
func (e *Engine) ac3() (conflictSet, bool) {
	queue := e.allArcs()
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		if !e.removeInconsistent(a.xi, a.xj) {
			continue
		}
		if e.domains[a.xi].Count() == 0 {
			conf := conflictSet{}
			conf.add(a.xi)
			conf.add(a.xj)
			return conf, false
		}
		for _, xk := range e.neighbors(a.xi) {
			if xk != a.xj {
				queue = append(queue, arc{xi: xk, xj: a.xi})
			}
		}
	}
	return nil, true
}

// removeInconsistent deletes from domain(xi) every value with no support in
// domain(xj), i.e. no value v' != v left for xj. With all-different constraints
// this only fires when xj is down to the single value v, but the test is kept
// in its general no-support form. Reports whether anything was removed.
func (e *Engine) removeInconsistent(xi, xj domain.CellCoord) bool {
	di, dj := e.domains[xi], e.domains[xj]
	removed := false
	for _, v := range domainValues(di) {
		supported := false
		for _, w := range domainValues(dj) {
			if w != v {
				supported = true
				break
			}
		}
		if !supported {
			di.Clear(uint(v))
			removed = true
		}
	}
	return removed
}

// allArcs enumerates every ordered arc among the current domain variables, in
// row-major order of the source cell. Box arcs repeat the in-box row and
// column arcs; the duplicates are harmless in the worklist.
func (e *Engine) allArcs() []arc {
	arcs := make([]arc, 0, len(e.domains)*20)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			xi := domain.CellCoord{Row: r, Col: c}
			if _, ok := e.domains[xi]; !ok {
				continue
			}
			for k := 0; k < 9; k++ {
				if xj := (domain.CellCoord{Row: r, Col: k}); k != c {
					if _, ok := e.domains[xj]; ok {
						arcs = append(arcs, arc{xi: xi, xj: xj})
					}
				}
				if xj := (domain.CellCoord{Row: k, Col: c}); k != r {
					if _, ok := e.domains[xj]; ok {
						arcs = append(arcs, arc{xi: xi, xj: xj})
					}
				}
			}
			br, bc := (r/3)*3, (c/3)*3
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					xj := domain.CellCoord{Row: br + dr, Col: bc + dc}
					if xj == xi {
						continue
					}
					if _, ok := e.domains[xj]; ok {
						arcs = append(arcs, arc{xi: xi, xj: xj})
					}
				}
			}
		}
	}
	return arcs
}

// neighbors lists the domain variables sharing a unit with pos, row-major.
func (e *Engine) neighbors(pos domain.CellCoord) []domain.CellCoord {
	out := make([]domain.CellCoord, 0, 20)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			other := domain.CellCoord{Row: r, Col: c}
			if other == pos || !sameUnit(pos, other) {
				continue
			}
			if _, ok := e.domains[other]; ok {
				out = append(out, other)
			}
		}
	}
	return out
}
