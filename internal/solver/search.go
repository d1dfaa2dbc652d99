package solver

import "context"

// backtrack is the recursive search driver. Each call owns one unresolved
// cell: it tries that cell's candidates in heuristic order, propagates after
// each tentative assignment, and recurses. Failures from propagation or from
// deeper calls contribute their conflict sets (minus the current cell) to a
// running accumulator; when every candidate is exhausted the accumulator is
// recorded for the cell and returned to the caller.
//
// Despite the conflict bookkeeping, control flow always unwinds one level at
// a time (chronological backtracking): the recorded blame is informational
// and never used to skip ancestors.
func (e *Engine) backtrack(ctx context.Context) (bool, conflictSet) {
	if ctx.Err() != nil {
		return false, conflictSet{}
	}

	pos, ok := e.nextVariable()
	if !ok {
		// No unresolved cells left: solved.
		return true, conflictSet{}
	}

	current := conflictSet{}
	for _, value := range e.orderedValues(pos) {
		e.nodes++
		if !e.isSafe(pos, value) {
			continue
		}

		savedDomains, savedConflicts := e.snapshot()
		e.assign(pos, value)

		if e.cfg.useFC {
			if conf, ok := e.forwardCheck(pos, value); !ok {
				current.mergeExcept(conf, pos)
				e.restore(pos, savedDomains, savedConflicts)
				continue
			}
		}

		if e.cfg.useAC3 {
			if conf, ok := e.ac3(); !ok {
				current.mergeExcept(conf, pos)
				e.restore(pos, savedDomains, savedConflicts)
				continue
			}
		}

		solved, childConf := e.backtrack(ctx)
		if solved {
			// The committed assignment stands; nothing to restore on
			// the success path.
			return true, conflictSet{}
		}
		current.mergeExcept(childConf, pos)
		e.restore(pos, savedDomains, savedConflicts)
	}

	e.conflicts[pos] = current
	return false, current
}
