// Package solver implements a constraint-satisfaction Sudoku engine: candidate
// domains per empty cell, forward checking and AC-3 propagation, MRV/LCV
// ordering heuristics, and backtracking search with conflict-set tracking.
package solver

import (
	"context"
	"fmt"
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/kmarr21/sudoku-solver/internal/domain"
	"github.com/kmarr21/sudoku-solver/internal/logger"
	"github.com/kmarr21/sudoku-solver/internal/ports"
)

// Engine owns all search state for a single solve: the board, the candidate
// domains of the still-empty cells, the per-variable conflict sets, and the
// order in which assignments were committed. An Engine is good for exactly
// one Solve call.
type Engine struct {
	cfg   config
	board *domain.Board

	// domains holds, for every currently-empty cell, the values not yet
	// ruled out (bits 1..9). Entries are removed on assignment and brought
	// back by snapshot restore on backtrack.
	domains   map[domain.CellCoord]*bitset.BitSet
	conflicts map[domain.CellCoord]conflictSet
	order     []domain.CellCoord

	nodes int
}

// New validates the board and builds the initial candidate domains. The
// engine keeps the caller's board and mutates it in place during Solve.
func New(b *domain.Board, opts ...Option) (*Engine, error) {
	if b == nil {
		return nil, &domain.InvalidInputError{Reason: "nil board"}
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] > 9 {
				return nil, &domain.InvalidInputError{
					Reason: fmt.Sprintf("cell (%d,%d): value %d out of range [0,9]", r, c, b.Values[r][c]),
				}
			}
		}
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	e := &Engine{
		cfg:       cfg,
		board:     b,
		conflicts: make(map[domain.CellCoord]conflictSet),
	}
	e.domains = e.initDomains()
	return e, nil
}

// Techniques reports the engine's configuration.
func (e *Engine) Techniques() domain.Techniques { return e.cfg.techniques() }

// Solve runs the search. On success the board has been completed in place; on
// failure every tentative assignment has been unwound, leaving only the
// original givens. An unsolvable puzzle is a false return, not an error; the
// only error is a context cancellation, which also leaves the board unwound.
func (e *Engine) Solve(ctx context.Context) (bool, ports.Stats, error) {
	start := time.Now()
	log := logger.Logger()
	t := e.cfg.techniques()
	log.Debug().
		Bool("mrv", t.MRV).
		Bool("forwardChecking", t.ForwardChecking).
		Bool("ac3", t.AC3).
		Bool("lcv", t.LCV).
		Int("empty", len(e.domains)).
		Msg("solve start")

	// A global AC-3 pass first: an immediate conflict means no assignment
	// sequence can work, so skip the search entirely.
	if e.cfg.useAC3 {
		if _, ok := e.ac3(); !ok {
			st := ports.Stats{Nodes: e.nodes, Duration: time.Since(start)}
			log.Debug().Dur("took", st.Duration).Msg("unsolvable before search")
			return false, st, nil
		}
	}

	solved, _ := e.backtrack(ctx)
	st := ports.Stats{Nodes: e.nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil && !solved {
		return false, st, err
	}
	log.Debug().Bool("solved", solved).Int("nodes", st.Nodes).Dur("took", st.Duration).Msg("search finished")
	return solved, st, nil
}
