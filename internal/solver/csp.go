package solver

import (
	"context"

	"github.com/kmarr21/sudoku-solver/internal/domain"
	"github.com/kmarr21/sudoku-solver/internal/ports"
)

// CSP adapts the engine to the ports.Solver interface, building a fresh
// Engine for every Solve call since an Engine's state lives for exactly one
// search.
type CSP struct {
	Techniques domain.Techniques
}

// NewCSP returns a ports.Solver using the given technique configuration.
func NewCSP(t domain.Techniques) *CSP { return &CSP{Techniques: t} }

func (s *CSP) Solve(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	eng, err := New(b, FromTechniques(s.Techniques)...)
	if err != nil {
		return false, ports.Stats{}, err
	}
	return eng.Solve(ctx)
}

func (s *CSP) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	return Unique(ctx, b)
}
