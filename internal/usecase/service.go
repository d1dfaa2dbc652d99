package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/kmarr21/sudoku-solver/internal/domain"
	"github.com/kmarr21/sudoku-solver/internal/infrastructure/storage"
	"github.com/kmarr21/sudoku-solver/internal/ports"
)

// Service wires the solver, validator, and optional result storage for the
// CLI front end.
type Service struct {
	Solver    ports.Solver
	Validator ports.Validator
	Storage   ports.Storage
}

func NewService(s ports.Solver, v ports.Validator, st ports.Storage) *Service {
	return &Service{Solver: s, Validator: v, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve completes the board in place and returns the outcome as a Result,
// persisting it when storage is configured.
func (u *Service) Solve(ctx context.Context, name string, b *domain.Board, t domain.Techniques) (*domain.Result, error) {
	if u.Solver == nil {
		return nil, errNotConfigured
	}
	puzzle := *b
	solved, st, err := u.Solver.Solve(ctx, b)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	res := &domain.Result{
		ID:         storage.NewID(name, now),
		Name:       name,
		Techniques: t,
		Givens:     puzzle.Givens(),
		Solved:     solved,
		Puzzle:     puzzle,
		Nodes:      st.Nodes,
		Duration:   st.Duration,
		CreatedAt:  now.UnixNano(),
	}
	if solved {
		res.Solution = b.Clone()
	}
	if u.Storage != nil {
		if err := u.Storage.Save(ctx, res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// Unique reports whether the board has exactly one solution.
func (u *Service) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, b)
}

// Validate lists row/column/box conflicts among the filled cells.
func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

// List returns the stored result listing.
func (u *Service) List(ctx context.Context) ([]domain.ResultMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
