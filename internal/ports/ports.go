package ports

import (
	"context"
	"time"

	"github.com/kmarr21/sudoku-solver/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver completes a board in place and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (bool, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Storage persists and retrieves solve results as JSON.
type Storage interface {
	Save(ctx context.Context, res *domain.Result) error
	Load(ctx context.Context, id string) (*domain.Result, error)
	List(ctx context.Context) ([]domain.ResultMeta, error)
}
