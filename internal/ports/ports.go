package ports

import (
	"context"
	"time"

	"github.com/chischaschos/sudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Recorder receives a full board snapshot at every recorded moment of
// a solve. Implementations must copy nothing lazily: the snapshot
// handed in is already an independent clone.
type Recorder interface {
	Append(b domain.Board)
}

// Solver solves a board and can test uniqueness. Every snapshot-worthy
// assignment made during Solve is pushed to rec.
type Solver interface {
	Solve(ctx context.Context, b domain.Board, rec Recorder) (domain.Board, Stats, error)
	Unique(ctx context.Context, b domain.Board) (bool, Stats, error)
}

// Validator performs constraint checks over every unit of the board.
type Validator interface {
	Validate(ctx context.Context, b domain.Board) (ok bool, conflicts []domain.Cell, err error)
}

// Storage persists and retrieves solve records as JSON.
type Storage interface {
	Save(ctx context.Context, r *domain.SolveRecord) error
	Load(ctx context.Context, id string) (*domain.SolveRecord, error)
	List(ctx context.Context) ([]domain.RecordMeta, error)
}
