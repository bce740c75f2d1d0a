package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chischaschos/sudoku/internal/codec"
	"github.com/chischaschos/sudoku/internal/domain"
	"github.com/chischaschos/sudoku/internal/ports"
	"github.com/chischaschos/sudoku/internal/recorder"
	"github.com/chischaschos/sudoku/internal/topology"
)

// Service fronts the solving engine for the CLI and HTTP adapters.
// Solvers and validators are keyed by variant since each is bound to
// one topology.
type Service struct {
	solvers    map[domain.Variant]ports.Solver
	validators map[domain.Variant]ports.Validator
	storage    ports.Storage
}

func NewService(solvers map[domain.Variant]ports.Solver, validators map[domain.Variant]ports.Validator, st ports.Storage) *Service {
	return &Service{solvers: solvers, validators: validators, storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

// Solve parses grid, runs the search, and wraps the result and its
// full assignment log into an unsaved SolveRecord.
func (u *Service) Solve(ctx context.Context, grid string, v domain.Variant) (*domain.SolveRecord, ports.Stats, error) {
	s := u.solvers[v]
	if s == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	topo := topology.For(v)
	rec := recorder.NewLog()
	b, err := codec.Parse(topo, grid, rec)
	if err != nil {
		return nil, ports.Stats{}, fmt.Errorf("parse grid: %w", err)
	}
	out, st, err := s.Solve(ctx, b, rec)
	if err != nil {
		return nil, st, err
	}
	return &domain.SolveRecord{
		ID:         uuid.NewString(),
		Variant:    v,
		Grid:       grid,
		Solution:   codec.Line(topo, out),
		Nodes:      st.Nodes,
		DurationMs: st.Duration.Milliseconds(),
		Steps:      rec.Steps(),
		CreatedAt:  time.Now().UnixNano(),
	}, st, nil
}

// Unique reports whether grid has exactly one solution.
func (u *Service) Unique(ctx context.Context, grid string, v domain.Variant) (bool, ports.Stats, error) {
	s := u.solvers[v]
	if s == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	b, err := codec.Parse(topology.For(v), grid, recorder.Nop{})
	if err != nil {
		return false, ports.Stats{}, fmt.Errorf("parse grid: %w", err)
	}
	return s.Unique(ctx, b)
}

// Validate checks the given cells of grid for unit conflicts.
func (u *Service) Validate(ctx context.Context, grid string, v domain.Variant) (bool, []domain.Cell, error) {
	val := u.validators[v]
	if val == nil {
		return false, nil, errNotConfigured
	}
	b, err := codec.Parse(topology.For(v), grid, recorder.Nop{})
	if err != nil {
		return false, nil, fmt.Errorf("parse grid: %w", err)
	}
	return val.Validate(ctx, b)
}

// Persistence
func (u *Service) Save(ctx context.Context, r *domain.SolveRecord) error {
	if u.storage == nil {
		return errNotConfigured
	}
	return u.storage.Save(ctx, r)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.SolveRecord, error) {
	if u.storage == nil {
		return nil, errNotConfigured
	}
	return u.storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.RecordMeta, error) {
	if u.storage == nil {
		return nil, errNotConfigured
	}
	return u.storage.List(ctx)
}
