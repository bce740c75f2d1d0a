// Package solver implements depth-first backtracking search with
// constraint propagation at every node.
package solver

import (
	"context"
	"errors"
	"time"

	"github.com/chischaschos/sudoku/internal/domain"
	"github.com/chischaschos/sudoku/internal/ports"
	"github.com/chischaschos/sudoku/internal/propagate"
	"github.com/chischaschos/sudoku/internal/recorder"
	"github.com/chischaschos/sudoku/internal/topology"
)

// ErrUnsolvable means the search exhausted every branch without
// finding a solution.
var ErrUnsolvable = errors.New("no solution exists")

// Engine solves boards over one topology.
type Engine struct {
	topo *topology.Topology
	prop *propagate.Engine
}

func New(topo *topology.Topology) *Engine {
	return &Engine{topo: topo, prop: propagate.New(topo)}
}

// Solve returns a fully determined board or ErrUnsolvable. The input
// board is not mutated. Snapshots of every cell that becomes solved
// along the winning path and its dead ends go to rec.
func (s *Engine) Solve(ctx context.Context, b domain.Board, rec ports.Recorder) (domain.Board, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	out, ok := s.search(ctx, b.Clone(), rec, &nodes)
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, ErrUnsolvable
	}
	return out, st, nil
}

// search owns b and may mutate it. It returns the solved board, or
// false when no solution is reachable from b.
func (s *Engine) search(ctx context.Context, b domain.Board, rec ports.Recorder, nodes *int) (domain.Board, bool) {
	if ctx.Err() != nil {
		return nil, false
	}
	if !s.prop.Reduce(b, rec) {
		return nil, false
	}
	cell, open := s.mostConstrained(b)
	if !open {
		return b, true
	}
	for _, d := range []byte(b[cell]) {
		*nodes++
		trial := b.Clone()
		s.prop.Assign(trial, cell, domain.Candidates(string(d)), rec)
		if out, ok := s.search(ctx, trial, rec, nodes); ok {
			return out, true
		}
	}
	return nil, false
}

// mostConstrained picks the undetermined cell with the fewest
// candidates, first in row-major order on ties. open is false when
// every cell is solved.
func (s *Engine) mostConstrained(b domain.Board) (cell domain.Cell, open bool) {
	best := 10
	for _, c := range s.topo.Cells() {
		if n := len(b[c]); n > 1 && n < best {
			cell, best = c, n
		}
	}
	return cell, best < 10
}

// Unique counts solutions up to 2 and reports whether exactly one
// exists. No snapshots are recorded.
func (s *Engine) Unique(ctx context.Context, b domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	count := 0

	var dfs func(b domain.Board) bool
	dfs = func(b domain.Board) bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		if !s.prop.Reduce(b, recorder.Nop{}) {
			return false
		}
		cell, open := s.mostConstrained(b)
		if !open {
			count++
			return count >= 2
		}
		for _, d := range []byte(b[cell]) {
			nodes++
			trial := b.Clone()
			trial[cell] = domain.Candidates(string(d))
			if dfs(trial) {
				return true
			}
		}
		return false
	}
	_ = dfs(b.Clone())
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}
