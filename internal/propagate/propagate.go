// Package propagate shrinks candidate sets with the three constraint
// rules: elimination, only-choice, and naked twins.
package propagate

import (
	"github.com/chischaschos/sudoku/internal/domain"
	"github.com/chischaschos/sudoku/internal/ports"
	"github.com/chischaschos/sudoku/internal/topology"
)

// Engine applies propagation rules over one topology. Rules mutate the
// board in place; ownership of a board stays with the calling search
// branch, which clones before trying an assignment.
type Engine struct {
	topo *topology.Topology
}

func New(topo *topology.Topology) *Engine { return &Engine{topo: topo} }

// Assign sets cell c to v and snapshots the board whenever the cell
// just became solved.
func (e *Engine) Assign(b domain.Board, c domain.Cell, v domain.Candidates, rec ports.Recorder) {
	b[c] = v
	if v.Solved() {
		rec.Append(b.Clone())
	}
}

// Eliminate removes every solved cell's digit from the candidates of
// all its peers.
func (e *Engine) Eliminate(b domain.Board, rec ports.Recorder) {
	for _, c := range e.topo.Cells() {
		v := b[c]
		if !v.Solved() {
			continue
		}
		d := v[0]
		for _, p := range e.topo.PeersOf(c) {
			if b[p].Has(d) {
				e.Assign(b, p, b[p].Without(d), rec)
			}
		}
	}
}

// OnlyChoice solves any cell that is the single place in a unit where
// a digit can still go.
func (e *Engine) OnlyChoice(b domain.Board, rec ports.Recorder) {
	for _, u := range e.topo.Units() {
		for _, d := range []byte(domain.Digits) {
			var place domain.Cell
			n := 0
			for _, c := range u {
				if b[c].Has(d) {
					place = c
					n++
				}
			}
			if n == 1 && !b[place].Solved() {
				e.Assign(b, place, domain.Candidates(string(d)), rec)
			}
		}
	}
}

// NakedTwins finds a unit whose only two length-2 cells hold the same
// candidate pair and strips that pair from the rest of the unit.
//
// A unit with three or more length-2 cells, or two distinct pairs, is
// deliberately left alone: this matches the first-two-found behavior
// rather than a full pairwise search, so some naked-twin patterns go
// unexploited. The search engine picks up the slack.
func (e *Engine) NakedTwins(b domain.Board, rec ports.Recorder) {
	for _, u := range e.topo.Units() {
		var twos []domain.Cell
		for _, c := range u {
			if len(b[c]) == 2 {
				twos = append(twos, c)
			}
		}
		if len(twos) != 2 || b[twos[0]] != b[twos[1]] {
			continue
		}
		pair := b[twos[0]]
		for _, c := range u {
			if c == twos[0] || c == twos[1] {
				continue
			}
			if v := b[c].Without(pair[0]).Without(pair[1]); v != b[c] {
				e.Assign(b, c, v, rec)
			}
		}
	}
}

// Reduce runs elimination, only-choice, and naked twins in that order
// until the solved-cell count stops growing. It returns false as soon
// as any cell runs out of candidates. A true result means a fixed
// point, not necessarily a solved board.
func (e *Engine) Reduce(b domain.Board, rec ports.Recorder) bool {
	for {
		before := b.SolvedCount()
		e.Eliminate(b, rec)
		e.OnlyChoice(b, rec)
		e.NakedTwins(b, rec)
		for _, c := range e.topo.Cells() {
			if b[c].Empty() {
				return false
			}
		}
		if b.SolvedCount() == before {
			return true
		}
	}
}
