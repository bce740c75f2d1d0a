package topology

import (
	"sync"

	"github.com/chischaschos/sudoku/internal/domain"
)

const (
	rows = "ABCDEFGHI"
	cols = "123456789"
)

// Topology holds the static cell/unit/peer indices for one board
// variant. It is built once and never mutated, so a single instance is
// safe to share across any number of concurrent solves.
type Topology struct {
	variant domain.Variant
	cells   []domain.Cell
	units   [][]domain.Cell
	unitsOf map[domain.Cell][][]domain.Cell
	peersOf map[domain.Cell][]domain.Cell
}

var (
	classicOnce  = sync.OnceValue(func() *Topology { return build(domain.Classic) })
	diagonalOnce = sync.OnceValue(func() *Topology { return build(domain.Diagonal) })
)

// For returns the shared topology for the given variant, building it
// on first use.
func For(v domain.Variant) *Topology {
	if v == domain.Diagonal {
		return diagonalOnce()
	}
	return classicOnce()
}

func cross(a, b string) []domain.Cell {
	out := make([]domain.Cell, 0, len(a)*len(b))
	for _, r := range a {
		for _, c := range b {
			out = append(out, domain.Cell(string(r)+string(c)))
		}
	}
	return out
}

func build(v domain.Variant) *Topology {
	t := &Topology{
		variant: v,
		cells:   cross(rows, cols),
		unitsOf: make(map[domain.Cell][][]domain.Cell, 81),
		peersOf: make(map[domain.Cell][]domain.Cell, 81),
	}

	for i := range rows {
		t.units = append(t.units, cross(rows[i:i+1], cols))
	}
	for i := range cols {
		t.units = append(t.units, cross(rows, cols[i:i+1]))
	}
	for _, rs := range []string{"ABC", "DEF", "GHI"} {
		for _, cs := range []string{"123", "456", "789"} {
			t.units = append(t.units, cross(rs, cs))
		}
	}
	if v == domain.Diagonal {
		var main, anti []domain.Cell
		for i := 0; i < 9; i++ {
			main = append(main, domain.Cell(string(rows[i])+string(cols[i])))
			anti = append(anti, domain.Cell(string(rows[i])+string(cols[8-i])))
		}
		t.units = append(t.units, main, anti)
	}

	inUnit := make(map[domain.Cell]map[domain.Cell]bool, 81)
	for _, u := range t.units {
		for _, c := range u {
			t.unitsOf[c] = append(t.unitsOf[c], u)
			if inUnit[c] == nil {
				inUnit[c] = make(map[domain.Cell]bool)
			}
			for _, p := range u {
				if p != c {
					inUnit[c][p] = true
				}
			}
		}
	}
	// Peers in row-major order so iteration stays reproducible.
	for _, c := range t.cells {
		peers := make([]domain.Cell, 0, len(inUnit[c]))
		for _, p := range t.cells {
			if inUnit[c][p] {
				peers = append(peers, p)
			}
		}
		t.peersOf[c] = peers
	}
	return t
}

// Variant reports which unit set this topology was built with.
func (t *Topology) Variant() domain.Variant { return t.variant }

// Cells lists all 81 cells in row-major order. Callers must not
// modify the returned slice.
func (t *Topology) Cells() []domain.Cell { return t.cells }

// Units lists every unit: 27 for classic boards, 29 with diagonals.
func (t *Topology) Units() [][]domain.Cell { return t.units }

// UnitsOf returns the units containing cell c.
func (t *Topology) UnitsOf(c domain.Cell) [][]domain.Cell { return t.unitsOf[c] }

// PeersOf returns every cell sharing a unit with c, excluding c,
// in row-major order.
func (t *Topology) PeersOf(c domain.Cell) []domain.Cell { return t.peersOf[c] }
