package validator

import (
	"context"

	"github.com/chischaschos/sudoku/internal/domain"
	"github.com/chischaschos/sudoku/internal/topology"
)

// UnitValidator checks every unit of its topology for duplicate
// digits, so diagonal boards are validated against the diagonals too.
type UnitValidator struct {
	topo *topology.Topology
}

func New(topo *topology.Topology) *UnitValidator { return &UnitValidator{topo: topo} }

// Validate scans each unit with a digit bitmask. Undetermined cells
// are skipped, so partially solved boards validate on their solved
// cells only.
func (v *UnitValidator) Validate(ctx context.Context, b domain.Board) (bool, []domain.Cell, error) {
	conf := make([]domain.Cell, 0, 8)
	for _, u := range v.topo.Units() {
		m := 0
		for _, c := range u {
			val := b[c]
			if !val.Solved() {
				continue
			}
			bit := 1 << (val[0] - '0')
			if m&bit != 0 {
				conf = append(conf, c)
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
