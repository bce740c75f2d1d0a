// Package codec converts between the 81-character grid text format and
// the candidate-set board representation.
package codec

import (
	"fmt"
	"strings"

	"github.com/chischaschos/sudoku/internal/domain"
	"github.com/chischaschos/sudoku/internal/ports"
	"github.com/chischaschos/sudoku/internal/topology"
)

// Parse reads an 81-character grid, left to right, top to bottom.
// Digits 1-9 are givens, '.' marks an unknown cell, which starts with
// the full candidate set. Each cell's initial assignment is snapshotted
// to rec in row-major order, so a replay opens on the raw grid.
func Parse(topo *topology.Topology, grid string, rec ports.Recorder) (domain.Board, error) {
	if len(grid) != 81 {
		return nil, fmt.Errorf("grid must be 81 characters, got %d", len(grid))
	}
	cells := topo.Cells()
	b := make(domain.Board, 81)
	for i := 0; i < 81; i++ {
		switch ch := grid[i]; {
		case ch >= '1' && ch <= '9':
			b[cells[i]] = domain.Candidates(ch)
		case ch == '.':
			b[cells[i]] = domain.Digits
		default:
			return nil, fmt.Errorf("grid position %d: invalid character %q, want 1-9 or '.'", i, ch)
		}
	}
	for range cells {
		// One snapshot per cell so the log opens with all 81 initial
		// assignments, givens and full-candidate cells alike.
		rec.Append(b.Clone())
	}
	return b, nil
}

// Line encodes a board back to the 81-character format. Solved cells
// render as their digit, undetermined cells as '.'.
func Line(topo *topology.Topology, b domain.Board) string {
	var sb strings.Builder
	sb.Grow(81)
	for _, c := range topo.Cells() {
		if v := b[c]; v.Solved() {
			sb.WriteString(string(v))
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// Render lays the board out as a 9x9 grid with box separators. Every
// column is as wide as the largest candidate set still present, so
// partially reduced boards stay readable.
func Render(topo *topology.Topology, b domain.Board) string {
	width := 1
	for _, c := range topo.Cells() {
		if n := len(b[c]); n > width {
			width = n
		}
	}
	width++
	bar := strings.Repeat("-", width*3)
	line := bar + "+" + bar + "+" + bar

	var sb strings.Builder
	cells := topo.Cells()
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			sb.WriteString(center(string(b[cells[r*9+c]]), width))
			if c == 2 || c == 5 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
		if r == 2 || r == 5 {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
