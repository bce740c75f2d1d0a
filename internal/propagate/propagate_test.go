package propagate

import (
	"strings"
	"testing"

	"github.com/chischaschos/sudoku/internal/codec"
	"github.com/chischaschos/sudoku/internal/domain"
	"github.com/chischaschos/sudoku/internal/recorder"
	"github.com/chischaschos/sudoku/internal/topology"
)

const (
	// Solvable by propagation alone.
	easy   = "..3.2.6..9..3.5..1..18.64....81.29..7.......8..67.82....26.95..8..2.3..9..5.1.3.."
	solved = "243156798158739246679284351426571839981362475537498162315627984864913527792845613"
)

func fullBoard(topo *topology.Topology) domain.Board {
	b := make(domain.Board, 81)
	for _, c := range topo.Cells() {
		b[c] = domain.Digits
	}
	return b
}

func TestEliminate(t *testing.T) {
	topo := topology.For(domain.Classic)
	e := New(topo)
	b := fullBoard(topo)
	b["A1"] = "5"

	e.Eliminate(b, recorder.Nop{})
	for _, p := range topo.PeersOf("A1") {
		if b[p].Has('5') {
			t.Errorf("peer %s still holds 5: %q", p, b[p])
		}
	}
	if !b["E5"].Has('5') {
		t.Error("non-peer E5 lost 5")
	}
}

func TestEliminateRecordsSolvedCells(t *testing.T) {
	topo := topology.For(domain.Classic)
	e := New(topo)
	b := fullBoard(topo)
	b["A1"] = "5"
	b["A2"] = "56"

	rec := recorder.NewLog()
	e.Eliminate(b, rec)
	if b["A2"] != "6" {
		t.Fatalf("A2 = %q, want forced to 6", b["A2"])
	}
	if rec.Len() == 0 {
		t.Error("no snapshot recorded for cell that became solved")
	}
}

func TestOnlyChoice(t *testing.T) {
	topo := topology.For(domain.Classic)
	e := New(topo)
	b := fullBoard(topo)
	// Row A: 1 can only go in A1.
	for _, c := range []domain.Cell{"A2", "A3", "A4", "A5", "A6", "A7", "A8", "A9"} {
		b[c] = b[c].Without('1')
	}

	e.OnlyChoice(b, recorder.Nop{})
	if b["A1"] != "1" {
		t.Errorf("A1 = %q, want only choice 1", b["A1"])
	}
}

func TestNakedTwins(t *testing.T) {
	topo := topology.For(domain.Classic)
	e := New(topo)
	b := fullBoard(topo)
	b["A1"] = "23"
	b["A2"] = "23"

	e.NakedTwins(b, recorder.Nop{})
	for _, c := range []domain.Cell{"A3", "A4", "A5", "A6", "A7", "A8", "A9"} {
		if b[c].Has('2') || b[c].Has('3') {
			t.Errorf("%s still holds 2 or 3: %q", c, b[c])
		}
	}
	if b["A1"] != "23" || b["A2"] != "23" {
		t.Error("the twin pair itself was modified")
	}
}

func TestNakedTwinsIgnoresCrowdedUnits(t *testing.T) {
	topo := topology.For(domain.Classic)
	e := New(topo)
	b := fullBoard(topo)
	// Three cells share the pair: not exactly two length-2 cells, so
	// the rule must not fire anywhere in row A or its boxes.
	b["A1"] = "23"
	b["A2"] = "23"
	b["A3"] = "23"

	e.NakedTwins(b, recorder.Nop{})
	if !b["A4"].Has('2') || !b["A4"].Has('3') {
		t.Errorf("A4 = %q, crowded unit should stay untouched", b["A4"])
	}
}

func TestReduceSolvesEasyPuzzle(t *testing.T) {
	topo := topology.For(domain.Classic)
	e := New(topo)
	b, err := codec.Parse(topo, easy, recorder.Nop{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !e.Reduce(b, recorder.Nop{}) {
		t.Fatal("Reduce reported contradiction on solvable puzzle")
	}
	if got := b.SolvedCount(); got != 81 {
		t.Fatalf("solved %d cells, want 81 by propagation alone", got)
	}
	// Givens survive.
	for i, ch := range easy {
		if ch == '.' {
			continue
		}
		c := topo.Cells()[i]
		if b[c] != domain.Candidates(ch) {
			t.Errorf("given %s overwritten: %q", c, b[c])
		}
	}
}

func TestReduceIdempotentOnSolvedBoard(t *testing.T) {
	topo := topology.For(domain.Classic)
	e := New(topo)
	b, _ := codec.Parse(topo, solved, recorder.Nop{})

	rec := recorder.NewLog()
	if !e.Reduce(b, rec) {
		t.Fatal("Reduce reported contradiction on solved board")
	}
	if rec.Len() != 0 {
		t.Errorf("solved board produced %d new assignments, want 0", rec.Len())
	}
	if got := codec.Line(topo, b); got != solved {
		t.Errorf("solved board changed:\n got %s\nwant %s", got, solved)
	}
}

func TestReduceDetectsContradiction(t *testing.T) {
	topo := topology.For(domain.Classic)
	e := New(topo)
	grid := "55" + strings.Repeat(".", 79) // two 5s in row A
	b, err := codec.Parse(topo, grid, recorder.Nop{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if e.Reduce(b, recorder.Nop{}) {
		t.Fatal("Reduce missed the contradiction")
	}
}
