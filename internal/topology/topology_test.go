package topology

import (
	"testing"

	"github.com/chischaschos/sudoku/internal/domain"
)

func TestBuildCounts(t *testing.T) {
	cases := []struct {
		name  string
		v     domain.Variant
		units int
	}{
		{"classic", domain.Classic, 27},
		{"diagonal", domain.Diagonal, 29},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			topo := For(tc.v)
			if got := len(topo.Cells()); got != 81 {
				t.Fatalf("cells = %d, want 81", got)
			}
			if got := len(topo.Units()); got != tc.units {
				t.Fatalf("units = %d, want %d", got, tc.units)
			}
			for _, u := range topo.Units() {
				if len(u) != 9 {
					t.Fatalf("unit %v has %d cells, want 9", u, len(u))
				}
			}
		})
	}
}

func TestUnitsOfAndPeers(t *testing.T) {
	topo := For(domain.Classic)
	if got := len(topo.UnitsOf("C2")); got != 3 {
		t.Errorf("UnitsOf(C2) = %d units, want 3", got)
	}
	if got := len(topo.PeersOf("C2")); got != 20 {
		t.Errorf("PeersOf(C2) = %d peers, want 20", got)
	}
	for _, p := range topo.PeersOf("C2") {
		if p == "C2" {
			t.Fatal("cell listed as its own peer")
		}
	}
}

func TestDiagonalPeers(t *testing.T) {
	topo := For(domain.Diagonal)
	// E5 sits on both diagonals but its box already covers most of them.
	if got := len(topo.UnitsOf("E5")); got != 5 {
		t.Errorf("UnitsOf(E5) = %d units, want 5", got)
	}
	// A1 gains the main diagonal: 20 base peers plus E5..I9 minus overlaps.
	a1 := topo.PeersOf("A1")
	want := map[domain.Cell]bool{"E5": true, "I9": true}
	for _, p := range a1 {
		delete(want, p)
	}
	if len(want) != 0 {
		t.Errorf("A1 peers missing diagonal cells: %v", want)
	}
	// Off-diagonal cells keep the classic peer count.
	if got := len(topo.PeersOf("B5")); got != 20 {
		t.Errorf("PeersOf(B5) = %d peers, want 20", got)
	}
}

func TestForReturnsSharedInstance(t *testing.T) {
	if For(domain.Classic) != For(domain.Classic) {
		t.Error("For(Classic) built two instances")
	}
	if For(domain.Classic) == For(domain.Diagonal) {
		t.Error("variants share one instance")
	}
}
