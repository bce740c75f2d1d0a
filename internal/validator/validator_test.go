package validator

import (
	"context"
	"testing"

	"github.com/chischaschos/sudoku/internal/codec"
	"github.com/chischaschos/sudoku/internal/domain"
	"github.com/chischaschos/sudoku/internal/recorder"
	"github.com/chischaschos/sudoku/internal/topology"
)

// Valid classic solution, but its main diagonal repeats a 5.
const solved = "243156798158739246679284351426571839981362475537498162315627984864913527792845613"

func parse(t *testing.T, topo *topology.Topology, grid string) domain.Board {
	t.Helper()
	b, err := codec.Parse(topo, grid, recorder.Nop{})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return b
}

func TestValidateSolvedBoard(t *testing.T) {
	topo := topology.For(domain.Classic)
	ok, conf, err := New(topo).Validate(context.Background(), parse(t, topo, solved))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conf) != 0 {
		t.Fatalf("valid board rejected, conflicts=%v", conf)
	}
}

func TestValidateFindsDuplicates(t *testing.T) {
	topo := topology.For(domain.Classic)
	b := parse(t, topo, solved)
	b["A9"] = "2" // row A already has a 2 at A1

	ok, conf, err := New(topo).Validate(context.Background(), b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if ok || len(conf) == 0 {
		t.Fatal("duplicate digit not reported")
	}
}

func TestValidateDiagonalUnits(t *testing.T) {
	ctx := context.Background()
	classic := topology.For(domain.Classic)
	diagonal := topology.For(domain.Diagonal)
	b := parse(t, classic, solved)

	if ok, _, _ := New(classic).Validate(ctx, b); !ok {
		t.Fatal("board should pass classic validation")
	}
	if ok, conf, _ := New(diagonal).Validate(ctx, parse(t, diagonal, solved)); ok {
		t.Fatal("diagonal violation not reported")
	} else if len(conf) == 0 {
		t.Fatal("no conflicting cells returned")
	}
}

func TestValidateSkipsUndeterminedCells(t *testing.T) {
	topo := topology.For(domain.Classic)
	b := parse(t, topo, solved)
	b["A1"] = "29" // undetermined, not a conflict

	ok, conf, err := New(topo).Validate(context.Background(), b)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok {
		t.Fatalf("partial board rejected, conflicts=%v", conf)
	}
}
