package domain

import "strings"

// Digits are every candidate a cell can start with.
const Digits = "123456789"

// Cell identifies one of the 81 grid positions by row letter and
// column digit, e.g. "A1" is the top-left corner and "I9" the
// bottom-right.
type Cell string

// Candidates holds the digits still possible for a cell, in the order
// they survived elimination. One digit means the cell is solved; an
// empty string means the branch hit a contradiction.
type Candidates string

// Solved reports whether exactly one digit remains.
func (c Candidates) Solved() bool { return len(c) == 1 }

// Empty reports whether no digit remains, i.e. a contradiction.
func (c Candidates) Empty() bool { return len(c) == 0 }

// Has reports whether digit d is still a candidate.
func (c Candidates) Has(d byte) bool {
	return strings.IndexByte(string(c), d) >= 0
}

// Without returns the candidates with digit d removed.
func (c Candidates) Without(d byte) Candidates {
	return Candidates(strings.ReplaceAll(string(c), string(d), ""))
}

// Board maps every cell to its remaining candidates. A board is owned
// by exactly one search branch; branches copy before mutating.
type Board map[Cell]Candidates

// Clone returns an independent copy the caller may mutate freely.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for c, v := range b {
		out[c] = v
	}
	return out
}

// SolvedCount returns how many cells are down to a single digit.
func (b Board) SolvedCount() int {
	n := 0
	for _, v := range b {
		if v.Solved() {
			n++
		}
	}
	return n
}

// SolveRecord is a persisted solve with its replayable assignment log.
type SolveRecord struct {
	ID         string  `json:"id,omitempty"`
	Variant    Variant `json:"variant"`
	Grid       string  `json:"grid"`
	Solution   string  `json:"solution"`
	Nodes      int     `json:"nodes,omitempty"`
	DurationMs int64   `json:"durationMs,omitempty"`
	Steps      []Board `json:"steps,omitempty"`
	CreatedAt  int64   `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// RecordMeta is a lightweight listing entry.
type RecordMeta struct {
	ID        string  `json:"id"`
	Name      string  `json:"name,omitempty"`
	Variant   Variant `json:"variant"`
	CreatedAt int64   `json:"createdAt"`
}
