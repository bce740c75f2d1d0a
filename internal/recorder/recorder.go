// Package recorder keeps the ordered log of board snapshots an
// external visualizer replays step by step. The log never feeds back
// into solving; it only observes.
package recorder

import "github.com/chischaschos/sudoku/internal/domain"

// Log is an append-only sequence of board snapshots. Each solve run
// owns its own Log, so independent runs never interleave entries.
type Log struct {
	steps []domain.Board
}

func NewLog() *Log { return &Log{} }

// Append stores one snapshot. The board must already be a clone the
// caller will not mutate again.
func (l *Log) Append(b domain.Board) {
	l.steps = append(l.steps, b)
}

// Steps returns the recorded snapshots in order. The returned slice
// must be treated as read-only.
func (l *Log) Steps() []domain.Board { return l.steps }

// Len returns how many snapshots have been recorded.
func (l *Log) Len() int { return len(l.steps) }

// Nop discards every snapshot, for callers that do not need a log.
type Nop struct{}

func (Nop) Append(domain.Board) {}
