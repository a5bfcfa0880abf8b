// Package engine owns move validation, move counting and win detection.
package engine

import (
	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// Engine applies moves against a shared board. It is the only component that
// mutates the board. The engine never blocks moves after a win; freezing
// interaction is the gate's job, set by the caller upon observing Solved.
type Engine struct {
	board  *domain.Board
	moves  int
	notify ports.Notifier
}

func New(b *domain.Board) *Engine { return &Engine{board: b} }

// SetNotifier installs the renderer-facing notifier. nil disables notifications.
func (e *Engine) SetNotifier(n ports.Notifier) { e.notify = n }

// TryMove validates and applies a single move. Preconditions are checked in
// order: distinct pegs, non-empty source, size rule on the target. On failure
// nothing is mutated and the reason is returned for caller-side messaging.
func (e *Engine) TryMove(from, to int) domain.MoveResult {
	res := domain.MoveResult{MoveCount: e.moves, Solved: e.board.IsSolved()}
	if !domain.ValidPeg(from) || !domain.ValidPeg(to) {
		res.Reason = domain.ReasonBadPeg
		return res
	}
	if from == to {
		res.Reason = domain.ReasonSamePeg
		return res
	}
	size, ok := e.board.Peek(from)
	if !ok {
		res.Reason = domain.ReasonEmptySource
		return res
	}
	if top, ok := e.board.Peek(to); ok && top < size {
		res.Reason = domain.ReasonSizeViolation
		return res
	}

	e.board.Pop(from)
	e.board.Push(to, size)
	e.moves++

	res = domain.MoveResult{Applied: true, MoveCount: e.moves, Solved: e.board.IsSolved()}
	if e.notify != nil {
		e.notify.Moved(res)
	}
	return res
}

// MoveCount returns the number of applied moves since the last reset.
func (e *Engine) MoveCount() int { return e.moves }

// Reset zeroes the move counter.
func (e *Engine) Reset() { e.moves = 0 }
