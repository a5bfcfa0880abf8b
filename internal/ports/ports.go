package ports

import (
	"svw.info/hanoi/internal/domain"
)

// Mover validates and applies a single move between two pegs.
// All three input modalities funnel through one Mover.
type Mover interface {
	TryMove(from, to int) domain.MoveResult
}

// Gate reports whether user-driven interaction is currently accepted.
// It is held closed for the duration of an auto-solve run and after a win.
type Gate interface {
	Locked() bool
}

// Notifier receives the externally observable effects of the core:
// applied moves and auto-solve completion. Renderers consume these.
type Notifier interface {
	Moved(res domain.MoveResult)
	SolveDone(aborted bool)
}

// Hinter suggests the next move of a shortest completion from the
// current position.
type Hinter interface {
	Next(b *domain.Board) (domain.Move, bool)
}
