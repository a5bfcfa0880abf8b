package solver

import (
	"context"
	"time"

	"svw.info/hanoi/internal/domain"
)

// DefaultPace is the delay between auto-solve moves.
const DefaultPace = 500 * time.Millisecond

// Runner replays a move list with timed pacing. The context is the run's
// cancellation token: it is checked before every application, so a reset
// issued mid-run stops further moves immediately.
type Runner struct {
	// Pace is the inter-move delay; DefaultPace when zero or negative.
	Pace time.Duration
	// Apply performs one move. Returning false aborts the run; the callback
	// re-checks the cancellation token under the owner's lock to keep the
	// reset-during-solve path race-free.
	Apply func(domain.Move) bool
}

// Run applies moves strictly in order and reports whether the full list was
// applied. It blocks until completion or cancellation; callers run it on its
// own goroutine.
func (r *Runner) Run(ctx context.Context, moves []domain.Move) bool {
	pace := r.Pace
	if pace <= 0 {
		pace = DefaultPace
	}
	timer := time.NewTimer(pace)
	defer timer.Stop()
	for i, mv := range moves {
		if i > 0 {
			timer.Reset(pace)
		}
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}
		if !r.Apply(mv) {
			return false
		}
	}
	return true
}
