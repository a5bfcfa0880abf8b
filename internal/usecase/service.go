// Package usecase exposes the game core to its renderer/host.
package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/engine"
	"svw.info/hanoi/internal/hint"
	"svw.info/hanoi/internal/ports"
	"svw.info/hanoi/internal/selection"
	"svw.info/hanoi/internal/solver"
)

// ErrSolveInProgress is returned by StartAutoSolve while a run is in flight.
var ErrSolveInProgress = errors.New("usecase: auto-solve already running")

// Service is one independent game instance. A single mutex serializes every
// state mutation, including the auto-solver's paced applications, so board,
// counter and gate changes are atomic with respect to each other.
type Service struct {
	mu     sync.Mutex
	board  *domain.Board
	engine *engine.Engine
	sel    *selection.Machine
	gate   *engine.Gate
	hinter ports.Hinter
	notify ports.Notifier
	pace   time.Duration

	solving bool
	cancel  context.CancelFunc // run token of the in-flight solve, nil otherwise
	gen     uint64             // bumped on reset and solve start; names the owning run
}

// Option configures a Service.
type Option func(*Service)

// WithPace overrides the auto-solve inter-move delay.
func WithPace(d time.Duration) Option {
	return func(s *Service) { s.pace = d }
}

// WithNotifier installs a renderer-facing notifier.
func WithNotifier(n ports.Notifier) Option {
	return func(s *Service) { s.notify = n }
}

// WithHinter overrides the default hinter.
func WithHinter(h ports.Hinter) Option {
	return func(s *Service) { s.hinter = h }
}

// New builds a game with numDisks disks on the source peg.
func New(numDisks int, opts ...Option) (*Service, error) {
	board, err := domain.NewBoard(numDisks)
	if err != nil {
		return nil, err
	}
	s := &Service{
		board:  board,
		gate:   &engine.Gate{},
		hinter: hint.New(),
		pace:   solver.DefaultPace,
	}
	s.engine = engine.New(board)
	s.sel = selection.New(board, s.engine, s.gate)
	for _, opt := range opts {
		opt(s)
	}
	s.engine.SetNotifier(s.notify)
	return s, nil
}

// Reset rebuilds the model, counters and selection. A reset issued while an
// auto-solve run is in flight invalidates the run immediately and force-opens
// the gate, so a reset-during-solve can never wedge interaction closed.
func (s *Service) Reset(numDisks int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.board.Reset(numDisks); err != nil {
		return err
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
	s.solving = false
	s.engine.Reset()
	s.sel.Clear()
	s.gate.Unlock()
	return nil
}

// AttemptMove is the single user-facing mutation entrypoint. It no-ops while
// the gate is closed; a winning move closes the gate until the next reset.
func (s *Service) AttemptMove(from, to int) domain.MoveResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate.Locked() {
		return s.noOpLocked()
	}
	res := s.engine.TryMove(from, to)
	if res.Solved {
		s.gate.Lock()
	}
	return res
}

func (s *Service) noOpLocked() domain.MoveResult {
	return domain.MoveResult{
		Reason:    domain.ReasonLocked,
		MoveCount: s.engine.MoveCount(),
		Solved:    s.board.IsSolved(),
	}
}

// Select records a click-selection on the top disk of peg.
func (s *Service) Select(peg int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Select(peg)
}

// Deselect clears any pending selection.
func (s *Service) Deselect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.Deselect()
}

// CurrentSelection returns the pending selection's origin peg.
func (s *Service) CurrentSelection() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.Selection()
}

// DragStart begins a drag gesture; see selection.Machine.
func (s *Service) DragStart(peg int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel.DragStart(peg)
}

// Drop completes a drag gesture on target.
func (s *Service) Drop(target int) domain.MoveResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.sel.Drop(target)
	if res.Solved {
		s.gate.Lock()
	}
	return res
}

// DragEnd abandons a drag gesture without a drop.
func (s *Service) DragEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.DragEnd()
}

// ClickDisk handles a click on a peg's top disk.
func (s *Service) ClickDisk(peg int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sel.ClickDisk(peg)
}

// ClickPeg handles a click on a peg area.
func (s *Service) ClickPeg(peg int) domain.MoveResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.sel.ClickPeg(peg)
	if res.Solved {
		s.gate.Lock()
	}
	return res
}

// Activate handles keyboard activation on a focused peg.
func (s *Service) Activate(peg int) domain.MoveResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := s.sel.Activate(peg)
	if res.Solved {
		s.gate.Lock()
	}
	return res
}

// Hint suggests the next move of a shortest completion.
func (s *Service) Hint() (domain.Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate.Locked() {
		return domain.Move{}, false
	}
	return s.hinter.Next(s.board)
}

// StartAutoSolve locks the gate, clears any pending selection and replays a
// solution with timed pacing on its own goroutine. From the start position the
// plan is the canonical recursive sequence; mid-game it is the shortest
// completion from the current position.
func (s *Service) StartAutoSolve() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.solving {
		return ErrSolveInProgress
	}

	var moves []domain.Move
	if s.board.Height(domain.PegSource) == s.board.NumDisks {
		moves = solver.Sequence(s.board.NumDisks)
	} else {
		moves = solver.Complete(s.board, s.hinter)
	}

	s.sel.Clear()
	s.gate.Lock()
	s.solving = true
	s.gen++
	gen := s.gen
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	r := &solver.Runner{
		Pace: s.pace,
		Apply: func(mv domain.Move) bool {
			s.mu.Lock()
			defer s.mu.Unlock()
			if ctx.Err() != nil {
				return false
			}
			s.engine.TryMove(mv.From, mv.To)
			return true
		},
	}
	go s.runSolve(ctx, cancel, gen, r, moves)
	return nil
}

func (s *Service) runSolve(ctx context.Context, cancel context.CancelFunc, gen uint64, r *solver.Runner, moves []domain.Move) {
	completed := r.Run(ctx, moves)
	cancel()

	s.mu.Lock()
	// A reset may have superseded this run; it already restored the state and
	// reopened the gate, so only the owning run cleans up after itself.
	if s.gen == gen {
		s.cancel = nil
		s.solving = false
		s.gate.Unlock()
		if s.board.IsSolved() {
			// Freeze interaction on the won game until reset.
			s.gate.Lock()
		}
	}
	n := s.notify
	s.mu.Unlock()

	if n != nil {
		n.SolveDone(!completed)
	}
}

// IsSolving reports whether an auto-solve run is in flight.
func (s *Service) IsSolving() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solving
}

// Snapshot returns a deep, read-only copy of game state for rendering or
// testing.
func (s *Service) Snapshot() domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := domain.Snapshot{
		NumDisks:  s.board.NumDisks,
		MoveCount: s.engine.MoveCount(),
		Solved:    s.board.IsSolved(),
		Selection: -1,
		Solving:   s.solving,
		Locked:    s.gate.Locked(),
	}
	for i := range s.board.Pegs {
		snap.Pegs[i] = append([]int(nil), s.board.Pegs[i]...)
	}
	if origin, ok := s.sel.Selection(); ok {
		snap.Selection = origin
	}
	return snap
}
