// Package selection reconciles drag, click and keyboard input into a single
// pending-move concept and funnels confirmed moves to one Mover.
package selection

import (
	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

const none = -1

// Machine is the selection state machine. It holds at most one click-selection
// (origin peg) and one in-flight drag origin; the two are independent so a
// drop can land while an unrelated click-selection is pending. The machine
// never mutates the board directly, it only calls TryMove.
type Machine struct {
	board *domain.Board
	mover ports.Mover
	gate  ports.Gate

	origin   int // click-selection origin peg, none when idle
	dragFrom int // drag gesture origin peg, none when no drag in flight
}

func New(board *domain.Board, mover ports.Mover, gate ports.Gate) *Machine {
	return &Machine{board: board, mover: mover, gate: gate, origin: none, dragFrom: none}
}

// Selection returns the click-selection origin peg, ok=false when idle.
func (m *Machine) Selection() (int, bool) { return m.origin, m.origin != none }

// Dragging returns the drag origin peg, ok=false when no drag is in flight.
func (m *Machine) Dragging() (int, bool) { return m.dragFrom, m.dragFrom != none }

// Clear drops any pending selection and drag origin.
func (m *Machine) Clear() {
	m.origin = none
	m.dragFrom = none
}

// Select records a click-selection on the top disk of peg without the toggle
// semantics of ClickDisk. Returns false when the gate is closed or the peg
// has no disk to grab.
func (m *Machine) Select(peg int) bool {
	if m.gate.Locked() || !domain.ValidPeg(peg) {
		return false
	}
	if _, ok := m.board.Peek(peg); !ok {
		return false
	}
	m.origin = peg
	return true
}

// Deselect returns the machine to idle.
func (m *Machine) Deselect() { m.origin = none }

// DragStart begins a drag gesture on the top disk of peg. The drag origin is
// stateless beyond the in-flight gesture and separate from click-selection.
func (m *Machine) DragStart(peg int) bool {
	if m.gate.Locked() || !domain.ValidPeg(peg) {
		return false
	}
	if _, ok := m.board.Peek(peg); !ok {
		return false
	}
	m.dragFrom = peg
	return true
}

// Drop completes a drag gesture on target. The drag origin and any unrelated
// click-selection are cleared regardless of the move's outcome.
func (m *Machine) Drop(target int) domain.MoveResult {
	if m.gate.Locked() {
		return domain.MoveResult{Reason: domain.ReasonLocked}
	}
	if m.dragFrom == none {
		return domain.MoveResult{}
	}
	from := m.dragFrom
	m.Clear()
	return m.mover.TryMove(from, target)
}

// DragEnd abandons a drag gesture without a drop. No model mutation.
func (m *Machine) DragEnd() { m.dragFrom = none }

// ClickDisk handles a click on the top disk of peg: select when idle, toggle
// off when it is the already-selected disk, otherwise change selection.
func (m *Machine) ClickDisk(peg int) {
	if m.gate.Locked() || !domain.ValidPeg(peg) {
		return
	}
	if _, ok := m.board.Peek(peg); !ok {
		return
	}
	if m.origin == peg {
		m.origin = none
		return
	}
	m.origin = peg
}

// ClickPeg handles a click on a peg area (not on a disk). While selected, the
// origin peg deselects and any other peg attempts the move. Selection is
// single-shot: it clears regardless of the move's outcome.
func (m *Machine) ClickPeg(peg int) domain.MoveResult {
	if m.gate.Locked() {
		return domain.MoveResult{Reason: domain.ReasonLocked}
	}
	if m.origin == none || !domain.ValidPeg(peg) {
		return domain.MoveResult{}
	}
	if m.origin == peg {
		m.origin = none
		return domain.MoveResult{}
	}
	from := m.origin
	m.origin = none
	return m.mover.TryMove(from, peg)
}

// Activate handles keyboard activation (Enter/Space) on a focused peg. It is
// a strict superset of ClickPeg: with no selection pending, the peg's top
// disk becomes the implicit selection.
func (m *Machine) Activate(peg int) domain.MoveResult {
	if m.gate.Locked() {
		return domain.MoveResult{Reason: domain.ReasonLocked}
	}
	if m.origin == none {
		m.Select(peg)
		return domain.MoveResult{}
	}
	return m.ClickPeg(peg)
}
