package domain

import "errors"

// Disk count bounds accepted by Reset.
const (
	MinDisks = 3
	MaxDisks = 10
)

// Peg indices. Every game moves the stack from PegSource to PegDest.
const (
	PegSource = 0
	PegAux    = 1
	PegDest   = 2

	NumPegs = 3
)

// ErrInvalidConfig is returned when a requested disk count is outside [MinDisks, MaxDisks].
var ErrInvalidConfig = errors.New("disk count out of range [3,10]")

// Board holds the three peg stacks; it is the sole source of truth for puzzle state.
// Each peg is ordered bottom to top and strictly decreasing in size, so the top
// element of a peg is always its smallest disk.
type Board struct {
	NumDisks int      `json:"numDisks"`
	Pegs     [3][]int `json:"pegs"`
}

// NewBoard builds a board with all disks on the source peg, largest at the bottom.
func NewBoard(numDisks int) (*Board, error) {
	b := &Board{}
	if err := b.Reset(numDisks); err != nil {
		return nil, err
	}
	return b, nil
}

// Reset rebuilds the stacks with numDisks disks on the source peg.
func (b *Board) Reset(numDisks int) error {
	if numDisks < MinDisks || numDisks > MaxDisks {
		return ErrInvalidConfig
	}
	b.NumDisks = numDisks
	for i := range b.Pegs {
		b.Pegs[i] = b.Pegs[i][:0]
	}
	for size := numDisks; size >= 1; size-- {
		b.Pegs[PegSource] = append(b.Pegs[PegSource], size)
	}
	return nil
}

// ValidPeg reports whether i is a usable peg index.
func ValidPeg(i int) bool { return i >= 0 && i < NumPegs }

// Height returns the number of disks on a peg.
func (b *Board) Height(peg int) int {
	if !ValidPeg(peg) {
		return 0
	}
	return len(b.Pegs[peg])
}

// Peek returns the top disk size of a peg, or ok=false when the peg is empty.
func (b *Board) Peek(peg int) (int, bool) {
	if !ValidPeg(peg) || len(b.Pegs[peg]) == 0 {
		return 0, false
	}
	return b.Pegs[peg][len(b.Pegs[peg])-1], true
}

// Pop removes and returns the top disk of a peg. It performs no validation;
// legality checks are the move engine's responsibility.
func (b *Board) Pop(peg int) int {
	s := b.Pegs[peg]
	size := s[len(s)-1]
	b.Pegs[peg] = s[:len(s)-1]
	return size
}

// Push places a disk on top of a peg. No validation, see Pop.
func (b *Board) Push(peg, size int) {
	b.Pegs[peg] = append(b.Pegs[peg], size)
}

// IsSolved reports whether the destination peg holds the full stack.
func (b *Board) IsSolved() bool {
	return len(b.Pegs[PegDest]) == b.NumDisks
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	out := &Board{NumDisks: b.NumDisks}
	for i := range b.Pegs {
		out.Pegs[i] = append([]int(nil), b.Pegs[i]...)
	}
	return out
}

// Move relocates the top disk of From onto To.
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Snapshot is a read-only copy of game state for rendering or testing.
type Snapshot struct {
	NumDisks  int      `json:"numDisks"`
	Pegs      [3][]int `json:"pegs"`
	MoveCount int      `json:"moveCount"`
	Solved    bool     `json:"solved"`
	// Selection is the origin peg of the pending click-selection, -1 when idle.
	Selection int  `json:"selection"`
	Solving   bool `json:"solving"`
	Locked    bool `json:"locked"`
}
