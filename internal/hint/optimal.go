// Package hint suggests the next move of a shortest completion.
package hint

import "svw.info/hanoi/internal/domain"

// Optimal walks the largest misplaced disk toward its goal peg. For any
// reachable position this yields the first move of a shortest completion;
// from the start position it matches the canonical recursive sequence.
type Optimal struct{}

func New() *Optimal { return &Optimal{} }

// Next returns the suggested move, ok=false when the board is already solved.
func (o *Optimal) Next(b *domain.Board) (domain.Move, bool) {
	if b.IsSolved() {
		return domain.Move{}, false
	}
	// pegOf[size] = the peg currently holding that disk.
	pegOf := make([]int, b.NumDisks+1)
	for p := range b.Pegs {
		for _, size := range b.Pegs[p] {
			pegOf[size] = p
		}
	}
	// Descend from the largest disk: a disk already on its running target
	// needs nothing; a misplaced disk n must move to target, which first
	// requires clearing disks 1..n-1 onto the spare peg. The innermost
	// pending move is the one that is immediately legal.
	target := domain.PegDest
	var mv domain.Move
	found := false
	for n := b.NumDisks; n >= 1; n-- {
		p := pegOf[n]
		if p == target {
			continue
		}
		mv = domain.Move{From: p, To: target}
		found = true
		target = 3 - p - target // peg indices sum to 3, so this is the spare
	}
	return mv, found
}
