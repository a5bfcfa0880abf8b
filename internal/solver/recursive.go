// Package solver generates and replays the canonical recursive Hanoi solution.
package solver

import (
	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/ports"
)

// Sequence returns the canonical move list for n disks, (from=source, to=dest,
// aux=auxiliary). The result has exactly 2^n - 1 moves. Generation is pure;
// pacing and application are the Runner's concern.
func Sequence(n int) []domain.Move {
	if n <= 0 {
		return nil
	}
	moves := make([]domain.Move, 0, 1<<uint(n)-1)
	build(n, domain.PegSource, domain.PegDest, domain.PegAux, &moves)
	return moves
}

func build(n, from, to, aux int, out *[]domain.Move) {
	if n == 0 {
		return
	}
	build(n-1, from, aux, to, out)
	*out = append(*out, domain.Move{From: from, To: to})
	build(n-1, aux, to, from, out)
}

// Complete returns a shortest move list that finishes the puzzle from an
// arbitrary reachable position, by repeatedly taking the optimal next move.
// The board is not modified. From the start position this equals Sequence.
func Complete(b *domain.Board, h ports.Hinter) []domain.Move {
	work := b.Clone()
	var moves []domain.Move
	limit := 1<<uint(work.NumDisks) - 1
	for len(moves) < limit {
		mv, ok := h.Next(work)
		if !ok {
			break
		}
		work.Push(mv.To, work.Pop(mv.From))
		moves = append(moves, mv)
	}
	return moves
}
