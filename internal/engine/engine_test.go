package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hanoi/internal/domain"
)

type recordingNotifier struct {
	moved []domain.MoveResult
	done  []bool
}

func (n *recordingNotifier) Moved(res domain.MoveResult) { n.moved = append(n.moved, res) }
func (n *recordingNotifier) SolveDone(aborted bool)      { n.done = append(n.done, aborted) }

func newEngine(t *testing.T, disks int) (*Engine, *domain.Board) {
	t.Helper()
	b, err := domain.NewBoard(disks)
	require.NoError(t, err)
	return New(b), b
}

func TestTryMoveRejections(t *testing.T) {
	e, b := newEngine(t, 3)

	cases := []struct {
		name     string
		from, to int
		reason   domain.Reason
	}{
		{"same peg", 0, 0, domain.ReasonSamePeg},
		{"same empty peg", 1, 1, domain.ReasonSamePeg}, // distinctness checked first
		{"empty source", 1, 2, domain.ReasonEmptySource},
		{"bad from", -1, 2, domain.ReasonBadPeg},
		{"bad to", 0, 3, domain.ReasonBadPeg},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := e.TryMove(tc.from, tc.to)
			assert.False(t, res.Applied)
			assert.Equal(t, tc.reason, res.Reason)
			assert.Zero(t, res.MoveCount)
		})
	}
	assert.Equal(t, 3, b.Height(domain.PegSource), "no rejection may mutate")
}

func TestTryMoveSizeViolation(t *testing.T) {
	e, b := newEngine(t, 3)
	require.True(t, e.TryMove(0, 2).Applied) // disk 1 onto dest

	res := e.TryMove(0, 2) // disk 2 onto disk 1
	assert.False(t, res.Applied)
	assert.Equal(t, domain.ReasonSizeViolation, res.Reason)
	assert.Equal(t, 1, res.MoveCount, "counter untouched by failures")
	assert.Equal(t, []int{1}, b.Pegs[domain.PegDest])
}

func TestTryMoveAppliesAndCounts(t *testing.T) {
	e, b := newEngine(t, 3)
	res := e.TryMove(0, 1)
	require.True(t, res.Applied)
	assert.Equal(t, domain.ReasonNone, res.Reason)
	assert.Equal(t, 1, res.MoveCount)
	assert.False(t, res.Solved)
	assert.Equal(t, []int{1}, b.Pegs[domain.PegAux])

	res = e.TryMove(0, 2)
	require.True(t, res.Applied)
	assert.Equal(t, 2, res.MoveCount)
	assert.Equal(t, 2, e.MoveCount())
}

func TestTryMoveOntoLargerDisk(t *testing.T) {
	e, _ := newEngine(t, 3)
	require.True(t, e.TryMove(0, 2).Applied) // 1 → dest
	require.True(t, e.TryMove(0, 1).Applied) // 2 → aux
	res := e.TryMove(2, 1)                   // 1 onto 2: smaller onto larger
	assert.True(t, res.Applied)
}

func TestWinDetection(t *testing.T) {
	e, b := newEngine(t, 3)
	seq := [][2]int{{0, 2}, {0, 1}, {2, 1}, {0, 2}, {1, 0}, {1, 2}, {0, 2}}
	var last domain.MoveResult
	for _, mv := range seq {
		last = e.TryMove(mv[0], mv[1])
		require.True(t, last.Applied, "move %v must be legal", mv)
	}
	assert.True(t, last.Solved)
	assert.True(t, b.IsSolved())
	assert.Equal(t, 7, last.MoveCount)

	// The engine itself does not block moves after a win.
	res := e.TryMove(2, 0)
	assert.True(t, res.Applied)
	assert.False(t, res.Solved)
}

func TestMovedNotification(t *testing.T) {
	e, _ := newEngine(t, 3)
	n := &recordingNotifier{}
	e.SetNotifier(n)

	e.TryMove(0, 0) // rejected, no notification
	e.TryMove(0, 2)
	require.Len(t, n.moved, 1)
	assert.True(t, n.moved[0].Applied)
	assert.Equal(t, 1, n.moved[0].MoveCount)
}

func TestResetZeroesCounter(t *testing.T) {
	e, _ := newEngine(t, 3)
	e.TryMove(0, 2)
	e.Reset()
	assert.Zero(t, e.MoveCount())
}

func TestInvariantUnderAttemptStorm(t *testing.T) {
	e, b := newEngine(t, 5)
	// A fixed pseudo-random walk of attempts; rejections must never mutate.
	attempts := [][2]int{
		{0, 2}, {0, 2}, {0, 1}, {2, 1}, {1, 1}, {2, 0}, {0, 2}, {1, 0},
		{1, 2}, {2, 1}, {0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {1, 0},
	}
	for _, mv := range attempts {
		e.TryMove(mv[0], mv[1])
		assertInvariant(t, b)
	}
}

func assertInvariant(t *testing.T, b *domain.Board) {
	t.Helper()
	seen := map[int]int{}
	for p := range b.Pegs {
		for i := 1; i < len(b.Pegs[p]); i++ {
			require.Greater(t, b.Pegs[p][i-1], b.Pegs[p][i],
				"peg %d not strictly decreasing: %v", p, b.Pegs[p])
		}
		for _, size := range b.Pegs[p] {
			seen[size]++
		}
	}
	require.Len(t, seen, b.NumDisks)
	for size := 1; size <= b.NumDisks; size++ {
		require.Equal(t, 1, seen[size], "disk %d must appear exactly once", size)
	}
}
