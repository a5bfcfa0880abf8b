package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/hanoi/internal/domain"
)

func TestRunnerAppliesInOrder(t *testing.T) {
	moves := Sequence(3)
	var got []domain.Move
	r := &Runner{
		Pace: time.Millisecond,
		Apply: func(mv domain.Move) bool {
			got = append(got, mv)
			return true
		},
	}
	completed := r.Run(context.Background(), moves)
	assert.True(t, completed)
	assert.Equal(t, moves, got)
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	applied := 0
	r := &Runner{
		Pace: time.Millisecond,
		Apply: func(domain.Move) bool {
			applied++
			if applied == 2 {
				cancel()
			}
			return true
		},
	}
	completed := r.Run(ctx, Sequence(4))
	assert.False(t, completed)
	assert.Equal(t, 2, applied, "no move after cancellation")
}

func TestRunnerStopsWhenApplyRefuses(t *testing.T) {
	applied := 0
	r := &Runner{
		Pace: time.Millisecond,
		Apply: func(domain.Move) bool {
			applied++
			return applied < 3
		},
	}
	completed := r.Run(context.Background(), Sequence(3))
	assert.False(t, completed)
	assert.Equal(t, 3, applied)
}

func TestRunnerAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Runner{Pace: time.Millisecond, Apply: func(domain.Move) bool {
		t.Fatal("apply must not run")
		return false
	}}
	require.False(t, r.Run(ctx, Sequence(3)))
}

func TestRunnerEmptySequence(t *testing.T) {
	r := &Runner{Pace: time.Millisecond, Apply: func(domain.Move) bool { return true }}
	assert.True(t, r.Run(context.Background(), nil))
}
