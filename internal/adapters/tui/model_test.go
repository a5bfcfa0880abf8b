package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) Model {
	t.Helper()
	m, err := New(3, time.Millisecond)
	require.NoError(t, err)
	return m
}

func press(m Model, keys ...string) Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		if k == "enter" {
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		} else {
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func mouse(m Model, action tea.MouseAction, x, y int) Model {
	next, _ := m.Update(tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
	return next.(Model)
}

func TestKeyboardMoveDisk(t *testing.T) {
	m := newModel(t)

	// grab the top disk on the source peg, walk right, drop on dest
	m = press(m, "enter")
	origin, ok := m.svc.CurrentSelection()
	require.True(t, ok)
	assert.Equal(t, 0, origin)

	m = press(m, "l", "l")
	assert.Equal(t, 2, m.focus)
	m = press(m, "enter")

	snap := m.svc.Snapshot()
	assert.Equal(t, []int{1}, snap.Pegs[2])
	assert.Equal(t, 1, snap.MoveCount)
}

func TestKeyboardFocusClamped(t *testing.T) {
	m := newModel(t)
	m = press(m, "h", "h")
	assert.Equal(t, 0, m.focus)
	m = press(m, "l", "l", "l", "l")
	assert.Equal(t, 2, m.focus)
}

func TestMouseClickSelectAndMove(t *testing.T) {
	m := newModel(t)
	w := colWidth(3)

	// click the top disk of the source peg: row of disk 1 is boardTop
	m = mouse(m, tea.MouseActionPress, w/2, boardTop)
	m = mouse(m, tea.MouseActionRelease, w/2, boardTop)
	origin, ok := m.svc.CurrentSelection()
	require.True(t, ok)
	assert.Equal(t, 0, origin)

	// click the empty destination peg area
	x := 2*w + w/2
	m = mouse(m, tea.MouseActionPress, x, boardTop+1)
	m = mouse(m, tea.MouseActionRelease, x, boardTop+1)

	snap := m.svc.Snapshot()
	assert.Equal(t, []int{1}, snap.Pegs[2])
}

func TestMouseDragAcrossPegs(t *testing.T) {
	m := newModel(t)
	w := colWidth(3)

	m = mouse(m, tea.MouseActionPress, w/2, boardTop)
	m = mouse(m, tea.MouseActionRelease, w+w/2, boardTop)

	snap := m.svc.Snapshot()
	assert.Equal(t, []int{1}, snap.Pegs[1])
	assert.Equal(t, 1, snap.MoveCount)
}

func TestMouseClickBuriedDiskIgnored(t *testing.T) {
	m := newModel(t)
	w := colWidth(3)

	// the bottom disk of the source stack sits just above the base
	y := boardTop + 2
	m = mouse(m, tea.MouseActionPress, w/2, y)
	m = mouse(m, tea.MouseActionRelease, w/2, y)
	_, ok := m.svc.CurrentSelection()
	assert.False(t, ok)
	assert.Zero(t, m.svc.Snapshot().MoveCount)
}

func TestClickToggleDeselects(t *testing.T) {
	m := newModel(t)
	w := colWidth(3)
	for i := 0; i < 2; i++ {
		m = mouse(m, tea.MouseActionPress, w/2, boardTop)
		m = mouse(m, tea.MouseActionRelease, w/2, boardTop)
	}
	_, ok := m.svc.CurrentSelection()
	assert.False(t, ok)
}

func TestSolveKeyLocksInput(t *testing.T) {
	m, err := New(3, 50*time.Millisecond)
	require.NoError(t, err)

	m = press(m, "s")
	require.True(t, m.svc.IsSolving())

	m = press(m, "enter")
	_, ok := m.svc.CurrentSelection()
	assert.False(t, ok, "activation is a no-op while solving")

	m = press(m, "r") // reset cancels the run
	assert.False(t, m.svc.Snapshot().Locked)
}

func TestResizeKeys(t *testing.T) {
	m := newModel(t)
	m = press(m, "+")
	assert.Equal(t, 4, m.svc.Snapshot().NumDisks)
	m = press(m, "-")
	assert.Equal(t, 3, m.svc.Snapshot().NumDisks)
	m = press(m, "-") // at the minimum already
	assert.Equal(t, 3, m.svc.Snapshot().NumDisks)
	assert.NotEmpty(t, m.status)
}

func TestViewRenders(t *testing.T) {
	m := newModel(t)
	out := m.View()
	assert.Contains(t, out, "Tower of Hanoi")
	assert.Contains(t, out, "source")
	assert.Contains(t, out, "█████") // bottom disk of a 3-stack is 7 wide, contains 5
}

func TestHintKey(t *testing.T) {
	m := newModel(t)
	m = press(m, "u")
	assert.Contains(t, m.status, "right peg")
}
