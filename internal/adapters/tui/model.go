// Package tui renders a game in the terminal. It feeds all three input
// modalities into the shared core: keyboard focus-and-activate, mouse
// click-to-select, and mouse press-drag-release.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"svw.info/hanoi/internal/domain"
	"svw.info/hanoi/internal/usecase"
)

// boardTop is the screen row of the topmost board cell: title and status
// lines sit above it. Mouse mapping depends on View keeping this layout.
const boardTop = 2

type tickMsg time.Time

// Model is the bubbletea model wrapping one game instance.
type Model struct {
	svc  *usecase.Service
	keys keyMap
	help help.Model

	focus    int // keyboard-focused peg
	pressPeg int // peg under the last mouse press, -1 when none
	status   string
	width    int
	quitting bool
}

// New builds a TUI model around a fresh game.
func New(disks int, pace time.Duration) (Model, error) {
	svc, err := usecase.New(disks, usecase.WithPace(pace))
	if err != nil {
		return Model{}, err
	}
	return Model{
		svc:      svc,
		keys:     defaultKeyMap(),
		help:     help.New(),
		pressPeg: -1,
		status:   "move the stack to the right peg",
	}, nil
}

func (m Model) Init() tea.Cmd { return nil }

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if m.svc.IsSolving() {
			return m, tick()
		}
		snap := m.svc.Snapshot()
		if snap.Solved {
			m.status = fmt.Sprintf("solved in %d moves", snap.MoveCount)
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Left):
		if m.focus > 0 {
			m.focus--
		}
	case key.Matches(msg, keys.Right):
		if m.focus < domain.NumPegs-1 {
			m.focus++
		}
	case key.Matches(msg, keys.Activate):
		m.reportMove(m.svc.Activate(m.focus))
	case key.Matches(msg, keys.Solve):
		if err := m.svc.StartAutoSolve(); err != nil {
			m.status = err.Error()
			return m, nil
		}
		m.status = "solving..."
		return m, tick()
	case key.Matches(msg, keys.Hint):
		if mv, ok := m.svc.Hint(); ok {
			m.status = fmt.Sprintf("try %s to %s", pegName(mv.From), pegName(mv.To))
		}
	case key.Matches(msg, keys.Reset):
		m.resetTo(m.svc.Snapshot().NumDisks)
	case key.Matches(msg, keys.More):
		m.resetTo(m.svc.Snapshot().NumDisks + 1)
	case key.Matches(msg, keys.Fewer):
		m.resetTo(m.svc.Snapshot().NumDisks - 1)
	}
	return m, nil
}

func (m *Model) resetTo(disks int) {
	if err := m.svc.Reset(disks); err != nil {
		m.status = err.Error()
		return
	}
	m.status = fmt.Sprintf("new game with %d disks", disks)
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	snap := m.svc.Snapshot()
	peg := m.pegAt(msg.X, snap)
	switch msg.Action {
	case tea.MouseActionPress:
		if peg < 0 {
			return m, nil
		}
		m.pressPeg = peg
		m.focus = peg
		m.svc.DragStart(peg)
	case tea.MouseActionRelease:
		press := m.pressPeg
		m.pressPeg = -1
		if press < 0 {
			return m, nil
		}
		if peg == press {
			// the gesture never left its peg: a click, not a drag
			m.svc.DragEnd()
			m.handleClick(peg, msg.Y, snap)
			return m, nil
		}
		if peg < 0 {
			m.svc.DragEnd()
			return m, nil
		}
		m.reportMove(m.svc.Drop(peg))
	}
	return m, nil
}

// pegAt maps a screen column to a peg index, -1 when outside the board.
func (m Model) pegAt(x int, snap domain.Snapshot) int {
	w := colWidth(snap.NumDisks)
	peg := x / w
	if x < 0 || peg >= domain.NumPegs {
		return -1
	}
	return peg
}

// handleClick distinguishes "click on the top disk" from "click on the peg
// area". Clicks on buried disks are ignored, matching a renderer that only
// makes the top disk interactive.
func (m *Model) handleClick(peg, y int, snap domain.Snapshot) {
	height := len(snap.Pegs[peg])
	topRow := boardTop + snap.NumDisks - height
	baseRow := boardTop + snap.NumDisks
	switch {
	case y < boardTop || y > baseRow+1:
		// outside the board
	case height > 0 && y == topRow:
		m.svc.ClickDisk(peg)
	case height > 0 && y > topRow && y < baseRow:
		// buried disk
	default:
		m.reportMove(m.svc.ClickPeg(peg))
	}
}

func (m *Model) reportMove(res domain.MoveResult) {
	switch {
	case res.Solved:
		m.status = fmt.Sprintf("solved in %d moves", res.MoveCount)
	case res.Applied:
		m.status = fmt.Sprintf("move %d", res.MoveCount)
	case res.Reason == domain.ReasonSizeViolation:
		m.status = "a disk cannot rest on a smaller one"
	case res.Reason == domain.ReasonEmptySource:
		m.status = "that peg is empty"
	case res.Reason == domain.ReasonLocked:
		m.status = "wait for the solver to finish"
	}
}

// colWidth is the rendered width of one peg column: the widest disk plus a
// space of padding on both sides.
func colWidth(numDisks int) int {
	return 2*numDisks + 3
}

func pegName(peg int) string {
	return [...]string{"the left peg", "the middle peg", "the right peg"}[peg]
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	snap := m.svc.Snapshot()
	w := colWidth(snap.NumDisks)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tower of Hanoi"))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  moves: %d", snap.MoveCount)))
	b.WriteByte('\n')
	if snap.Solved && !snap.Solving {
		b.WriteString(wonStyle.Render(m.status))
	} else {
		b.WriteString(statusStyle.Render(m.status))
	}
	b.WriteByte('\n')

	// board rows, top to bottom
	for row := 0; row < snap.NumDisks; row++ {
		level := snap.NumDisks - 1 - row // disk index from the bottom of a stack
		for peg := 0; peg < domain.NumPegs; peg++ {
			stack := snap.Pegs[peg]
			if level < len(stack) {
				size := stack[level]
				bar := strings.Repeat("█", 2*size+1)
				style := diskStyle(size)
				if snap.Selection == peg && level == len(stack)-1 {
					style = selectedDiskStyle
				}
				b.WriteString(center(style.Render(bar), 2*size+1, w))
			} else {
				b.WriteString(center(poleStyle.Render("│"), 1, w))
			}
		}
		b.WriteByte('\n')
	}

	b.WriteString(baseStyle.Render(strings.Repeat("▔", w*domain.NumPegs)))
	b.WriteByte('\n')

	for peg := 0; peg < domain.NumPegs; peg++ {
		label := [...]string{"source", "aux", "dest"}[peg]
		style := labelStyle
		if peg == m.focus {
			style = focusLabelStyle
			label = "[" + label + "]"
		}
		b.WriteString(center(style.Render(label), lipgloss.Width(style.Render(label)), w))
	}
	b.WriteByte('\n')

	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// center pads rendered (of visible width inner) to width w.
func center(rendered string, inner, w int) string {
	if inner >= w {
		return rendered
	}
	left := (w - inner) / 2
	right := w - inner - left
	return strings.Repeat(" ", left) + rendered + strings.Repeat(" ", right)
}
