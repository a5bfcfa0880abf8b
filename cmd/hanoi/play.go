package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"svw.info/hanoi/internal/adapters/tui"
)

var (
	playDisks int
	playPace  time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play opens an interactive terminal client. Disks move by keyboard
(arrows plus Enter), by clicking, or by dragging with the mouse.

Examples:
  hanoi play
  hanoi play --disks 7 --pace 250ms`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&playDisks, "disks", 5, "number of disks (3-10)")
	playCmd.Flags().DurationVar(&playPace, "pace", 500*time.Millisecond, "delay between auto-solve moves")
}

func runPlay(cmd *cobra.Command, args []string) error {
	m, err := tui.New(playDisks, playPace)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}
