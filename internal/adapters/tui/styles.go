package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("51")).
			Bold(true).
			Padding(0, 1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	wonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	poleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	baseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("45"))

	focusLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("51")).
			Bold(true).
			Underline(true)

	selectedDiskStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("226")).
				Bold(true)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1)

	// one color per disk size, cycling for large stacks
	diskPalette = []lipgloss.Color{
		"39", "45", "51", "87", "123", "159", "195", "231", "225", "219",
	}
)

func diskStyle(size int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(diskPalette[(size-1)%len(diskPalette)])
}
