package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Result   lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Display  lipgloss.Style
	Toast    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Result: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("42")),
		Label:   lipgloss.NewStyle().Width(22),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		Display: lipgloss.NewStyle().
			Bold(true).
			Width(28).
			Align(lipgloss.Right).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
