package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/calckit/internal/domain"
	"github.com/aalvaropc/calckit/internal/format"
	"github.com/aalvaropc/calckit/internal/machine"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderResult draws the result card; nil renders nothing.
func renderResult(t Theme, r domain.Result, precision int) string {
	if r == nil {
		return ""
	}
	lines := format.Lines(r, precision)
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if l.Label == "" {
			b.WriteString(l.Value)
			continue
		}
		b.WriteString(t.Label.Render(l.Label + ":"))
		b.WriteString(t.Title.Render(l.Value))
	}
	return t.Result.Render(b.String())
}

var keypadRows = [][]string{
	{"MC", "MR", "M+", "M−", "C"},
	{"sin", "cos", "tan", "ln", "log"},
	{"√", "x²", "1/x", "n!", "π"},
	{"7", "8", "9", "÷", "⌫"},
	{"4", "5", "6", "×", "%"},
	{"1", "2", "3", "−", "±"},
	{"0", ".", "=", "+", "CE"},
}

// renderKeypad draws the machine display above a static key grid.
func renderKeypad(t Theme, m *machine.Machine) string {
	prev := " "
	if m.Previous() != "" {
		prev = m.Previous() + " " + string(m.Pending())
	}

	display := t.Display.Render(t.Subtitle.Render(prev) + "\n" + clampString(m.Display(), 26))

	cell := lipgloss.NewStyle().Width(6).Align(lipgloss.Center)
	rows := make([]string, 0, len(keypadRows))
	for _, row := range keypadRows {
		cells := make([]string, len(row))
		for i, k := range row {
			cells[i] = cell.Render(k)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return display + "\n" + strings.Join(rows, "\n")
}
