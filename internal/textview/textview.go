// Package textview draws a board in the terminal.
package textview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iburimskiy/exploding-dots/internal/dots"
)

const (
	Dot     = "•"
	Antidot = "o"

	perRow = 4
	// Counts above this are printed as numbers instead of dots.
	maxDrawn = 16
)

var (
	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#808080")).
			Width(perRow*2 + 1).
			Height(maxDrawn / perRow).
			Align(lipgloss.Center)
	dotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00"))
	antidotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3200c8"))
)

// Cell renders the contents of one place.
func Cell(count int) string {
	mark, style := Dot, dotStyle
	if count < 0 {
		mark, style = Antidot, antidotStyle
		count = -count
	}
	if count > maxDrawn {
		return style.Render(fmt.Sprintf("%s x%d", mark, count))
	}
	var rows []string
	for count > 0 {
		k := min(count, perRow)
		rows = append(rows, strings.TrimSpace(strings.Repeat(mark+" ", k)))
		count -= k
	}
	return style.Render(strings.Join(rows, "\n"))
}

// Render draws the machine label, the row of places and the value.
func Render(b *dots.Board) string {
	places := b.Places()
	cells := make([]string, len(places))
	for i, c := range places {
		cells[i] = cellStyle.Render(Cell(c))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	title := titleStyle.Render(dots.MachineName(b.Base()))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		row,
		fmt.Sprintf("Value: %d   Places: %v", b.Value(), places),
	)
}
