package components

import (
	"strings"

	"github.com/theirongolddev/lifedays/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the notice or selected cell label on the right.
func RenderStatusBar(width int, notice, cellLabel string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)

	left := " [e]dit date  [w]eek/[d]ay  [?]help  [q]uit"
	right := cellLabel
	if notice != "" {
		right = lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface).Render(notice)
	}
	if right != "" {
		right += " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return style.Render(left + strings.Repeat(" ", padding) + right)
}
