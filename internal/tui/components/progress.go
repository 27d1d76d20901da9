package components

import (
	"fmt"

	"github.com/theirongolddev/lifedays/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// LifeBar renders the consumed share of the budget. pct is 0-100 and may
// exceed 100 once the budget is spent; the bar itself is clamped.
func LifeBar(pct float64, width int) string {
	t := theme.Active

	frac := max(0, min(pct/100, 1))
	color := t.Lived
	if pct >= 100 {
		color = t.Warning
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(width-9, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.Remaining)

	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return bar.ViewAs(frac) + spaceStyle.Render(" ") + pctStyle.Render(fmt.Sprintf("%7.2f%%", pct))
}
