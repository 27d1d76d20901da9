package components

import (
	"github.com/theirongolddev/lifedays/internal/model"
	"github.com/theirongolddev/lifedays/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Toggle is one entry of the view toggle bar.
type Toggle struct {
	Name string
	Key  rune
	View model.Granularity
}

// Toggles lists the mutually exclusive views.
var Toggles = []Toggle{
	{Name: "Weeks", Key: 'w', View: model.Week},
	{Name: "Days", Key: 'd', View: model.Day},
}

const toggleSep = "  "

// RenderViewBar renders the toggle bar with the active view highlighted.
func RenderViewBar(active model.Granularity, width int) string {
	t := theme.Active

	bar := lipgloss.NewStyle().Background(t.Surface).Render(" ")
	for i, tg := range Toggles {
		if i > 0 {
			bar += lipgloss.NewStyle().Background(t.Surface).Render(toggleSep)
		}
		bar += renderToggle(tg, tg.View == active)
	}
	return lipgloss.NewStyle().Background(t.Surface).Width(width).Render(bar)
}

func renderToggle(tg Toggle, active bool) string {
	t := theme.Active
	if active {
		return lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Accent).
			Bold(true).
			Padding(0, 1).
			Render(tg.Name)
	}
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true).Render("[" + string(tg.Key) + "]")
	name := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Render(tg.Name[1:])
	return lipgloss.NewStyle().Background(t.Surface).Padding(0, 1).Render(key + name)
}

// ToggleWidth is the rendered width of a toggle.
func ToggleWidth(tg Toggle, active bool) int {
	return lipgloss.Width(renderToggle(tg, active))
}

// ToggleAtX returns the view whose toggle covers column x.
// Hitboxes follow the same widths RenderViewBar draws.
func ToggleAtX(x int, active model.Granularity) (model.Granularity, bool) {
	pos := 1 // leading space
	for i, tg := range Toggles {
		w := ToggleWidth(tg, tg.View == active)
		if x >= pos && x < pos+w {
			return tg.View, true
		}
		pos += w
		if i < len(Toggles)-1 {
			pos += len(toggleSep)
		}
	}
	return active, false
}

// ToggleByKey returns the view bound to key.
func ToggleByKey(key rune) (model.Granularity, bool) {
	for _, tg := range Toggles {
		if tg.Key == key {
			return tg.View, true
		}
	}
	return model.Week, false
}
