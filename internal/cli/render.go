package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/lifedays/internal/grid"
	"github.com/theirongolddev/lifedays/internal/model"
)

// Theme colors (Flexoki Dark)
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorLived     = lipgloss.Color("#DA702C")
	ColorRemaining = lipgloss.Color("#403E3C")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	livedStyle     = lipgloss.NewStyle().Foreground(ColorLived)
	remainingStyle = lipgloss.NewStyle().Foreground(ColorRemaining)
)

// Glyphs used for grid cells in plain terminal output.
const (
	LivedGlyph     = "■"
	RemainingGlyph = "□"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(44).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderTable renders a bordered table. A row holding only "---" draws a
// separator. Columns after the first are right-aligned.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, numCols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return dimStyle.Render(left+strings.Join(parts, mid)+right) + "\n"
	}
	line := func(cells []string, style lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if i == 0 {
				b.WriteString(style.Render(" " + cell + pad + " "))
			} else {
				b.WriteString(style.Render(" " + pad + cell + " "))
			}
			b.WriteString(dimStyle.Render("│"))
		}
		return b.String() + "\n"
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, headerStyle))
		b.WriteString(rule("├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(line(row, valueStyle))
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

// RenderProgressBar renders a simple text progress bar for a 0-100 percentage.
func RenderProgressBar(pct float64, width int) string {
	frac := pct / 100
	filled := int(frac * float64(width))
	filled = max(0, min(filled, width))

	return livedStyle.Render(strings.Repeat("█", filled)) +
		remainingStyle.Render(strings.Repeat("░", width-filled)) +
		" " + mutedStyle.Render(FormatPercent(pct))
}

// RenderGrid renders cells as rows of glyphs, columns per row, in reading order.
func RenderGrid(g model.Granularity, cells []model.Cell, columns int) string {
	var b strings.Builder
	b.WriteString(mutedStyle.Render(grid.Caption(g)))
	b.WriteString("\n")

	for _, row := range grid.Rows(cells, columns) {
		var lived, remaining int
		for _, c := range row {
			if c.State == model.Lived {
				lived++
			} else {
				remaining++
			}
		}
		// cells are monotonic, so each row is a lived run then a remaining run
		b.WriteString(livedStyle.Render(strings.Repeat(LivedGlyph, lived)))
		b.WriteString(remainingStyle.Render(strings.Repeat(RemainingGlyph, remaining)))
		b.WriteString("\n")
	}

	lived, remaining := grid.Counts(cells)
	fmt.Fprintf(&b, "%s %s lived  %s %s remaining\n",
		livedStyle.Render(LivedGlyph), FormatNumber(int64(lived)),
		remainingStyle.Render(RemainingGlyph), FormatNumber(int64(remaining)))
	return b.String()
}
