package components

import (
	"strings"

	"github.com/theirongolddev/lifedays/internal/grid"
	"github.com/theirongolddev/lifedays/internal/model"
	"github.com/theirongolddev/lifedays/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Cell glyphs. Each cell takes two columns so the grid reads as squares.
const (
	CellGlyph   = "■ "
	CursorGlyph = "◆ "
)

// RenderGrid draws cells in rows of columns, highlighting the cursor index.
// Output has one line per row, in reading order.
func RenderGrid(cells []model.Cell, columns, cursor int) string {
	t := theme.Active
	lived := lipgloss.NewStyle().Foreground(t.Lived).Background(t.Background)
	remaining := lipgloss.NewStyle().Foreground(t.Remaining).Background(t.Background)
	sel := lipgloss.NewStyle().Foreground(t.Cursor).Background(t.Background).Bold(true)

	rows := grid.Rows(cells, columns)
	lines := make([]string, len(rows))
	for r, row := range rows {
		var b strings.Builder
		// render runs of equal state with one style call each
		runStart := 0
		flush := func(end int) {
			if end <= runStart {
				return
			}
			style := remaining
			if row[runStart].State == model.Lived {
				style = lived
			}
			b.WriteString(style.Render(strings.Repeat(CellGlyph, end-runStart)))
		}
		for i, c := range row {
			if c.Index == cursor {
				flush(i)
				b.WriteString(sel.Render(CursorGlyph))
				runStart = i + 1
				continue
			}
			if i > runStart && c.State != row[runStart].State {
				flush(i)
				runStart = i
			}
		}
		flush(len(row))
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// GridWidth is the rendered width of a grid with the given columns.
func GridWidth(columns int) int {
	return columns * lipgloss.Width(CellGlyph)
}
