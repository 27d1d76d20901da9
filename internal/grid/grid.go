// Package grid builds the ordered cell sequence for the life grid.
package grid

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/lifedays/internal/model"
)

// ParseGranularity accepts "week"/"w" and "day"/"d", case-insensitively.
func ParseGranularity(s string) (model.Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "w", "weeks":
		return model.Week, nil
	case "day", "d", "days":
		return model.Day, nil
	}
	return model.Week, fmt.Errorf("unknown view %q (want week or day)", s)
}

// NewView derives cell counts for g from the budget and days lived.
func NewView(g model.Granularity, totalDays, daysLived int) model.GridView {
	unit := g.UnitDays()
	return model.GridView{
		Granularity: g,
		TotalCells:  ceilDiv(totalDays, unit),
		LivedCells:  floorDiv(daysLived, unit),
	}
}

// Build returns every cell in ascending index order. A cell is lived when
// its index is below the lived count, so an exceeded budget marks all cells
// lived and a negative count marks none.
func Build(g model.Granularity, totalDays, daysLived int) []model.Cell {
	v := NewView(g, totalDays, daysLived)
	if v.TotalCells <= 0 {
		return nil
	}
	cells := make([]model.Cell, v.TotalCells)
	for i := range cells {
		state := model.Remaining
		if i < v.LivedCells {
			state = model.Lived
		}
		cells[i] = model.Cell{Index: i, State: state, Label: Label(g, i, state)}
	}
	return cells
}

// Label is the descriptive text for the cell at index i, e.g. "week 3 (lived)".
func Label(g model.Granularity, i int, state model.CellState) string {
	suffix := "future"
	if state == model.Lived {
		suffix = "lived"
	}
	return fmt.Sprintf("%s %d (%s)", g, i+1, suffix)
}

// Caption describes what one cell stands for.
func Caption(g model.Granularity) string {
	if g == model.Day {
		return "Each block represents 1 day"
	}
	return "Each block represents 1 week (7 days)"
}

// Rows splits cells into reading-order rows of the given width.
func Rows(cells []model.Cell, columns int) [][]model.Cell {
	if columns <= 0 || len(cells) == 0 {
		return nil
	}
	rows := make([][]model.Cell, 0, ceilDiv(len(cells), columns))
	for start := 0; start < len(cells); start += columns {
		end := min(start+columns, len(cells))
		rows = append(rows, cells[start:end])
	}
	return rows
}

// Counts tallies lived and remaining cells.
func Counts(cells []model.Cell) (lived, remaining int) {
	for _, c := range cells {
		if c.State == model.Lived {
			lived++
		} else {
			remaining++
		}
	}
	return lived, remaining
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
