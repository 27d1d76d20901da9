package model

// Granularity selects how many days one grid cell represents.
type Granularity int

const (
	Week Granularity = iota
	Day
)

// UnitDays returns the number of days in one cell.
func (g Granularity) UnitDays() int {
	if g == Day {
		return 1
	}
	return 7
}

func (g Granularity) String() string {
	if g == Day {
		return "day"
	}
	return "week"
}

// CellState marks a cell as lived or remaining.
type CellState int

const (
	Remaining CellState = iota
	Lived
)

func (s CellState) String() string {
	if s == Lived {
		return "lived"
	}
	return "remaining"
}

// Cell is one grid unit. Cells are regenerated wholesale, never mutated.
type Cell struct {
	Index int
	State CellState
	Label string
}

// GridView describes the grid for a granularity.
type GridView struct {
	Granularity Granularity
	TotalCells  int
	LivedCells  int
}
