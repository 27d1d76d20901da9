package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/lifedays/internal/budget"
	"github.com/theirongolddev/lifedays/internal/cli"
	"github.com/theirongolddev/lifedays/internal/grid"
	"github.com/theirongolddev/lifedays/internal/model"

	"github.com/spf13/cobra"
)

var flagColumns int

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the life grid, one glyph per week or day",
	RunE:  runGrid,
}

func init() {
	gridCmd.Flags().IntVar(&flagColumns, "columns", 0, "Cells per row (default from config)")
	rootCmd.AddCommand(gridCmd)
}

func runGrid(_ *cobra.Command, _ []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	birth, err := rt.birthDate()
	if err != nil {
		return err
	}

	total := rt.cfg.General.TotalDays
	stats := budget.ComputeStatistics(birth, time.Now(), total)
	cells := grid.Build(rt.view, total, stats.DaysLived)

	columns := flagColumns
	if columns <= 0 {
		columns = rt.cfg.Appearance.WeekColumns
		if rt.view == model.Day {
			columns = rt.cfg.Appearance.DayColumns
		}
	}

	fmt.Print(cli.RenderGrid(rt.view, cells, columns))
	return nil
}
