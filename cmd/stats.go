package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/lifedays/internal/budget"
	"github.com/theirongolddev/lifedays/internal/cli"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Days lived, days remaining and countdown",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(_ *cobra.Command, _ []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	birth, err := rt.birthDate()
	if err != nil {
		return err
	}

	printStats(rt, birth, time.Now())
	return nil
}

func printStats(rt *env, birth, now time.Time) {
	total := rt.cfg.General.TotalDays
	stats := budget.ComputeStatistics(birth, now, total)
	target := budget.TargetDate(birth, total, rt.cfg.Location())
	cd := budget.ComputeCountdown(target, now)

	if !flagQuiet {
		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("LIFE BUDGET  %s days", cli.FormatNumber(int64(total)))))
		fmt.Println()
	}

	rows := [][]string{
		{"Born", birth.Format(budget.DateLayout)},
		{"Day " + cli.FormatNumber(int64(total)), target.Format(budget.DateLayout)},
		{"---"},
		{"Days lived", cli.FormatNumber(int64(stats.DaysLived))},
		{"Days remaining", cli.FormatNumber(int64(stats.DaysRemaining))},
		{"Consumed", cli.FormatPercent(stats.Percentage)},
		{"---"},
		{"Countdown", cli.FormatCountdown(cd)},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	if !flagQuiet {
		fmt.Println()
		fmt.Println("  " + cli.RenderProgressBar(stats.Percentage, 40))
	}
}
