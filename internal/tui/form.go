package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/lifedays/internal/budget"
	"github.com/theirongolddev/lifedays/internal/cli"

	"github.com/charmbracelet/huh"
)

// dateFormValues is shared by pointer so App copies see the same input.
type dateFormValues struct {
	Date string
}

func newDateForm(vals *dateFormValues, loc *time.Location, totalDays int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("When were you born?").
				Description(fmt.Sprintf("Your life is measured against a budget of %s days.", cli.FormatNumber(int64(totalDays)))).
				Placeholder("1990-05-17").
				CharLimit(10).
				Value(&vals.Date).
				Validate(func(s string) error {
					_, err := budget.ParseBirthDate(s, loc)
					switch {
					case errors.Is(err, budget.ErrEmptyBirthDate):
						return errors.New("please enter your birth date")
					case err != nil:
						return errors.New("use the format YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}
