package cmd

import (
	"fmt"

	"github.com/theirongolddev/lifedays/internal/session"
	"github.com/theirongolddev/lifedays/internal/tui"
	"github.com/theirongolddev/lifedays/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive dashboard (default)",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	theme.SetActive(rt.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	lipgloss.SetColorProfile(termenv.TrueColor)

	presenter := tui.NewPresenter()
	sess := session.New(session.Options{
		TotalDays:   rt.cfg.General.TotalDays,
		Granularity: rt.view,
		Location:    rt.cfg.Location(),
		Store:       rt.dateStore(),
		Presenter:   presenter,
		Logger:      rt.log,
	})

	app := tui.NewApp(tui.Options{
		Session:   sess,
		Config:    rt.cfg,
		Logger:    rt.log,
		BirthDate: override(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())
	presenter.Attach(p.Send)

	_, err = p.Run()
	// Send returns immediately once the program has exited
	sess.Stop()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
