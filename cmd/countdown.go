package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/theirongolddev/lifedays/internal/session"

	"github.com/spf13/cobra"
)

var countdownCmd = &cobra.Command{
	Use:   "countdown",
	Short: "Live countdown to the last day of the budget",
	RunE:  runCountdown,
}

func init() {
	rootCmd.AddCommand(countdownCmd)
}

func runCountdown(_ *cobra.Command, _ []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	birth, err := rt.birthDate()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := newLinePresenter(os.Stdout, true)
	sess := session.New(session.Options{
		TotalDays:   rt.cfg.General.TotalDays,
		Granularity: rt.view,
		Location:    rt.cfg.Location(),
		Presenter:   out,
		Logger:      rt.log,
	})
	defer sess.Stop()

	sess.Calculate(birth)

	select {
	case <-ctx.Done():
	case <-out.Finished():
	}
	sess.Stop()
	fmt.Println()
	return nil
}
