package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/lifedays/internal/session"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set DATE",
	Short: "Save your birth date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSet,
}

var forgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Delete the saved birth date",
	Args:  cobra.NoArgs,
	RunE:  runForget,
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(forgetCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	if rt.store == nil {
		return errors.New("store unavailable; use --birthdate for a one-off calculation")
	}

	out := newLinePresenter(os.Stdout, false)
	sess := session.New(session.Options{
		TotalDays:   rt.cfg.General.TotalDays,
		Granularity: rt.view,
		Location:    rt.cfg.Location(),
		Store:       rt.store,
		Presenter:   out,
		Logger:      rt.log,
	})
	defer sess.Stop()

	if err := sess.Submit(args[0]); err != nil {
		return fmt.Errorf("set birth date: %w", err)
	}
	sess.Stop()

	birth, _ := sess.BirthDate()
	if !flagQuiet {
		fmt.Printf("\n  Saved birth date %s\n", args[0])
	}
	printStats(rt, birth, time.Now())
	return nil
}

func runForget(_ *cobra.Command, _ []string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	if rt.store == nil {
		return errors.New("store unavailable")
	}
	if err := rt.store.ForgetBirthDate(); err != nil {
		return fmt.Errorf("forget birth date: %w", err)
	}
	if !flagQuiet {
		fmt.Println("  Saved birth date removed.")
	}
	return nil
}
