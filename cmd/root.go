package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/theirongolddev/lifedays/internal/budget"
	"github.com/theirongolddev/lifedays/internal/config"
	"github.com/theirongolddev/lifedays/internal/grid"
	"github.com/theirongolddev/lifedays/internal/logging"
	"github.com/theirongolddev/lifedays/internal/model"
	"github.com/theirongolddev/lifedays/internal/session"
	"github.com/theirongolddev/lifedays/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagBirthDate string
	flagView      string
	flagDBPath    string
	flagQuiet     bool
	flagVerbose   bool
)

// errNoBirthDate is returned by commands that need a date when none is known.
var errNoBirthDate = errors.New("no birth date: pass --birthdate or run `lifedays set YYYY-MM-DD`")

var rootCmd = &cobra.Command{
	Use:          "lifedays",
	Short:        "Your life as a budget of 30,000 days",
	Long:         "Track days lived and remaining against a fixed budget, as a live dashboard or plain text.",
	RunE:         runTUI,
	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagBirthDate, "birthdate", "b", "", "Birth date (YYYY-MM-DD), not saved")
	rootCmd.PersistentFlags().StringVarP(&flagView, "view", "v", "", "Grid view: week or day")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "SQLite store path")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress warnings and decoration")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Debug-level logging")
}

// env is the shared state every command starts from.
type env struct {
	cfg   config.Config
	log   *zap.Logger
	store *store.Store
	view  model.Granularity
}

// setup loads config, logger and store. Store and logger failures degrade
// to warnings; a broken config file or bad flag is an error.
func setup() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", config.Path(), err)
	}

	logger, err := logging.New(cfg.LogPath(), cfg.Logging.Level, flagVerbose)
	if err != nil {
		warnf("logging disabled: %v", err)
		logger = zap.NewNop()
	}

	viewName := cfg.General.DefaultView
	if flagView != "" {
		viewName = flagView
	}
	view, err := grid.ParseGranularity(viewName)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	cfg.General.DefaultView = view.String()

	rt := &env{cfg: cfg, log: logger, view: view}

	dbPath := flagDBPath
	if dbPath == "" {
		dbPath = cfg.DBPath(store.DefaultPath())
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logger.Warn("store unavailable", zap.String("path", dbPath), zap.Error(err))
		warnf("saved birth date unavailable: %v", err)
	} else {
		rt.store = st
	}

	return rt, nil
}

func (rt *env) close() {
	if rt.store != nil {
		_ = rt.store.Close()
	}
	_ = rt.log.Sync()
}

// dateStore returns the store behind the session port, or a true nil.
func (rt *env) dateStore() session.DateStore {
	if rt.store == nil {
		return nil
	}
	return rt.store
}

// override returns a birth date given by flag or environment.
func override() string {
	if flagBirthDate != "" {
		return flagBirthDate
	}
	return strings.TrimSpace(config.BirthDateOverride())
}

// birthDate resolves flag, then environment, then the saved value.
func (rt *env) birthDate() (time.Time, error) {
	input := override()
	if input == "" && rt.store != nil {
		saved, ok, err := rt.store.LoadBirthDate()
		if err != nil {
			return time.Time{}, fmt.Errorf("load birth date: %w", err)
		}
		if ok {
			input = saved
		}
	}
	if input == "" {
		return time.Time{}, errNoBirthDate
	}
	return budget.ParseBirthDate(input, rt.cfg.Location())
}

func warnf(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}
