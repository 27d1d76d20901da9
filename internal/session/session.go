// Package session holds the state of one lifedays calculation: the last
// computed days-lived value, the selected granularity and the countdown task.
// Presentation and persistence are reached only through the Presenter and
// DateStore ports.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/theirongolddev/lifedays/internal/budget"
	"github.com/theirongolddev/lifedays/internal/grid"
	"github.com/theirongolddev/lifedays/internal/model"
	"github.com/theirongolddev/lifedays/internal/schedule"
)

// TickInterval is the countdown refresh period.
const TickInterval = time.Second

// Presenter receives every recomputed value. Implementations must not call
// back into the Session from a render method.
type Presenter interface {
	RenderStatistics(model.Statistics)
	RenderCountdown(model.Countdown)
	RenderGrid(model.GridView, []model.Cell)
	Notify(msg string)
}

// DateStore persists the single birth date value.
type DateStore interface {
	LoadBirthDate() (string, bool, error)
	SaveBirthDate(date string) error
}

// CountdownState is the countdown lifecycle.
type CountdownState int

const (
	Idle CountdownState = iota
	Running
	Finished
)

func (s CountdownState) String() string {
	switch s {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "idle"
	}
}

// User-facing notifications.
const (
	MsgEmptyBirthDate   = "Please enter your birth date"
	MsgInvalidBirthDate = "Birth date must look like 1990-05-17"
	MsgSaveFailed       = "Could not save birth date; it will apply to this session only"
	MsgLoadFailed       = "Could not read the saved birth date"
)

// Options configures a Session.
type Options struct {
	TotalDays   int
	Granularity model.Granularity
	Location    *time.Location // birth dates and the target calendar; nil means UTC
	Clock       schedule.Clock // nil means the wall clock
	Store       DateStore      // optional
	Presenter   Presenter
	Logger      *zap.Logger // optional
}

// Session is safe for use from the event loop and the countdown goroutine.
type Session struct {
	totalDays int
	loc       *time.Location
	clock     schedule.Clock
	store     DateStore
	out       Presenter
	log       *zap.Logger

	mu          sync.Mutex
	granularity model.Granularity
	hasBirth    bool
	birth       time.Time
	current     model.LifeBudget
	target      time.Time
	daysLived   int
	state       CountdownState
	calcID      string
	task        *schedule.Task
}

// New creates an idle session.
func New(opts Options) *Session {
	if opts.TotalDays <= 0 {
		opts.TotalDays = model.DefaultTotalDays
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.Clock == nil {
		opts.Clock = schedule.Real()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Session{
		totalDays:   opts.TotalDays,
		loc:         opts.Location,
		clock:       opts.Clock,
		store:       opts.Store,
		out:         opts.Presenter,
		log:         opts.Logger,
		granularity: opts.Granularity,
	}
	s.task = schedule.NewTask(s.clock, TickInterval, s.tick)
	return s
}

// Restore loads the saved birth date and, if there is one, calculates from it
// without writing it back. It reports whether a date was restored.
func (s *Session) Restore() (string, bool, error) {
	if s.store == nil {
		return "", false, nil
	}
	saved, ok, err := s.store.LoadBirthDate()
	if err != nil {
		s.log.Warn("load birth date failed", zap.Error(err))
		s.out.Notify(MsgLoadFailed)
		return "", false, err
	}
	if !ok {
		return "", false, nil
	}

	birth, err := budget.ParseBirthDate(saved, s.loc)
	if err != nil {
		s.log.Warn("saved birth date invalid", zap.String("value", saved), zap.Error(err))
		s.out.Notify(MsgInvalidBirthDate)
		return saved, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calculateLocked(birth)
	return saved, true, nil
}

// Submit validates a user-entered birth date, saves it and recalculates.
// Invalid input is reported through Notify and leaves all state untouched.
func (s *Session) Submit(input string) error {
	birth, err := budget.ParseBirthDate(input, s.loc)
	if err != nil {
		if errors.Is(err, budget.ErrEmptyBirthDate) {
			s.out.Notify(MsgEmptyBirthDate)
		} else {
			s.out.Notify(MsgInvalidBirthDate)
		}
		return err
	}

	if s.store != nil {
		if err := s.store.SaveBirthDate(birth.Format(budget.DateLayout)); err != nil {
			s.log.Warn("save birth date failed", zap.Error(err))
			s.out.Notify(MsgSaveFailed)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.calculateLocked(birth)
	return nil
}

// Calculate recomputes everything from birth without persisting it.
func (s *Session) Calculate(birth time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calculateLocked(birth)
}

// SwitchView changes granularity and rebuilds the whole grid from the last
// computed days-lived value.
func (s *Session) SwitchView(g model.Granularity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.granularity = g
	s.renderGridLocked()
}

// Stop cancels the countdown. Safe to call repeatedly.
func (s *Session) Stop() {
	s.task.Stop()
}

// Granularity returns the selected view.
func (s *Session) Granularity() model.Granularity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.granularity
}

// DaysLived returns the last computed value.
func (s *Session) DaysLived() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.daysLived
}

// CountdownState returns the countdown lifecycle state.
func (s *Session) CountdownState() CountdownState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// BirthDate returns the active birth date, if any.
func (s *Session) BirthDate() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.birth, s.hasBirth
}

// Budget returns the inputs of the last calculation.
func (s *Session) Budget() (model.LifeBudget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.hasBirth
}

// TargetDate returns the budget boundary of the active calculation.
func (s *Session) TargetDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

func (s *Session) calculateLocked(birth time.Time) {
	now := s.clock.Now()
	s.current = budget.New(birth, now, s.totalDays)
	stats := budget.Statistics(s.current)

	s.hasBirth = true
	s.birth = birth
	s.daysLived = stats.DaysLived
	s.calcID = uuid.NewString()

	s.log.Info("calculated",
		zap.String("calc_id", s.calcID),
		zap.String("birth_date", birth.Format(budget.DateLayout)),
		zap.Int("days_lived", stats.DaysLived),
		zap.Int("days_remaining", stats.DaysRemaining),
		zap.Float64("percentage", stats.Percentage))

	s.out.RenderStatistics(stats)
	s.renderGridLocked()
	s.startCountdownLocked(now)
}

func (s *Session) renderGridLocked() {
	cells := grid.Build(s.granularity, s.totalDays, s.daysLived)
	s.out.RenderGrid(grid.NewView(s.granularity, s.totalDays, s.daysLived), cells)
}

// startCountdownLocked stops the previous task before anything else so two
// runs never drive the display.
func (s *Session) startCountdownLocked(now time.Time) {
	s.task.Stop()

	s.target = budget.TargetDate(s.birth, s.totalDays, s.loc)
	cd := budget.ComputeCountdown(s.target, now)
	s.out.RenderCountdown(cd)

	if cd.Finished {
		s.state = Finished
		s.log.Info("countdown finished", zap.String("calc_id", s.calcID))
		return
	}
	s.state = Running
	s.task.Start()
}

func (s *Session) tick(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Running {
		return false
	}
	cd := budget.ComputeCountdown(s.target, now)
	s.out.RenderCountdown(cd)
	if cd.Finished {
		s.state = Finished
		s.log.Info("countdown finished", zap.String("calc_id", s.calcID))
		return false
	}
	return true
}
