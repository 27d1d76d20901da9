// Package budget computes life budget statistics and the countdown to the
// budget boundary.
package budget

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/theirongolddev/lifedays/internal/model"
)

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// DateLayout is the accepted birth date format.
const DateLayout = "2006-01-02"

var (
	// ErrEmptyBirthDate is returned when no birth date was entered.
	ErrEmptyBirthDate = errors.New("birth date is empty")
	// ErrInvalidBirthDate is returned for input that is not a YYYY-MM-DD calendar date.
	ErrInvalidBirthDate = errors.New("birth date must be a valid YYYY-MM-DD date")
)

// ParseBirthDate validates user input and returns midnight of that date in loc.
// A nil loc means UTC.
func ParseBirthDate(input string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, ErrEmptyBirthDate
	}
	if loc == nil {
		loc = time.UTC
	}
	d, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalidBirthDate, s, err)
	}
	return d, nil
}

// New creates the budget for one calculation.
func New(birth, now time.Time, totalDays int) model.LifeBudget {
	return model.LifeBudget{
		TotalDays:    totalDays,
		BirthDate:    birth,
		ReferenceNow: now,
	}
}

// ComputeStatistics derives days lived, days remaining and the consumed share.
// Any difference is accepted; a future birth date gives negative values.
// Differences are taken in Unix milliseconds since time.Duration saturates
// after about 292 years.
func ComputeStatistics(birth, now time.Time, totalDays int) model.Statistics {
	lived := int(floorDiv(now.UnixMilli()-birth.UnixMilli(), msPerDay))
	return model.Statistics{
		DaysLived:     lived,
		DaysRemaining: totalDays - lived,
		Percentage:    roundTo2(float64(lived) / float64(totalDays) * 100),
	}
}

// Statistics is ComputeStatistics applied to b.
func Statistics(b model.LifeBudget) model.Statistics {
	return ComputeStatistics(b.BirthDate, b.ReferenceNow, b.TotalDays)
}

// TargetDate returns the boundary date, birth plus totalDays calendar days in
// loc. Calendar addition keeps the wall-clock time across DST shifts.
func TargetDate(birth time.Time, totalDays int, loc *time.Location) time.Time {
	if loc == nil {
		loc = birth.Location()
	}
	return birth.In(loc).AddDate(0, 0, totalDays)
}

// ComputeCountdown breaks the time left until target into whole units.
// Once target is not after now the finished value is returned.
func ComputeCountdown(target, now time.Time) model.Countdown {
	diff := target.UnixMilli() - now.UnixMilli()
	if diff <= 0 {
		return model.Countdown{Finished: true}
	}
	return model.Countdown{
		Days:    diff / msPerDay,
		Hours:   diff % msPerDay / msPerHour,
		Minutes: diff % msPerHour / msPerMinute,
		Seconds: diff % msPerMinute / msPerSecond,
	}
}

// Milliseconds returns the duration a countdown represents, truncated to
// whole seconds.
func Milliseconds(c model.Countdown) int64 {
	return c.Days*msPerDay + c.Hours*msPerHour + c.Minutes*msPerMinute + c.Seconds*msPerSecond
}

// FormatPercentage renders a percentage with two decimals, e.g. "0.02%".
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}

func roundTo2(f float64) float64 {
	return math.Round(f*100) / 100
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
