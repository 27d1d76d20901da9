package budget

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/theirongolddev/lifedays/internal/model"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func TestComputeStatistics_OneWeek(t *testing.T) {
	birth := mustDate(t, "2000-01-01")
	now := mustDate(t, "2000-01-08")

	st := ComputeStatistics(birth, now, model.DefaultTotalDays)
	if st.DaysLived != 7 {
		t.Fatalf("DaysLived = %d, want 7", st.DaysLived)
	}
	if st.DaysRemaining != 29993 {
		t.Fatalf("DaysRemaining = %d, want 29993", st.DaysRemaining)
	}
	if got := FormatPercentage(st.Percentage); got != "0.02%" {
		t.Fatalf("percentage = %q, want 0.02%%", got)
	}
}

func TestComputeStatistics_FloorsPartialDays(t *testing.T) {
	birth := mustDate(t, "2000-01-01")
	now := birth.Add(3*24*time.Hour - time.Millisecond)

	st := ComputeStatistics(birth, now, model.DefaultTotalDays)
	if st.DaysLived != 2 {
		t.Fatalf("DaysLived = %d, want 2", st.DaysLived)
	}
}

func TestComputeStatistics_MatchesFormula(t *testing.T) {
	birth := mustDate(t, "1970-06-15")
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		now := birth.Add(time.Duration(r.Int63n(int64(40000 * 24 * time.Hour))))
		st := ComputeStatistics(birth, now, model.DefaultTotalDays)

		want := int(now.Sub(birth).Milliseconds() / 86400000)
		if st.DaysLived != want {
			t.Fatalf("now=%s DaysLived = %d, want %d", now, st.DaysLived, want)
		}
		if st.DaysLived < 0 {
			t.Fatalf("now=%s DaysLived = %d, want non-negative", now, st.DaysLived)
		}
		if st.DaysRemaining != model.DefaultTotalDays-st.DaysLived {
			t.Fatalf("DaysRemaining = %d, want %d", st.DaysRemaining, model.DefaultTotalDays-st.DaysLived)
		}
	}
}

func TestComputeStatistics_FutureBirthDate(t *testing.T) {
	birth := mustDate(t, "2030-01-02")
	now := mustDate(t, "2030-01-01").Add(12 * time.Hour)

	st := ComputeStatistics(birth, now, model.DefaultTotalDays)
	if st.DaysLived != -1 {
		t.Fatalf("DaysLived = %d, want -1 (floor of -0.5)", st.DaysLived)
	}
	if st.DaysRemaining != 30001 {
		t.Fatalf("DaysRemaining = %d, want 30001", st.DaysRemaining)
	}
	if st.Percentage > 0 {
		t.Fatalf("Percentage = %.2f, want <= 0", st.Percentage)
	}
}

func TestBudgetExhausted(t *testing.T) {
	birth := mustDate(t, "1900-01-01")
	target := TargetDate(birth, model.DefaultTotalDays, time.UTC)

	st := ComputeStatistics(birth, target, model.DefaultTotalDays)
	if st.DaysLived != 30000 {
		t.Fatalf("DaysLived = %d, want 30000", st.DaysLived)
	}
	if st.DaysRemaining != 0 {
		t.Fatalf("DaysRemaining = %d, want 0", st.DaysRemaining)
	}
	if got := FormatPercentage(st.Percentage); got != "100.00%" {
		t.Fatalf("percentage = %q, want 100.00%%", got)
	}

	cd := ComputeCountdown(target, target)
	if !cd.Finished {
		t.Fatal("countdown at target should be finished")
	}
	if cd != (model.Countdown{Finished: true}) {
		t.Fatalf("finished countdown = %+v, want all zeros", cd)
	}
}

func TestComputeCountdown_Decomposition(t *testing.T) {
	now := mustDate(t, "2020-02-29")
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		diff := r.Int63n(int64(30000*24*time.Hour)/1e6) + 1 // milliseconds
		target := now.Add(time.Duration(diff) * time.Millisecond)

		cd := ComputeCountdown(target, now)
		if cd.Finished {
			t.Fatalf("diff=%dms reported finished", diff)
		}
		sum := Milliseconds(cd)
		if sum > diff || diff >= sum+1000 {
			t.Fatalf("diff=%dms decomposed to %+v (sum %d)", diff, cd, sum)
		}
		if cd.Hours > 23 || cd.Minutes > 59 || cd.Seconds > 59 {
			t.Fatalf("diff=%dms out of range components %+v", diff, cd)
		}
	}
}

func TestComputeCountdown_Exact(t *testing.T) {
	now := mustDate(t, "2020-01-01")
	target := now.Add(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 999*time.Millisecond)

	got := ComputeCountdown(target, now)
	want := model.Countdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}
	if got != want {
		t.Fatalf("countdown = %+v, want %+v", got, want)
	}
}

func TestComputeCountdown_PastTarget(t *testing.T) {
	now := mustDate(t, "2020-01-02")
	if cd := ComputeCountdown(mustDate(t, "2020-01-01"), now); !cd.Finished {
		t.Fatalf("past target countdown = %+v, want finished", cd)
	}
}

func TestTargetDate_CalendarDaysAcrossDST(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	birth := time.Date(2024, time.March, 9, 0, 0, 0, 0, ny)

	target := TargetDate(birth, 2, ny)
	if target.Hour() != 0 || target.Day() != 11 {
		t.Fatalf("target = %s, want 2024-03-11 00:00 local", target)
	}
	if got := target.Sub(birth); got != 47*time.Hour {
		t.Fatalf("elapsed = %s, want 47h (spring forward)", got)
	}
}

func TestParseBirthDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr error
	}{
		{"1990-05-17", nil},
		{"  1990-05-17\n", nil},
		{"", ErrEmptyBirthDate},
		{"   ", ErrEmptyBirthDate},
		{"17/05/1990", ErrInvalidBirthDate},
		{"1990-02-30", ErrInvalidBirthDate},
		{"yesterday", ErrInvalidBirthDate},
	}
	for _, tt := range tests {
		d, err := ParseBirthDate(tt.in, nil)
		if !errors.Is(err, tt.wantErr) {
			t.Fatalf("ParseBirthDate(%q) err = %v, want %v", tt.in, err, tt.wantErr)
		}
		if tt.wantErr == nil && d.Format(DateLayout) != "1990-05-17" {
			t.Fatalf("ParseBirthDate(%q) = %s", tt.in, d)
		}
	}
}

func TestParseBirthDate_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	d, err := ParseBirthDate("2000-01-01", loc)
	if err != nil {
		t.Fatalf("ParseBirthDate: %v", err)
	}
	if d.Location() != loc || d.Hour() != 0 {
		t.Fatalf("date = %s, want local midnight in %s", d, loc)
	}
}

func TestStatisticsFromBudget(t *testing.T) {
	b := New(mustDate(t, "2000-01-01"), mustDate(t, "2000-01-08"), 700)
	st := Statistics(b)
	if st.DaysRemaining != 693 || st.Percentage != 1 {
		t.Fatalf("stats = %+v, want 693 remaining at 1%%", st)
	}
}

func TestComputeStatistics_CenturiesApart(t *testing.T) {
	now := mustDate(t, "2026-10-14")
	tests := []struct {
		birth string
		want  int
	}{
		{"1700-01-01", 119355},
		{"0001-01-01", 739902},
		{"2400-01-01", -136314},
	}
	for _, tt := range tests {
		st := ComputeStatistics(mustDate(t, tt.birth), now, model.DefaultTotalDays)
		if st.DaysLived != tt.want {
			t.Fatalf("born %s: DaysLived = %d, want %d", tt.birth, st.DaysLived, tt.want)
		}
		if st.DaysRemaining != model.DefaultTotalDays-tt.want {
			t.Fatalf("born %s: DaysRemaining = %d, want %d", tt.birth, st.DaysRemaining, model.DefaultTotalDays-tt.want)
		}
	}
}

func TestComputeCountdown_CenturiesAhead(t *testing.T) {
	now := mustDate(t, "2026-10-14")
	target := TargetDate(mustDate(t, "9000-01-01"), model.DefaultTotalDays, time.UTC)
	cd := ComputeCountdown(target, now)
	if cd.Finished || cd.Days != 2576915 {
		t.Fatalf("countdown = %+v, want 2576915 days", cd)
	}
	if cd.Hours != 0 || cd.Minutes != 0 || cd.Seconds != 0 {
		t.Fatalf("countdown = %+v, want whole days", cd)
	}

	past := TargetDate(mustDate(t, "1700-01-01"), model.DefaultTotalDays, time.UTC)
	if cd := ComputeCountdown(past, now); !cd.Finished {
		t.Fatalf("countdown to %s = %+v, want finished", past, cd)
	}
}
