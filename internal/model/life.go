// Package model defines domain types for the lifedays budget and grid.
package model

import "time"

// DefaultTotalDays is the size of the life budget.
const DefaultTotalDays = 30000

// LifeBudget is created on each calculation and lives for the session.
type LifeBudget struct {
	TotalDays    int
	BirthDate    time.Time
	ReferenceNow time.Time
}

// Statistics holds the derived counters for one calculation.
type Statistics struct {
	DaysLived     int
	DaysRemaining int     // negative once the budget is exceeded
	Percentage    float64 // rounded to 2 decimals
}

// Countdown is the time left until the budget boundary.
// The finished value is all zeros with Finished set.
type Countdown struct {
	Days     int64
	Hours    int64
	Minutes  int64
	Seconds  int64
	Finished bool
}
