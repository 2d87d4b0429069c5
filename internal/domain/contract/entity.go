package contract

import (
	"time"
)

// Contract carries the CLT policy limits that apply to an employee during its
// validity window. An employee may hold several contracts over time; the one
// in force on a date is resolved by the contract service.
type Contract struct {
	ID                 string
	EmployeeID         string
	DailyCapMinutes    int
	WeeklyCapMinutes   int
	OvertimeCapMinutes int
	ExpiryMonths       int
	Allow12x36         bool
	ValidFrom          time.Time
	ValidUntil         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Policy ceilings enforced on write. These are business invariants, not
// storage constraints.
const (
	MaxDailyCapMinutes    = 720
	MaxWeeklyCapMinutes   = 2640
	MaxOvertimeCapMinutes = 120
	MaxExpiryMonths       = 12
)

// Defaults applied when an employee has no contract in force.
const (
	DefaultDailyCapMinutes    = 480
	DefaultOvertimeCapMinutes = 120
	DefaultExpiryMonths       = 12
)

// CoversDate reports whether the contract is in force on the given date.
func (c Contract) CoversDate(date time.Time) bool {
	if date.Before(c.ValidFrom) {
		return false
	}
	if c.ValidUntil != nil && date.After(*c.ValidUntil) {
		return false
	}
	return true
}
