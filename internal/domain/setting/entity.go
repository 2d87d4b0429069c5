package setting

import (
	"time"
)

// Setting is a single key/value system parameter. Values are stored as
// strings and parsed by typed accessors; they are written once at setup and
// treated as read-only by the rule engine.
type Setting struct {
	Key         string
	Value       string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Known configuration keys.
const (
	KeyNightPeriodStart  = "night_period_start"
	KeyNightPeriodEnd    = "night_period_end"
	KeyNightHourMinutes  = "night_hour_minutes"
	KeyMinRestGapMinutes = "min_rest_gap_minutes"
	KeyExpiryMonths      = "timebank_expiry_months"
)

// Defaults returns the seed settings applied at initial setup, mirroring the
// CLT defaults: urban night period 22:00-05:00, 52.5-minute night hour,
// 11-hour rest gap, 12-month timebank window.
func Defaults() []Setting {
	return []Setting{
		{Key: KeyNightPeriodStart, Value: "22:00", Description: "Start of the night period"},
		{Key: KeyNightPeriodEnd, Value: "05:00", Description: "End of the night period"},
		{Key: KeyNightHourMinutes, Value: "52.5", Description: "Length of the legal night hour in clock minutes"},
		{Key: KeyMinRestGapMinutes, Value: "660", Description: "Minimum rest between two shifts in minutes (11 hours)"},
		{Key: KeyExpiryMonths, Value: "12", Description: "Months before banked hours expire"},
	}
}
