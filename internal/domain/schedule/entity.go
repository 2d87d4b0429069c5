package schedule

import (
	"time"
)

// Shift types
const (
	ShiftNormal   = "normal"
	Shift12x36    = "12x36"
	ShiftNight    = "night"
	ShiftOvertime = "overtime"
)

// Schedule is one planned day for one employee: either a rest day, or a work
// day with clock times and a planned break. Unique per (employee, date).
type Schedule struct {
	ID           string
	EmployeeID   string
	Date         time.Time
	RestDay      bool
	StartTime    *time.Time
	EndTime      *time.Time
	BreakMinutes int
	ShiftType    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DurationMinutes returns the planned journey length. A shift that ends on or
// before its start time is assumed to cross midnight. Rest days have zero
// duration.
func (s Schedule) DurationMinutes() int {
	if s.RestDay || s.StartTime == nil || s.EndTime == nil {
		return 0
	}

	minutes := MinuteOfDay(*s.EndTime) - MinuteOfDay(*s.StartTime)
	if minutes <= 0 {
		minutes += 24 * 60
	}

	return minutes - s.BreakMinutes
}

// MinuteOfDay returns the clock time of t as minutes since midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// ClockTime builds a date-less clock time, for schedule start/end values.
func ClockTime(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

// ValidShiftType reports whether v is one of the known shift type tags.
func ValidShiftType(v string) bool {
	switch v {
	case ShiftNormal, Shift12x36, ShiftNight, ShiftOvertime:
		return true
	}
	return false
}
