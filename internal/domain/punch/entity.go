package punch

import (
	"time"
)

// Punch types
const (
	TypeEntry      = "entry"
	TypeExit       = "exit"
	TypeBreakStart = "break_start"
	TypeBreakEnd   = "break_end"
)

// Punch is one time-clock event. Punches are append-only and created through
// the punch service, which enforces the per-day type sequence.
type Punch struct {
	ID         string
	EmployeeID string
	ScheduleID *string
	Timestamp  time.Time
	Type       string
	Latitude   *float64
	Longitude  *float64
	Validated  bool
	Note       string
	CreatedAt  time.Time
}

// allowedSuccessors is the punch-type state machine: each type maps to the
// types that may follow it within the same day.
var allowedSuccessors = map[string][]string{
	TypeEntry:      {TypeExit, TypeBreakStart},
	TypeExit:       {TypeEntry},
	TypeBreakStart: {TypeBreakEnd},
	TypeBreakEnd:   {TypeExit, TypeBreakStart},
}

// CanFollow reports whether a punch of type next may follow one of type prev.
func CanFollow(prev, next string) bool {
	for _, t := range allowedSuccessors[prev] {
		if t == next {
			return true
		}
	}
	return false
}

// ValidType reports whether v is one of the known punch types.
func ValidType(v string) bool {
	switch v {
	case TypeEntry, TypeExit, TypeBreakStart, TypeBreakEnd:
		return true
	}
	return false
}
