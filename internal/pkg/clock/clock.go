package clock

import "time"

// Clock supplies the current time. Services take a Clock instead of calling
// time.Now so that expiration sweeps and balance windows are testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns the real clock.
func System() Clock { return systemClock{} }

// Fixed is a clock pinned to a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }

// DateOf truncates t to its calendar date (midnight UTC).
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the clock's current calendar date.
func Today(c Clock) time.Time {
	return DateOf(c.Now())
}
