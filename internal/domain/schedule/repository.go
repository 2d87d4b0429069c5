package schedule

import (
	"context"
	"time"
)

// ScheduleRepository defines data access methods for planned schedules.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule Schedule) (Schedule, error)

	// GetByEmployeeAndDate returns nil when no schedule exists for the pair.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Schedule, error)

	// ListByEmployeeAndRange returns schedules with date in [from, to],
	// ordered by date.
	ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Schedule, error)

	Delete(ctx context.Context, id string) error
}
