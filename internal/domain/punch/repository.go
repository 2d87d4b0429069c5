package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for time-clock punches.
type PunchRepository interface {
	Create(ctx context.Context, punch Punch) (Punch, error)

	// GetLastForDay returns the most recent punch of an employee on a date,
	// or nil when the day has none. Callers that follow up with Create must
	// run both inside one transaction.
	GetLastForDay(ctx context.Context, employeeID string, date time.Time) (*Punch, error)

	// ListByEmployeeAndDay returns the punches of an employee on a date,
	// ordered by timestamp.
	ListByEmployeeAndDay(ctx context.Context, employeeID string, date time.Time) ([]Punch, error)
}
