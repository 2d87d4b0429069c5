package punch

import (
	"context"
	"time"
)

// PunchService defines business logic for time-clock punches.
type PunchService interface {
	// Register validates and stores one punch. A sequence violation is fatal;
	// schedule mismatches only produce alerts.
	Register(ctx context.Context, req RegisterPunchRequest) (RegisterPunchResponse, error)

	// DayOverview returns the punches of a day together with the computed
	// journey.
	DayOverview(ctx context.Context, employeeID string, date time.Time) (DayOverviewResponse, error)
}
