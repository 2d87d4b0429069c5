package schedule

import (
	"context"
	"time"
)

// ScheduleService defines business logic for planned schedules and shift
// templates.
type ScheduleService interface {
	// CreateSchedule registers one planned day for an employee.
	CreateSchedule(ctx context.Context, req CreateScheduleRequest) (ScheduleResponse, error)

	// GetDay returns the schedule for an employee on a date, or
	// ErrScheduleNotFound.
	GetDay(ctx context.Context, employeeID string, date time.Time) (ScheduleResponse, error)

	// ListRange returns the schedules of an employee inside [from, to].
	ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]ScheduleResponse, error)

	// ApplyTemplate expands a predefined shift pattern over a date range.
	ApplyTemplate(ctx context.Context, req ApplyTemplateRequest) (TemplateResult, error)

	// ListTemplates returns the predefined shift pattern catalog.
	ListTemplates() []TemplateInfo
}
