package punch

import (
	"time"

	"github.com/escalator-hq/escalator-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

type RegisterPunchRequest struct {
	EmployeeID string   `json:"employee_id"`
	Type       string   `json:"type"`
	Timestamp  string   `json:"timestamp"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
	Note       string   `json:"note"`

	// Parsed from Timestamp during Validate.
	ParsedTimestamp time.Time `json:"-"`
}

func (r *RegisterPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if !ValidType(r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: entry, exit, break_start, break_end",
		})
	}

	ts, ok := validator.IsValidDateTime(r.Timestamp)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "timestamp",
			Message: "timestamp must be an ISO8601 datetime",
		})
	}
	r.ParsedTimestamp = ts.UTC()

	if r.Latitude != nil && (*r.Latitude < -90 || *r.Latitude > 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && (*r.Longitude < -180 || *r.Longitude > 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// RegisterPunchResponse reports the stored punch plus any advisory alerts.
// Alerts never block registration; they only clear the validated flag so the
// punch is queued for human review.
type RegisterPunchResponse struct {
	PunchID   string   `json:"punch_id"`
	Validated bool     `json:"validated"`
	Alerts    []string `json:"alerts"`
}

type PunchResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Type       string   `json:"type"`
	Timestamp  string   `json:"timestamp"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
	Validated  bool     `json:"validated"`
	Note       string   `json:"note,omitempty"`
}

// DayOverviewResponse combines the raw punches of one day with the journey
// computed from them.
type DayOverviewResponse struct {
	Date         string          `json:"date"`
	Punches      []PunchResponse `json:"punches"`
	TotalPunches int             `json:"total_punches"`
	Journey      DayJourney      `json:"journey"`
}

// DayJourney is the minute breakdown of one worked day. NightMinutes is
// already converted to legal night minutes (52.5-minute hours); the raw
// clock minutes spent inside the night window are kept alongside.
type DayJourney struct {
	NormalMinutes      int `json:"normal_minutes"`
	OvertimeMinutes    int `json:"overtime_minutes"`
	NightMinutes       int `json:"night_minutes"`
	NightClockMinutes  int `json:"night_clock_minutes"`
	TotalWorkedMinutes int `json:"total_worked_minutes"`
	BreakMinutes       int `json:"break_minutes"`
}
