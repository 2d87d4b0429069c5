package schedule

import (
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/validator"
)

// ========================================
// SCHEDULE DTOs
// ========================================

type CreateScheduleRequest struct {
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	RestDay      bool    `json:"rest_day"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	BreakMinutes int     `json:"break_minutes"`
	ShiftType    string  `json:"shift_type"`
}

func (r *CreateScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.ShiftType != "" && !ValidShiftType(r.ShiftType) {
		errs = append(errs, validator.ValidationError{
			Field:   "shift_type",
			Message: "shift_type must be one of: normal, 12x36, night, overtime",
		})
	}

	if !r.RestDay {
		if r.StartTime == nil || r.EndTime == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time and end_time are required on work days",
			})
		} else {
			if _, ok := validator.IsValidClockTime(*r.StartTime); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "start_time",
					Message: "start_time must be in HH:MM format",
				})
			}
			if _, ok := validator.IsValidClockTime(*r.EndTime); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "end_time",
					Message: "end_time must be in HH:MM format",
				})
			}
		}

		if r.BreakMinutes < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "break_minutes",
				Message: "break_minutes must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ScheduleResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	Date            string  `json:"date"`
	RestDay         bool    `json:"rest_day"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	BreakMinutes    int     `json:"break_minutes"`
	ShiftType       string  `json:"shift_type"`
	DurationMinutes int     `json:"duration_minutes"`
}

// ========================================
// TEMPLATE DTOs
// ========================================

type ApplyTemplateRequest struct {
	EmployeeID string `json:"employee_id"`
	Template   string `json:"template"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

func (r *ApplyTemplateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Template) {
		errs = append(errs, validator.ValidationError{
			Field:   "template",
			Message: "template is required",
		})
	}

	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TemplateResult struct {
	Template         string `json:"template"`
	SchedulesCreated int    `json:"schedules_created"`
	Period           string `json:"period"`
}

// TemplateInfo describes one predefined shift pattern from the catalog.
type TemplateInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	WorkHours   int    `json:"work_hours"`
	RestHours   int    `json:"rest_hours"`
	Legal       bool   `json:"legal"`
	Notes       string `json:"notes,omitempty"`
}

// ========================================
// VALIDATION DTOs
// ========================================

// DayValidation bundles the per-day rule checks for one schedule.
type DayValidation struct {
	Date         string  `json:"date"`
	DailyJourney Verdict `json:"daily_journey"`
	Break        Verdict `json:"break"`
	RestGap      Verdict `json:"rest_gap"`
	Shift12x36   Verdict `json:"shift_12x36"`
}

// WeekValidation is the full verdict for a 7-day window.
type WeekValidation struct {
	WeekStart     string          `json:"week_start"`
	Days          []DayValidation `json:"days"`
	WeeklyJourney Verdict         `json:"weekly_journey"`
	WeeklyRest    Verdict         `json:"weekly_rest"`
	Valid         bool            `json:"valid"`
}
