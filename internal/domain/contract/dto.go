package contract

import (
	"fmt"

	"github.com/escalator-hq/escalator-backend-go/internal/pkg/validator"
)

type CreateContractRequest struct {
	EmployeeID         string  `json:"employee_id"`
	DailyCapMinutes    int     `json:"daily_cap_minutes"`
	WeeklyCapMinutes   int     `json:"weekly_cap_minutes"`
	OvertimeCapMinutes int     `json:"overtime_cap_minutes"`
	ExpiryMonths       int     `json:"expiry_months"`
	Allow12x36         bool    `json:"allow_12x36"`
	ValidFrom          string  `json:"valid_from"`
	ValidUntil         *string `json:"valid_until"`
}

func (r *CreateContractRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.DailyCapMinutes <= 0 || r.DailyCapMinutes > MaxDailyCapMinutes {
		errs = append(errs, validator.ValidationError{
			Field:   "daily_cap_minutes",
			Message: fmt.Sprintf("daily_cap_minutes must be between 1 and %d", MaxDailyCapMinutes),
		})
	}

	if r.WeeklyCapMinutes <= 0 || r.WeeklyCapMinutes > MaxWeeklyCapMinutes {
		errs = append(errs, validator.ValidationError{
			Field:   "weekly_cap_minutes",
			Message: fmt.Sprintf("weekly_cap_minutes must be between 1 and %d", MaxWeeklyCapMinutes),
		})
	}

	if r.OvertimeCapMinutes < 0 || r.OvertimeCapMinutes > MaxOvertimeCapMinutes {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_cap_minutes",
			Message: fmt.Sprintf("overtime_cap_minutes must be between 0 and %d", MaxOvertimeCapMinutes),
		})
	}

	if r.ExpiryMonths <= 0 || r.ExpiryMonths > MaxExpiryMonths {
		errs = append(errs, validator.ValidationError{
			Field:   "expiry_months",
			Message: fmt.Sprintf("expiry_months must be between 1 and %d", MaxExpiryMonths),
		})
	}

	if _, ok := validator.IsValidDate(r.ValidFrom); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "valid_from",
			Message: "valid_from must be a date in YYYY-MM-DD format",
		})
	}

	if r.ValidUntil != nil {
		if _, ok := validator.IsValidDate(*r.ValidUntil); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "valid_until",
				Message: "valid_until must be a date in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ContractResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	DailyCapMinutes    int     `json:"daily_cap_minutes"`
	WeeklyCapMinutes   int     `json:"weekly_cap_minutes"`
	OvertimeCapMinutes int     `json:"overtime_cap_minutes"`
	ExpiryMonths       int     `json:"expiry_months"`
	Allow12x36         bool    `json:"allow_12x36"`
	ValidFrom          string  `json:"valid_from"`
	ValidUntil         *string `json:"valid_until,omitempty"`
}
