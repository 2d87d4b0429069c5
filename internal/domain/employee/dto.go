package employee

import (
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName     string `json:"full_name"`
	Registration string `json:"registration"`
	Position     string `json:"position"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Registration) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration",
			Message: "registration is required",
		})
	} else if !validator.IsValidRegistration(r.Registration) {
		errs = append(errs, validator.ValidationError{
			Field:   "registration",
			Message: "registration must be 2-20 chars of A-Z, 0-9 or -",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Registration string `json:"registration"`
	Position     string `json:"position"`
	Active       bool   `json:"active"`
}
