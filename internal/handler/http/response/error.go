package response

import (
	"errors"
	"net/http"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/employee"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/punch"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/schedule"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/setting"
	"github.com/escalator-hq/escalator-backend-go/internal/domain/timebank"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrRegistrationExists):
		Conflict(w, "Registration already exists")
	case errors.Is(err, employee.ErrEmployeeInactive):
		BadRequest(w, "Employee is inactive", nil)

	// Contract domain errors
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, contract.ErrNoContractInForce):
		NotFound(w, "No contract in force on this date")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrScheduleExists):
		Conflict(w, "A schedule already exists for this employee and date")
	case errors.Is(err, schedule.ErrUnknownTemplate):
		BadRequest(w, "Unknown shift template", nil)
	case errors.Is(err, schedule.ErrTemplateNotAuthorized):
		BadRequest(w, "Contract does not authorize this shift template", nil)
	case errors.Is(err, schedule.ErrInvalidPeriod):
		BadRequest(w, "Invalid period", nil)

	// Punch domain errors
	case errors.Is(err, punch.ErrInvalidSequence):
		Conflict(w, "Punch type not allowed after the previous punch")
	case errors.Is(err, punch.ErrPunchNotFound):
		NotFound(w, "Punch not found")

	// Timebank domain errors
	case errors.Is(err, timebank.ErrInsufficientBalance):
		BadRequest(w, "Insufficient timebank balance", nil)
	case errors.Is(err, timebank.ErrEntryNotFound):
		NotFound(w, "Timebank entry not found")
	case errors.Is(err, timebank.ErrPastCompensation):
		BadRequest(w, "Compensation date must not be in the past", nil)

	// Setting domain errors
	case errors.Is(err, setting.ErrSettingNotFound):
		NotFound(w, "Setting not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
