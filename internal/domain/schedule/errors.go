package schedule

import "errors"

// Schedule domain errors
var (
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrScheduleExists        = errors.New("a schedule already exists for this employee and date")
	ErrUnknownTemplate       = errors.New("unknown shift template")
	ErrTemplateNotAuthorized = errors.New("contract does not authorize the 12x36 shift")
	ErrInvalidPeriod         = errors.New("end date must not be before start date")
)
