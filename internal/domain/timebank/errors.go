package timebank

import "errors"

// Timebank domain errors
var (
	ErrInsufficientBalance = errors.New("insufficient timebank balance")
	ErrEntryNotFound       = errors.New("timebank entry not found")
	ErrPastCompensation    = errors.New("compensation date must not be in the past")
)
