package punch

import "errors"

// Punch domain errors
var (
	ErrInvalidSequence = errors.New("invalid punch sequence")
	ErrPunchNotFound   = errors.New("punch not found")
)
