package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrRegistrationExists = errors.New("registration number already exists")
	ErrEmployeeInactive   = errors.New("employee is inactive")
)
