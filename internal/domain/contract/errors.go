package contract

import "errors"

// Contract domain errors
var (
	ErrContractNotFound  = errors.New("contract not found")
	ErrNoContractInForce = errors.New("no contract in force for the given date")
)
