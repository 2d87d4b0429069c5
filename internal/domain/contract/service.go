package contract

import (
	"context"
	"time"
)

// ContractResolver finds the contract in force for an employee on a date.
// A nil contract with a nil error means no contract covers the date.
type ContractResolver interface {
	Resolve(ctx context.Context, employeeID string, date time.Time) (*Contract, error)
}

// ContractService defines business logic for contract records.
type ContractService interface {
	CreateContract(ctx context.Context, req CreateContractRequest) (ContractResponse, error)

	ListContracts(ctx context.Context, employeeID string) ([]ContractResponse, error)

	// CurrentContract returns the contract in force on a date, or
	// ErrNoContractInForce.
	CurrentContract(ctx context.Context, employeeID string, date time.Time) (ContractResponse, error)
}
