package contract

import (
	"context"
)

// ContractRepository defines data access methods for contracts.
type ContractRepository interface {
	Create(ctx context.Context, contract Contract) (Contract, error)

	GetByID(ctx context.Context, id string) (Contract, error)

	// ListByEmployee retrieves all contracts of an employee, newest validity
	// start first. Resolution of the contract in force happens in the service.
	ListByEmployee(ctx context.Context, employeeID string) ([]Contract, error)
}
