package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
)

// Resolver finds the contract in force for an employee on a date. When
// validity windows overlap, the contract with the most recent start wins.
type Resolver struct {
	contract.ContractRepository
}

func NewResolver(contractRepo contract.ContractRepository) *Resolver {
	return &Resolver{ContractRepository: contractRepo}
}

// Resolve returns nil when the employee has no contract covering the date.
// Absence is not an error; callers decide whether it is fatal.
func (r *Resolver) Resolve(ctx context.Context, employeeID string, date time.Time) (*contract.Contract, error) {
	contracts, err := r.ContractRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}

	var current *contract.Contract
	for i := range contracts {
		c := contracts[i]
		if !c.CoversDate(date) {
			continue
		}
		if current == nil || c.ValidFrom.After(current.ValidFrom) {
			current = &c
		}
	}

	return current, nil
}
