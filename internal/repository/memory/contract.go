package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
)

type ContractRepository struct {
	mu        sync.RWMutex
	contracts map[string]contract.Contract
}

func NewContractRepository() *ContractRepository {
	return &ContractRepository{contracts: make(map[string]contract.Contract)}
}

func (r *ContractRepository) Create(ctx context.Context, ctr contract.Contract) (contract.Contract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contracts[ctr.ID] = ctr
	return ctr, nil
}

func (r *ContractRepository) GetByID(ctx context.Context, id string) (contract.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctr, ok := r.contracts[id]
	if !ok {
		return contract.Contract{}, contract.ErrContractNotFound
	}
	return ctr, nil
}

func (r *ContractRepository) ListByEmployee(ctx context.Context, employeeID string) ([]contract.Contract, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var contracts []contract.Contract
	for _, ctr := range r.contracts {
		if ctr.EmployeeID == employeeID {
			contracts = append(contracts, ctr)
		}
	}

	sort.Slice(contracts, func(a, b int) bool {
		return contracts[a].ValidFrom.Before(contracts[b].ValidFrom)
	})

	return contracts, nil
}
