package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/employee"
)

type EmployeeRepository struct {
	mu        sync.RWMutex
	employees map[string]employee.Employee
}

func NewEmployeeRepository() *EmployeeRepository {
	return &EmployeeRepository{employees: make(map[string]employee.Employee)}
}

func (r *EmployeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.employees {
		if existing.Registration == emp.Registration {
			return employee.Employee{}, employee.ErrRegistrationExists
		}
	}

	r.employees[emp.ID] = emp
	return emp, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *EmployeeRepository) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var employees []employee.Employee
	for _, emp := range r.employees {
		if activeOnly && !emp.Active {
			continue
		}
		employees = append(employees, emp)
	}

	sort.Slice(employees, func(a, b int) bool {
		return employees[a].FullName < employees[b].FullName
	})

	return employees, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, emp employee.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	r.employees[emp.ID] = emp
	return nil
}
