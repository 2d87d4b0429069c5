package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves employees, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]Employee, error)

	Update(ctx context.Context, employee Employee) error
}
