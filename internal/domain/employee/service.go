package employee

import (
	"context"
)

// EmployeeService defines business logic for employee records.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	ListEmployees(ctx context.Context, activeOnly bool) ([]EmployeeResponse, error)

	// DeactivateEmployee marks an employee inactive. Inactive employees keep
	// their history but can no longer punch.
	DeactivateEmployee(ctx context.Context, id string) error
}
