package employee

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/employee"
)

type employeeService struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &employeeService{employeeRepo: employeeRepo}
}

func (s *employeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Registration: req.Registration,
		Position:     req.Position,
		Active:       true,
	}

	stored, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(stored), nil
}

func (s *employeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(emp), nil
}

func (s *employeeService) ListEmployees(ctx context.Context, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return responses, nil
}

func (s *employeeService) DeactivateEmployee(ctx context.Context, id string) error {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	emp.Active = false

	return s.employeeRepo.Update(ctx, emp)
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:           e.ID,
		FullName:     e.FullName,
		Registration: e.Registration,
		Position:     e.Position,
		Active:       e.Active,
	}
}
