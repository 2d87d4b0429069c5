package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/employee"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := database.GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (id, full_name, registration, position, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, full_name, registration, position, active, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.ID, newEmployee.FullName, newEmployee.Registration,
		newEmployee.Position, newEmployee.Active,
	).Scan(
		&created.ID, &created.FullName, &created.Registration,
		&created.Position, &created.Active, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrRegistrationExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := database.GetQuerier(ctx, e.db)

	query := `
		SELECT id, full_name, registration, position, active, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var emp employee.Employee
	err := q.QueryRow(ctx, query, id).Scan(
		&emp.ID, &emp.FullName, &emp.Registration,
		&emp.Position, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := database.GetQuerier(ctx, e.db)

	query := `
		SELECT id, full_name, registration, position, active, created_at, updated_at
		FROM employees
		WHERE ($1 = false OR active = true)
		ORDER BY full_name
	`

	rows, err := q.Query(ctx, query, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(
			&emp.ID, &emp.FullName, &emp.Registration,
			&emp.Position, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := database.GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET full_name = $1, registration = $2, position = $3, active = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.FullName, emp.Registration, emp.Position, emp.Active, emp.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}
