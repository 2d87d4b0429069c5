package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/contract"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/database"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) contract.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

// Create implements contract.ContractRepository.
func (c *contractRepositoryImpl) Create(ctx context.Context, newContract contract.Contract) (contract.Contract, error) {
	q := database.GetQuerier(ctx, c.db)

	query := `
		INSERT INTO contracts (
			id, employee_id, daily_cap_minutes, weekly_cap_minutes,
			overtime_cap_minutes, expiry_months, allow_12x36, valid_from, valid_until
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, employee_id, daily_cap_minutes, weekly_cap_minutes,
			overtime_cap_minutes, expiry_months, allow_12x36, valid_from, valid_until,
			created_at, updated_at
	`

	var created contract.Contract
	err := q.QueryRow(ctx, query,
		newContract.ID, newContract.EmployeeID, newContract.DailyCapMinutes,
		newContract.WeeklyCapMinutes, newContract.OvertimeCapMinutes,
		newContract.ExpiryMonths, newContract.Allow12x36,
		newContract.ValidFrom, newContract.ValidUntil,
	).Scan(
		&created.ID, &created.EmployeeID, &created.DailyCapMinutes,
		&created.WeeklyCapMinutes, &created.OvertimeCapMinutes,
		&created.ExpiryMonths, &created.Allow12x36, &created.ValidFrom,
		&created.ValidUntil, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return contract.Contract{}, fmt.Errorf("failed to create contract: %w", err)
	}

	return created, nil
}

// GetByID implements contract.ContractRepository.
func (c *contractRepositoryImpl) GetByID(ctx context.Context, id string) (contract.Contract, error) {
	q := database.GetQuerier(ctx, c.db)

	query := `
		SELECT id, employee_id, daily_cap_minutes, weekly_cap_minutes,
			overtime_cap_minutes, expiry_months, allow_12x36, valid_from, valid_until,
			created_at, updated_at
		FROM contracts
		WHERE id = $1
	`

	var ctr contract.Contract
	err := q.QueryRow(ctx, query, id).Scan(
		&ctr.ID, &ctr.EmployeeID, &ctr.DailyCapMinutes,
		&ctr.WeeklyCapMinutes, &ctr.OvertimeCapMinutes,
		&ctr.ExpiryMonths, &ctr.Allow12x36, &ctr.ValidFrom,
		&ctr.ValidUntil, &ctr.CreatedAt, &ctr.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return contract.Contract{}, contract.ErrContractNotFound
		}
		return contract.Contract{}, fmt.Errorf("failed to get contract: %w", err)
	}

	return ctr, nil
}

// ListByEmployee implements contract.ContractRepository.
func (c *contractRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]contract.Contract, error) {
	q := database.GetQuerier(ctx, c.db)

	query := `
		SELECT id, employee_id, daily_cap_minutes, weekly_cap_minutes,
			overtime_cap_minutes, expiry_months, allow_12x36, valid_from, valid_until,
			created_at, updated_at
		FROM contracts
		WHERE employee_id = $1
		ORDER BY valid_from
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []contract.Contract
	for rows.Next() {
		var ctr contract.Contract
		err := rows.Scan(
			&ctr.ID, &ctr.EmployeeID, &ctr.DailyCapMinutes,
			&ctr.WeeklyCapMinutes, &ctr.OvertimeCapMinutes,
			&ctr.ExpiryMonths, &ctr.Allow12x36, &ctr.ValidFrom,
			&ctr.ValidUntil, &ctr.CreatedAt, &ctr.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, ctr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return contracts, nil
}
