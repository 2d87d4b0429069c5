package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/timebank"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/database"
)

type timebankRepositoryImpl struct {
	db *database.DB
}

func NewTimebankRepository(db *database.DB) timebank.TimebankRepository {
	return &timebankRepositoryImpl{db: db}
}

const timebankColumns = `id, employee_id, reference_date, credit_minutes, debit_minutes,
	expires_at, compensated, note, created_at, updated_at`

func scanEntry(row pgx.Row) (timebank.Entry, error) {
	var e timebank.Entry
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.ReferenceDate, &e.CreditMinutes, &e.DebitMinutes,
		&e.ExpiresAt, &e.Compensated, &e.Note, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Upsert implements timebank.TimebankRepository. The conflict target makes
// the daily recompute atomic per (employee, reference date).
func (t *timebankRepositoryImpl) Upsert(ctx context.Context, entry timebank.Entry) (timebank.Entry, error) {
	q := database.GetQuerier(ctx, t.db)

	query := `
		INSERT INTO timebank_entries (
			id, employee_id, reference_date, credit_minutes, debit_minutes, expires_at, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, reference_date) DO UPDATE SET
			credit_minutes = EXCLUDED.credit_minutes,
			debit_minutes = EXCLUDED.debit_minutes,
			expires_at = EXCLUDED.expires_at,
			updated_at = NOW()
		RETURNING ` + timebankColumns

	stored, err := scanEntry(q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.ReferenceDate,
		entry.CreditMinutes, entry.DebitMinutes, entry.ExpiresAt, entry.Note,
	))
	if err != nil {
		return timebank.Entry{}, fmt.Errorf("failed to upsert timebank entry: %w", err)
	}

	return stored, nil
}

// Create implements timebank.TimebankRepository.
func (t *timebankRepositoryImpl) Create(ctx context.Context, entry timebank.Entry) (timebank.Entry, error) {
	q := database.GetQuerier(ctx, t.db)

	query := `
		INSERT INTO timebank_entries (
			id, employee_id, reference_date, credit_minutes, debit_minutes, expires_at, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + timebankColumns

	stored, err := scanEntry(q.QueryRow(ctx, query,
		entry.ID, entry.EmployeeID, entry.ReferenceDate,
		entry.CreditMinutes, entry.DebitMinutes, entry.ExpiresAt, entry.Note,
	))
	if err != nil {
		return timebank.Entry{}, fmt.Errorf("failed to create timebank entry: %w", err)
	}

	return stored, nil
}

// GetByEmployeeAndDate implements timebank.TimebankRepository.
func (t *timebankRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, referenceDate time.Time) (*timebank.Entry, error) {
	q := database.GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timebankColumns + `
		FROM timebank_entries
		WHERE employee_id = $1 AND reference_date = $2
	`

	entry, err := scanEntry(q.QueryRow(ctx, query, employeeID, referenceDate))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get timebank entry: %w", err)
	}

	return &entry, nil
}

// ListActive implements timebank.TimebankRepository.
func (t *timebankRepositoryImpl) ListActive(ctx context.Context, employeeID string) ([]timebank.Entry, error) {
	q := database.GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timebankColumns + `
		FROM timebank_entries
		WHERE employee_id = $1 AND compensated = false
		ORDER BY reference_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list timebank entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// ListExpired implements timebank.TimebankRepository.
func (t *timebankRepositoryImpl) ListExpired(ctx context.Context, asOf time.Time) ([]timebank.Entry, error) {
	q := database.GetQuerier(ctx, t.db)

	query := `
		SELECT ` + timebankColumns + `
		FROM timebank_entries
		WHERE compensated = false
			AND expires_at IS NOT NULL
			AND expires_at < $1
			AND credit_minutes > debit_minutes
		ORDER BY expires_at
	`

	rows, err := q.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list expired timebank entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// Update implements timebank.TimebankRepository.
func (t *timebankRepositoryImpl) Update(ctx context.Context, entry timebank.Entry) error {
	q := database.GetQuerier(ctx, t.db)

	query := `
		UPDATE timebank_entries
		SET credit_minutes = $1, debit_minutes = $2, expires_at = $3,
			compensated = $4, note = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		entry.CreditMinutes, entry.DebitMinutes, entry.ExpiresAt,
		entry.Compensated, entry.Note, entry.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timebank.ErrEntryNotFound
		}
		return fmt.Errorf("failed to update timebank entry: %w", err)
	}

	return nil
}

func collectEntries(rows pgx.Rows) ([]timebank.Entry, error) {
	var entries []timebank.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
