package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/punch"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/database"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

// Create implements punch.PunchRepository.
func (p *punchRepositoryImpl) Create(ctx context.Context, newPunch punch.Punch) (punch.Punch, error) {
	q := database.GetQuerier(ctx, p.db)

	query := `
		INSERT INTO punches (
			id, employee_id, schedule_id, timestamp, type, latitude, longitude, validated, note
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, employee_id, schedule_id, timestamp, type, latitude, longitude,
			validated, note, created_at
	`

	var created punch.Punch
	err := q.QueryRow(ctx, query,
		newPunch.ID, newPunch.EmployeeID, newPunch.ScheduleID, newPunch.Timestamp,
		newPunch.Type, newPunch.Latitude, newPunch.Longitude, newPunch.Validated,
		newPunch.Note,
	).Scan(
		&created.ID, &created.EmployeeID, &created.ScheduleID, &created.Timestamp,
		&created.Type, &created.Latitude, &created.Longitude, &created.Validated,
		&created.Note, &created.CreatedAt,
	)
	if err != nil {
		return punch.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return created, nil
}

// GetLastForDay implements punch.PunchRepository.
func (p *punchRepositoryImpl) GetLastForDay(ctx context.Context, employeeID string, date time.Time) (*punch.Punch, error) {
	q := database.GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, schedule_id, timestamp, type, latitude, longitude,
			validated, note, created_at
		FROM punches
		WHERE employee_id = $1 AND timestamp >= $2 AND timestamp < $2 + INTERVAL '1 day'
		ORDER BY timestamp DESC
		LIMIT 1
	`

	var last punch.Punch
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&last.ID, &last.EmployeeID, &last.ScheduleID, &last.Timestamp,
		&last.Type, &last.Latitude, &last.Longitude, &last.Validated,
		&last.Note, &last.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last punch: %w", err)
	}

	return &last, nil
}

// ListByEmployeeAndDay implements punch.PunchRepository.
func (p *punchRepositoryImpl) ListByEmployeeAndDay(ctx context.Context, employeeID string, date time.Time) ([]punch.Punch, error) {
	q := database.GetQuerier(ctx, p.db)

	query := `
		SELECT id, employee_id, schedule_id, timestamp, type, latitude, longitude,
			validated, note, created_at
		FROM punches
		WHERE employee_id = $1 AND timestamp >= $2 AND timestamp < $2 + INTERVAL '1 day'
		ORDER BY timestamp
	`

	rows, err := q.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []punch.Punch
	for rows.Next() {
		var pc punch.Punch
		err := rows.Scan(
			&pc.ID, &pc.EmployeeID, &pc.ScheduleID, &pc.Timestamp,
			&pc.Type, &pc.Latitude, &pc.Longitude, &pc.Validated,
			&pc.Note, &pc.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		punches = append(punches, pc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return punches, nil
}
