package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/schedule"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// clockColumn converts a date-less clock time to a TIME column value.
func clockColumn(t *time.Time) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	micros := int64(schedule.MinuteOfDay(*t)) * 60 * 1e6
	return pgtype.Time{Microseconds: micros, Valid: true}
}

// clockValue converts a TIME column value back to a date-less clock time.
func clockValue(v pgtype.Time) *time.Time {
	if !v.Valid {
		return nil
	}
	minutes := int(v.Microseconds / (60 * 1e6))
	t := schedule.ClockTime(minutes/60, minutes%60)
	return &t
}

// Create implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) Create(ctx context.Context, newSchedule schedule.Schedule) (schedule.Schedule, error) {
	q := database.GetQuerier(ctx, s.db)

	query := `
		INSERT INTO schedules (
			id, employee_id, date, rest_day, start_time, end_time, break_minutes, shift_type
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, date, rest_day, start_time, end_time,
			break_minutes, shift_type, created_at, updated_at
	`

	var created schedule.Schedule
	var start, end pgtype.Time
	err := q.QueryRow(ctx, query,
		newSchedule.ID, newSchedule.EmployeeID, newSchedule.Date, newSchedule.RestDay,
		clockColumn(newSchedule.StartTime), clockColumn(newSchedule.EndTime),
		newSchedule.BreakMinutes, newSchedule.ShiftType,
	).Scan(
		&created.ID, &created.EmployeeID, &created.Date, &created.RestDay,
		&start, &end, &created.BreakMinutes, &created.ShiftType,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return schedule.Schedule{}, schedule.ErrScheduleExists
		}
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}
	created.StartTime = clockValue(start)
	created.EndTime = clockValue(end)

	return created, nil
}

// GetByEmployeeAndDate implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*schedule.Schedule, error) {
	q := database.GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, date, rest_day, start_time, end_time,
			break_minutes, shift_type, created_at, updated_at
		FROM schedules
		WHERE employee_id = $1 AND date = $2
	`

	var sched schedule.Schedule
	var start, end pgtype.Time
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&sched.ID, &sched.EmployeeID, &sched.Date, &sched.RestDay,
		&start, &end, &sched.BreakMinutes, &sched.ShiftType,
		&sched.CreatedAt, &sched.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	sched.StartTime = clockValue(start)
	sched.EndTime = clockValue(end)

	return &sched, nil
}

// ListByEmployeeAndRange implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) ListByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]schedule.Schedule, error) {
	q := database.GetQuerier(ctx, s.db)

	query := `
		SELECT id, employee_id, date, rest_day, start_time, end_time,
			break_minutes, shift_type, created_at, updated_at
		FROM schedules
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		var sched schedule.Schedule
		var start, end pgtype.Time
		err := rows.Scan(
			&sched.ID, &sched.EmployeeID, &sched.Date, &sched.RestDay,
			&start, &end, &sched.BreakMinutes, &sched.ShiftType,
			&sched.CreatedAt, &sched.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		sched.StartTime = clockValue(start)
		sched.EndTime = clockValue(end)
		schedules = append(schedules, sched)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// Delete implements schedule.ScheduleRepository.
func (s *scheduleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := database.GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return schedule.ErrScheduleNotFound
	}

	return nil
}
