package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/escalator-hq/escalator-backend-go/internal/domain/setting"
	"github.com/escalator-hq/escalator-backend-go/internal/pkg/database"
)

type settingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &settingRepositoryImpl{db: db}
}

// Get implements setting.SettingRepository.
func (s *settingRepositoryImpl) Get(ctx context.Context, key string) (setting.Setting, error) {
	q := database.GetQuerier(ctx, s.db)

	query := `
		SELECT key, value, description, created_at, updated_at
		FROM settings
		WHERE key = $1
	`

	var st setting.Setting
	err := q.QueryRow(ctx, query, key).Scan(
		&st.Key, &st.Value, &st.Description, &st.CreatedAt, &st.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return setting.Setting{}, setting.ErrSettingNotFound
		}
		return setting.Setting{}, fmt.Errorf("failed to get setting: %w", err)
	}

	return st, nil
}

// List implements setting.SettingRepository.
func (s *settingRepositoryImpl) List(ctx context.Context) ([]setting.Setting, error) {
	q := database.GetQuerier(ctx, s.db)

	query := `
		SELECT key, value, description, created_at, updated_at
		FROM settings
		ORDER BY key
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var settings []setting.Setting
	for rows.Next() {
		var st setting.Setting
		err := rows.Scan(&st.Key, &st.Value, &st.Description, &st.CreatedAt, &st.UpdatedAt)
		if err != nil {
			return nil, err
		}
		settings = append(settings, st)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Upsert implements setting.SettingRepository.
func (s *settingRepositoryImpl) Upsert(ctx context.Context, st setting.Setting) (setting.Setting, error) {
	q := database.GetQuerier(ctx, s.db)

	query := `
		INSERT INTO settings (key, value, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			description = EXCLUDED.description,
			updated_at = NOW()
		RETURNING key, value, description, created_at, updated_at
	`

	var stored setting.Setting
	err := q.QueryRow(ctx, query, st.Key, st.Value, st.Description).Scan(
		&stored.Key, &stored.Value, &stored.Description, &stored.CreatedAt, &stored.UpdatedAt,
	)
	if err != nil {
		return setting.Setting{}, fmt.Errorf("failed to upsert setting: %w", err)
	}

	return stored, nil
}
