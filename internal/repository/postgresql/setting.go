package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrpulse/attendance-backend-go/internal/domain/settings"
	"github.com/hrpulse/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type settingRepository struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) settings.Repository {
	return &settingRepository{db: db}
}

// Get implements settings.Repository.
func (r *settingRepository) Get(ctx context.Context, key string) (settings.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT key, value, updated_by, created_at, updated_at
		FROM settings
		WHERE key = $1
	`

	var s settings.Setting
	err := q.QueryRow(ctx, query, key).Scan(
		&s.Key, &s.Value, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Setting{}, settings.ErrSettingNotFound
		}
		return settings.Setting{}, fmt.Errorf("failed to get setting %q: %w", key, err)
	}

	return s, nil
}

// List implements settings.Repository.
func (r *settingRepository) List(ctx context.Context) ([]settings.Setting, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT key, value, updated_by, created_at, updated_at
		FROM settings
		ORDER BY key
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}
	defer rows.Close()

	var result []settings.Setting
	for rows.Next() {
		var s settings.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		result = append(result, s)
	}

	return result, rows.Err()
}

// Upsert implements settings.Repository.
func (r *settingRepository) Upsert(ctx context.Context, setting settings.Setting) (settings.Setting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO settings (key, value, updated_by, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_by = EXCLUDED.updated_by, updated_at = NOW()
		RETURNING key, value, updated_by, created_at, updated_at
	`

	var s settings.Setting
	err := q.QueryRow(ctx, query, setting.Key, setting.Value, setting.UpdatedBy).Scan(
		&s.Key, &s.Value, &s.UpdatedBy, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return settings.Setting{}, fmt.Errorf("failed to upsert setting %q: %w", setting.Key, err)
	}

	return s, nil
}
