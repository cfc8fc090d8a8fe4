package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const openDaysSettingKey = "open_days"

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetWeeklyOpenDays(ctx context.Context) (map[string]bool, error) {
	query := `
		SELECT value
		FROM shop_settings
		WHERE key = $1
	`

	var raw []byte
	err := r.db.GetContext(ctx, &raw, query, openDaysSettingKey)
	if errors.Is(err, sql.ErrNoRows) {
		return map[string]bool{}, nil
	}
	if err != nil {
		return nil, err
	}

	days := map[string]bool{}
	if err := json.Unmarshal(raw, &days); err != nil {
		return nil, fmt.Errorf("decode %s setting: %w", openDaysSettingKey, err)
	}

	return days, nil
}

func (r *settingsRepository) SaveWeeklyOpenDays(ctx context.Context, days map[string]bool) error {
	query := `
		INSERT INTO shop_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	raw, err := json.Marshal(days)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, openDaysSettingKey, raw)
	return err
}
