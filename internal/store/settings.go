package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kyctrust/kyctrust-manager/internal/dependency"
)

type settingsStore struct {
	*MYSQLStore
}

// Settings returns an object implementing Settings interface
func (ms *MYSQLStore) Settings() dependency.Settings {
	return &settingsStore{
		MYSQLStore: ms,
	}
}

type settingRaw struct {
	Value string `db:"setting_value"`
}

func (ss *settingsStore) GetSetting(ctx context.Context, key string) (json.RawMessage, error) {
	query := `SELECT setting_value FROM setting WHERE setting_key = :key LIMIT 1`
	raw, err := QueryNamedOne[settingRaw](ctx, ss.DB(), query, map[string]any{
		"key": key,
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query setting %q: %w", key, err)
	}
	return json.RawMessage(raw.Value), nil
}

func (ss *settingsStore) SetSetting(ctx context.Context, key string, value json.RawMessage) error {
	query := `
	INSERT INTO setting (setting_key, setting_value)
	VALUES (:key, :value)
	ON DUPLICATE KEY UPDATE setting_value = VALUES(setting_value)`

	err := ExecNamed(ctx, ss.DB(), query, map[string]any{
		"key":   key,
		"value": string(value),
	})
	if err != nil {
		return fmt.Errorf("failed to set setting %q: %w", key, err)
	}
	return nil
}
