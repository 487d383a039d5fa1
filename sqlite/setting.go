package sqlite

import (
	"context"
	"database/sql"

	"github.com/awalczyk/lectio"
)

// Compile-time interface verification.
var _ lectio.SettingService = (*SettingService)(nil)

// SettingService implements lectio.SettingService using SQLite.
type SettingService struct {
	db *DB
}

// NewSettingService creates a new SettingService.
func NewSettingService(db *DB) *SettingService {
	return &SettingService{db: db}
}

// Setting retrieves the value stored under key.
func (s *SettingService) Setting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", lectio.Errorf(lectio.ENOTFOUND, "setting not found")
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetSetting stores value under key, replacing any previous value.
func (s *SettingService) SetSetting(ctx context.Context, key, value string) error {
	setting := &lectio.Setting{Key: key, Value: value}
	if err := setting.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// DeleteSetting removes key. Deleting an absent key succeeds.
func (s *SettingService) DeleteSetting(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM settings WHERE key = ?", key)
	return err
}
