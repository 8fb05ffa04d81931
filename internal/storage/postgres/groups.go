package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/lunaroj/auth-service/internal/storage"
)

// GroupIDByName возвращает ID группы прав по её имени.
func (s *Storage) GroupIDByName(ctx context.Context, name string) (int64, error) {
	const op = "storage.postgres.GroupIDByName"

	var id int64
	err := s.db.QueryRow(ctx, `SELECT id FROM permission_groups WHERE name = $1`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// SettingValue возвращает значение системной настройки по ключу.
func (s *Storage) SettingValue(ctx context.Context, key string) (string, error) {
	const op = "storage.postgres.SettingValue"

	var value string
	err := s.db.QueryRow(ctx, `SELECT value FROM system_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return value, nil
}
