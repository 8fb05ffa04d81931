package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lunaroj/auth-service/internal/models"
	"github.com/lunaroj/auth-service/internal/storage"
)

// SaveUser создаёт нового пользователя и возвращает его ID.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) (int64, error) {
	const op = "storage.postgres.SaveUser"

	query := `
		INSERT INTO users(username, nickname, email, password_hash, permission_group_id, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRow(ctx, query,
		user.Username,
		user.Nickname,
		user.Email,
		user.PasswordHash,
		user.PermissionGroupID,
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return 0, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// userQuery — общая выборка пользователя вместе с именем группы прав.
const userQuery = `
	SELECT u.id, u.username, u.nickname, COALESCE(u.email, ''), u.password_hash,
	       u.permission_group_id, g.name, u.last_login_at, u.created_at, u.updated_at
	FROM users u
	JOIN permission_groups g ON g.id = u.permission_group_id
	WHERE u.deleted = FALSE
`

// UserByUsername находит активного пользователя по логину.
func (s *Storage) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	const op = "storage.postgres.UserByUsername"

	user, err := s.scanUser(s.db.QueryRow(ctx, userQuery+` AND u.username = $1`, username))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// UserByID находит активного пользователя по ID.
func (s *Storage) UserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	user, err := s.scanUser(s.db.QueryRow(ctx, userQuery+` AND u.id = $1`, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *Storage) scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Nickname,
		&user.Email,
		&user.PasswordHash,
		&user.PermissionGroupID,
		&user.Role,
		&user.LastLoginAt,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}

// UpdateLastLogin отмечает время последнего входа.
func (s *Storage) UpdateLastLogin(ctx context.Context, id int64, at time.Time) error {
	const op = "storage.postgres.UpdateLastLogin"

	tag, err := s.db.Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1 AND deleted = FALSE`, id, at)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// UpdatePassword сохраняет новый хэш пароля.
func (s *Storage) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	const op = "storage.postgres.UpdatePassword"

	tag, err := s.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1 AND deleted = FALSE`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
