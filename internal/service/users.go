package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lunaroj/auth-service/internal/models"
	"github.com/lunaroj/auth-service/internal/pkg/log"
	"github.com/lunaroj/auth-service/internal/storage"
)

// UserByID возвращает профиль пользователя.
func (s *Service) UserByID(ctx context.Context, userID int64) (*models.User, error) {
	const op = "service.users.UserByID"

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// ChangePassword меняет пароль пользователя и отзывает все его refresh-сессии:
// украденный ранее refresh-токен перестаёт действовать сразу после смены.
// Access-токен инициатора также попадает в чёрный список, клиенту нужно
// войти заново.
func (s *Service) ChangePassword(ctx context.Context, userID int64, oldPassword, newPassword, accessToken string) error {
	const op = "service.users.ChangePassword"

	lg := log.From(ctx)

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, oldPassword) {
		return fmt.Errorf("%s: %w", op, ErrPasswordIncorrect)
	}

	if err := validatePassword(newPassword); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.RevokeAllSessions(ctx, userID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if claims, err := s.parseToken(accessToken, kindAccess); err == nil {
		remaining := time.Until(claims.ExpiresAt.Time)
		if remaining > 0 {
			if err := s.sessions.BlacklistAccess(ctx, claims.ID, remaining); err != nil {
				lg.Warn("access_blacklist_failed",
					slog.String("op", op),
					slog.Int64("user_id", userID),
					slog.String("err", err.Error()),
				)
			}
		}
	}

	return nil
}
