package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/lunaroj/auth-service/internal/models"
	"github.com/lunaroj/auth-service/internal/pkg/log"
	"github.com/lunaroj/auth-service/internal/pkg/redact"
	"github.com/lunaroj/auth-service/internal/storage"
)

// defaultGroup — группа прав, назначаемая при регистрации.
const defaultGroup = "user"

// registerEnabledKey — системная настройка, включающая самостоятельную регистрацию.
const registerEnabledKey = "register_enabled"

// RegisterUser регистрирует нового пользователя и выпускает пару токенов.
func (s *Service) RegisterUser(ctx context.Context, username, password, email, captchaID, captchaAnswer string) (*models.AuthTokens, int64, error) {
	const op = "service.auth.RegisterUser"

	if !s.captcha.Verify(captchaID, captchaAnswer) {
		return nil, 0, fmt.Errorf("%s: %w", op, ErrCaptchaInvalid)
	}

	enabled, err := s.registerEnabled(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	if !enabled {
		return nil, 0, fmt.Errorf("%s: %w", op, ErrRegisterDisabled)
	}

	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	if err := validatePassword(password); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	groupID, err := s.users.GroupIDByName(ctx, defaultGroup)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.User{
		Username:          username,
		Nickname:          username,
		Email:             strings.TrimSpace(email),
		PasswordHash:      hashedPassword,
		PermissionGroupID: groupID,
		Role:              defaultGroup,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	id, err := s.users.SaveUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil, 0, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		}

		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	user.ID = id

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return tokens, id, nil
}

// LoginUser выполняет вход по логину и паролю.
// Неверный логин и неверный пароль неразличимы.
func (s *Service) LoginUser(ctx context.Context, username, password, captchaID, captchaAnswer string) (*models.AuthTokens, int64, error) {
	const op = "service.auth.LoginUser"

	lg := log.From(ctx)

	if !s.captcha.Verify(captchaID, captchaAnswer) {
		return nil, 0, fmt.Errorf("%s: %w", op, ErrCaptchaInvalid)
	}

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, 0, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, 0, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	if !checkPassword(user.PasswordHash, password) {
		return nil, 0, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		lg.Warn("last_login_update_failed",
			slog.String("op", op),
			slog.String("username", redact.Username(user.Username)),
			slog.String("err", err.Error()),
		)
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return tokens, user.ID, nil
}

// RefreshTokens обменивает refresh-токен на новую пару токенов.
// Токен одноразовый: из двух конкурентных запросов с одним refresh-токеном
// успешным будет ровно один, второй получит ErrRefreshSessionInvalid.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*models.AuthTokens, error) {
	const op = "service.auth.RefreshTokens"

	lg := log.From(ctx)

	claims, err := s.parseToken(refreshToken, kindRefresh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}

	if _, err := s.sessions.ConsumeRefreshSession(ctx, userID, claims.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("refresh_session_not_found",
				slog.String("op", op),
				slog.Int64("user_id", userID),
			)
			return nil, fmt.Errorf("%s: %w", op, ErrRefreshSessionInvalid)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sessions.RemoveFromIndex(ctx, userID, claims.ID); err != nil {
		// Сессия уже потреблена, осиротевший элемент индекса безопасен:
		// соответствующий ключ сессии не существует.
		lg.Warn("refresh_index_remove_failed",
			slog.String("op", op),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
	}

	user, err := s.users.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrRefreshSessionInvalid)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tokens, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tokens, nil
}

// Logout инвалидирует пару токенов: access попадает в чёрный список
// на остаток срока действия, refresh-сессия удаляется. Шаги независимы
// и идемпотентны: просроченные или уже отозванные токены не являются ошибкой,
// повторный logout с теми же токенами также успешен.
func (s *Service) Logout(ctx context.Context, accessToken, refreshToken string) error {
	const op = "service.auth.Logout"

	lg := log.From(ctx)

	if claims, err := s.parseToken(accessToken, kindAccess); err == nil {
		remaining := time.Until(claims.ExpiresAt.Time)
		if remaining > 0 {
			if err := s.sessions.BlacklistAccess(ctx, claims.ID, remaining); err != nil {
				lg.Warn("access_blacklist_failed",
					slog.String("op", op),
					slog.String("err", err.Error()),
				)
			}
		}
	}

	if claims, err := s.parseToken(refreshToken, kindRefresh); err == nil {
		userID, uidErr := claims.UserID()
		if uidErr == nil {
			if err := s.sessions.DeleteRefreshSession(ctx, userID, claims.ID); err != nil {
				lg.Warn("refresh_session_delete_failed",
					slog.String("op", op),
					slog.Int64("user_id", userID),
					slog.String("err", err.Error()),
				)
			}

			if err := s.sessions.RemoveFromIndex(ctx, userID, claims.ID); err != nil {
				lg.Warn("refresh_index_remove_failed",
					slog.String("op", op),
					slog.Int64("user_id", userID),
					slog.String("err", err.Error()),
				)
			}
		}
	}

	return nil
}

// RevokeAllSessions удаляет все refresh-сессии пользователя.
// Уже выданные access-токены продолжают действовать до истечения срока.
func (s *Service) RevokeAllSessions(ctx context.Context, userID int64) error {
	const op = "service.auth.RevokeAllSessions"

	tokenIDs, err := s.sessions.IndexMembers(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sessions.DeleteRefreshSessions(ctx, userID, tokenIDs); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// issueTokens выпускает новую пару access+refresh токенов и регистрирует
// refresh-сессию в хранилище.
func (s *Service) issueTokens(ctx context.Context, user *models.User) (*models.AuthTokens, error) {
	const op = "service.auth.issueTokens"

	now := time.Now().UTC()

	accessToken, err := s.issueToken(ctx, user.ID, user.Username, user.Role, kindAccess, newTokenID(), s.cfg.AccessTokenTTL, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshID := newTokenID()
	refreshToken, err := s.issueToken(ctx, user.ID, user.Username, user.Role, kindRefresh, refreshID, s.cfg.RefreshTokenTTL, now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sessions.SaveRefreshSession(ctx, user.ID, refreshID, user.Username, s.cfg.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.sessions.AddToIndex(ctx, user.ID, refreshID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// TTL индекса сбрасывается при каждом выпуске: индекс живёт, пока жива
	// самая свежая сессия пользователя.
	if err := s.sessions.ExpireIndex(ctx, user.ID, s.cfg.RefreshTokenTTL); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.cfg.AccessTokenTTL.Seconds()),
	}, nil
}

// registerEnabled читает системную настройку register_enabled.
// Отсутствующая настройка трактуется как включённая регистрация.
func (s *Service) registerEnabled(ctx context.Context) (bool, error) {
	const op = "service.auth.registerEnabled"

	value, err := s.users.SettingValue(ctx, registerEnabledKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return true, nil
		}

		return false, fmt.Errorf("%s: %w", op, err)
	}

	return value == "true", nil
}

// hashPassword хэширует пароль с помощью bcrypt.
func hashPassword(password string) (string, error) {
	const op = "service.auth.hashPassword"

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(bytes), nil
}

// checkPassword сравнивает пароль с хэшем.
func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// validateUsername проверяет формат логина: 3-32 символа,
// латинские буквы, цифры и подчёркивание.
func validateUsername(username string) error {
	const op = "service.auth.validateUsername"

	if n := len(username); n < 3 || n > 32 {
		return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	for _, r := range username {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}
	}

	return nil
}

// validatePassword проверяет минимальные требования к паролю:
// длина >= 8, хотя бы одна буква и одна цифра.
func validatePassword(pw string) error {
	const op = "service.auth.validatePassword"

	if len([]rune(pw)) < 8 {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	var hasLetter, hasDigit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return fmt.Errorf("%s: %w", op, ErrWeakPassword)
	}

	return nil
}
