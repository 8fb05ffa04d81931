package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lunaroj/auth-service/internal/pkg/log"
)

// Значения claim'а kind. Access-токен непригоден для refresh-операции
// и наоборот.
const (
	kindAccess  = "access"
	kindRefresh = "refresh"
)

type authClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Kind     string `json:"kind"`
	jwt.RegisteredClaims
}

// UserID возвращает subject как числовой идентификатор пользователя.
func (c *authClaims) UserID() (int64, error) {
	return strconv.ParseInt(c.Subject, 10, 64)
}

// newTokenID выпускает jti — uuid v4 без дефисов.
func newTokenID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// issueToken выпускает подписанный HS256 токен заданного вида.
func (s *Service) issueToken(ctx context.Context, userID int64, username, role, kind, jti string, ttl time.Duration, now time.Time) (string, error) {
	const op = "service.token.issueToken"

	lg := log.From(ctx)

	claims := authClaims{
		Username: username,
		Role:     role,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		lg.Error("token_sign_failed",
			slog.String("op", op),
			slog.String("kind", kind),
			slog.String("err", err.Error()),
		)
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// parseToken разбирает и валидирует подпись, срок и вид токена.
// Несовпадение вида (access вместо refresh и наоборот) — ErrTokenInvalid.
func (s *Service) parseToken(raw, wantKind string) (*authClaims, error) {
	const op = "service.token.parseToken"

	token, err := jwt.ParseWithClaims(raw, &authClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
			}

			return []byte(s.cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(s.cfg.Issuer),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}

	claims, ok := token.Claims.(*authClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}

	if claims.Kind != wantKind {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}

	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}

	return claims, nil
}
