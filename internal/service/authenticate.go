package service

import (
	"context"
	"fmt"

	"github.com/lunaroj/auth-service/internal/models"
)

// Authenticate проверяет access-токен и возвращает личность владельца.
// Подпись и срок проверяются локально, затем jti сверяется с чёрным списком:
// токен, отозванный через Logout, отклоняется до истечения срока.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (*models.Identity, error) {
	const op = "service.authenticate.Authenticate"

	claims, err := s.parseToken(accessToken, kindAccess)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	blacklisted, err := s.sessions.IsBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if blacklisted {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenInvalid)
	}

	return &models.Identity{
		UserID:   userID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
