package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lunaroj/auth-service/internal/storage"
)

// SaveRefreshSession создаёт (или перезаписывает) refresh-сессию с TTL.
func (s *Storage) SaveRefreshSession(ctx context.Context, userID int64, tokenID, username string, ttl time.Duration) error {
	const op = "storage.redis.SaveRefreshSession"

	if err := s.rdb.Set(ctx, refreshKey(userID, tokenID), username, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ConsumeRefreshSession атомарно читает и удаляет refresh-сессию (GETDEL).
// Отсутствие записи — закончившаяся, отозванная или уже потреблённая сессия —
// неразличимо и отдаётся как storage.ErrNotFound.
func (s *Storage) ConsumeRefreshSession(ctx context.Context, userID int64, tokenID string) (string, error) {
	const op = "storage.redis.ConsumeRefreshSession"

	username, err := s.rdb.GetDel(ctx, refreshKey(userID, tokenID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return username, nil
}

// DeleteRefreshSession удаляет refresh-сессию без чтения (идемпотентно).
func (s *Storage) DeleteRefreshSession(ctx context.Context, userID int64, tokenID string) error {
	const op = "storage.redis.DeleteRefreshSession"

	if err := s.rdb.Del(ctx, refreshKey(userID, tokenID)).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// AddToIndex добавляет jti в индекс живых сессий пользователя.
func (s *Storage) AddToIndex(ctx context.Context, userID int64, tokenID string) error {
	const op = "storage.redis.AddToIndex"

	if err := s.rdb.SAdd(ctx, indexKey(userID), tokenID).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RemoveFromIndex убирает jti из индекса (идемпотентно).
func (s *Storage) RemoveFromIndex(ctx context.Context, userID int64, tokenID string) error {
	const op = "storage.redis.RemoveFromIndex"

	if err := s.rdb.SRem(ctx, indexKey(userID), tokenID).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ExpireIndex переустанавливает TTL индекса. Вызывается при каждом выпуске
// новой пары: отсчёт TTL сбрасывается безусловно, как и в остальной системе.
func (s *Storage) ExpireIndex(ctx context.Context, userID int64, ttl time.Duration) error {
	const op = "storage.redis.ExpireIndex"

	if err := s.rdb.Expire(ctx, indexKey(userID), ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IndexMembers возвращает все jti из индекса пользователя.
func (s *Storage) IndexMembers(ctx context.Context, userID int64) ([]string, error) {
	const op = "storage.redis.IndexMembers"

	members, err := s.rdb.SMembers(ctx, indexKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return members, nil
}

// DeleteRefreshSessions массово удаляет перечисленные refresh-сессии
// пользователя и сам индекс одним обращением.
func (s *Storage) DeleteRefreshSessions(ctx context.Context, userID int64, tokenIDs []string) error {
	const op = "storage.redis.DeleteRefreshSessions"

	keys := make([]string, 0, len(tokenIDs)+1)
	for _, id := range tokenIDs {
		keys = append(keys, refreshKey(userID, id))
	}
	keys = append(keys, indexKey(userID))

	if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// BlacklistAccess помещает jti access-токена в blacklist на ttl —
// остаток жизни токена; запись исчезает когда токен истёк бы сам.
func (s *Storage) BlacklistAccess(ctx context.Context, tokenID string, ttl time.Duration) error {
	const op = "storage.redis.BlacklistAccess"

	if err := s.rdb.Set(ctx, blacklistKey(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IsBlacklisted проверяет, отозван ли access-токен.
func (s *Storage) IsBlacklisted(ctx context.Context, tokenID string) (bool, error) {
	const op = "storage.redis.IsBlacklisted"

	n, err := s.rdb.Exists(ctx, blacklistKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return n > 0, nil
}
