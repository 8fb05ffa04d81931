// redis реализует хранилище состояния сессий поверх Redis.
//
// Ключи (совместимы между инстансами сервиса, Redis общий):
//   - auth:refresh:<uid>:<jti>        — refresh-сессия, значение: username на момент выпуска;
//   - auth:refresh:index:<uid>        — SET живых jti пользователя;
//   - auth:blacklist:<jti>            — отозванный access-токен до его естественного истечения.
//
// Корректность ротации держится на атомарности GETDEL: из двух конкурентных
// потребителей одной сессии значение получает ровно один. Остальные операции
// (индекс, blacklist) линеаризуемости не требуют.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/lunaroj/auth-service/internal/storage"
)

const (
	refreshKeyPrefix   = "auth:refresh:"
	indexKeyPrefix     = "auth:refresh:index:"
	blacklistKeyPrefix = "auth:blacklist:"
)

type Storage struct {
	rdb *redis.Client
}

// New создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
func New(ctx context.Context, redisURL string) (*Storage, error) {
	const op = "storage.redis.New"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{rdb: rdb}, nil
}

// Close закрывает клиент Redis.
func (s *Storage) Close() error {
	return s.rdb.Close()
}

// Client отдаёт низкоуровневый клиент (для смежных хранилищ, например капчи).
func (s *Storage) Client() *redis.Client {
	return s.rdb
}

func refreshKey(userID int64, tokenID string) string {
	return fmt.Sprintf("%s%d:%s", refreshKeyPrefix, userID, tokenID)
}

func indexKey(userID int64) string {
	return fmt.Sprintf("%s%d", indexKeyPrefix, userID)
}

func blacklistKey(tokenID string) string {
	return blacklistKeyPrefix + tokenID
}

// Проверка на соответствие интерфейсу SessionStorage.
var _ storage.SessionStorage = (*Storage)(nil)
