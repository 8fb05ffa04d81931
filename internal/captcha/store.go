package captcha

import (
	"context"
	"log/slog"
	"time"

	"github.com/mojocn/base64Captcha"
	"github.com/redis/go-redis/v9"
)

const (
	captchaKeyPrefix = "auth:captcha:"

	// opTimeout ограничивает обращения к Redis: интерфейс стора
	// не принимает контекст, поэтому выставляем свой дедлайн.
	opTimeout = 2 * time.Second
)

// RedisStore хранит ответы капчи в Redis с TTL.
// Реализует base64Captcha.Store.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
	log *slog.Logger
}

var _ base64Captcha.Store = (*RedisStore)(nil)

// NewRedisStore создаёт стор поверх существующего клиента Redis.
func NewRedisStore(rdb *redis.Client, ttl time.Duration, log *slog.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl, log: log}
}

func captchaKey(id string) string {
	return captchaKeyPrefix + id
}

// Set сохраняет ответ для id на время жизни капчи.
func (s *RedisStore) Set(id string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return s.rdb.Set(ctx, captchaKey(id), value, s.ttl).Err()
}

// Get возвращает сохранённый ответ; при clear запись удаляется.
// Для несуществующего или истёкшего id возвращает пустую строку.
func (s *RedisStore) Get(id string, clear bool) string {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var (
		value string
		err   error
	)

	if clear {
		value, err = s.rdb.GetDel(ctx, captchaKey(id)).Result()
	} else {
		value, err = s.rdb.Get(ctx, captchaKey(id)).Result()
	}

	if err != nil {
		if err != redis.Nil {
			s.log.Warn("captcha store unavailable", slog.String("error", err.Error()))
		}

		return ""
	}

	return value
}

// Verify сравнивает ответ пользователя с сохранённым.
func (s *RedisStore) Verify(id, answer string, clear bool) bool {
	stored := s.Get(id, clear)

	return stored != "" && stored == answer
}
