package storage

import (
	"context"
	"errors"
	"time"

	"github.com/lunaroj/auth-service/internal/models"
)

var (
	// ErrNotFound — запись не найдена (пользователь/сессия/настройка).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (username/email).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями и справочниками.
type UserStorage interface {
	// SaveUser создаёт нового пользователя и возвращает его ID.
	SaveUser(ctx context.Context, user *models.User) (int64, error)
	// UserByUsername находит активного пользователя по логину.
	UserByUsername(ctx context.Context, username string) (*models.User, error)
	// UserByID находит активного пользователя по ID.
	UserByID(ctx context.Context, id int64) (*models.User, error)
	// UpdateLastLogin отмечает время последнего входа.
	UpdateLastLogin(ctx context.Context, id int64, at time.Time) error
	// UpdatePassword сохраняет новый хэш пароля.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	// GroupIDByName возвращает ID группы прав по её имени.
	GroupIDByName(ctx context.Context, name string) (int64, error)
	// SettingValue возвращает значение системной настройки по ключу.
	SettingValue(ctx context.Context, key string) (string, error)
	// Close закрывает пул соединений.
	Close()
}

// SessionStorage — хранилище состояния сессий (Redis).
//
// Три вида записей:
//   - refresh-сессия subject:jti -> username с TTL = времени жизни refresh-токена;
//   - индекс subject -> множество живых jti для массового отзыва;
//   - blacklist jti отозванного access-токена с TTL = остатку его жизни.
//
// Хранилище не ретраит обращения к бэкенду: транспортные ошибки отдаются
// вызывающему как есть.
type SessionStorage interface {
	// SaveRefreshSession создаёт (или перезаписывает) refresh-сессию с TTL.
	SaveRefreshSession(ctx context.Context, userID int64, tokenID, username string, ttl time.Duration) error
	// ConsumeRefreshSession атомарно читает и удаляет refresh-сессию.
	// Ровно один из конкурентных вызовов получает значение; отсутствие
	// записи отдаётся как ErrNotFound.
	ConsumeRefreshSession(ctx context.Context, userID int64, tokenID string) (string, error)
	// DeleteRefreshSession удаляет refresh-сессию без чтения (идемпотентно).
	DeleteRefreshSession(ctx context.Context, userID int64, tokenID string) error
	// AddToIndex добавляет jti в индекс живых сессий пользователя.
	AddToIndex(ctx context.Context, userID int64, tokenID string) error
	// RemoveFromIndex убирает jti из индекса (идемпотентно).
	RemoveFromIndex(ctx context.Context, userID int64, tokenID string) error
	// ExpireIndex переустанавливает TTL индекса.
	ExpireIndex(ctx context.Context, userID int64, ttl time.Duration) error
	// IndexMembers возвращает все jti из индекса пользователя.
	IndexMembers(ctx context.Context, userID int64) ([]string, error)
	// DeleteRefreshSessions массово удаляет refresh-сессии и сам индекс.
	DeleteRefreshSessions(ctx context.Context, userID int64, tokenIDs []string) error
	// BlacklistAccess помещает jti access-токена в blacklist на ttl.
	BlacklistAccess(ctx context.Context, tokenID string, ttl time.Duration) error
	// IsBlacklisted проверяет, отозван ли access-токен.
	IsBlacklisted(ctx context.Context, tokenID string) (bool, error)
	// Close закрывает клиент Redis.
	Close() error
}
