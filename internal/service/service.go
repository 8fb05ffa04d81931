// service содержит бизнес-логику auth-сервиса:
// регистрацию/вход пользователей, выпуск и проверку JWT-пары
// (access + refresh) и управление отзываемым состоянием сессий
// через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданные хранилища потокобезопасны.
//   - Access-токен проверяется без обращения к хранилищу (подпись + срок),
//     за исключением проверки чёрного списка после logout.
//   - Refresh-токен дополнительно сверяется с Redis и одноразов: повторное
//     предъявление того же jti отклоняется.
//   - Ошибки возвращаются и далее маппятся транспортом на HTTP-коды
//     (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/lunaroj/auth-service/internal/config"
	"github.com/lunaroj/auth-service/internal/storage"
)

var (
	// ErrInvalidCredentials — пара логин/пароль неверна или пользователь не найден.
	// Причины не различаются, чтобы не раскрывать существование логина.
	// Транспорт: HTTP 401.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrTokenInvalid — токен не разбирается, подпись не сходится, алгоритм
	// не HS256 или kind не соответствует операции. Транспорт: HTTP 401.
	ErrTokenInvalid = errors.New("invalid token")

	// ErrTokenExpired — подпись верна, но срок действия токена истёк.
	// Транспорт: HTTP 401.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — access-токен находится в чёрном списке после logout.
	// Транспорт: HTTP 401.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrRefreshSessionInvalid — refresh-сессия не найдена в хранилище:
	// уже использована, отозвана, истекла или никогда не существовала.
	// Причины намеренно неразличимы. Транспорт: HTTP 401.
	ErrRefreshSessionInvalid = errors.New("refresh session invalid")

	// ErrUsernameTaken — логин уже занят другим пользователем.
	// Транспорт: HTTP 409.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrRegisterDisabled — регистрация выключена настройкой register_enabled.
	// Транспорт: HTTP 403.
	ErrRegisterDisabled = errors.New("registration disabled")

	// ErrCaptchaInvalid — капча не пройдена (пустой/неверный ответ либо id
	// истёк или уже использован). Транспорт: HTTP 422.
	ErrCaptchaInvalid = errors.New("captcha invalid")

	// ErrUserNotFound — пользователь не найден по идентификатору.
	// Транспорт: HTTP 404.
	ErrUserNotFound = errors.New("user not found")

	// ErrWeakPassword — пароль не удовлетворяет политикам сложности.
	// Транспорт: HTTP 400.
	ErrWeakPassword = errors.New("password is too weak")

	// ErrPasswordIncorrect — текущий пароль при смене пароля неверен.
	// Транспорт: HTTP 401.
	ErrPasswordIncorrect = errors.New("password incorrect")
)

// CaptchaVerifier проверяет ответ на капчу. Ответ одноразовый.
type CaptchaVerifier interface {
	Verify(id, answer string) bool
}

// Service описывает бизнес-логику auth-сервиса.
type Service struct {
	users    storage.UserStorage
	sessions storage.SessionStorage
	captcha  CaptchaVerifier
	cfg      config.AuthConfig
}

// New создаёт новый экземпляр Service.
func New(users storage.UserStorage, sessions storage.SessionStorage, captcha CaptchaVerifier, cfg config.AuthConfig) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		captcha:  captcha,
		cfg:      cfg,
	}
}
