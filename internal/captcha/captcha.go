// captcha генерирует и проверяет графическую капчу для регистрации и входа.
// Картинка отдаётся как base64 PNG, ответ хранится в Redis с TTL и
// сгорает при первой проверке (повторное предъявление того же id не проходит).
package captcha

import (
	"fmt"

	"github.com/mojocn/base64Captcha"

	"github.com/lunaroj/auth-service/internal/config"
)

const (
	imageHeight = 60
	imageWidth  = 200
	maxSkew     = 0.7
	dotCount    = 70
)

// Service — генерация и проверка капчи.
type Service struct {
	driver *base64Captcha.DriverDigit
	store  base64Captcha.Store
}

// New создаёт сервис капчи поверх переданного стора.
func New(cfg config.CaptchaConfig, store base64Captcha.Store) *Service {
	length := cfg.Length
	if length <= 0 {
		length = 5
	}

	return &Service{
		driver: base64Captcha.NewDriverDigit(imageHeight, imageWidth, length, maxSkew, dotCount),
		store:  store,
	}
}

// Generate выпускает новую капчу: возвращает её id и картинку (base64 PNG).
func (s *Service) Generate() (string, string, error) {
	const op = "captcha.Generate"

	id, content, answer := s.driver.GenerateIdQuestionAnswer()

	item, err := s.driver.DrawCaptcha(content)
	if err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	if err := s.store.Set(id, answer); err != nil {
		return "", "", fmt.Errorf("%s: %w", op, err)
	}

	return id, item.EncodeB64string(), nil
}

// Verify проверяет ответ на капчу. Ответ одноразовый: запись удаляется
// независимо от результата, перебор по одному id невозможен.
func (s *Service) Verify(id, answer string) bool {
	if id == "" || answer == "" {
		return false
	}

	return s.store.Verify(id, answer, true)
}
