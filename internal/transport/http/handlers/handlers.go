// handlers реализует REST-обработчики auth-сервиса.
// Обработчики разбирают вход, вызывают бизнес-логику из service
// и отдают единый JSON: успех — тело ответа, ошибка — apierrors.WriteError.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/lunaroj/auth-service/internal/captcha"
	"github.com/lunaroj/auth-service/internal/service"
)

// Handlers агрегирует зависимости обработчиков.
type Handlers struct {
	Service *service.Service
	Captcha *captcha.Service
}

func New(svc *service.Service, cpt *captcha.Service) *Handlers {
	return &Handlers{Service: svc, Captcha: cpt}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
