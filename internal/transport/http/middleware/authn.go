package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lunaroj/auth-service/internal/models"
	"github.com/lunaroj/auth-service/internal/service"
	"github.com/lunaroj/auth-service/internal/transport/http/apierrors"
)

type ctxKey int

const (
	ctxKeyIdentity ctxKey = iota
	ctxKeyBearer
	ctxKeyAuthErr
)

// Authenticator проверяет access-токен и возвращает личность владельца.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (*models.Identity, error)
}

// Authn извлекает Bearer-токен из Authorization и проверяет его.
// Мидлвар не отклоняет запросы сам: результат (личность либо ошибка проверки)
// кладётся в контекст, решение принимает RequireAuth на защищённых маршрутах.
// Публичные маршруты работают и без токена.
func Authn(auth Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyBearer, token)

			identity, err := auth.Authenticate(ctx, token)
			if err != nil {
				ctx = context.WithValue(ctx, ctxKeyAuthErr, err)
			} else {
				ctx = context.WithValue(ctx, ctxKeyIdentity, identity)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth пропускает только аутентифицированные запросы.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := IdentityFrom(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			if err, ok := r.Context().Value(ctxKeyAuthErr).(error); ok {
				apierrors.WriteError(w, r, err)
				return
			}

			apierrors.WriteError(w, r, service.ErrTokenInvalid)
		})
	}
}

// IdentityFrom возвращает личность запроса, если токен прошёл проверку.
func IdentityFrom(ctx context.Context) (*models.Identity, bool) {
	identity, ok := ctx.Value(ctxKeyIdentity).(*models.Identity)
	return identity, ok
}

// BearerFrom возвращает "сырой" Bearer-токен запроса.
func BearerFrom(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(ctxKeyBearer).(string)
	return token, ok
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}

	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) || len(auth) == len(prefix) {
		return ""
	}

	return strings.TrimSpace(auth[len(prefix):])
}
