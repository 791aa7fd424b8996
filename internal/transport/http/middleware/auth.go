package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/service"
	"github.com/fxlibrary/fxlibrary/internal/transport/http/httperr"
)

type identityKey struct{}

// Authenticator проверяет access-токен и возвращает личность.
// Интерфейс сужен до единственного метода, чтобы guard был тестируем
// без полного Service.
type Authenticator interface {
	Authenticate(ctx context.Context, accessToken string) (models.Identity, error)
}

// Authenticate извлекает Bearer-токен из Authorization, проверяет его
// и кладёт личность в контекст. Запрос без токена проходит дальше
// анонимным; битый или просроченный токен обрывается сразу (401),
// чтобы клиент не принял анонимный ответ за авторизованный.
func Authenticate(auth Authenticator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) || len(header) <= len(prefix) {
				httperr.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			token := strings.TrimSpace(header[len(prefix):])
			if token == "" {
				httperr.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			identity, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				httperr.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth отклоняет запросы без проверенной личности.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := IdentityFrom(r.Context()); !ok {
				httperr.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole отклоняет запросы личности без нужной роли.
// Используется после RequireAuth.
func RequireRole(role models.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFrom(r.Context())
			if !ok {
				httperr.WriteError(w, r, service.ErrInvalidToken)
				return
			}

			if identity.Role != role {
				httperr.WriteError(w, r, service.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IdentityFrom возвращает личность из контекста запроса.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(identityKey{}).(models.Identity)

	return identity, ok
}
