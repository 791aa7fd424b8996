package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	logctx "github.com/fxlibrary/fxlibrary/internal/pkg/log"
	"github.com/fxlibrary/fxlibrary/internal/transport/http/httperr"
)

// Recover гасит panic в обработчиках: пишет запись в лог и отдаёт клиенту
// стандартный конверт 500/internal без деталей паники.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic_recovered",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("reason", rec),
				)

				httperr.WriteError(w, r, errors.New("internal"))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
