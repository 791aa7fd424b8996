package middleware

import (
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/fxlibrary/fxlibrary/internal/pkg/log"
)

// Logging кладёт в контекст request-scoped логгер (с request_id, когда
// RequestID отработал раньше по цепочке) и по завершении обработки пишет
// итоговую запись о запросе.
func Logging(base *slog.Logger) Middleware {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lg := base
			if rid := r.Header.Get("X-Request-Id"); rid != "" {
				lg = lg.With(slog.String("request_id", rid))
			}

			r = r.WithContext(logctx.Into(r.Context(), lg))

			sw := newStatusWriter(w)
			start := time.Now()

			next.ServeHTTP(sw, r)

			lg.LogAttrs(r.Context(), slog.LevelInfo, "http_request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
				slog.Int("bytes", sw.count),
			)
		})
	}
}
