package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout ограничивает суммарное время обработки запроса дедлайном на контексте.
// Дедлайн, выставленный выше по цепочке, не перетирается.
// Нулевое или отрицательное значение отключает ограничение.
func Timeout(limit time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if _, has := ctx.Deadline(); has {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(ctx, limit)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
