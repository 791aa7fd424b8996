// log переносит request-scoped *slog.Logger через context.Context.
// Сервисы и хендлеры достают его через From и получают атрибуты,
// навешанные мидлварами выше (request_id и прочие), не протаскивая
// логгер через сигнатуры.
package log

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// Into возвращает контекст с прикреплённым логгером.
// nil-логгер не сохраняется: From в этом случае отдаст slog.Default().
func Into(ctx context.Context, lg *slog.Logger) context.Context {
	if lg == nil {
		return ctx
	}

	return context.WithValue(ctx, loggerKey{}, lg)
}

// From возвращает логгер запроса либо slog.Default(), когда в контексте его нет.
func From(ctx context.Context) *slog.Logger {
	lg, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok || lg == nil {
		return slog.Default()
	}

	return lg
}
