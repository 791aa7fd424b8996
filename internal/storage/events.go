package storage

import (
	"context"

	"github.com/fxlibrary/fxlibrary/internal/models"
)

// EventStorage — хранилище аналитических событий.
// Очистка устаревших событий — забота реализации (TTL-индекс).
type EventStorage interface {
	// SaveEvent сохраняет событие и возвращает его с присвоенным ID.
	SaveEvent(ctx context.Context, e models.Event) (*models.Event, error)
	Close(ctx context.Context) error
}
