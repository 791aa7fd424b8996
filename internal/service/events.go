package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/pkg/log"
)

// maxEventPayloadKeys — предел количества полей в payload клиентского события.
const maxEventPayloadKeys = 16

// TrackEvent сохраняет аналитическое событие, присланное клиентом.
// userID == uuid.Nil допустим: событие анонимное.
func (s *Service) TrackEvent(ctx context.Context, eventType string, userID uuid.UUID, payload map[string]any) (*models.Event, error) {
	const op = "service.events.TrackEvent"

	if !models.KnownEventType(eventType) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if len(payload) > maxEventPayloadKeys {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	now := time.Now().UTC()
	event := models.Event{
		Type:      models.EventType(eventType),
		UserID:    userID,
		Payload:   payload,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.Events.Retention),
	}

	saved, err := s.events.SaveEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// emitEvent записывает серверное событие без влияния на основной поток:
// ошибка хранилища событий логируется и не пробрасывается дальше.
func (s *Service) emitEvent(ctx context.Context, eventType models.EventType, userID uuid.UUID, payload map[string]any) {
	now := time.Now().UTC()
	event := models.Event{
		Type:      eventType,
		UserID:    userID,
		Payload:   payload,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.Events.Retention),
	}

	if _, err := s.events.SaveEvent(ctx, event); err != nil {
		log.From(ctx).Warn("event_save_failed",
			slog.String("type", string(eventType)),
			slog.String("err", err.Error()),
		)
	}
}
