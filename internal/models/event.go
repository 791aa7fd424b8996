package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType — тип аналитического события.
type EventType string

const (
	EventViewAsset       EventType = "VIEW_ASSET"
	EventSearch          EventType = "SEARCH"
	EventPlayPreview     EventType = "PLAY_PREVIEW"
	EventDownloadAttempt EventType = "DOWNLOAD_ATTEMPT"
	EventDownloadSuccess EventType = "DOWNLOAD_SUCCESS"
	EventAddToCollection EventType = "ADD_TO_COLLECTION"
)

// KnownEventType сообщает, входит ли строка в перечень типов событий.
func KnownEventType(s string) bool {
	switch EventType(s) {
	case EventViewAsset, EventSearch, EventPlayPreview,
		EventDownloadAttempt, EventDownloadSuccess, EventAddToCollection:
		return true
	}

	return false
}

// Event — аналитическое событие.
// UserID == uuid.Nil для анонимных событий.
// ExpiresAt выставляется сервисом (now + retention) и используется
// TTL-индексом хранилища для автоматической очистки.
type Event struct {
	ID        string // идентификатор, присвоенный хранилищем.
	Type      EventType
	UserID    uuid.UUID
	Payload   map[string]any
	CreatedAt time.Time
	ExpiresAt time.Time
}
