package models

import (
	"time"

	"github.com/google/uuid"
)

// Collection — пользовательская подборка ассетов (закладки).
type Collection struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	ItemCount int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// Items заполняется только при запросе детали подборки,
	// отсортированы по времени добавления (новые первыми).
	Items []Asset
}
