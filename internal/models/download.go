package models

import (
	"time"

	"github.com/google/uuid"
)

// Download — факт выдачи файла пользователю.
// IPHash — sha256(ip+salt), сырой адрес не сохраняем.
type Download struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	AssetVersionID uuid.UUID
	IPHash         string
	UserAgent      string
	CreatedAt      time.Time
}

// DownloadTicket — результат выдачи: короткоживущий presigned URL.
type DownloadTicket struct {
	URL          string
	ExpiresInSec int64
}
