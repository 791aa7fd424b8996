package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UploadInfo — данные для загрузки объекта клиентом по presigned PUT URL.
type UploadInfo struct {
	UploadURL string
	Key       string
	Expires   time.Duration
	// RequiredHeader — заголовки, которые клиент обязан передать при PUT;
	// проверяются на этапе подтверждения.
	RequiredHeader map[string]string
}

// ObjectStat — метаданные загруженного объекта.
type ObjectStat struct {
	Size        int64
	ContentType string
	ETag        string
}

// FileStorage — операции с object storage (файлы версий и превью).
type FileStorage interface {
	// PresignDownload выдаёт короткоживущий presigned GET URL на объект.
	PresignDownload(ctx context.Context, key string, ttl time.Duration) (string, error)
	// PresignVersionUpload выдаёт presigned PUT URL для архива версии;
	// ключ вида "assets/<assetID>/versions/<uuid>/<filename>".
	PresignVersionUpload(ctx context.Context, assetID uuid.UUID, filename string, contentLength int64) (*UploadInfo, error)
	// PresignPreviewUpload выдаёт presigned PUT URL для превью;
	// ключ вида "previews/<assetID>/<uuid>.<ext>".
	PresignPreviewUpload(ctx context.Context, assetID uuid.UUID, contentType string, contentLength int64) (*UploadInfo, error)
	// StatObject подтверждает факт загрузки и возвращает метаданные.
	// Возвращает ErrObjectMissing, если объект не найден,
	// ErrInvalidArgument при нарушении ограничений размера/типа.
	StatObject(ctx context.Context, key string) (*ObjectStat, error)
	// PublicURL возвращает публичный URL объекта, если сконфигурирован
	// PublicBaseURL; иначе пустую строку.
	PublicURL(key string) string
}
