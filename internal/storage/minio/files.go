package minio

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"

	"github.com/fxlibrary/fxlibrary/internal/storage"
)

// PresignDownload выдаёт короткоживущий presigned GET URL на объект.
// Content-Disposition заставляет браузер скачивать файл, а не открывать.
func (s *FileStorage) PresignDownload(ctx context.Context, key string, ttl time.Duration) (string, error) {
	const op = "storage/minio/files/PresignDownload"

	params := make(url.Values)
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", path.Base(key)))

	u, err := s.client.PresignedGetObject(ctx, s.cfg.S3.Bucket, key, ttl, params)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u.String(), nil
}

// PresignVersionUpload генерирует presigned PUT URL для архива версии ассета.
// Ключ вида "assets/<assetID>/versions/<uuid>/<filename>".
func (s *FileStorage) PresignVersionUpload(ctx context.Context, assetID uuid.UUID, filename string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage/minio/files/PresignVersionUpload"

	if contentLength <= 0 || contentLength > s.cfg.Uploads.MaxFileSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	name := sanitizeFilename(filename)
	if name == "" {
		return nil, storage.ErrInvalidArgument
	}

	key := path.Join("assets", assetID.String(), "versions", uuid.NewString(), name)

	u, err := s.client.PresignedPutObject(ctx, s.cfg.S3.Bucket, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.UploadInfo{
		UploadURL: u.String(),
		Key:       key,
		Expires:   s.cfg.S3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}, nil
}

// PresignPreviewUpload генерирует presigned PUT URL для превью.
// Ключ вида "previews/<assetID>/<uuid>.<ext>".
func (s *FileStorage) PresignPreviewUpload(ctx context.Context, assetID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage/minio/files/PresignPreviewUpload"

	if contentLength <= 0 || contentLength > s.cfg.Uploads.MaxPreviewSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.cfg.Uploads.PreviewContentTypes, contentType) {
		return nil, storage.ErrInvalidArgument
	}

	var ext string
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	case "image/gif":
		ext = ".gif"
	case "video/mp4":
		ext = ".mp4"
	case "video/webm":
		ext = ".webm"
	}

	key := path.Join("previews", assetID.String(), uuid.NewString()+ext)

	u, err := s.client.PresignedPutObject(ctx, s.cfg.S3.Bucket, key, s.cfg.S3.PresignTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &storage.UploadInfo{
		UploadURL: u.String(),
		Key:       key,
		Expires:   s.cfg.S3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}, nil
}

// StatObject подтверждает факт загрузки по key и возвращает метаданные объекта.
func (s *FileStorage) StatObject(ctx context.Context, key string) (*storage.ObjectStat, error) {
	const op = "storage/minio/files/StatObject"

	info, err := s.client.StatObject(ctx, s.cfg.S3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return nil, storage.ErrObjectMissing
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if info.Size <= 0 {
		return nil, storage.ErrInvalidArgument
	}

	return &storage.ObjectStat{
		Size:        info.Size,
		ContentType: info.ContentType,
		ETag:        info.ETag,
	}, nil
}

// PublicURL возвращает публичный URL объекта, если задан PublicBaseURL.
func (s *FileStorage) PublicURL(key string) string {
	if s.cfg.S3.PublicBaseURL == "" {
		return ""
	}

	base := strings.TrimRight(s.cfg.S3.PublicBaseURL, "/")

	return base + "/" + key
}

// sanitizeFilename отрезает путь и отбрасывает имена со спецсимволами.
func sanitizeFilename(name string) string {
	name = path.Base(strings.TrimSpace(name))
	if name == "." || name == ".." || strings.ContainsAny(name, "\\?%#") {
		return ""
	}

	return name
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}
