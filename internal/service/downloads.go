package service

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/pkg/log"
	"github.com/fxlibrary/fxlibrary/internal/storage"
)

// DownloadRequest — контекст запроса на скачивание.
type DownloadRequest struct {
	UserID    uuid.UUID
	AssetID   uuid.UUID
	VersionID uuid.UUID
	ClientIP  string
	UserAgent string
}

// IssueDownload выдаёт короткоживущий presigned URL на файл версии ассета.
//
// Порядок фиксированный: событие попытки, проверка видимости, presign,
// запись факта, инкремент счётчика, событие успеха. Сырой IP-адрес
// не сохраняется, только sha256(ip+salt).
func (s *Service) IssueDownload(ctx context.Context, req DownloadRequest) (*models.DownloadTicket, error) {
	const op = "service.downloads.IssueDownload"

	lg := log.From(ctx)

	s.emitEvent(ctx, models.EventDownloadAttempt, req.UserID, map[string]any{
		"asset_id":   req.AssetID.String(),
		"version_id": req.VersionID.String(),
	})

	asset, err := s.storage.AssetByID(ctx, req.AssetID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if asset.Status != models.StatusPublished {
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	version, err := s.storage.VersionByID(ctx, req.AssetID, req.VersionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	url, err := s.files.PresignDownload(ctx, version.FilePath, s.cfg.S3.DownloadTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	download := &models.Download{
		UserID:         req.UserID,
		AssetVersionID: version.ID,
		IPHash:         hashClientIP(req.ClientIP, s.cfg.Auth.IPHashSalt),
		UserAgent:      req.UserAgent,
	}

	if err := s.storage.SaveDownload(ctx, download); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.IncrementDownloadCount(ctx, asset.ID); err != nil {
		// Счётчик не критичен для выдачи файла.
		lg.Warn("download_count_increment_failed",
			slog.String("op", op),
			slog.String("asset_id", asset.ID.String()),
			slog.String("err", err.Error()),
		)
	}

	s.emitEvent(ctx, models.EventDownloadSuccess, req.UserID, map[string]any{
		"asset_id":   req.AssetID.String(),
		"version_id": req.VersionID.String(),
	})

	return &models.DownloadTicket{
		URL:          url,
		ExpiresInSec: int64(s.cfg.S3.DownloadTTL.Seconds()),
	}, nil
}

// hashClientIP хэширует IP-адрес клиента с солью: sha256(ip+salt) → base64url.
func hashClientIP(ip, salt string) string {
	sum := sha256.Sum256([]byte(ip + salt))

	return base64.RawURLEncoding.EncodeToString(sum[:])
}
