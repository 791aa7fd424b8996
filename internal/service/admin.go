package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/storage"
)

// AssetInput — данные создания/обновления ассета админом.
type AssetInput struct {
	Title         string
	Summary       string
	DescriptionMd string
	HowToMd       string
	BreakdownMd   string
	Category      models.Category
	Difficulty    models.Difficulty
	TagIDs        []uuid.UUID // nil при обновлении — теги не трогаем.
}

// VersionInput — метаданные новой версии ассета.
type VersionInput struct {
	VersionString string
	HoudiniMin    string
	HoudiniMax    string
	Renderer      models.Renderer
	OS            models.OS
	NotesMd       string
	Key           string // ключ подтверждённого объекта в бакете.
}

// PreviewInput — метаданные нового превью.
type PreviewInput struct {
	Type      models.PreviewType
	Key       string
	SortOrder int32
}

// CreateAsset создаёт черновик ассета. Slug выводится из названия;
// конфликт уникальности возвращается как ErrAlreadyExists.
func (s *Service) CreateAsset(ctx context.Context, in AssetInput) (*models.Asset, error) {
	const op = "service.admin.CreateAsset"

	if err := validateAssetInput(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	asset := &models.Asset{
		Title:         strings.TrimSpace(in.Title),
		Slug:          Slugify(in.Title),
		Summary:       strings.TrimSpace(in.Summary),
		DescriptionMd: in.DescriptionMd,
		HowToMd:       in.HowToMd,
		BreakdownMd:   in.BreakdownMd,
		Category:      in.Category,
		Difficulty:    in.Difficulty,
		Status:        models.StatusDraft,
	}

	if asset.Slug == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.CreateAsset(ctx, asset, in.TagIDs); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		case errors.Is(err, storage.ErrInvalidArgument):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return asset, nil
}

// UpdateAsset обновляет поля ассета. Slug не меняется: опубликованные
// ссылки на деталь должны оставаться стабильными.
func (s *Service) UpdateAsset(ctx context.Context, assetID uuid.UUID, in AssetInput) (*models.Asset, error) {
	const op = "service.admin.UpdateAsset"

	if err := validateAssetInput(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	asset, err := s.storage.AssetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	asset.Title = strings.TrimSpace(in.Title)
	asset.Summary = strings.TrimSpace(in.Summary)
	asset.DescriptionMd = in.DescriptionMd
	asset.HowToMd = in.HowToMd
	asset.BreakdownMd = in.BreakdownMd
	asset.Category = in.Category
	asset.Difficulty = in.Difficulty

	if err := s.storage.UpdateAsset(ctx, asset, in.TagIDs); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidArgument):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateAssetCache(ctx, asset.Slug)

	return asset, nil
}

// SetAssetStatus переводит ассет между DRAFT/PUBLISHED/ARCHIVED.
// Публикация требует хотя бы одной загруженной версии.
func (s *Service) SetAssetStatus(ctx context.Context, assetID uuid.UUID, status models.AssetStatus) error {
	const op = "service.admin.SetAssetStatus"

	switch status {
	case models.StatusDraft, models.StatusPublished, models.StatusArchived:
	default:
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	asset, err := s.storage.AssetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if status == models.StatusPublished {
		full, err := s.storage.AssetBySlug(ctx, asset.Slug, true)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if len(full.Versions) == 0 {
			return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
	}

	if err := s.storage.UpdateAssetStatus(ctx, assetID, status); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateAssetCache(ctx, asset.Slug)

	return nil
}

// RequestVersionUpload выдаёт presigned PUT URL для архива версии ассета.
func (s *Service) RequestVersionUpload(ctx context.Context, assetID uuid.UUID, filename string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service.admin.RequestVersionUpload"

	if _, err := s.storage.AssetByID(ctx, assetID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info, err := s.files.PresignVersionUpload(ctx, assetID, filename, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// ConfirmVersionUpload подтверждает загрузку архива и создаёт запись версии.
// Факт наличия объекта и его размер проверяются по object storage,
// размер клиенту не доверяем.
func (s *Service) ConfirmVersionUpload(ctx context.Context, assetID uuid.UUID, in VersionInput, sha256hex string) (*models.AssetVersion, error) {
	const op = "service.admin.ConfirmVersionUpload"

	if err := validateVersionInput(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !strings.HasPrefix(in.Key, "assets/"+assetID.String()+"/versions/") {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	asset, err := s.storage.AssetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	stat, err := s.files.StatObject(ctx, in.Key)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrObjectMissing):
			return nil, fmt.Errorf("%s: %w", op, ErrUploadMissing)
		case errors.Is(err, storage.ErrInvalidArgument):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	version := &models.AssetVersion{
		AssetID:       assetID,
		VersionString: strings.TrimSpace(in.VersionString),
		HoudiniMin:    strings.TrimSpace(in.HoudiniMin),
		HoudiniMax:    strings.TrimSpace(in.HoudiniMax),
		Renderer:      in.Renderer,
		OS:            in.OS,
		NotesMd:       in.NotesMd,
		FilePath:      in.Key,
		FileSize:      stat.Size,
		SHA256:        strings.ToLower(strings.TrimSpace(sha256hex)),
	}

	if err := s.storage.SaveVersion(ctx, version); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Деталь могла быть закэширована без новой версии.
	s.invalidateAssetCache(ctx, asset.Slug)

	return version, nil
}

// RequestPreviewUpload выдаёт presigned PUT URL для превью.
func (s *Service) RequestPreviewUpload(ctx context.Context, assetID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service.admin.RequestPreviewUpload"

	if _, err := s.storage.AssetByID(ctx, assetID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info, err := s.files.PresignPreviewUpload(ctx, assetID, contentType, contentLength)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidArgument) {
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// ConfirmPreviewUpload подтверждает загрузку превью и создаёт запись.
func (s *Service) ConfirmPreviewUpload(ctx context.Context, assetID uuid.UUID, in PreviewInput) (*models.Preview, error) {
	const op = "service.admin.ConfirmPreviewUpload"

	switch in.Type {
	case models.PreviewImage, models.PreviewVideo, models.PreviewGIF:
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !strings.HasPrefix(in.Key, "previews/"+assetID.String()+"/") {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	asset, err := s.storage.AssetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.files.StatObject(ctx, in.Key); err != nil {
		switch {
		case errors.Is(err, storage.ErrObjectMissing):
			return nil, fmt.Errorf("%s: %w", op, ErrUploadMissing)
		case errors.Is(err, storage.ErrInvalidArgument):
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	preview := &models.Preview{
		AssetID:   assetID,
		Type:      in.Type,
		URL:       in.Key,
		SortOrder: in.SortOrder,
	}

	if err := s.storage.SavePreview(ctx, preview); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.invalidateAssetCache(ctx, asset.Slug)

	return preview, nil
}

// AdminAssetBySlug возвращает деталь ассета для админа, включая черновики.
func (s *Service) AdminAssetBySlug(ctx context.Context, slug string) (*models.Asset, error) {
	const op = "service.admin.AdminAssetBySlug"

	asset, err := s.storage.AssetBySlug(ctx, strings.TrimSpace(slug), true)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return asset, nil
}

func validateAssetInput(in AssetInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Summary) == "" {
		return ErrInvalidArgument
	}

	if !knownCategory(in.Category) || !knownDifficulty(in.Difficulty) {
		return ErrInvalidArgument
	}

	return nil
}

func validateVersionInput(in VersionInput) error {
	if strings.TrimSpace(in.VersionString) == "" || strings.TrimSpace(in.Key) == "" {
		return ErrInvalidArgument
	}

	switch in.Renderer {
	case models.RendererMantra, models.RendererKarma, models.RendererRedshift,
		models.RendererOctane, models.RendererArnold, models.RendererVRay, models.RendererNone:
	default:
		return ErrInvalidArgument
	}

	switch in.OS {
	case models.OSWindows, models.OSLinux, models.OSMacOS, models.OSAny:
	default:
		return ErrInvalidArgument
	}

	return nil
}

var slugCleanRe = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify приводит название к URL-безопасному slug:
// нижний регистр, не-алфавитные последовательности схлопываются в дефис.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugCleanRe.ReplaceAllString(slug, "-")

	return strings.Trim(slug, "-")
}
