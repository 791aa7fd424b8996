package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/fxlibrary/fxlibrary/internal/models"
)

// AssetStorage выполняет операции над каталогом ассетов.
type AssetStorage interface {
	// ListAssets возвращает страницу опубликованных ассетов с фильтрами
	// и общим количеством. Элементы включают теги и обложку (превью с
	// минимальным sort_order).
	ListAssets(ctx context.Context, opts models.ListAssetsOptions) (*models.AssetPage, error)
	// AssetBySlug возвращает полную деталь ассета (теги, превью, версии).
	// При includeUnpublished=false черновики и архив = ErrNotFound.
	AssetBySlug(ctx context.Context, slug string, includeUnpublished bool) (*models.Asset, error)
	// AssetByID возвращает ассет без связей.
	AssetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error)
	// CreateAsset сохраняет новый ассет и набор его тегов.
	// Возвращает ErrAlreadyExists при конфликте slug.
	CreateAsset(ctx context.Context, asset *models.Asset, tagIDs []uuid.UUID) error
	// UpdateAsset обновляет поля ассета; tagIDs == nil — теги не трогаем,
	// иначе полная замена набора.
	UpdateAsset(ctx context.Context, asset *models.Asset, tagIDs []uuid.UUID) error
	// UpdateAssetStatus переводит ассет между DRAFT/PUBLISHED/ARCHIVED,
	// publishedAt выставляется при публикации.
	UpdateAssetStatus(ctx context.Context, id uuid.UUID, status models.AssetStatus) error
	// IncrementDownloadCount атомарно увеличивает счётчик скачиваний.
	IncrementDownloadCount(ctx context.Context, id uuid.UUID) error
	// ListTags возвращает все теги, отсортированные по имени.
	ListTags(ctx context.Context) ([]models.Tag, error)
	// SaveTag создаёт тег и возвращает его ID.
	// Возвращает ErrAlreadyExists при конфликте имени.
	SaveTag(ctx context.Context, name string, kind models.TagKind) (uuid.UUID, error)
	// SavePreview сохраняет запись превью.
	SavePreview(ctx context.Context, preview *models.Preview) error
	// SaveVersion сохраняет запись версии ассета.
	SaveVersion(ctx context.Context, version *models.AssetVersion) error
	// VersionByID возвращает версию, принадлежащую ассету assetID.
	VersionByID(ctx context.Context, assetID, versionID uuid.UUID) (*models.AssetVersion, error)
}
