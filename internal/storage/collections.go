package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/fxlibrary/fxlibrary/internal/models"
)

// CollectionStorage выполняет операции над подборками пользователя.
type CollectionStorage interface {
	// SaveCollection создаёт подборку.
	SaveCollection(ctx context.Context, c *models.Collection) error
	// CollectionsByUser возвращает подборки пользователя (новые первыми)
	// с количеством элементов.
	CollectionsByUser(ctx context.Context, userID uuid.UUID) ([]models.Collection, error)
	// CollectionByID возвращает подборку с элементами
	// (ассеты с тегами и обложкой, новые добавления первыми).
	CollectionByID(ctx context.Context, id uuid.UUID) (*models.Collection, error)
	// AddCollectionItem добавляет ассет в подборку.
	// Дубликат = ErrAlreadyExists.
	AddCollectionItem(ctx context.Context, collectionID, assetID uuid.UUID) error
	// RemoveCollectionItem удаляет ассет из подборки.
	// Отсутствующий элемент = ErrNotFound.
	RemoveCollectionItem(ctx context.Context, collectionID, assetID uuid.UUID) error
}

// DownloadStorage фиксирует факты выдачи файлов.
type DownloadStorage interface {
	// SaveDownload сохраняет запись о скачивании.
	SaveDownload(ctx context.Context, d *models.Download) error
}

// Storage задаёт контракт реляционного хранилища целиком.
type Storage interface {
	UserStorage
	AssetStorage
	CollectionStorage
	DownloadStorage
	Close()
}
