package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/storage"
)

// maxCollectionTitleLen — предел длины названия подборки.
const maxCollectionTitleLen = 120

// CreateCollection создаёт подборку текущего пользователя.
func (s *Service) CreateCollection(ctx context.Context, userID uuid.UUID, title string) (*models.Collection, error) {
	const op = "service.collections.CreateCollection"

	title = strings.TrimSpace(title)
	if title == "" || len([]rune(title)) > maxCollectionTitleLen {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	c := &models.Collection{
		UserID: userID,
		Title:  title,
	}

	if err := s.storage.SaveCollection(ctx, c); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return c, nil
}

// MyCollections возвращает подборки текущего пользователя.
func (s *Service) MyCollections(ctx context.Context, userID uuid.UUID) ([]models.Collection, error) {
	const op = "service.collections.MyCollections"

	collections, err := s.storage.CollectionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return collections, nil
}

// Collection возвращает подборку с элементами.
// Чужая подборка не раскрывается: владелец проверяется до выдачи.
func (s *Service) Collection(ctx context.Context, userID, collectionID uuid.UUID) (*models.Collection, error) {
	const op = "service.collections.Collection"

	c, err := s.storage.CollectionByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if c.UserID != userID {
		return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	return c, nil
}

// AddToCollection добавляет опубликованный ассет в подборку пользователя.
func (s *Service) AddToCollection(ctx context.Context, userID, collectionID, assetID uuid.UUID) error {
	const op = "service.collections.AddToCollection"

	if err := s.checkCollectionOwner(ctx, userID, collectionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	asset, err := s.storage.AssetByID(ctx, assetID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	if asset.Status != models.StatusPublished {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if err := s.storage.AddCollectionItem(ctx, collectionID, assetID); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
		case errors.Is(err, storage.ErrNotFound):
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	s.emitEvent(ctx, models.EventAddToCollection, userID, map[string]any{
		"collection_id": collectionID.String(),
		"asset_id":      assetID.String(),
	})

	return nil
}

// RemoveFromCollection удаляет ассет из подборки пользователя.
func (s *Service) RemoveFromCollection(ctx context.Context, userID, collectionID, assetID uuid.UUID) error {
	const op = "service.collections.RemoveFromCollection"

	if err := s.checkCollectionOwner(ctx, userID, collectionID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.RemoveCollectionItem(ctx, collectionID, assetID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// checkCollectionOwner проверяет существование подборки и её владельца.
func (s *Service) checkCollectionOwner(ctx context.Context, userID, collectionID uuid.UUID) error {
	c, err := s.storage.CollectionByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}

		return err
	}

	if c.UserID != userID {
		return ErrForbidden
	}

	return nil
}
