package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/pkg/log"
	"github.com/fxlibrary/fxlibrary/internal/storage"
)

// ListAssets возвращает страницу опубликованных ассетов каталога.
// Page/PageSize нормализуются к лимитам конфига; неизвестные значения
// фильтров отклоняются.
func (s *Service) ListAssets(ctx context.Context, opts models.ListAssetsOptions) (*models.AssetPage, error) {
	const op = "service.catalog.ListAssets"

	if opts.Page < 1 {
		opts.Page = 1
	}

	if opts.PageSize < 1 {
		opts.PageSize = s.cfg.Limits.DefaultPageSize
	}

	if opts.PageSize > s.cfg.Limits.MaxPageSize {
		opts.PageSize = s.cfg.Limits.MaxPageSize
	}

	if opts.Category != "" && !knownCategory(opts.Category) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if opts.Difficulty != "" && !knownDifficulty(opts.Difficulty) {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	switch opts.Sort {
	case "", models.SortNew, models.SortUpdated, models.SortPopular:
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	page, err := s.storage.ListAssets(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// AssetBySlug возвращает полную деталь опубликованного ассета.
// Деталь кэшируется по slug; ошибки кэша не фатальны.
func (s *Service) AssetBySlug(ctx context.Context, slug string) (*models.Asset, error) {
	const op = "service.catalog.AssetBySlug"

	lg := log.From(ctx)

	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if s.acache != nil {
		if asset, ok, err := s.acache.Get(ctx, slug); err != nil {
			lg.Warn("asset_cache_get_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		} else if ok {
			return asset, nil
		}
	}

	asset, err := s.storage.AssetBySlug(ctx, slug, false)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if s.acache != nil {
		if err := s.acache.Set(ctx, slug, asset, s.cfg.Cache.TTL); err != nil {
			lg.Warn("asset_cache_set_failed",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
		}
	}

	return asset, nil
}

// ListTags возвращает все теги каталога.
func (s *Service) ListTags(ctx context.Context) ([]models.Tag, error) {
	const op = "service.catalog.ListTags"

	tags, err := s.storage.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tags, nil
}

// invalidateAssetCache сбрасывает кэш детали после админ-изменений.
func (s *Service) invalidateAssetCache(ctx context.Context, slug string) {
	if s.acache == nil || slug == "" {
		return
	}

	if err := s.acache.Invalidate(ctx, slug); err != nil {
		log.From(ctx).Warn("asset_cache_invalidate_failed",
			slog.String("slug", slug),
			slog.String("err", err.Error()),
		)
	}
}

func knownCategory(c models.Category) bool {
	switch c {
	case models.CategoryPyro, models.CategoryFlip, models.CategoryVellum,
		models.CategoryRBD, models.CategoryParticles, models.CategoryOcean,
		models.CategoryUSD, models.CategoryTools, models.CategoryOther:
		return true
	}

	return false
}

func knownDifficulty(d models.Difficulty) bool {
	switch d {
	case models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced:
		return true
	}

	return false
}
