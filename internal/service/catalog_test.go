package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/storage"
	"github.com/fxlibrary/fxlibrary/mocks"
)

func TestListAssets_NormalizesPaging(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().ListAssets(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts models.ListAssetsOptions) (*models.AssetPage, error) {
			// Page<1 и PageSize=0 приводятся к дефолтам конфига.
			require.Equal(t, int32(1), opts.Page)
			require.Equal(t, int32(20), opts.PageSize)
			return &models.AssetPage{Page: opts.Page, PageSize: opts.PageSize}, nil
		})

	_, err := svc.ListAssets(context.Background(), models.ListAssetsOptions{Page: -3})
	require.NoError(t, err)

	st.EXPECT().ListAssets(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, opts models.ListAssetsOptions) (*models.AssetPage, error) {
			// PageSize сверх максимума обрезается до MaxPageSize.
			require.Equal(t, int32(100), opts.PageSize)
			return &models.AssetPage{Page: opts.Page, PageSize: opts.PageSize}, nil
		})

	_, err = svc.ListAssets(context.Background(), models.ListAssetsOptions{Page: 1, PageSize: 500})
	require.NoError(t, err)
}

func TestListAssets_RejectsUnknownFilters(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()

	_, err := svc.ListAssets(ctx, models.ListAssetsOptions{Category: "LAVA"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.ListAssets(ctx, models.ListAssetsOptions{Difficulty: "IMPOSSIBLE"})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.ListAssets(ctx, models.ListAssetsOptions{Sort: "random"})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestListAssets_PassesFilters(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	opts := models.ListAssetsOptions{
		Page:       2,
		PageSize:   10,
		Category:   models.CategoryPyro,
		Difficulty: models.DifficultyAdvanced,
		Tags:       []string{"pyro", "opencl"},
		Search:     "smoke",
		Sort:       models.SortPopular,
	}

	st.EXPECT().ListAssets(gomock.Any(), opts).
		Return(&models.AssetPage{Total: 42, Page: 2, PageSize: 10}, nil)

	page, err := svc.ListAssets(context.Background(), opts)
	require.NoError(t, err)
	require.EqualValues(t, 42, page.Total)
}

func TestAssetBySlug_NoCache(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	asset := &models.Asset{ID: uuid.New(), Slug: "pyro-shockwave", Status: models.StatusPublished}

	st.EXPECT().AssetBySlug(gomock.Any(), "pyro-shockwave", false).Return(asset, nil)

	got, err := svc.AssetBySlug(context.Background(), " pyro-shockwave ")
	require.NoError(t, err)
	require.Equal(t, asset, got)
}

func TestAssetBySlug_CacheHitSkipsStorage(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ac := mocks.NewMockAssetCache(ctrl)
	svc.SetAssetCache(ac)

	asset := &models.Asset{ID: uuid.New(), Slug: "flip-beach"}
	ac.EXPECT().Get(gomock.Any(), "flip-beach").Return(asset, true, nil)

	got, err := svc.AssetBySlug(context.Background(), "flip-beach")
	require.NoError(t, err)
	require.Equal(t, asset, got)
}

func TestAssetBySlug_CacheMissPopulates(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ac := mocks.NewMockAssetCache(ctrl)
	svc.SetAssetCache(ac)

	asset := &models.Asset{ID: uuid.New(), Slug: "vellum-cloth"}

	ac.EXPECT().Get(gomock.Any(), "vellum-cloth").Return(nil, false, nil)
	st.EXPECT().AssetBySlug(gomock.Any(), "vellum-cloth", false).Return(asset, nil)
	ac.EXPECT().Set(gomock.Any(), "vellum-cloth", asset, testCfg().Cache.TTL).Return(nil)

	got, err := svc.AssetBySlug(context.Background(), "vellum-cloth")
	require.NoError(t, err)
	require.Equal(t, asset, got)
}

func TestAssetBySlug_CacheErrorsAreNotFatal(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ac := mocks.NewMockAssetCache(ctrl)
	svc.SetAssetCache(ac)

	asset := &models.Asset{ID: uuid.New(), Slug: "rbd-building"}
	boom := errors.New("redis down")

	ac.EXPECT().Get(gomock.Any(), "rbd-building").Return(nil, false, boom)
	st.EXPECT().AssetBySlug(gomock.Any(), "rbd-building", false).Return(asset, nil)
	ac.EXPECT().Set(gomock.Any(), "rbd-building", asset, gomock.Any()).Return(boom)

	got, err := svc.AssetBySlug(context.Background(), "rbd-building")
	require.NoError(t, err)
	require.Equal(t, asset, got)
}

func TestAssetBySlug_NotFound(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().AssetBySlug(gomock.Any(), "missing", false).Return(nil, storage.ErrNotFound)

	_, err := svc.AssetBySlug(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAssetBySlug_EmptySlug(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.AssetBySlug(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestListTags_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	tags := []models.Tag{{ID: uuid.New(), Name: "pyro"}, {ID: uuid.New(), Name: "flip"}}
	st.EXPECT().ListTags(gomock.Any()).Return(tags, nil)

	got, err := svc.ListTags(context.Background())
	require.NoError(t, err)
	require.Equal(t, tags, got)
}
