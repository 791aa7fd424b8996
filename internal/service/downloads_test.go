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
)

func TestIssueDownload_OK(t *testing.T) {
	t.Parallel()

	svc, st, files, events, ctrl := newSvc(t)
	defer ctrl.Finish()

	req := DownloadRequest{
		UserID:    uuid.New(),
		AssetID:   uuid.New(),
		VersionID: uuid.New(),
		ClientIP:  "203.0.113.7",
		UserAgent: "houdini-launcher/1.2",
	}

	version := &models.AssetVersion{
		ID:       req.VersionID,
		AssetID:  req.AssetID,
		FilePath: "assets/" + req.AssetID.String() + "/versions/abc/shockwave.hiplc",
	}

	var eventTypes []models.EventType
	events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Event) (*models.Event, error) {
			eventTypes = append(eventTypes, e.Type)
			return &e, nil
		}).Times(2)

	st.EXPECT().AssetByID(gomock.Any(), req.AssetID).
		Return(&models.Asset{ID: req.AssetID, Status: models.StatusPublished}, nil)
	st.EXPECT().VersionByID(gomock.Any(), req.AssetID, req.VersionID).Return(version, nil)
	files.EXPECT().PresignDownload(gomock.Any(), version.FilePath, testCfg().S3.DownloadTTL).
		Return("https://s3.local/presigned", nil)
	st.EXPECT().SaveDownload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d *models.Download) error {
			require.Equal(t, req.UserID, d.UserID)
			require.Equal(t, version.ID, d.AssetVersionID)
			require.Equal(t, req.UserAgent, d.UserAgent)
			// Сырой IP не сохраняется.
			require.NotContains(t, d.IPHash, "203.0.113.7")
			require.Equal(t, hashClientIP(req.ClientIP, testCfg().Auth.IPHashSalt), d.IPHash)
			return nil
		})
	st.EXPECT().IncrementDownloadCount(gomock.Any(), req.AssetID).Return(nil)

	ticket, err := svc.IssueDownload(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "https://s3.local/presigned", ticket.URL)
	require.EqualValues(t, 120, ticket.ExpiresInSec)
	require.Equal(t, []models.EventType{models.EventDownloadAttempt, models.EventDownloadSuccess}, eventTypes)
}

func TestIssueDownload_UnpublishedAsset(t *testing.T) {
	t.Parallel()

	svc, st, _, events, ctrl := newSvc(t)
	defer ctrl.Finish()

	req := DownloadRequest{UserID: uuid.New(), AssetID: uuid.New(), VersionID: uuid.New()}

	// Событие попытки пишется до проверки видимости, событие успеха нет.
	events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Event) (*models.Event, error) {
			require.Equal(t, models.EventDownloadAttempt, e.Type)
			return &e, nil
		})
	st.EXPECT().AssetByID(gomock.Any(), req.AssetID).
		Return(&models.Asset{ID: req.AssetID, Status: models.StatusArchived}, nil)

	_, err := svc.IssueDownload(context.Background(), req)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIssueDownload_VersionNotFound(t *testing.T) {
	t.Parallel()

	svc, st, _, events, ctrl := newSvc(t)
	defer ctrl.Finish()

	req := DownloadRequest{UserID: uuid.New(), AssetID: uuid.New(), VersionID: uuid.New()}

	events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Event) (*models.Event, error) {
			return &e, nil
		})
	st.EXPECT().AssetByID(gomock.Any(), req.AssetID).
		Return(&models.Asset{ID: req.AssetID, Status: models.StatusPublished}, nil)
	st.EXPECT().VersionByID(gomock.Any(), req.AssetID, req.VersionID).
		Return(nil, storage.ErrNotFound)

	_, err := svc.IssueDownload(context.Background(), req)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestIssueDownload_CounterFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	svc, st, files, events, ctrl := newSvc(t)
	defer ctrl.Finish()

	req := DownloadRequest{UserID: uuid.New(), AssetID: uuid.New(), VersionID: uuid.New()}
	version := &models.AssetVersion{ID: req.VersionID, AssetID: req.AssetID, FilePath: "assets/x/versions/y/z.hip"}

	events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Event) (*models.Event, error) {
			return &e, nil
		}).Times(2)
	st.EXPECT().AssetByID(gomock.Any(), req.AssetID).
		Return(&models.Asset{ID: req.AssetID, Status: models.StatusPublished}, nil)
	st.EXPECT().VersionByID(gomock.Any(), req.AssetID, req.VersionID).Return(version, nil)
	files.EXPECT().PresignDownload(gomock.Any(), version.FilePath, gomock.Any()).
		Return("https://s3.local/presigned", nil)
	st.EXPECT().SaveDownload(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().IncrementDownloadCount(gomock.Any(), req.AssetID).
		Return(errors.New("deadlock"))

	ticket, err := svc.IssueDownload(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, ticket.URL)
}

func TestIssueDownload_EventStorageDownIsNotFatal(t *testing.T) {
	t.Parallel()

	svc, st, files, events, ctrl := newSvc(t)
	defer ctrl.Finish()

	req := DownloadRequest{UserID: uuid.New(), AssetID: uuid.New(), VersionID: uuid.New()}
	version := &models.AssetVersion{ID: req.VersionID, AssetID: req.AssetID, FilePath: "assets/x/versions/y/z.hip"}

	// Аналитика недоступна: скачивание всё равно выдаётся.
	events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("mongo down")).Times(2)
	st.EXPECT().AssetByID(gomock.Any(), req.AssetID).
		Return(&models.Asset{ID: req.AssetID, Status: models.StatusPublished}, nil)
	st.EXPECT().VersionByID(gomock.Any(), req.AssetID, req.VersionID).Return(version, nil)
	files.EXPECT().PresignDownload(gomock.Any(), version.FilePath, gomock.Any()).
		Return("https://s3.local/presigned", nil)
	st.EXPECT().SaveDownload(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().IncrementDownloadCount(gomock.Any(), req.AssetID).Return(nil)

	_, err := svc.IssueDownload(context.Background(), req)
	require.NoError(t, err)
}

func TestHashClientIP(t *testing.T) {
	t.Parallel()

	h1 := hashClientIP("203.0.113.7", "salt-a")
	h2 := hashClientIP("203.0.113.7", "salt-a")
	require.Equal(t, h1, h2)

	// Соль меняет хэш: по хэшу нельзя сопоставить IP между инсталляциями.
	require.NotEqual(t, h1, hashClientIP("203.0.113.7", "salt-b"))
	require.NotEqual(t, h1, hashClientIP("203.0.113.8", "salt-a"))
}
