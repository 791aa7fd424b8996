package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fxlibrary/fxlibrary/internal/models"
)

func TestTrackEvent_OK(t *testing.T) {
	t.Parallel()

	svc, _, _, events, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()
	payload := map[string]any{"asset_slug": "pyro-shockwave", "query": "smoke"}

	events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Event) (*models.Event, error) {
			require.Equal(t, models.EventViewAsset, e.Type)
			require.Equal(t, userID, e.UserID)
			require.Equal(t, payload, e.Payload)
			// TTL-граница выставлена на retention от момента создания.
			require.WithinDuration(t, e.CreatedAt.Add(testCfg().Events.Retention), e.ExpiresAt, time.Second)
			e.ID = "65f1ab"
			return &e, nil
		})

	saved, err := svc.TrackEvent(context.Background(), string(models.EventViewAsset), userID, payload)
	require.NoError(t, err)
	require.Equal(t, "65f1ab", saved.ID)
}

func TestTrackEvent_AnonymousAllowed(t *testing.T) {
	t.Parallel()

	svc, _, _, events, ctrl := newSvc(t)
	defer ctrl.Finish()

	events.EXPECT().SaveEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e models.Event) (*models.Event, error) {
			require.Equal(t, uuid.Nil, e.UserID)
			return &e, nil
		})

	_, err := svc.TrackEvent(context.Background(), string(models.EventSearch), uuid.Nil, map[string]any{"query": "ocean"})
	require.NoError(t, err)
}

func TestTrackEvent_UnknownType(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.TrackEvent(context.Background(), "CLICKED_SOMETHING", uuid.Nil, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTrackEvent_OversizedPayload(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	payload := make(map[string]any, maxEventPayloadKeys+1)
	for i := 0; i <= maxEventPayloadKeys; i++ {
		payload[fmt.Sprintf("k%d", i)] = i
	}

	_, err := svc.TrackEvent(context.Background(), string(models.EventSearch), uuid.Nil, payload)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
