package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fxlibrary/fxlibrary/internal/config"
	"github.com/fxlibrary/fxlibrary/internal/models"
	"github.com/fxlibrary/fxlibrary/internal/storage"
	"github.com/fxlibrary/fxlibrary/mocks"
)

func testCfg() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			AccessSecret:    "unit-access-secret",
			RefreshSecret:   "unit-refresh-secret",
			AccessTokenTTL:  30 * time.Second,
			RefreshTokenTTL: 24 * time.Hour,
			Issuer:          "fxlibrary",
			Audience:        []string{"fxlibrary-web"},
			IPHashSalt:      "unit-salt",
		},
		S3: config.S3Config{
			DownloadTTL: 2 * time.Minute,
		},
		Events: config.EventsConfig{
			Retention: 90 * 24 * time.Hour,
		},
		Cache: config.CacheConfig{
			TTL: 5 * time.Minute,
		},
		Limits: config.LimitsConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
	}
}

func newSvc(t *testing.T) (*Service, *mocks.MockStorage, *mocks.MockFileStorage, *mocks.MockEventStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	files := mocks.NewMockFileStorage(ctrl)
	events := mocks.NewMockEventStorage(ctrl)
	svc := New(st, files, events, testCfg())
	return svc, st, files, events, ctrl
}

func mustHashPW(t *testing.T, pw string) string {
	t.Helper()
	h, err := hashPassword(pw)
	require.NoError(t, err)
	return h
}

func TestRegisterUser_OK(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	email := "User@Example.com"
	norm := "user@example.com"
	pw := "password123"

	// Сначала UserByEmail -> ErrNotFound, потом SaveUser, потом запись хэша сессии.
	st.EXPECT().UserByEmail(gomock.Any(), norm).Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			require.Equal(t, norm, u.Email)
			require.Equal(t, models.RoleUser, u.Role)
			require.NotEqual(t, pw, u.PasswordHash)
			u.ID = uuid.New()
			return nil
		})

	var storedHash string
	st.EXPECT().UpdateRefreshTokenHash(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash *string) error {
			require.NotNil(t, hash)
			storedHash = *hash
			return nil
		})

	user, pair, err := svc.RegisterUser(ctx, email, pw, "Alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.NotNil(t, pair)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	require.Equal(t, hashRefreshToken(pair.RefreshToken), storedHash)
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").
		Return(&models.User{ID: uuid.New()}, nil)

	_, _, err := svc.RegisterUser(context.Background(), "user@example.com", "password123", "")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegisterUser_Validation(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Политика пароля: только длина 8..128, без требований к составу.
	cases := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"bad_email", "not-an-email", "password123", ErrInvalidEmail},
		{"empty_password", "user@example.com", "", ErrEmptyPassword},
		{"short_password", "user@example.com", "pass123", ErrWeakPassword},
		{"too_long_password", "user@example.com", strings.Repeat("p", 129), ErrWeakPassword},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := svc.RegisterUser(context.Background(), tc.email, tc.password, "")
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoginUser_OK_ReplacesSession(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	pw := "password123"
	oldHash := "old-session-hash"
	user := &models.User{
		ID:               uuid.New(),
		Email:            "user@example.com",
		PasswordHash:     mustHashPW(t, pw),
		Role:             models.RoleUser,
		RefreshTokenHash: &oldHash,
	}

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)

	var storedHash string
	st.EXPECT().UpdateRefreshTokenHash(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash *string) error {
			require.NotNil(t, hash)
			storedHash = *hash
			return nil
		})

	_, pair, err := svc.LoginUser(context.Background(), user.Email, pw)
	require.NoError(t, err)

	// Новая сессия вытесняет старую: хэш перезаписан и не равен прежнему.
	require.Equal(t, hashRefreshToken(pair.RefreshToken), storedHash)
	require.NotEqual(t, oldHash, storedHash)
}

func TestLoginUser_InvalidCredentials(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:           uuid.New(),
		Email:        "user@example.com",
		PasswordHash: mustHashPW(t, "password123"),
	}

	st.EXPECT().UserByEmail(gomock.Any(), user.Email).Return(user, nil)
	_, _, err := svc.LoginUser(context.Background(), user.Email, "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	st.EXPECT().UserByEmail(gomock.Any(), "ghost@example.com").Return(nil, storage.ErrNotFound)
	_, _, err = svc.LoginUser(context.Background(), "ghost@example.com", "password123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken_OK_Rotates(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:    uuid.New(),
		Email: "user@example.com",
		Role:  models.RoleUser,
	}

	refresh, err := svc.generateRefreshToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	currentHash := hashRefreshToken(refresh)
	user.RefreshTokenHash = &currentHash

	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)

	var newHash string
	st.EXPECT().UpdateRefreshTokenHash(gomock.Any(), user.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash *string) error {
			require.NotNil(t, hash)
			newHash = *hash
			return nil
		})

	pair, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	require.NotEqual(t, refresh, pair.RefreshToken)

	// Ротация: хэш в хранилище соответствует новому токену, старый недействителен.
	require.Equal(t, hashRefreshToken(pair.RefreshToken), newHash)
	require.NotEqual(t, currentHash, newHash)
}

func TestRefreshToken_ReuseDetection_RevokesSession(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:    uuid.New(),
		Email: "user@example.com",
	}

	// Токен валиден по подписи, но в хранилище уже другой хэш (после ротации).
	stolen, err := svc.generateRefreshToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	otherHash := "hash-of-the-rotated-token"
	user.RefreshTokenHash = &otherHash

	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)
	// Повторное использование: сессия отзывается целиком.
	st.EXPECT().UpdateRefreshTokenHash(gomock.Any(), user.ID, gomock.Nil()).Return(nil)

	_, err = svc.RefreshToken(context.Background(), stolen)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_NoActiveSession(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:    uuid.New(),
		Email: "user@example.com",
	}

	refresh, err := svc.generateRefreshToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	// RefreshTokenHash == nil: после logout любой refresh отклоняется.
	st.EXPECT().UserByID(gomock.Any(), user.ID).Return(user, nil)

	_, err = svc.RefreshToken(context.Background(), refresh)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_GarbageToken(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	_, err := svc.RefreshToken(context.Background(), "definitely-not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "user@example.com", Role: models.RoleUser}

	// Access-токен подписан другим секретом и не проходит refresh-контур.
	access, err := svc.generateAccessToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), access)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogout_Idempotent(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	userID := uuid.New()

	st.EXPECT().UpdateRefreshTokenHash(gomock.Any(), userID, gomock.Nil()).Return(nil)
	require.NoError(t, svc.Logout(context.Background(), userID))

	// Повторный logout без активной сессии не является ошибкой.
	st.EXPECT().UpdateRefreshTokenHash(gomock.Any(), userID, gomock.Nil()).Return(storage.ErrNotFound)
	require.NoError(t, svc.Logout(context.Background(), userID))
}

func TestAuthenticate_OK(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "admin@example.com", Role: models.RoleAdmin}

	access, err := svc.generateAccessToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	identity, err := svc.Authenticate(context.Background(), access)
	require.NoError(t, err)
	require.Equal(t, user.ID, identity.UserID)
	require.Equal(t, user.Email, identity.Email)
	require.Equal(t, models.RoleAdmin, identity.Role)
}

func TestAuthenticate_WrongSecretAndExpired(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "user@example.com", Role: models.RoleUser}

	// Токен другого контура (refresh-секрет) отвергается.
	refresh, err := svc.generateRefreshToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), refresh)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Просроченный токен (выпущен далеко в прошлом, leeway 5s).
	expired, err := svc.generateAccessToken(context.Background(), user, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), expired)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestAuthScenario_Register_Refresh_Logout(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	ctx := context.Background()
	pw := "password123"

	// Модельное "хранилище" одной записи пользователя.
	var saved models.User

	st.EXPECT().UserByEmail(gomock.Any(), "flow@example.com").Return(nil, storage.ErrNotFound)
	st.EXPECT().SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			saved = *u
			return nil
		})
	st.EXPECT().UpdateRefreshTokenHash(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, hash *string) error {
			saved.RefreshTokenHash = hash
			return nil
		}).AnyTimes()
	st.EXPECT().UserByID(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID) (*models.User, error) {
			u := saved
			return &u, nil
		}).AnyTimes()

	_, pair1, err := svc.RegisterUser(ctx, "flow@example.com", pw, "Flow")
	require.NoError(t, err)

	// refresh: старая пара ротируется.
	pair2, err := svc.RefreshToken(ctx, pair1.RefreshToken)
	require.NoError(t, err)

	// Старый refresh после ротации отклоняется и рвёт сессию.
	_, err = svc.RefreshToken(ctx, pair1.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Сессия отозвана reuse-детектором: даже новый токен больше не работает.
	_, err = svc.RefreshToken(ctx, pair2.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidToken)

	// Logout идемпотентен и завершает остаток сценария.
	require.NoError(t, svc.Logout(ctx, saved.ID))
	require.Nil(t, saved.RefreshTokenHash)
}

func TestProfile_DeletedUserUnauthorized(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Подписанный токен живёт дольше удалённого аккаунта.
	// Отсутствие пользователя не раскрываем: ошибка как у невалидного токена.
	userID := uuid.New()
	st.EXPECT().UserByID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

	_, err := svc.Profile(context.Background(), userID)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRegisterUser_StorageError(t *testing.T) {
	t.Parallel()

	svc, st, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	boom := errors.New("connection reset")
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(nil, boom)

	_, _, err := svc.RegisterUser(context.Background(), "user@example.com", "password123", "")
	require.ErrorIs(t, err, boom)
}
