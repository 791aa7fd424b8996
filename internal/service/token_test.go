package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/fxlibrary/fxlibrary/internal/models"
)

func TestValidateAccessToken_Claims(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{
		ID:    uuid.New(),
		Email: "claims@example.com",
		Role:  models.RoleAdmin,
	}

	token, err := svc.generateAccessToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	identity, err := svc.validateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, identity.UserID)
	require.Equal(t, user.Email, identity.Email)
	require.Equal(t, models.RoleAdmin, identity.Role)
}

func TestValidateAccessToken_WrongIssuer(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	// Токен выпущен сервисом с тем же секретом, но другим issuer.
	otherCfg := testCfg()
	otherCfg.Auth.Issuer = "someone-else"
	other := &Service{cfg: otherCfg}

	user := &models.User{ID: uuid.New(), Email: "user@example.com", Role: models.RoleUser}

	token, err := other.generateAccessToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.validateAccessToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateAccessToken_WrongAudience(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	otherCfg := testCfg()
	otherCfg.Auth.Audience = []string{"some-other-app"}
	other := &Service{cfg: otherCfg}

	user := &models.User{ID: uuid.New(), Email: "user@example.com", Role: models.RoleUser}

	token, err := other.generateAccessToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	_, err = svc.validateAccessToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRefreshToken_OK(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "user@example.com"}

	token, err := svc.generateRefreshToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	uid, err := svc.validateRefreshToken(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)
}

func TestGenerateRefreshToken_CarriesIdentityClaims(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "claims@example.com", Role: models.RoleAdmin}

	token, err := svc.generateRefreshToken(context.Background(), user, time.Now().UTC())
	require.NoError(t, err)

	// Refresh несёт ту же тройку uid+email+role, что и access-токен.
	var claims refreshClaims
	_, err = jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(svc.cfg.Auth.RefreshSecret), nil
	})
	require.NoError(t, err)
	require.Equal(t, user.ID.String(), claims.UserID)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, string(models.RoleAdmin), claims.Role)
}

func TestValidateRefreshToken_Expired(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "user@example.com"}

	// Выдан раньше, чем TTL+leeway назад.
	issuedAt := time.Now().UTC().Add(-svc.cfg.Auth.RefreshTokenTTL - time.Minute)
	token, err := svc.generateRefreshToken(context.Background(), user, issuedAt)
	require.NoError(t, err)

	_, err = svc.validateRefreshToken(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestGenerateRefreshToken_UniquePerIssue(t *testing.T) {
	t.Parallel()

	svc, _, _, _, ctrl := newSvc(t)
	defer ctrl.Finish()

	user := &models.User{ID: uuid.New(), Email: "user@example.com"}
	now := time.Now().UTC()

	// Одинаковые user и момент выпуска, но jti разный: токены не совпадают.
	t1, err := svc.generateRefreshToken(context.Background(), user, now)
	require.NoError(t, err)
	t2, err := svc.generateRefreshToken(context.Background(), user, now)
	require.NoError(t, err)

	require.NotEqual(t, t1, t2)
	require.NotEqual(t, hashRefreshToken(t1), hashRefreshToken(t2))
}

func TestHashRefreshToken_Deterministic(t *testing.T) {
	t.Parallel()

	h1 := hashRefreshToken("some.jwt.token")
	h2 := hashRefreshToken("some.jwt.token")
	require.Equal(t, h1, h2)
	require.NotEqual(t, h1, hashRefreshToken("another.jwt.token"))
	// base64url без паддинга, 32 байта sha256 -> 43 символа.
	require.Len(t, h1, 43)
	require.NotContains(t, h1, "=")
}
