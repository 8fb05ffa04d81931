package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/lunaroj/auth-service/internal/config"
)

func testAuthCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "unit-test-secret",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
		Issuer:          "lunaroj",
	}
}

func tokenOnlySvc() *Service {
	return &Service{cfg: testAuthCfg()}
}

func TestIssueToken_AndParse_OK(t *testing.T) {
	t.Parallel()

	svc := tokenOnlySvc()
	ctx := context.Background()
	now := time.Now().UTC()
	jti := newTokenID()

	signed, err := svc.issueToken(ctx, 42, "alice", "user", kindAccess, jti, svc.cfg.AccessTokenTTL, now)
	require.NoError(t, err)

	claims, err := svc.parseToken(signed, kindAccess)
	require.NoError(t, err)

	uid, err := claims.UserID()
	require.NoError(t, err)
	require.Equal(t, int64(42), uid)
	require.Equal(t, "alice", claims.Username)
	require.Equal(t, "user", claims.Role)
	require.Equal(t, jti, claims.ID)
	require.Equal(t, svc.cfg.Issuer, claims.Issuer)
}

func TestNewTokenID_NoDashes(t *testing.T) {
	t.Parallel()

	id := newTokenID()
	require.Len(t, id, 32)
	require.NotContains(t, id, "-")
	require.NotEqual(t, id, newTokenID())
}

func TestParseToken_WrongKind(t *testing.T) {
	t.Parallel()

	svc := tokenOnlySvc()
	ctx := context.Background()
	now := time.Now().UTC()

	refresh, err := svc.issueToken(ctx, 1, "bob", "user", kindRefresh, newTokenID(), svc.cfg.RefreshTokenTTL, now)
	require.NoError(t, err)

	_, err = svc.parseToken(refresh, kindAccess)
	require.ErrorIs(t, err, ErrTokenInvalid)

	access, err := svc.issueToken(ctx, 1, "bob", "user", kindAccess, newTokenID(), svc.cfg.AccessTokenTTL, now)
	require.NoError(t, err)

	_, err = svc.parseToken(access, kindRefresh)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	svc := tokenOnlySvc()
	ctx := context.Background()

	// выпущен час назад с TTL в одну минуту.
	signed, err := svc.issueToken(ctx, 1, "bob", "user", kindAccess, newTokenID(), time.Minute, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)

	_, err = svc.parseToken(signed, kindAccess)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_WrongAlg_WrongIssuer_WrongSecret(t *testing.T) {
	t.Parallel()

	svc := tokenOnlySvc()
	now := time.Now().UTC()

	base := jwt.RegisteredClaims{
		ID:        newTokenID(),
		Subject:   "1",
		Issuer:    svc.cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	t.Run("wrong alg", func(t *testing.T) {
		claims := authClaims{Username: "bob", Kind: kindAccess, RegisteredClaims: base}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(svc.cfg.JWTSecret))
		require.NoError(t, err)

		_, err = svc.parseToken(signed, kindAccess)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := authClaims{Username: "bob", Kind: kindAccess, RegisteredClaims: base}
		claims.Issuer = "another-issuer"
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(svc.cfg.JWTSecret))
		require.NoError(t, err)

		_, err = svc.parseToken(signed, kindAccess)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("wrong secret", func(t *testing.T) {
		claims := authClaims{Username: "bob", Kind: kindAccess, RegisteredClaims: base}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = svc.parseToken(signed, kindAccess)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("not a token", func(t *testing.T) {
		_, err := svc.parseToken("garbage", kindAccess)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("non-numeric subject", func(t *testing.T) {
		claims := authClaims{Username: "bob", Kind: kindAccess, RegisteredClaims: base}
		claims.Subject = "not-a-number"
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(svc.cfg.JWTSecret))
		require.NoError(t, err)

		_, err = svc.parseToken(signed, kindAccess)
		require.ErrorIs(t, err, ErrTokenInvalid)
	})
}
