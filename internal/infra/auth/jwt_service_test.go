package auth

import (
	"testing"
	"time"

	"igpress/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string) *jwtService {
	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	concrete, ok := svc.(*jwtService)
	require.True(t, ok)

	return concrete
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	require.Error(t, err)
}

func TestJWTService_RoundTrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	token, err := svc.GenerateSessionToken("fb-1", "provider-token")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)

	require.NoError(t, err)
	assert.Equal(t, "fb-1", claims.FacebookID)
	assert.Equal(t, "provider-token", claims.ProviderToken)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	minter := newTestTokenService(t, "secret-a")
	verifier := newTestTokenService(t, "secret-b")

	token, err := minter.GenerateSessionToken("fb-1", "provider-token")
	require.NoError(t, err)

	claims, err := verifier.ValidateSessionToken(token)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")
	svc.sessionTTL = -time.Minute

	token, err := svc.GenerateSessionToken("fb-1", "provider-token")
	require.NoError(t, err)

	claims, err := svc.ValidateSessionToken(token)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	claims, err := svc.ValidateSessionToken("not-a-jwt")

	require.Error(t, err)
	assert.Nil(t, claims)
}

// A token signed with "none" must not pass even if its claims look right.
func TestJWTService_RejectsUnsignedToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub":      "fb-1",
		"fb_token": "provider-token",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := svc.ValidateSessionToken(token)

	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsMissingProviderToken(t *testing.T) {
	svc := newTestTokenService(t, "test-secret")

	bare := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "fb-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := bare.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	claims, err := svc.ValidateSessionToken(token)

	require.Error(t, err)
	assert.Nil(t, claims)
}
