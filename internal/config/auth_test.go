package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:     "test-secret",
		TokenLifetime: 30 * time.Minute,
		BcryptCost:    4,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	auth := testAuthConfig()

	token, err := auth.CreateAccessToken("alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := auth.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestAccessTokenWrongSecret(t *testing.T) {
	auth := testAuthConfig()

	token, err := auth.CreateAccessToken("alice@example.com")
	require.NoError(t, err)

	other := testAuthConfig()
	other.JWTSecret = "different-secret"

	_, err = other.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestAccessTokenExpired(t *testing.T) {
	auth := testAuthConfig()
	auth.TokenLifetime = -time.Minute

	token, err := auth.CreateAccessToken("alice@example.com")
	require.NoError(t, err)

	_, err = auth.ParseAccessToken(token)
	assert.Error(t, err)
}

func TestAccessTokenGarbage(t *testing.T) {
	auth := testAuthConfig()

	_, err := auth.ParseAccessToken("not.a.token")
	assert.Error(t, err)
}

func TestCreateAccessTokenRequiresSecret(t *testing.T) {
	auth := testAuthConfig()
	auth.JWTSecret = ""

	_, err := auth.CreateAccessToken("alice@example.com")
	assert.Error(t, err)
}

func TestPasswordHashAndVerify(t *testing.T) {
	auth := testAuthConfig()

	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)

	assert.True(t, auth.VerifyPassword("s3cret-password", hash))
	assert.False(t, auth.VerifyPassword("wrong-password", hash))
	assert.False(t, auth.VerifyPassword("s3cret-password", "not-a-hash"))
}
