package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tutorly/config"
	"tutorly/models"
)

func init() {
	config.AppConfig.JWTSecret = "app-test-secret"
}

func TestAppTokenRoundTrip(t *testing.T) {
	identity := models.Identity{
		ID:        "user-1",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		AvatarURL: "https://cdn.tutorly.test/ada.png",
	}

	token, err := GenerateAppToken(identity, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resolved, err := ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, identity, *resolved)
}

func TestAppTokenOmitsEmptyAvatar(t *testing.T) {
	token, err := GenerateAppToken(models.Identity{ID: "user-2", Name: "Grace"}, time.Hour)
	require.NoError(t, err)

	resolved, err := ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.Empty(t, resolved.AvatarURL)
}

func TestExpiredAppTokenIsRejected(t *testing.T) {
	token, err := GenerateAppToken(models.Identity{ID: "user-3"}, -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	_, err := ExtractIdentityFromToken("not.a.token")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
	assert.Len(t, HashToken("abc"), 64)
}
