package utils

import (
	"testing"
	"time"

	"careconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("user-123", models.RoleProvider, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, role, err := ExtractIdentityFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", sub)
	assert.Equal(t, models.RoleProvider, role)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("user-123", models.RoleSeeker, -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractIdentityFromToken(token)
	assert.Error(t, err)
}

func TestGarbageTokenIsRejected(t *testing.T) {
	_, _, err := ExtractIdentityFromToken("not.a.token")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	token, err := GenerateToken("user-123", models.RoleSeeker, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, HashToken(token), HashToken(token))
	assert.Len(t, HashToken(token), 64)
	assert.NotEqual(t, HashToken(token), HashToken(token+"x"))
}
