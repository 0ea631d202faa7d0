package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtract(t *testing.T) {
	token, err := GenerateToken("user-1", "jane@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestExtractRejectsGarbage(t *testing.T) {
	_, err := ExtractIDFromToken("not-a-token")
	require.Error(t, err)
}

func TestExtractRejectsExpiredToken(t *testing.T) {
	token, err := GenerateToken("user-1", "jane@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	require.Error(t, err)
}

func TestExtractRejectsEmptySubject(t *testing.T) {
	token, err := GenerateToken("", "jane@example.com", time.Hour)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	require.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	h := HashToken("some-token")
	assert.Len(t, h, 64)
	assert.Equal(t, h, HashToken("some-token"))
	assert.NotEqual(t, h, HashToken("other-token"))
}
