package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(TokenClaims{UserID: 3, Role: "hotel_admin", HotelID: 9})
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "hotel_admin", claims.Role)
	assert.Equal(t, uint(9), claims.HotelID)
}

func TestTokenOmitsHotelForGlobalAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(TokenClaims{UserID: 1, Role: "admin"})
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(0), claims.HotelID)
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateToken(TokenClaims{UserID: 1, Role: "admin"})
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseToken("garbage")
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateToken(TokenClaims{UserID: 2, Role: "hotel_reception", HotelID: 4})
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}
