package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateful/restaurant-admin/internal/models"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := IssueToken(testSecret, "owner@cafe.test", models.RoleRestaurant, time.Hour)
	require.NoError(t, err)

	claims, err := ResolveToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "owner@cafe.test", claims.Email)
	assert.Equal(t, models.RoleRestaurant, claims.Role)
}

func TestResolveTokenWrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, "owner@cafe.test", models.RoleRestaurant, time.Hour)
	require.NoError(t, err)

	_, err = ResolveToken("other-secret", token)
	assert.Error(t, err)
}

func TestResolveTokenExpired(t *testing.T) {
	token, err := IssueToken(testSecret, "owner@cafe.test", models.RoleRestaurant, -time.Minute)
	require.NoError(t, err)

	_, err = ResolveToken(testSecret, token)
	assert.Error(t, err)
}

func TestResolveTokenGarbage(t *testing.T) {
	_, err := ResolveToken(testSecret, "not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hashed, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)

	assert.True(t, CheckPassword(hashed, "hunter22"))
	assert.False(t, CheckPassword(hashed, "hunter23"))
}

func TestNewResetToken(t *testing.T) {
	a, err := NewResetToken()
	require.NoError(t, err)
	b, err := NewResetToken()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), 40)
	assert.False(t, strings.ContainsAny(a, "+/="))
}

func TestNewRandomPassword(t *testing.T) {
	p, err := NewRandomPassword()
	require.NoError(t, err)
	assert.Len(t, p, 12)

	for _, r := range p {
		assert.True(t, strings.ContainsRune(passwordAlphabet, r))
	}
}
