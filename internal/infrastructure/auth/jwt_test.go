package auth

import (
	"testing"
	"time"

	"github.com/tonsuimining/platform/internal/domain/entity"
	errs "github.com/tonsuimining/platform/internal/domain/error"
	timeadapter "github.com/tonsuimining/platform/internal/infrastructure/adapter/time"
	"github.com/tonsuimining/platform/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(secret string, expiry time.Duration) *TokenManager {
	return NewTokenManager(&config.AuthConfig{
		Secret:      secret,
		Issuer:      "tonsuimining-test",
		TokenExpiry: expiry,
	}, timeadapter.NewRealTimeProvider())
}

func TestTokenRoundTrip(t *testing.T) {
	m := newTestManager("test-secret", time.Hour)

	token, err := m.Issue(7, entity.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, "tonsuimining-test", claims.Issuer)
}

func TestParseRejectsBadTokens(t *testing.T) {
	m := newTestManager("test-secret", time.Hour)

	t.Run("Garbage token", func(t *testing.T) {
		claims, err := m.Parse("not-a-token")
		assert.Equal(t, errs.ErrUnauthenticated, err)
		assert.Nil(t, claims)
	})

	t.Run("Token signed with another secret", func(t *testing.T) {
		other := newTestManager("different-secret", time.Hour)
		token, err := other.Issue(7, entity.RoleUser)
		require.NoError(t, err)

		claims, err := m.Parse(token)
		assert.Equal(t, errs.ErrUnauthenticated, err)
		assert.Nil(t, claims)
	})

	t.Run("Expired token", func(t *testing.T) {
		expired := newTestManager("test-secret", -time.Hour)
		token, err := expired.Issue(7, entity.RoleUser)
		require.NoError(t, err)

		claims, err := m.Parse(token)
		assert.Equal(t, errs.ErrUnauthenticated, err)
		assert.Nil(t, claims)
	})
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(4)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, h.Compare(hash, "s3cret-pass"))
	assert.Error(t, h.Compare(hash, "wrong-pass"))
}
