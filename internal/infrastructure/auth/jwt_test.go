package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelworks/backend/internal/domain/identity"
	"github.com/travelworks/backend/internal/infrastructure/config"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-at-least-32-characters-long",
		Expiration: expiration,
		Issuer:     "travelworks-backend",
	})
}

func newTestUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("fatima", "some-password", "Fatima Al-Zahrani", identity.RoleAgent)
	require.NoError(t, err)
	return user
}

func TestJWTService(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		svc := newTestService(time.Hour)
		user := newTestUser(t)

		token, expiresAt, err := svc.Issue(user)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

		claims, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, "fatima", claims.Username)
		assert.Equal(t, "agent", claims.Role)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		svc := newTestService(-time.Minute)
		token, _, err := svc.Issue(newTestUser(t))
		require.NoError(t, err)

		_, err = svc.Verify(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("rejects token signed with other secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:     "a-completely-different-signing-secret",
			Expiration: time.Hour,
			Issuer:     "travelworks-backend",
		})
		token, _, err := other.Issue(newTestUser(t))
		require.NoError(t, err)

		_, err = newTestService(time.Hour).Verify(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := newTestService(time.Hour).Verify("not.a.token")

		assert.Error(t, err)
	})
}
