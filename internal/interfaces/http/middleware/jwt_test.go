package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travelworks/backend/internal/domain/identity"
	"github.com/travelworks/backend/internal/infrastructure/auth"
	"github.com/travelworks/backend/internal/infrastructure/config"
)

func newTestEngine(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuth(JWTConfig{
		JWTService: jwtService,
		SkipPaths:  []string{"/api/v1/auth/login"},
	}))
	engine.GET("/api/v1/bookings", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetJWTUserID(c), "role": GetJWTRole(c)})
	})
	engine.POST("/api/v1/auth/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine
}

func newTestJWTService(expiration time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		Expiration: expiration,
		Issuer:     "travelworks-test",
	})
}

func TestJWTAuth(t *testing.T) {
	jwtService := newTestJWTService(time.Hour)
	engine := newTestEngine(jwtService)

	user, err := identity.NewUser("agent1", "s3cretpass", "Agent One", identity.RoleAgent)
	require.NoError(t, err)

	t.Run("allows request with valid token", func(t *testing.T) {
		token, _, err := jwtService.Issue(user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), user.ID.String())
		assert.Contains(t, rec.Body.String(), "agent")
	})

	t.Run("rejects request without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects malformed authorization header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expiredService := newTestJWTService(-time.Minute)
		token, _, err := expiredService.Issue(user)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "ERR_TOKEN_EXPIRED")
	})

	t.Run("skips configured public paths", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
