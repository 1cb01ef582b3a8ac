package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MinataFumi123/college-tour-website/config"
	"github.com/MinataFumi123/college-tour-website/utils"
)

func authTestRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(ContextUserID)})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: []byte("s"), TokenValidity: time.Hour}
	r := authTestRouter(cfg)

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: []byte("s"), TokenValidity: time.Hour}
	r := authTestRouter(cfg)

	w := doGet(r, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: []byte("s"), TokenValidity: time.Hour}
	r := authTestRouter(cfg)

	token, err := utils.GenerateToken("abc123", cfg.JWTSecret, cfg.TokenValidity)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc123")
}

func TestDevBypassSubstitutesSyntheticIdentity(t *testing.T) {
	cfg := &config.Config{JWTSecret: []byte("s"), TokenValidity: time.Hour, DevAuthBypass: true}
	r := authTestRouter(cfg)

	w := doGet(r, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), DevUserID)
}

func TestDevBypassDoesNotSkipTokenValidation(t *testing.T) {
	// A presented token is still verified even with the bypass enabled.
	cfg := &config.Config{JWTSecret: []byte("s"), TokenValidity: time.Hour, DevAuthBypass: true}
	r := authTestRouter(cfg)

	w := doGet(r, "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
