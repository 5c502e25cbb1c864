package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"venuebook/config"
	"venuebook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const adminTestTokenDuration = time.Hour

func newGuardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/guarded", AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestAdminAuthDisabledWhenUnconfigured(t *testing.T) {
	config.AppConfig.AdminKeyHash = ""
	r := newGuardedRouter()

	req := httptest.NewRequest(http.MethodPatch, "/guarded", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuthRejectsMissingToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)
	config.AppConfig.AdminKeyHash = string(hash)
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.AdminKeyHash = "" })

	r := newGuardedRouter()

	req := httptest.NewRequest(http.MethodPatch, "/guarded", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuthAcceptsValidToken(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)
	config.AppConfig.AdminKeyHash = string(hash)
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.AdminKeyHash = "" })

	token, err := utils.GenerateToken("admin", adminTestTokenDuration)
	require.NoError(t, err)

	r := newGuardedRouter()
	req := httptest.NewRequest(http.MethodPatch, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminAuthRejectsForeignSubject(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.DefaultCost)
	require.NoError(t, err)
	config.AppConfig.AdminKeyHash = string(hash)
	config.AppConfig.JWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.AdminKeyHash = "" })

	token, err := utils.GenerateToken("someone-else", adminTestTokenDuration)
	require.NoError(t, err)

	r := newGuardedRouter()
	req := httptest.NewRequest(http.MethodPatch, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
