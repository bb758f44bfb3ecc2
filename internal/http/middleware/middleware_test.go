package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/creative-network/internal/domain/entity"
	"github.com/ignatzorin/creative-network/internal/http/middleware"
	"github.com/ignatzorin/creative-network/internal/pkg/apperror"
	"github.com/ignatzorin/creative-network/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func issueToken(t *testing.T, tokens *service.TokenManager) (string, uuid.UUID) {
	t.Helper()
	user, err := entity.NewUser("ws@example.com", "Tester", "hash")
	require.NoError(t, err)
	token, _, err := tokens.Generate(user)
	require.NoError(t, err)
	return token, user.ID
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func actorEcho(c *gin.Context) {
	actor := middleware.CurrentActor(c)
	if actor == nil {
		c.String(http.StatusOK, "anonymous")
		return
	}
	c.String(http.StatusOK, actor.ID.String())
}

func TestAuthMiddleware(t *testing.T) {
	tokens := service.NewTokenManager("test-secret-test-secret-test-secret", time.Hour)
	token, userID := issueToken(t, tokens)

	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(tokens), actorEcho)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"UNAUTHORIZED"`)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID.String(), w.Body.String())
}

func TestOptionalAuth(t *testing.T) {
	tokens := service.NewTokenManager("test-secret-test-secret-test-secret", time.Hour)
	token, userID := issueToken(t, tokens)

	r := gin.New()
	r.GET("/feed", middleware.OptionalAuth(tokens), actorEcho)

	assert.Equal(t, "anonymous", serve(r, httptest.NewRequest(http.MethodGet, "/feed", nil)).Body.String())

	req := httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Authorization", "Bearer broken")
	w := serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/feed", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	assert.Equal(t, userID.String(), serve(r, req).Body.String())
}

func TestRateLimitMiddleware(t *testing.T) {
	store, err := middleware.NewLimiterStore(nil, "test")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/ping", middleware.RateLimitMiddleware(store, 2, time.Minute), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	first := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil)).Code)

	third := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Contains(t, third.Body.String(), "RATE_LIMITED")
}

func TestUUIDValidator(t *testing.T) {
	r := gin.New()
	r.GET("/posts/:id", middleware.UUIDValidator("id"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusBadRequest, serve(r, httptest.NewRequest(http.MethodGet, "/posts/not-a-uuid", nil)).Code)
	assert.Equal(t, http.StatusNoContent, serve(r, httptest.NewRequest(http.MethodGet, "/posts/"+uuid.NewString(), nil)).Code)
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORSMiddleware([]string{"http://localhost:3000"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/missing", func(c *gin.Context) {
		_ = c.Error(apperror.ErrPostNotFound)
	})
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(errors.New("driver exploded"))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "driver exploded")
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	_, err := uuid.Parse(w.Header().Get(middleware.RequestIDHeader))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", serve(r, req).Header().Get(middleware.RequestIDHeader))
}
