package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterInMemory(t *testing.T) {
	rl := NewRateLimiter(nil)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.Use(rl.Middleware(ContactRateLimitConfig(2, time.Minute)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(r, "GET", "/", nil).Code)
	w := perform(r, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = perform(r, "GET", "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	// next window
	now = now.Add(61 * time.Second)
	assert.Equal(t, http.StatusOK, perform(r, "GET", "/", nil).Code)
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(nil)
	now := time.Now()
	rl.now = func() time.Time { return now }

	count, _ := rl.Hit(context.Background(), "k", DefaultRateLimitConfig(1, time.Second))
	require.Equal(t, 1, count)

	now = now.Add(2 * time.Second)
	rl.sweep()
	_, ok := rl.store.Load("k")
	assert.False(t, ok)
}

func TestRateLimiterFallsBackWhenRedisIsDown(t *testing.T) {
	client := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	r := gin.New()
	r.Use(NewRateLimiter(client).Middleware(ContactRateLimitConfig(1, time.Minute)))
	r.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(r, "POST", "/", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, perform(r, "POST", "/", nil).Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { response.Success(c, http.StatusOK, "ok", nil) })

	w := perform(r, "GET", "/", nil)
	_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	incoming := uuid.NewString()
	w = perform(r, "GET", "/", map[string]string{RequestIDHeader: incoming})
	assert.Equal(t, incoming, w.Header().Get(RequestIDHeader))
	assert.Contains(t, w.Body.String(), incoming)

	w = perform(r, "GET", "/", map[string]string{RequestIDHeader: "<script>"})
	assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"https://agustincassani.com"}, true))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, "OPTIONS", "/", map[string]string{"Origin": "https://agustincassani.com"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://agustincassani.com", w.Header().Get("Access-Control-Allow-Origin"))

	w = perform(r, "OPTIONS", "/", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = perform(r, "GET", "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/app", func(c *gin.Context) { _ = c.Error(apperror.NotFound("Nope")) })
	r.GET("/raw", func(c *gin.Context) { _ = c.Error(errors.New("db password leaked")) })

	w := perform(r, "GET", "/app", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Nope")

	w = perform(r, "GET", "/raw", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestStaticCacheControl(t *testing.T) {
	r := gin.New()
	r.Use(StaticCacheControl())
	r.GET("/*path", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, ImmutableAssetCache, perform(r, "GET", "/img/logo.SVG", nil).Header().Get("Cache-Control"))
	assert.Empty(t, perform(r, "GET", "/v1/content", nil).Header().Get("Cache-Control"))
}

func TestAdminAuth(t *testing.T) {
	const secret = "s3cret"
	r := gin.New()
	r.Use(AdminAuth(secret))
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(string(domain.KeyAdminSubject)))
	})

	assert.Equal(t, http.StatusUnauthorized, perform(r, "GET", "/", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, "GET", "/", map[string]string{"Authorization": "Bearer junk"}).Code)

	viewer, err := auth.IssueAdminToken(secret, "guest", "viewer", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, perform(r, "GET", "/", map[string]string{"Authorization": "Bearer " + viewer}).Code)

	admin, err := auth.IssueAdminToken(secret, "owner", domain.RoleAdmin, time.Hour)
	require.NoError(t, err)
	w := perform(r, "GET", "/", map[string]string{"Authorization": "Bearer " + admin})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "owner", w.Body.String())
}

func TestAdminAuthWithoutSecret(t *testing.T) {
	r := gin.New()
	r.Use(AdminAuth(""))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	assert.Equal(t, http.StatusServiceUnavailable, perform(r, "GET", "/", nil).Code)
}

type recordingAnalytics struct {
	paths chan string
}

func (a *recordingAnalytics) RecordVisit(ctx context.Context, clientIP, path, userAgent string) error {
	a.paths <- path
	return nil
}

func (a *recordingAnalytics) GetStats(ctx context.Context) (*domain.VisitStats, error) {
	return &domain.VisitStats{}, nil
}

func (a *recordingAnalytics) ExportStats(ctx context.Context, format string) ([]byte, string, error) {
	return nil, "", nil
}

func (a *recordingAnalytics) Enabled() bool { return true }

func TestVisitTracker(t *testing.T) {
	analytics := &recordingAnalytics{paths: make(chan string, 4)}
	r := gin.New()
	r.Use(VisitTracker(analytics))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	perform(r, "GET", "/missing", nil)
	perform(r, "GET", "/ok", nil)

	select {
	case path := <-analytics.paths:
		assert.Equal(t, "/ok", path)
	case <-time.After(time.Second):
		t.Fatal("visit was not recorded")
	}
	assert.Len(t, analytics.paths, 0)
}
