package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog/pkg/log"
	"product-catalog/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestNormalizeVersion(t *testing.T) {
	tcs := map[string]string{
		"v1":   "1.0",
		"V1":   "1.0",
		"1":    "1.0",
		"1.0":  "1.0",
		"v1.0": "1.0",
		"v2":   "2.0",
		"2.1":  "2.1",
		"":     "",
	}
	for in, want := range tcs {
		assert.Equal(t, want, NormalizeVersion(in), in)
	}
}

func TestAPIVersion(t *testing.T) {
	mw := New(log.NewNop(), Config{SupportedVersions: []string{"1.0"}})

	r := gin.New()
	r.GET("/api/:version/ping", mw.APIVersion(), func(c *gin.Context) {
		c.String(http.StatusOK, APIVersionFrom(c))
	})

	for _, v := range []string{"v1", "1", "1.0", "v1.0"} {
		t.Run("Supported "+v, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/"+v+"/ping", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "1.0", w.Body.String())
		})
	}

	t.Run("Unsupported", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v3/ping", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decode(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Unsupported API version: v3", resp.Message)
	})
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), Config{})

	var seen string
	r := gin.New()
	r.Use(mw.RequestID())
	r.GET("/", func(c *gin.Context) {
		seen = log.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	t.Run("Generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(HeaderRequestID))
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		mw := New(log.NewNop(), Config{RateLimit: RateLimitConfig{Enabled: false, RequestsPerMin: 1}})
		r := gin.New()
		r.GET("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})

	t.Run("Exceeded", func(t *testing.T) {
		// one request per minute, burst of one
		mw := New(log.NewNop(), Config{RateLimit: RateLimitConfig{Enabled: true, RequestsPerMin: 1}})
		r := gin.New()
		r.GET("/", mw.RateLimit(), func(c *gin.Context) { c.Status(http.StatusOK) })

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.False(t, decode(t, w).Success)
	})

	t.Run("Per Client", func(t *testing.T) {
		rl := newRateLimiter(1)
		assert.True(t, rl.Allow("10.0.0.1"))
		assert.False(t, rl.Allow("10.0.0.1"))
		assert.True(t, rl.Allow("10.0.0.2"))
	})
}

// recordLogger keeps every line logged at info, warn or error.
type recordLogger struct {
	log.Logger
	lines []string
}

func (r *recordLogger) Info(ctx context.Context, arg ...any) { r.record(arg...) }
func (r *recordLogger) Warn(ctx context.Context, arg ...any) { r.record(arg...) }
func (r *recordLogger) Error(ctx context.Context, arg ...any) { r.record(arg...) }
func (r *recordLogger) record(arg ...any) {
	for _, a := range arg {
		r.lines = append(r.lines, fmt.Sprint(a))
	}
}

func TestLoggerIncludesAPIVersion(t *testing.T) {
	rec := &recordLogger{Logger: log.NewNop()}
	mw := New(rec, Config{SupportedVersions: []string{"1.0"}})

	r := gin.New()
	r.Use(mw.Logger())
	r.GET("/api/:version/ping", mw.APIVersion(), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Len(t, rec.lines, 2)
	assert.True(t, strings.HasPrefix(rec.lines[0], "GET /api/v1/ping 200 "), rec.lines[0])
	assert.True(t, strings.HasSuffix(rec.lines[0], " api=1.0"), rec.lines[0])
	assert.NotContains(t, rec.lines[1], "api=")
}

func TestLogger(t *testing.T) {
	mw := New(log.NewNop(), Config{})
	r := gin.New()
	r.Use(mw.Logger())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok?x=1", "/boom", "/missing"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(context.Background())
		assert.NotPanics(t, func() { r.ServeHTTP(w, req) })
	}
}
