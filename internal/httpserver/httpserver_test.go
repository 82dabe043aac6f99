package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"product-catalog/internal/middleware"
	"product-catalog/internal/product/repository"
	"product-catalog/internal/product/repository/memory"
	"product-catalog/pkg/log"
	"product-catalog/pkg/response"
)

type downRepo struct {
	repository.Repository
}

func (downRepo) Ping(ctx context.Context) error {
	return errors.New("dial tcp: connection refused")
}

func testConfig(repo repository.Repository) Config {
	return Config{
		Logger:      log.NewNop(),
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Middleware: middleware.Config{
			SupportedVersions: []string{"1.0"},
		},
		ProductRepository: repo,
	}
}

func serve(t *testing.T, srv *HTTPServer, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	var resp response.Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestNew(t *testing.T) {
	tcs := map[string]struct {
		mutate  func(*Config)
		wantErr string
	}{
		"missing repository": {func(c *Config) { c.ProductRepository = nil }, "product repository is required"},
		"missing port":       {func(c *Config) { c.Port = 0 }, "port is required"},
		"missing mode":       {func(c *Config) { c.Mode = "" }, "mode is required"},
		"missing versions":   {func(c *Config) { c.Middleware.SupportedVersions = nil }, "at least one API version is required"},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig(memory.New())
			tc.mutate(&cfg)
			_, err := New(log.NewNop(), cfg)
			assert.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv, err := New(log.NewNop(), testConfig(memory.New()))
	require.NoError(t, err)

	for _, path := range []string{"/health", "/ready", "/live"} {
		t.Run(path, func(t *testing.T) {
			w, resp := serve(t, srv, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.True(t, resp.Success)
			assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
		})
	}

	t.Run("Not Ready", func(t *testing.T) {
		srv, err := New(log.NewNop(), testConfig(downRepo{Repository: memory.New()}))
		require.NoError(t, err)

		w, resp := serve(t, srv, http.MethodGet, "/ready", "")
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.False(t, resp.Success)
	})
}

func TestProductRoundTrip(t *testing.T) {
	srv, err := New(log.NewNop(), testConfig(memory.New()))
	require.NoError(t, err)

	w, resp := serve(t, srv, http.MethodPost, "/api/v1/products",
		`{"name":"iPhone 15","description":"Latest smartphone","price":999.99,"quantity":10,"category":"Electronics"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Product created successfully", resp.Message)

	w, resp = serve(t, srv, http.MethodGet, "/api/1.0/products/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Success", resp.Message)

	w, resp = serve(t, srv, http.MethodGet, "/api/v2/products/1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unsupported API version: v2", resp.Message)
}

func TestPanicRecovery(t *testing.T) {
	srv, err := New(log.NewNop(), testConfig(memory.New()))
	require.NoError(t, err)
	srv.gin.GET("/boom", func(c *gin.Context) {
		panic("index out of range")
	})

	w, resp := serve(t, srv, http.MethodGet, "/boom", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, "An unexpected error occurred: index out of range", resp.Message)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}
