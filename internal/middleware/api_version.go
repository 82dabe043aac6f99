package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgErrors "product-catalog/pkg/errors"
	"product-catalog/pkg/response"
)

const (
	VersionParam  = "version"
	APIVersionKey = "api_version"
)

// NormalizeVersion maps "v1", "1", "1.0" and "v1.0" to "1.0".
func NormalizeVersion(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimPrefix(strings.TrimPrefix(v, "v"), "V")
	if v != "" && !strings.Contains(v, ".") {
		v += ".0"
	}
	return v
}

// APIVersion rejects requests whose :version path segment is not supported.
// The normalized version is stored under APIVersionKey.
func (m Middleware) APIVersion() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(VersionParam)
		version := NormalizeVersion(raw)
		if _, ok := m.versions[version]; !ok {
			response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Unsupported API version: "+raw))
			c.Abort()
			return
		}

		c.Set(APIVersionKey, version)
		c.Next()
	}
}

// APIVersionFrom returns the version APIVersion resolved for this request.
func APIVersionFrom(c *gin.Context) string {
	return c.GetString(APIVersionKey)
}
