package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "product-catalog/pkg/errors"
	"product-catalog/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Product Catalog API"
	HealthVersion = "1.0.0"
	ServiceName   = "product-catalog"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, "", gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready only when the product store answers a ping.
// @Summary Readiness Check
// @Description Check if the API can reach its store
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Store unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.productRepo.Ping(ctx); err != nil {
		srv.l.Errorf(ctx, "httpserver.readyCheck.Ping: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Store unavailable"))
		return
	}

	response.OK(c, "", gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, "", gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
