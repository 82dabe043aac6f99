package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"product-catalog/internal/middleware"
	productHTTP "product-catalog/internal/product/delivery/http"
	productUC "product-catalog/internal/product/usecase"
)

// setupProductDomain wires repository → usecase → handler and registers
// /api/{version}/products.
func (srv HTTPServer) setupProductDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := productUC.New(srv.productRepo, srv.l)
	h := productHTTP.New(srv.l, uc)

	productHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Product domain registered")
	return nil
}
