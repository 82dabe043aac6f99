package http

import (
	"github.com/gin-gonic/gin"

	"product-catalog/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Static segments are registered alongside /:id; gin resolves them first.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	products := rg.Group("/products", mw.RateLimit())
	{
		products.POST("", h.Create)
		products.GET("", h.List)
		products.GET("/paged", h.ListPaged)
		products.GET("/active", h.ListActive)
		products.GET("/active/paged", h.ListActivePaged)
		products.GET("/search", h.Search)
		products.GET("/category/:category", h.ListByCategory)
		products.GET("/:id", h.Detail)
		products.PUT("/:id", h.Update)
		products.DELETE("/:id", h.Delete)
	}
}
