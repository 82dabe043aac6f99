package http

import (
	"github.com/gin-gonic/gin"

	"product-catalog/internal/product"
	"product-catalog/pkg/log"
)

// Handler is the public interface for the product HTTP delivery layer.
type Handler interface {
	Create(c *gin.Context)
	Detail(c *gin.Context)
	List(c *gin.Context)
	ListPaged(c *gin.Context)
	ListByCategory(c *gin.Context)
	ListActive(c *gin.Context)
	ListActivePaged(c *gin.Context)
	Search(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc product.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the product domain.
func New(l log.Logger, uc product.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
