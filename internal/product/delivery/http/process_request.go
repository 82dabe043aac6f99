package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"product-catalog/internal/product"
)

// processProductReq binds the create/update JSON body.
func (h *handler) processProductReq(c *gin.Context) (productReq, error) {
	var req productReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, product.NewInvalidArgumentError(errMalformedBody, err.Error())
	}
	return req, nil
}

// processIDParam parses the :id path segment.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, product.NewInvalidArgumentError(errInvalidID, raw)
	}
	return id, nil
}

// processPagedReq binds paging query parameters.
func (h *handler) processPagedReq(c *gin.Context) (pagedReq, error) {
	var req pagedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, product.NewInvalidArgumentError(errInvalidQuery, err.Error())
	}
	return req, nil
}

func (h *handler) processCategoryReq(c *gin.Context) (categoryReq, error) {
	req := categoryReq{Category: c.Param("category")}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, product.NewInvalidArgumentError(errInvalidQuery, err.Error())
	}
	return req, nil
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, product.NewInvalidArgumentError(errInvalidQuery, err.Error())
	}
	return req, nil
}
