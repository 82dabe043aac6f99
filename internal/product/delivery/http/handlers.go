package http

import (
	"github.com/gin-gonic/gin"

	"product-catalog/pkg/response"
)

const (
	msgCreated         = "Product created successfully"
	msgUpdated         = "Product updated successfully"
	msgDeleted         = "Product deleted successfully"
	msgListed          = "Products retrieved successfully"
	msgActiveListed    = "Active products retrieved successfully"
	msgSearchRetrieved = "Search results retrieved successfully"
)

// Create godoc
// @Summary     Create a product
// @Description Creates a product. isActive defaults to true when omitted.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       version path string     true "API version" default(v1)
// @Param       body    body productReq true "Product data"
// @Success     201 {object} response.Resp{data=productResp}
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{version}/products [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProductReq(c)
	if err != nil {
		h.l.Warnf(ctx, "product.http.Create.processProductReq: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "product.http.Create.uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, msgCreated, newProductResp(output))
}

// Detail godoc
// @Summary     Get a product
// @Description Returns a single product by its ID.
// @Tags        Products
// @Produce     json
// @Param       version path string true "API version" default(v1)
// @Param       id      path int    true "Product ID"
// @Success     200 {object} response.Resp{data=productResp}
// @Failure     400 {object} response.Resp "Invalid id"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{version}/products/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "product.http.Detail.uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, response.MessageSuccess, newProductResp(output))
}

// List godoc
// @Summary     List products
// @Description Returns every product ordered by id.
// @Tags        Products
// @Produce     json
// @Param       version path string true "API version" default(v1)
// @Success     200 {object} response.Resp{data=[]productResp}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{version}/products [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "product.http.List.uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, msgListed, newProductListResp(output))
}

// ListPaged godoc
// @Summary     List products page by page
// @Description Returns one page of products sorted by sortBy then id.
// @Tags        Products
// @Produce     json
// @Param       version path  string true  "API version" default(v1)
// @Param       page    query int    false "Zero-based page index" default(0)
// @Param       size    query int    false "Page size"             default(10)
// @Param       sortBy  query string false "Sort field"            default(id)
// @Param       sortDir query string false "asc or desc"           default(asc)
// @Success     200 {object} response.Resp{data=pageResp}
// @Failure     400 {object} response.Resp "Invalid paging or sorting"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{version}/products/paged [GET]
func (h *handler) ListPaged(c *gin.Context) {
	h.listPaged(c, false, msgListed)
}

// ListActivePaged godoc
// @Summary     List active products page by page
// @Tags        Products
// @Produce     json
// @Param       version path  string true  "API version" default(v1)
// @Param       page    query int    false "Zero-based page index" default(0)
// @Param       size    query int    false "Page size"             default(10)
// @Param       sortBy  query string false "Sort field"            default(id)
// @Param       sortDir query string false "asc or desc"           default(asc)
// @Success     200 {object} response.Resp{data=pageResp}
// @Failure     400 {object} response.Resp "Invalid paging or sorting"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{version}/products/active/paged [GET]
func (h *handler) ListActivePaged(c *gin.Context) {
	h.listPaged(c, true, msgActiveListed)
}

func (h *handler) listPaged(c *gin.Context, activeOnly bool, msg string) {
	ctx := c.Request.Context()

	req, err := h.processPagedReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ListPaged(ctx, req.toInput(activeOnly))
	if err != nil {
		h.l.Errorf(ctx, "product.http.listPaged.uc.ListPaged: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, msg, newPageResp(output))
}

// ListByCategory godoc
// @Summary     List products in a category
// @Description Exact category match. active=true keeps only active products.
// @Tags        Products
// @Produce     json
// @Param       version  path  string true  "API version" default(v1)
// @Param       category path  string true  "Category"
// @Param       active   query bool   false "Only active products"
// @Success     200 {object} response.Resp{data=[]productResp}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{version}/products/category/{category} [GET]
func (h *handler) ListByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCategoryReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.ListByCategory(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "product.http.ListByCategory.uc.ListByCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, msgListed, newProductListResp(output))
}

// ListActive godoc
// @Summary     List active products
// @Tags        Products
// @Produce     json
// @Param       version path string true "API version" default(v1)
// @Success     200 {object} response.Resp{data=[]productResp}
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{version}/products/active [GET]
func (h *handler) ListActive(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListActive(ctx)
	if err != nil {
		h.l.Errorf(ctx, "product.http.ListActive.uc.ListActive: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, msgActiveListed, newProductListResp(output))
}

// Search godoc
// @Summary     Search products
// @Description Case-insensitive substring match on name or description. field=name restricts to the name.
// @Tags        Products
// @Produce     json
// @Param       version path  string true  "API version" default(v1)
// @Param       keyword query string true  "Keyword"
// @Param       field   query string false "Restrict to a field" Enums(name)
// @Success     200 {object} response.Resp{data=[]productResp}
// @Failure     400 {object} response.Resp "Missing keyword"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{version}/products/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "product.http.Search.uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, msgSearchRetrieved, newProductListResp(output))
}

// Update godoc
// @Summary     Update a product
// @Description Replaces every field. isActive is kept when omitted.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       version path string     true "API version" default(v1)
// @Param       id      path int        true "Product ID"
// @Param       body    body productReq true "Product data"
// @Success     200 {object} response.Resp{data=productResp}
// @Failure     400 {object} response.Resp "Validation failed"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{version}/products/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	req, err := h.processProductReq(c)
	if err != nil {
		h.l.Warnf(ctx, "product.http.Update.processProductReq: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	output, err := h.uc.Update(ctx, id, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "product.http.Update.uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, msgUpdated, newProductResp(output))
}

// Delete godoc
// @Summary     Delete a product
// @Tags        Products
// @Produce     json
// @Param       version path string true "API version" default(v1)
// @Param       id      path int    true "Product ID"
// @Success     200 {object} response.Resp "Product deleted successfully"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/{version}/products/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "product.http.Delete.uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, msgDeleted, nil)
}
