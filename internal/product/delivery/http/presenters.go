package http

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"product-catalog/internal/product"
	"product-catalog/pkg/paginator"
)

// --- Request DTOs ---

// productReq is the body of create and update. Pointer fields distinguish absent from zero.
type productReq struct {
	Name        string           `json:"name"        example:"iPhone 15"`
	Description string           `json:"description" example:"Latest smartphone"`
	Price       *decimal.Decimal `json:"price"       swaggertype:"number" example:"999.99"`
	Quantity    *int             `json:"quantity"    example:"10"`
	Category    string           `json:"category"    example:"Electronics"`
	IsActive    *bool            `json:"isActive"    example:"true"`
}

func (r productReq) toInput() product.ProductInput {
	return product.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Category:    r.Category,
		IsActive:    r.IsActive,
	}
}

// ---

// pagedReq defaults to page 0, size 10, id asc.
type pagedReq struct {
	Page    int    `form:"page,default=0"`
	Size    int    `form:"size,default=10"`
	SortBy  string `form:"sortBy,default=id"`
	SortDir string `form:"sortDir,default=asc"`
}

func (r pagedReq) toInput(activeOnly bool) product.ListPagedInput {
	return product.ListPagedInput{
		Page:       r.Page,
		Size:       r.Size,
		SortBy:     r.SortBy,
		SortDir:    r.SortDir,
		ActiveOnly: activeOnly,
	}
}

// ---

type categoryReq struct {
	Category string `form:"-"`
	Active   bool   `form:"active"`
}

func (r categoryReq) toInput() product.ListByCategoryInput {
	return product.ListByCategoryInput{
		Category:   r.Category,
		ActiveOnly: r.Active,
	}
}

// ---

type searchReq struct {
	Keyword string `form:"keyword"`
	Field   string `form:"field"`
}

func (r searchReq) toInput() product.SearchInput {
	return product.SearchInput{
		Keyword: r.Keyword,
		Field:   product.SearchField(r.Field),
	}
}

// --- Response DTOs ---

type productResp struct {
	ID          int64       `json:"id"          example:"1"`
	Name        string      `json:"name"        example:"iPhone 15"`
	Description string      `json:"description" example:"Latest smartphone"`
	Price       json.Number `json:"price"       swaggertype:"number" example:"999.99"`
	Quantity    int         `json:"quantity"    example:"10"`
	Category    string      `json:"category"    example:"Electronics"`
	IsActive    bool        `json:"isActive"    example:"true"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

func newProductResp(out product.ProductOutput) productResp {
	return productResp{
		ID:          out.ID,
		Name:        out.Name,
		Description: out.Description,
		Price:       json.Number(out.Price.StringFixed(2)),
		Quantity:    out.Quantity,
		Category:    out.Category,
		IsActive:    out.IsActive,
		CreatedAt:   out.CreatedAt,
		UpdatedAt:   out.UpdatedAt,
	}
}

func newProductListResp(outs []product.ProductOutput) []productResp {
	resp := make([]productResp, len(outs))
	for i, out := range outs {
		resp[i] = newProductResp(out)
	}
	return resp
}

type pageResp = paginator.Page[productResp]

func newPageResp(out paginator.Page[product.ProductOutput]) pageResp {
	return paginator.Map(out, newProductResp)
}
