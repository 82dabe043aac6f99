package usecase

import (
	"strings"

	"product-catalog/internal/product"
	repo "product-catalog/internal/product/repository"
)

// sortColumns maps accepted sortBy values to columns: entity field names plus their column spelling.
var sortColumns = map[string]repo.Column{
	"id":          repo.ColumnID,
	"name":        repo.ColumnName,
	"description": repo.ColumnDescription,
	"price":       repo.ColumnPrice,
	"quantity":    repo.ColumnQuantity,
	"category":    repo.ColumnCategory,
	"isActive":    repo.ColumnIsActive,
	"is_active":   repo.ColumnIsActive,
	"createdAt":   repo.ColumnCreatedAt,
	"created_at":  repo.ColumnCreatedAt,
	"updatedAt":   repo.ColumnUpdatedAt,
	"updated_at":  repo.ColumnUpdatedAt,
}

// resolveOrder validates sortBy and sortDir. Direction is case-insensitive; nothing defaults silently.
func resolveOrder(sortBy, sortDir string) (repo.OrderBy, error) {
	col, ok := sortColumns[sortBy]
	if !ok {
		return repo.OrderBy{}, product.NewInvalidArgumentError(product.ErrInvalidSortField, sortBy)
	}

	switch strings.ToLower(sortDir) {
	case "asc":
		return repo.OrderBy{Column: col}, nil
	case "desc":
		return repo.OrderBy{Column: col, Desc: true}, nil
	default:
		return repo.OrderBy{}, product.NewInvalidArgumentError(product.ErrInvalidSortDirection, sortDir)
	}
}

func validatePaging(page, size int) error {
	if page < 0 {
		return product.NewInvalidArgumentError(product.ErrInvalidPage, "")
	}
	if size <= 0 {
		return product.NewInvalidArgumentError(product.ErrInvalidPageSize, "")
	}
	return nil
}

func resolveSearch(in product.SearchInput) (repo.SearchProductsOptions, error) {
	if strings.TrimSpace(in.Keyword) == "" {
		return repo.SearchProductsOptions{}, product.NewInvalidArgumentError(product.ErrEmptyKeyword, "")
	}
	switch in.Field {
	case product.SearchFieldAll:
		return repo.SearchProductsOptions{Keyword: in.Keyword}, nil
	case product.SearchFieldName:
		return repo.SearchProductsOptions{Keyword: in.Keyword, NameOnly: true}, nil
	default:
		return repo.SearchProductsOptions{}, product.NewInvalidArgumentError(product.ErrInvalidSearchField, string(in.Field))
	}
}
