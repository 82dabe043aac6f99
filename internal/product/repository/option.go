package repository

import "github.com/shopspring/decimal"

// TxOptions configures a unit of work. Isolation is always at least read committed.
type TxOptions struct {
	ReadOnly bool
}

// CreateProductOptions holds parameters for inserting a new Product.
type CreateProductOptions struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Category    string
	IsActive    bool
}

// GetOneProductOptions selects a single Product by ID.
// ForUpdate locks the row until the surrounding transaction ends.
type GetOneProductOptions struct {
	ID        int64
	ForUpdate bool
}

// Filter narrows listings. Zero values mean "no condition".
type Filter struct {
	Category   string
	ActiveOnly bool
}

// ListProductsOptions holds filter parameters for unpaged listings. Rows come back by id ascending.
type ListProductsOptions struct {
	Filter
}

// SearchProductsOptions describes a case-insensitive substring search.
// NameOnly restricts the match to the name column; otherwise name OR description.
type SearchProductsOptions struct {
	Keyword  string
	NameOnly bool
}

// Column is a sortable products column.
type Column string

const (
	ColumnID          Column = "id"
	ColumnName        Column = "name"
	ColumnDescription Column = "description"
	ColumnPrice       Column = "price"
	ColumnQuantity    Column = "quantity"
	ColumnCategory    Column = "category"
	ColumnIsActive    Column = "is_active"
	ColumnCreatedAt   Column = "created_at"
	ColumnUpdatedAt   Column = "updated_at"
)

// Valid reports whether c is a known column.
func (c Column) Valid() bool {
	switch c {
	case ColumnID, ColumnName, ColumnDescription, ColumnPrice, ColumnQuantity,
		ColumnCategory, ColumnIsActive, ColumnCreatedAt, ColumnUpdatedAt:
		return true
	}
	return false
}

// OrderBy is a single sort key. Implementations always add id ascending as the tie-break.
type OrderBy struct {
	Column Column
	Desc   bool
}

// PageProductsOptions holds filter, order and window parameters for paged listings.
type PageProductsOptions struct {
	Filter
	OrderBy OrderBy
	Limit   int
	Offset  int
}

// UpdateProductOptions replaces every mutable field of the Product with the given ID.
type UpdateProductOptions struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Category    string
	IsActive    bool
}
