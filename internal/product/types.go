package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// --- Product Domain Model ---

// Product is the persisted catalog entry. The store owns ID, CreatedAt and UpdatedAt.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
	Category    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// --- UseCase Inputs ---

// ProductInput is the inbound shape for create and update. Nil pointers mean "not supplied".
type ProductInput struct {
	Name        string           `validate:"notblank,max=100"`
	Description string           `validate:"max=500"`
	Price       *decimal.Decimal `validate:"required,dgte=0.01,dscale=2,dintdigits=17"`
	Quantity    *int             `validate:"required,gte=0"`
	Category    string           `validate:"max=50"`
	IsActive    *bool
}

type ListByCategoryInput struct {
	Category   string
	ActiveOnly bool
}

// SearchField restricts which text columns a keyword search looks at.
type SearchField string

const (
	SearchFieldAll  SearchField = ""
	SearchFieldName SearchField = "name"
)

type SearchInput struct {
	Keyword string
	Field   SearchField
}

type ListPagedInput struct {
	Page       int
	Size       int
	SortBy     string
	SortDir    string
	ActiveOnly bool
}

// --- UseCase Outputs ---

// ProductOutput is the read-only projection returned to callers.
type ProductOutput struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	IsActive    bool            `json:"isActive"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
