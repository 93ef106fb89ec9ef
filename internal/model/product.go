package model

import "time"

type Product struct {
	ID          string
	ProductCode string
	Name        string
	Description string
	Image       string
	// Absent means the product has no USD price.
	PriceUSD *float64
	// Derived from PriceUSD unless FixedInARS is set.
	PriceARS      *float64
	FixedInARS    bool
	Categories    []string
	Subcategories []string
	Active        bool
	Views         int64
	SoldCount     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateProductParams struct {
	ProductCode   string
	Name          string
	Description   string
	Image         string
	PriceUSD      *float64
	PriceARS      *float64
	FixedInARS    bool
	Categories    []string
	Subcategories []string
	// Nil means active.
	Active *bool
}

// UpdateProductParams is a patch: nil fields keep the stored value.
type UpdateProductParams struct {
	ProductCode   *string
	Name          *string
	Description   *string
	Image         *string
	PriceUSD      *float64
	PriceARS      *float64
	FixedInARS    *bool
	Categories    *[]string
	Subcategories *[]string
	Active        *bool
}

type SortOrder int

const (
	SortAsc  SortOrder = 1
	SortDesc SortOrder = -1
)

type ProductFilter struct {
	Categories    []string
	Subcategories []string
	Search        string
	MinPriceARS   *float64
	MaxPriceARS   *float64
	ActiveOnly    bool

	// Page starts at 1. Limit 0 returns every match.
	Page  int64
	Limit int64

	SortField string
	SortOrder SortOrder
}

type ProductPage struct {
	Items []*Product
	Total int64
	Page  int64
	Limit int64
	Pages int64
}

type CategoryMeta struct {
	Name          string
	Slug          string
	Subcategories []string
}

type ByCodeOptions struct {
	IncrementViews bool
}

// ProductSortFields lists the keys a product query can sort by.
var ProductSortFields = []string{
	"createdAt", "name", "priceARS", "priceUSD", "views", "soldCount", "productCode",
}

func IsProductSortField(field string) bool {
	for _, f := range ProductSortFields {
		if f == field {
			return true
		}
	}
	return false
}
