// Package catalogv1 holds the JSON shapes of the catalog HTTP API.
package catalogv1

import "time"

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type OK struct {
	OK bool `json:"ok"`
}

type Credentials struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

type Token struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Username  string    `json:"username"`
}

type Admin struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}

type Config struct {
	ExchangeRate float64    `json:"exchangeRate"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}

type UpdateConfigRequest struct {
	ExchangeRate *float64 `json:"exchangeRate" validate:"required,gt=0"`
}

type UpdateConfigResponse struct {
	Config
	Repriced int64 `json:"repriced"`
}

type KitVariant struct {
	Value       string `json:"value" validate:"required"`
	ProductCode string `json:"productCode" validate:"required"`
}

// KitItem carries either ProductCode or Variants, never both.
type KitItem struct {
	Key         string       `json:"key" validate:"required"`
	Label       string       `json:"label" validate:"required"`
	Unit        string       `json:"unit" validate:"required,oneof=m u"`
	Step        float64      `json:"step" validate:"gte=0"`
	DefaultQty  float64      `json:"defaultQty" validate:"gte=0"`
	ProductCode string       `json:"productCode,omitempty" validate:"required_without=Variants"`
	Variants    []KitVariant `json:"variants,omitempty" validate:"omitempty,dive"`
}

type InstallKit struct {
	Items []KitItem `json:"items" validate:"dive"`
}

type KitPriceRequest struct {
	Quantities map[string]float64 `json:"quantities"`
	Variant    map[string]string  `json:"variant"`
}

type KitPriceLine struct {
	Key          string  `json:"key"`
	Label        string  `json:"label"`
	Unit         string  `json:"unit"`
	Qty          float64 `json:"qty"`
	Variant      string  `json:"variant,omitempty"`
	ProductCode  string  `json:"productCode"`
	ProductName  string  `json:"productName"`
	UnitPriceARS float64 `json:"unitPriceARS"`
	Subtotal     float64 `json:"subtotal"`
}

type KitPrice struct {
	Items []KitPriceLine `json:"items"`
	Total float64        `json:"total"`
}

type Product struct {
	ID            string    `json:"id"`
	ProductCode   string    `json:"productCode"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Image         string    `json:"image,omitempty"`
	PriceUSD      *float64  `json:"priceUSD"`
	PriceARS      *float64  `json:"priceARS"`
	FixedInARS    bool      `json:"fixedInARS"`
	Categories    []string  `json:"categories"`
	Subcategories []string  `json:"subcategories"`
	Active        bool      `json:"active"`
	Views         int64     `json:"views"`
	SoldCount     int64     `json:"soldCount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateProductRequest struct {
	ProductCode   string   `json:"productCode" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Image         string   `json:"image"`
	PriceUSD      *float64 `json:"priceUSD" validate:"omitempty,gte=0"`
	PriceARS      *float64 `json:"priceARS" validate:"omitempty,gte=0"`
	FixedInARS    bool     `json:"fixedInARS"`
	Categories    []string `json:"categories"`
	Subcategories []string `json:"subcategories"`
	Active        *bool    `json:"active"`
}

type UpdateProductRequest struct {
	ProductCode   *string   `json:"productCode"`
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Image         *string   `json:"image"`
	PriceUSD      *float64  `json:"priceUSD" validate:"omitempty,gte=0"`
	PriceARS      *float64  `json:"priceARS" validate:"omitempty,gte=0"`
	FixedInARS    *bool     `json:"fixedInARS"`
	Categories    *[]string `json:"categories"`
	Subcategories *[]string `json:"subcategories"`
	Active        *bool     `json:"active"`
}

type ProductPage struct {
	Items []Product `json:"items"`
	Total int64     `json:"total"`
	Page  int64     `json:"page"`
	Limit int64     `json:"limit"`
	Pages int64     `json:"pages"`
}

type CategoryMeta struct {
	Category      string   `json:"category"`
	Slug          string   `json:"slug"`
	Subcategories []string `json:"subcategories"`
}

type CartLine struct {
	ProductID string   `json:"productId"`
	Quantity  Quantity `json:"quantity"`
}

type CreateOrderRequest struct {
	Products      []CartLine `json:"products"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int64   `json:"quantity"`
	PriceUSD  float64 `json:"priceUSD"`
	PriceARS  float64 `json:"priceARS"`
}

type Order struct {
	ID            string      `json:"id"`
	Products      []OrderItem `json:"products"`
	TotalUSD      float64     `json:"totalUSD"`
	TotalARS      float64     `json:"totalARS"`
	ExchangeRate  float64     `json:"exchangeRate"`
	CustomerName  string      `json:"customerName"`
	CustomerPhone string      `json:"customerPhone"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// CreateOrderResponse keeps waLink next to contactLink for older storefronts.
type CreateOrderResponse struct {
	Order       Order  `json:"order"`
	Summary     string `json:"summary"`
	ContactLink string `json:"contactLink"`
	WaLink      string `json:"waLink"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending answered"`
}

type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Parent    *string   `json:"parent"`
	Ancestors []string  `json:"ancestors"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CategoryNode struct {
	Category
	Children []CategoryNode `json:"children"`
}

type CreateCategoryRequest struct {
	Name   string  `json:"name" validate:"required"`
	Slug   string  `json:"slug" validate:"required"`
	Parent *string `json:"parent"`
}

type Banner struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	Image     string    `json:"image"`
	LinkURL   string    `json:"linkUrl"`
	Type      string    `json:"type"`
	Order     int       `json:"order"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateBannerRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image" validate:"required"`
	LinkURL  string `json:"linkUrl"`
	Type     string `json:"type" validate:"omitempty,oneof=home catalog"`
	Order    int    `json:"order" validate:"gte=0"`
	Active   *bool  `json:"active"`
}

type UpdateBannerRequest struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
	Image    *string `json:"image"`
	LinkURL  *string `json:"linkUrl"`
	Type     *string `json:"type" validate:"omitempty,oneof=home catalog"`
	Order    *int    `json:"order" validate:"omitempty,gte=0"`
	Active   *bool   `json:"active"`
}

type ReorderBannersRequest struct {
	IDs []string `json:"ids"`
}

type ReorderBannersResponse struct {
	OK      bool  `json:"ok"`
	Updated int64 `json:"updated"`
}

type Dashboard struct {
	TotalProducts    int64   `json:"totalProducts"`
	ActiveProducts   int64   `json:"activeProducts"`
	InactiveProducts int64   `json:"inactiveProducts"`
	ExchangeRate     float64 `json:"exchangeRate"`
	PendingOrders    int64   `json:"pendingOrders"`
}
