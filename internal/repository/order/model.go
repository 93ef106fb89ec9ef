package repository

import (
	"time"

	"github.com/google/uuid"
)

const (
	ordersTable     = "orders"
	orderItemsTable = "order_items"
)

var orderColumns = []string{
	"id", "customer_name", "customer_phone", "total_usd", "total_ars",
	"exchange_rate", "status", "created_at", "updated_at",
}

var itemColumns = []string{
	"order_id", "position", "product_id", "name", "quantity", "price_usd", "price_ars",
}

type orderRow struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone string
	TotalUSD      float64
	TotalARS      float64
	ExchangeRate  float64
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type itemRow struct {
	OrderID   uuid.UUID
	Position  int
	ProductID string
	Name      string
	Quantity  int64
	PriceUSD  float64
	PriceARS  float64
}
