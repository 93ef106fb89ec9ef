package model

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusAnswered OrderStatus = "answered"
)

func (s OrderStatus) Valid() bool {
	return s == OrderStatusPending || s == OrderStatusAnswered
}

type OrderItem struct {
	ProductID string
	// Name and prices are captured when the order is created.
	Name     string
	Quantity int64
	PriceUSD float64
	PriceARS float64
}

type Order struct {
	ID            uuid.UUID
	Items         []OrderItem
	TotalUSD      float64
	TotalARS      float64
	ExchangeRate  float64
	CustomerName  string
	CustomerPhone string
	Status        OrderStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CartLine struct {
	ProductID string
	Quantity  int64
}

// CreateOrderParams carries no prices: totals always come from stored products.
type CreateOrderParams struct {
	CustomerName  string
	CustomerPhone string
	Items         []CartLine
}

type CreateOrderResult struct {
	Order       *Order
	Summary     string
	ContactLink string
}

type OrderFilter struct {
	Status *OrderStatus
}

type OrderCreated struct {
	EventID       uuid.UUID
	OrderID       uuid.UUID
	CustomerName  string
	CustomerPhone string
	ItemsCount    int
	TotalUSD      float64
	TotalARS      float64
	ExchangeRate  float64
	Summary       string
	CreatedAt     time.Time
}
