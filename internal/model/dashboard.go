package model

type ProductCounts struct {
	Total    int64
	Active   int64
	Inactive int64
}

type Dashboard struct {
	Products      ProductCounts
	ExchangeRate  float64
	PendingOrders int64
}
