package repository

import (
	"github.com/you-humble/frio-catalog/internal/model"
)

func rowToModel(r orderRow, items []itemRow) *model.Order {
	out := &model.Order{
		ID:            r.ID,
		TotalUSD:      r.TotalUSD,
		TotalARS:      r.TotalARS,
		ExchangeRate:  r.ExchangeRate,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Status:        model.OrderStatus(r.Status),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		Items:         make([]model.OrderItem, 0, len(items)),
	}

	for _, it := range items {
		out.Items = append(out.Items, model.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			PriceUSD:  it.PriceUSD,
			PriceARS:  it.PriceARS,
		})
	}

	return out
}
