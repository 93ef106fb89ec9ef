package converter

import (
	"github.com/samber/lo"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	"github.com/you-humble/frio-catalog/internal/model"
)

func CreateOrderToModel(req catalogv1.CreateOrderRequest) model.CreateOrderParams {
	return model.CreateOrderParams{
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items: lo.Map(req.Products, func(l catalogv1.CartLine, _ int) model.CartLine {
			return model.CartLine{ProductID: l.ProductID, Quantity: int64(l.Quantity)}
		}),
	}
}

func OrderToAPI(o *model.Order) catalogv1.Order {
	return catalogv1.Order{
		ID: o.ID.String(),
		Products: lo.Map(o.Items, func(it model.OrderItem, _ int) catalogv1.OrderItem {
			return catalogv1.OrderItem{
				ProductID: it.ProductID,
				Name:      it.Name,
				Quantity:  it.Quantity,
				PriceUSD:  it.PriceUSD,
				PriceARS:  it.PriceARS,
			}
		}),
		TotalUSD:      o.TotalUSD,
		TotalARS:      o.TotalARS,
		ExchangeRate:  o.ExchangeRate,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Status:        string(o.Status),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func OrdersToAPI(orders []*model.Order) []catalogv1.Order {
	return lo.Map(orders, func(o *model.Order, _ int) catalogv1.Order { return OrderToAPI(o) })
}

func CreateOrderResultToAPI(res *model.CreateOrderResult) catalogv1.CreateOrderResponse {
	return catalogv1.CreateOrderResponse{
		Order:       OrderToAPI(res.Order),
		Summary:     res.Summary,
		ContactLink: res.ContactLink,
		WaLink:      res.ContactLink,
	}
}
