package service

import (
	"context"
	"fmt"
	"time"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/platform/logger"
)

type ProductCounter interface {
	Counts(ctx context.Context) (model.ProductCounts, error)
}

type RateReader interface {
	ExchangeRate(ctx context.Context) (float64, error)
}

type OrderCounter interface {
	CountByStatus(ctx context.Context, status model.OrderStatus) (int64, error)
}

type service struct {
	products      ProductCounter
	rates         RateReader
	orders        OrderCounter
	readDBTimeout time.Duration
}

func NewDashboardService(
	products ProductCounter,
	rates RateReader,
	orders OrderCounter,
	readDBTimeout time.Duration,
) *service {
	return &service{
		products:      products,
		rates:         rates,
		orders:        orders,
		readDBTimeout: readDBTimeout,
	}
}

func (svc *service) Dashboard(ctx context.Context) (*model.Dashboard, error) {
	const op = "dashboard.service.Dashboard"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	counts, err := svc.products.Counts(ctx)
	if err != nil {
		logger.Error(ctx, "count products", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rate, err := svc.rates.ExchangeRate(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	pending, err := svc.orders.CountByStatus(ctx, model.OrderStatusPending)
	if err != nil {
		logger.Error(ctx, "count pending orders", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.Dashboard{
		Products:      counts,
		ExchangeRate:  rate,
		PendingOrders: pending,
	}, nil
}
