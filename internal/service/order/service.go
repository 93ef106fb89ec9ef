package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/frio-catalog/internal/converter/summary"
	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/service/pricing"
	"github.com/you-humble/frio-catalog/platform/logger"
)

type OrderRepository interface {
	Create(ctx context.Context, ord *model.Order) error
	OrderByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.OrderStatus) (*model.Order, error)
}

type ProductReader interface {
	ProductsByIDs(ctx context.Context, ids []string) ([]*model.Product, error)
}

type RateReader interface {
	ExchangeRate(ctx context.Context) (float64, error)
}

type OrderProducer interface {
	SendOrderCreated(ctx context.Context, event model.OrderCreated) error
}

type service struct {
	repo           OrderRepository
	products       ProductReader
	rates          RateReader
	producer       OrderProducer
	storePhone     string
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewOrderService(
	repository OrderRepository,
	products ProductReader,
	rates RateReader,
	producer OrderProducer,
	storePhone string,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		products:       products,
		rates:          rates,
		producer:       producer,
		storePhone:     storePhone,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Create prices the cart from stored products only, persists the order and
// returns it with the merchant summary and contact link. Lines whose product
// is gone or whose quantity is not positive are dropped.
func (svc *service) Create(ctx context.Context, params model.CreateOrderParams) (*model.CreateOrderResult, error) {
	const op = "order.service.Create"

	params.CustomerName = strings.TrimSpace(params.CustomerName)
	params.CustomerPhone = strings.TrimSpace(params.CustomerPhone)
	log := logger.With(logger.Int("number_cart_lines", len(params.Items)))

	if len(params.Items) == 0 {
		log.Warn(ctx, "empty cart")
		return nil, fmt.Errorf("%s: order must include products: %w", op, model.ErrValidation)
	}
	if params.CustomerName == "" || params.CustomerPhone == "" {
		log.Warn(ctx, "missing customer data")
		return nil, fmt.Errorf("%s: customer name and phone are required: %w", op, model.ErrValidation)
	}

	rate, err := svc.rates.ExchangeRate(ctx)
	if err != nil {
		log.Error(ctx, "read exchange rate", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lines := lo.Filter(params.Items, func(l model.CartLine, _ int) bool {
		return l.Quantity > 0 && strings.TrimSpace(l.ProductID) != ""
	})
	ids := lo.Uniq(lo.Map(lines, func(l model.CartLine, _ int) string {
		return strings.TrimSpace(l.ProductID)
	}))

	rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rcancel()

	found, err := svc.products.ProductsByIDs(rctx, ids)
	if err != nil {
		log.Error(ctx, "read cart products", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	byID := lo.KeyBy(found, func(p *model.Product) string { return p.ID })

	ord := &model.Order{
		ID:            uuid.New(),
		Items:         make([]model.OrderItem, 0, len(lines)),
		ExchangeRate:  rate,
		CustomerName:  params.CustomerName,
		CustomerPhone: params.CustomerPhone,
		Status:        model.OrderStatusPending,
	}
	for _, l := range lines {
		p, ok := byID[strings.TrimSpace(l.ProductID)]
		if !ok {
			log.Warn(ctx, "cart product not found", logger.String("product_id", l.ProductID))
			continue
		}

		item := model.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  l.Quantity,
			PriceUSD:  lo.FromPtr(p.PriceUSD),
			PriceARS:  lo.FromPtr(p.PriceARS),
		}
		ord.Items = append(ord.Items, item)
		ord.TotalUSD += item.PriceUSD * float64(item.Quantity)
		ord.TotalARS += item.PriceARS * float64(item.Quantity)
	}

	if len(ord.Items) == 0 {
		log.Warn(ctx, "no valid cart lines")
		return nil, fmt.Errorf("%s: no valid products in cart: %w", op, model.ErrValidation)
	}
	if !pricing.Finite(&ord.TotalUSD) || !pricing.Finite(&ord.TotalARS) {
		log.Warn(ctx, "order totals out of range")
		return nil, fmt.Errorf("%s: order total out of range: %w", op, model.ErrValidation)
	}

	wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wcancel()

	if err := svc.repo.Create(wctx, ord); err != nil {
		log.Error(ctx, "repository create order", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	text, err := summary.BuildOrderSummary(ord)
	if err != nil {
		log.Error(ctx, "build order summary", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	svc.publishCreated(ctx, ord, text)

	return &model.CreateOrderResult{
		Order:       ord,
		Summary:     text,
		ContactLink: summary.ContactLink(svc.storePhone, text),
	}, nil
}

func (svc *service) ByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	const op = "order.service.ByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	ord, err := svc.repo.OrderByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ord, nil
}

func (svc *service) List(ctx context.Context, filter model.OrderFilter) ([]*model.Order, error) {
	const op = "order.service.List"

	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%s: unknown status %q: %w", op, *filter.Status, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	orders, err := svc.repo.List(ctx, filter)
	if err != nil {
		logger.Error(ctx, "repository list orders", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return orders, nil
}

// UpdateStatus allows pending -> answered only. Setting the current status
// again is a no-op.
func (svc *service) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) (*model.Order, error) {
	const op = "order.service.UpdateStatus"
	log := logger.With(logger.String("order_id", id.String()), logger.String("status", string(status)))

	if !status.Valid() {
		return nil, fmt.Errorf("%s: unknown status %q: %w", op, status, model.ErrValidation)
	}

	rctx, rcancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rcancel()

	ord, err := svc.repo.OrderByID(rctx, id)
	if err != nil {
		log.Error(ctx, "repository order by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if ord.Status == status {
		return ord, nil
	}
	if ord.Status == model.OrderStatusAnswered {
		log.Warn(ctx, "order already answered")
		return nil, fmt.Errorf("%s: order already answered: %w", op, model.ErrConflict)
	}

	wctx, wcancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wcancel()

	updated, err := svc.repo.UpdateStatus(wctx, id, ord.Status, status)
	if err != nil {
		log.Error(ctx, "repository update status", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "order status updated")
	return updated, nil
}

// publishCreated is best effort: the order is already stored.
func (svc *service) publishCreated(ctx context.Context, ord *model.Order, text string) {
	event := model.OrderCreated{
		EventID:       uuid.New(),
		OrderID:       ord.ID,
		CustomerName:  ord.CustomerName,
		CustomerPhone: ord.CustomerPhone,
		ItemsCount:    len(ord.Items),
		TotalUSD:      ord.TotalUSD,
		TotalARS:      ord.TotalARS,
		ExchangeRate:  ord.ExchangeRate,
		Summary:       text,
		CreatedAt:     ord.CreatedAt,
	}

	if err := svc.producer.SendOrderCreated(ctx, event); err != nil {
		logger.Error(ctx, "send order created event",
			logger.String("order_id", ord.ID.String()),
			logger.ErrorF(err),
		)
	}
}
