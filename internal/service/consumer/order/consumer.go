package ordconsumer

import (
	"context"
	"fmt"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/platform/kafka"
	"github.com/you-humble/frio-catalog/platform/logger"
)

type Converter interface {
	OrderCreatedToModel(data []byte) (model.OrderCreated, error)
}

type OrderCreatedNotifier interface {
	NotifyOrderCreated(ctx context.Context, event model.OrderCreated) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	notifier OrderCreatedNotifier
}

func NewOrderConsumer(
	consumer kafka.Consumer,
	conv Converter,
	notifier OrderCreatedNotifier,
) *service {
	return &service{consumer: consumer, conv: conv, notifier: notifier}
}

func (s *service) RunOrderCreatedConsume(ctx context.Context) error {
	logger.Info(ctx, "starting order created consumer")

	if err := s.consumer.Consume(ctx, s.OrderCreatedHandler); err != nil {
		logger.Error(ctx, "consume from order.created topic", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) OrderCreatedHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.OrderCreatedToModel(msg.Value)
	if err != nil {
		logger.Error(ctx, "failed to decode order created record", logger.ErrorF(err))
		return fmt.Errorf("converter order_created_to_model error: %w", err)
	}

	ctx = logger.WithContext(ctx,
		logger.String("order_id", event.OrderID.String()),
		logger.String("event_id", event.EventID.String()),
	)

	if err := s.notifier.NotifyOrderCreated(ctx, event); err != nil {
		logger.Error(ctx, "failed to notify about order created", logger.ErrorF(err))
		return err
	}

	return nil
}
