package ordproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/platform/kafka"
)

const (
	headerEventID   = "event_id"
	headerEventType = "event_type"
)

type Converter interface {
	OrderCreatedToPayload(e model.OrderCreated) ([]byte, error)
}

type service struct {
	producer  kafka.Producer
	conv      Converter
	eventType string
}

func NewOrderProducer(producer kafka.Producer, conv Converter, eventType string) *service {
	return &service{producer: producer, conv: conv, eventType: eventType}
}

// SendOrderCreated keys the message by order id so events of one order stay ordered.
func (s *service) SendOrderCreated(ctx context.Context, event model.OrderCreated) error {
	payload, err := s.conv.OrderCreatedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter order_created_to_payload error: %w", err)
	}

	headers := map[string]string{
		headerEventID:   event.EventID.String(),
		headerEventType: s.eventType,
	}
	if err := s.producer.Send(ctx, []byte(event.OrderID.String()), payload, headers); err != nil {
		return fmt.Errorf("producer to order.created topic error: %w", err)
	}

	return nil
}

type noopProducer struct{}

// NewNoopOrderProducer is used when notifications are disabled.
func NewNoopOrderProducer() *noopProducer { return &noopProducer{} }

func (noopProducer) SendOrderCreated(context.Context, model.OrderCreated) error { return nil }
