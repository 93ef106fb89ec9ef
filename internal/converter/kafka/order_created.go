package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/frio-catalog/internal/model"
)

const OrderCreatedEventType = "order.created"

type orderCreatedRecord struct {
	EventID       string    `json:"event_id"`
	OrderID       string    `json:"order_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	ItemsCount    int       `json:"items_count"`
	TotalUSD      float64   `json:"total_usd"`
	TotalARS      float64   `json:"total_ars"`
	ExchangeRate  float64   `json:"exchange_rate"`
	Summary       string    `json:"summary"`
	CreatedAt     time.Time `json:"created_at"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) OrderCreatedToPayload(e model.OrderCreated) ([]byte, error) {
	payload, err := json.Marshal(orderCreatedRecord{
		EventID:       e.EventID.String(),
		OrderID:       e.OrderID.String(),
		CustomerName:  e.CustomerName,
		CustomerPhone: e.CustomerPhone,
		ItemsCount:    e.ItemsCount,
		TotalUSD:      e.TotalUSD,
		TotalARS:      e.TotalARS,
		ExchangeRate:  e.ExchangeRate,
		Summary:       e.Summary,
		CreatedAt:     e.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order created record: %w", err)
	}

	return payload, nil
}

func (c *kafkaConverter) OrderCreatedToModel(data []byte) (model.OrderCreated, error) {
	var rec orderCreatedRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.OrderCreated{}, fmt.Errorf("failed to unmarshal order created record: %w", err)
	}

	eventID, err := uuid.Parse(rec.EventID)
	if err != nil {
		return model.OrderCreated{}, fmt.Errorf("bad event_id: %w", err)
	}
	orderID, err := uuid.Parse(rec.OrderID)
	if err != nil {
		return model.OrderCreated{}, fmt.Errorf("bad order_id: %w", err)
	}

	return model.OrderCreated{
		EventID:       eventID,
		OrderID:       orderID,
		CustomerName:  rec.CustomerName,
		CustomerPhone: rec.CustomerPhone,
		ItemsCount:    rec.ItemsCount,
		TotalUSD:      rec.TotalUSD,
		TotalARS:      rec.TotalARS,
		ExchangeRate:  rec.ExchangeRate,
		Summary:       rec.Summary,
		CreatedAt:     rec.CreatedAt,
	}, nil
}
