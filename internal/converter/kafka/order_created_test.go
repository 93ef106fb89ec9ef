package converter

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/frio-catalog/internal/model"
)

func TestOrderCreatedPayload(t *testing.T) {
	t.Parallel()

	conv := NewKafkaConverter()

	event := model.OrderCreated{
		EventID:       uuid.New(),
		OrderID:       uuid.New(),
		CustomerName:  gofakeit.Name(),
		CustomerPhone: gofakeit.Phone(),
		ItemsCount:    2,
		TotalUSD:      49,
		TotalARS:      49000,
		ExchangeRate:  1000,
		Summary:       "🛒 Nueva orden",
		CreatedAt:     time.Now().UTC().Truncate(time.Millisecond),
	}

	payload, err := conv.OrderCreatedToPayload(event)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"order_id":"`+event.OrderID.String()+`"`)

	got, err := conv.OrderCreatedToModel(payload)
	require.NoError(t, err)
	assert.Equal(t, event, got)
}

func TestOrderCreatedToModelRejectsBadPayloads(t *testing.T) {
	t.Parallel()

	conv := NewKafkaConverter()

	tests := map[string]string{
		"not json":      `{`,
		"bad event id":  `{"event_id":"nope","order_id":"` + uuid.NewString() + `"}`,
		"missing order": `{"event_id":"` + uuid.NewString() + `"}`,
	}

	for name, payload := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := conv.OrderCreatedToModel([]byte(payload))
			assert.Error(t, err)
		})
	}
}
