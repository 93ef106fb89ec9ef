package ordproducer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	converter "github.com/you-humble/frio-catalog/internal/converter/kafka"
	"github.com/you-humble/frio-catalog/internal/model"
)

type sent struct {
	key, value []byte
	headers    map[string]string
}

type fakeProducer struct {
	messages []sent
	err      error
}

func (p *fakeProducer) Send(_ context.Context, key, value []byte, headers map[string]string) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, sent{key: key, value: value, headers: headers})
	return nil
}

func TestSendOrderCreated(t *testing.T) {
	t.Parallel()

	event := model.OrderCreated{EventID: uuid.New(), OrderID: uuid.New(), ItemsCount: 2}

	t.Run("keys by order and sets headers", func(t *testing.T) {
		t.Parallel()

		p := &fakeProducer{}
		svc := NewOrderProducer(p, converter.NewKafkaConverter(), converter.OrderCreatedEventType)

		require.NoError(t, svc.SendOrderCreated(context.Background(), event))
		require.Len(t, p.messages, 1)

		msg := p.messages[0]
		assert.Equal(t, event.OrderID.String(), string(msg.key))
		assert.Equal(t, event.EventID.String(), msg.headers["event_id"])
		assert.Equal(t, "order.created", msg.headers["event_type"])
		assert.Contains(t, string(msg.value), `"items_count":2`)
	})

	t.Run("broker error", func(t *testing.T) {
		t.Parallel()

		errBroker := errors.New("not enough replicas")
		svc := NewOrderProducer(&fakeProducer{err: errBroker}, converter.NewKafkaConverter(), converter.OrderCreatedEventType)

		assert.ErrorIs(t, svc.SendOrderCreated(context.Background(), event), errBroker)
	})

	t.Run("noop", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, NewNoopOrderProducer().SendOrderCreated(context.Background(), event))
	})
}
