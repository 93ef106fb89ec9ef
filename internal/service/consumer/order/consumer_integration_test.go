//go:build integration

package ordconsumer_test

import (
	"context"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	converter "github.com/you-humble/frio-catalog/internal/converter/kafka"
	"github.com/you-humble/frio-catalog/internal/model"
	ordconsumer "github.com/you-humble/frio-catalog/internal/service/consumer/order"
	ordproducer "github.com/you-humble/frio-catalog/internal/service/producer/order"
	"github.com/you-humble/frio-catalog/platform/kafka/consumer"
	"github.com/you-humble/frio-catalog/platform/kafka/middleware"
	"github.com/you-humble/frio-catalog/platform/kafka/producer"
	"github.com/you-humble/frio-catalog/platform/logger"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []model.OrderCreated
}

func (n *recordingNotifier) NotifyOrderCreated(_ context.Context, event model.OrderCreated) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return nil
}

func (n *recordingNotifier) orderIDs() []uuid.UUID {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]uuid.UUID, 0, len(n.events))
	for _, e := range n.events {
		out = append(out, e.OrderID)
	}
	return out
}

var _ = Describe("Order created round trip", func() {
	It("delivers produced events to the notifier", func() {
		conv := converter.NewKafkaConverter()

		By("building the producer side")
		pcfg := sarama.NewConfig()
		pcfg.Version = sarama.V4_0_0_0
		pcfg.Producer.Return.Successes = true
		pcfg.Producer.RequiredAcks = sarama.WaitForAll

		syncProducer, err := sarama.NewSyncProducer(kafkaBrokers, pcfg)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(syncProducer.Close)

		sender := ordproducer.NewOrderProducer(
			producer.NewProducer(syncProducer, topicOrderCreated, logger.L()),
			conv,
			converter.OrderCreatedEventType,
		)

		By("starting the consumer in background")
		ccfg := sarama.NewConfig()
		ccfg.Version = sarama.V4_0_0_0
		ccfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
		ccfg.Consumer.Offsets.Initial = sarama.OffsetOldest

		group, err := sarama.NewConsumerGroup(kafkaBrokers, consumerGroupID, ccfg)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(group.Close)

		reader := consumer.NewConsumer(
			group,
			[]string{topicOrderCreated},
			logger.L(),
			middleware.Recovery(logger.L()),
			middleware.Logging(logger.L()),
		)

		notifier := &recordingNotifier{}
		runCtx, stop := context.WithCancel(ctx)
		DeferCleanup(stop)

		consumerErrCh := make(chan error, 1)
		go func() {
			consumerErrCh <- ordconsumer.NewOrderConsumer(reader, conv, notifier).RunOrderCreatedConsume(runCtx)
		}()

		By("sending two events")
		events := []model.OrderCreated{
			{
				EventID:       uuid.New(),
				OrderID:       uuid.New(),
				CustomerName:  gofakeit.Name(),
				CustomerPhone: gofakeit.Phone(),
				ItemsCount:    2,
				TotalUSD:      20,
				TotalARS:      24000,
				ExchangeRate:  1200,
				Summary:       "2 x Caño de cobre",
				CreatedAt:     time.Now().UTC().Truncate(time.Second),
			},
			{
				EventID:   uuid.New(),
				OrderID:   uuid.New(),
				CreatedAt: time.Now().UTC().Truncate(time.Second),
			},
		}
		for _, e := range events {
			Expect(sender.SendOrderCreated(ctx, e)).To(Succeed())
		}

		Eventually(notifier.orderIDs).
			WithTimeout(30 * time.Second).
			WithPolling(200 * time.Millisecond).
			Should(ConsistOf(events[0].OrderID, events[1].OrderID))

		Consistently(consumerErrCh, time.Second).ShouldNot(Receive())
	})
})
