//go:build integration

package ordconsumer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	tc "github.com/testcontainers/testcontainers-go"
	kafkaTc "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/you-humble/frio-catalog/platform/logger"
)

const (
	kafkaImage = "confluentinc/cp-kafka:7.6.1"

	topicOrderCreated = "order.created"
	consumerGroupID   = "catalog-order-created-it"
)

var (
	ctx    context.Context
	cancel context.CancelFunc

	kafkaC       tc.Container
	kafkaBrokers []string
)

func TestOrderCreatedIntegration(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Order Created Kafka Integration Suite")
}

var _ = BeforeSuite(func() {
	ctx, cancel = context.WithCancel(context.Background())
	logger.SetNopLogger()

	By("starting kafka container (cp-kafka)")
	var err error
	kafkaC, kafkaBrokers, err = runKafka(ctx)
	Expect(err).NotTo(HaveOccurred())

	By("creating kafka topics")
	Expect(createTopics(kafkaBrokers, topicOrderCreated)).To(Succeed())
})

var _ = AfterSuite(func() {
	cancel()
	if kafkaC != nil {
		_ = kafkaC.Terminate(context.Background())
	}
})

func runKafka(ctx context.Context) (tc.Container, []string, error) {
	c, err := kafkaTc.Run(ctx,
		kafkaImage,
		kafkaTc.WithClusterID("Mk3OEYBSD34fcwNTJENDM2Qk"),
	)
	if err != nil {
		return nil, []string{}, err
	}

	bootstrap, err := c.Brokers(ctx)
	if err != nil {
		_ = c.Terminate(ctx)
		return nil, []string{}, err
	}

	return c, bootstrap, nil
}

func createTopics(brokers []string, topics ...string) error {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V4_0_0_0
	cfg.Admin.Timeout = 10 * time.Second

	admin, err := sarama.NewClusterAdmin(brokers, cfg)
	if err != nil {
		return err
	}
	defer admin.Close()

	for _, t := range topics {
		err := admin.CreateTopic(t, &sarama.TopicDetail{
			NumPartitions:     1,
			ReplicationFactor: 1,
		}, false)
		if err != nil && !errors.Is(err, sarama.ErrTopicAlreadyExists) {
			return err
		}
	}
	return nil
}
