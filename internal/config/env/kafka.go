package envconfig

import (
	"github.com/IBM/sarama"
)

type kafkaEnv struct {
	Brokers                     []string `env:"KAFKA_BROKERS,required" envSeparator:"," validate:"min=1,dive,required"`
	OrderCreatedTopicName       string   `env:"ORDER_CREATED_TOPIC_NAME" envDefault:"order.created" validate:"required"`
	OrderCreatedConsumerGroupID string   `env:"ORDER_CREATED_CONSUMER_GROUP_ID" envDefault:"catalog-order-created" validate:"required"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string         { return cfg.raw.Brokers }
func (cfg *kafka) OrderCreatedTopic() string { return cfg.raw.OrderCreatedTopicName }
func (cfg *kafka) OrderCreatedConsumerGroupID() string {
	return cfg.raw.OrderCreatedConsumerGroupID
}

func (cfg *kafka) OrderCreatedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}

func (cfg *kafka) OrderCreatedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}
