package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Mongo interface {
	DSN() string
	DatabaseName() string
	TransactionsEnabled() bool
}

type Database interface {
	DSN() string
}

type Auth interface {
	JWTSecret() []byte
	JWTTTL() time.Duration
	AdminName() string
	AdminPassword() string
}

type Store interface {
	WhatsAppPhone() string
}

type CORS interface {
	AllowedOrigins() []string
}

type Kafka interface {
	Brokers() []string
	OrderCreatedTopic() string
	OrderCreatedConsumerGroupID() string
	OrderCreatedProducerConfig() *sarama.Config
	OrderCreatedConsumerConfig() *sarama.Config
}

type Telegram interface {
	BotToken() string
	ChatID() int64
}

type Notifications interface {
	Enabled() bool
}

type Seed interface {
	DemoData() bool
}
