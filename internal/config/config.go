package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/frio-catalog/internal/config/env"
)

var cfg *config

type config struct {
	Server        Server
	Logger        Logger
	Mongo         Mongo
	Postgres      Database
	Auth          Auth
	Store         Store
	CORS          CORS
	Kafka         Kafka
	Telegram      Telegram
	Notifications Notifications
	Seed          Seed
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	mongoCfg, err := envconfig.NewMongoConfig()
	if err != nil {
		return fmt.Errorf("%s Mongo: %w", op, err)
	}

	postgresCfg, err := envconfig.NewPostgresConfig()
	if err != nil {
		return fmt.Errorf("%s Postgres: %w", op, err)
	}

	authCfg, err := envconfig.NewAuthConfig()
	if err != nil {
		return fmt.Errorf("%s Auth: %w", op, err)
	}

	storeCfg, err := envconfig.NewStoreConfig()
	if err != nil {
		return fmt.Errorf("%s Store: %w", op, err)
	}

	corsCfg, err := envconfig.NewCORSConfig()
	if err != nil {
		return fmt.Errorf("%s CORS: %w", op, err)
	}

	notificationsCfg, err := envconfig.NewNotificationsConfig()
	if err != nil {
		return fmt.Errorf("%s Notifications: %w", op, err)
	}

	seedCfg, err := envconfig.NewSeedConfig()
	if err != nil {
		return fmt.Errorf("%s Seed: %w", op, err)
	}

	c := &config{
		Server:        serverCfg,
		Logger:        loggerCfg,
		Mongo:         mongoCfg,
		Postgres:      postgresCfg,
		Auth:          authCfg,
		Store:         storeCfg,
		CORS:          corsCfg,
		Notifications: notificationsCfg,
		Seed:          seedCfg,
	}

	// Kafka and Telegram settings are only required when notifications run.
	if notificationsCfg.Enabled() {
		kafkaCfg, err := envconfig.NewKafkaConfig()
		if err != nil {
			return fmt.Errorf("%s Kafka: %w", op, err)
		}

		telegramCfg, err := envconfig.NewTelegramConfig()
		if err != nil {
			return fmt.Errorf("%s Telegram: %w", op, err)
		}

		c.Kafka = kafkaCfg
		c.Telegram = telegramCfg
	}

	cfg = c
	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
