package mongo

import (
	"context"

	"go.uber.org/zap"

	"github.com/you-humble/frio-catalog/platform/logger"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type Config struct {
	ImageName  string
	Database   string
	ReplicaSet string
	Logger     Logger

	URI string
}

func buildConfig(opts ...Option) *Config {
	cfg := &Config{
		ImageName:  "mongo:8.0",
		Database:   "test",
		ReplicaSet: "rs0",
		Logger:     &logger.NoopLogger{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}
