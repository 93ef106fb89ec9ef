package middleware

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/you-humble/frio-catalog/platform/kafka"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

func Logging(logger Logger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			start := time.Now()
			err := next(ctx, msg)

			fields := []zap.Field{
				zap.String("topic", msg.Topic),
				zap.String("key", string(msg.Key)),
				zap.Int64("offset", msg.Offset),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				logger.Error(ctx, "kafka message failed", append(fields, zap.Error(err))...)
				return err
			}

			logger.Info(ctx, "kafka message handled", fields...)
			return nil
		}
	}
}
