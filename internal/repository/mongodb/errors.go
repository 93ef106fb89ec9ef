package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/frio-catalog/internal/model"
)

// WrapError adds op to err and classifies driver failures into model sentinels:
// duplicate keys become ErrConflict, transient failures ErrUnavailable.
func WrapError(op string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w: %w", op, model.ErrConflict, err)
	case isTransient(err):
		return fmt.Errorf("%s: %w: %w", op, model.ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func isTransient(err error) bool {
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var le mongo.LabeledError
	if errors.As(err, &le) {
		return le.HasErrorLabel("TransientTransactionError") || le.HasErrorLabel("RetryableWriteError")
	}

	return false
}
