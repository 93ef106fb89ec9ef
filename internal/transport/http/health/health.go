package health

import (
	"context"
	"net/http"
	"time"

	"github.com/you-humble/frio-catalog/platform/logger"
)

type Check func(ctx context.Context) error

const checkTimeout = 2 * time.Second

// Handler answers SERVING when every dependency check passes and
// NOT_SERVING with 503 otherwise.
func Handler(checks map[string]Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		defer cancel()

		status, body := http.StatusOK, "SERVING"
		for name, check := range checks {
			if err := check(ctx); err != nil {
				logger.Warn(ctx, "health check failed", logger.String("dependency", name), logger.ErrorF(err))
				status, body = http.StatusServiceUnavailable, "NOT_SERVING"
				break
			}
		}

		w.WriteHeader(status)
		if _, err := w.Write([]byte(body)); err != nil {
			logger.Error(r.Context(), "health check", logger.ErrorF(err))
		}
	}
}
