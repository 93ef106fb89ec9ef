package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/you-humble/frio-catalog/platform/logger"
)

// Logging puts the chi request id into the log context and writes one
// line per request. Place it after middleware.RequestID.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := logger.WithContext(r.Context(), logger.String("request_id", middleware.GetReqID(r.Context())))

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		fields := []logger.Field{
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.Int("status", status),
			logger.Int("bytes", ww.BytesWritten()),
			logger.Duration("duration", time.Since(start)),
		}
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error(ctx, "http request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn(ctx, "http request", fields...)
		default:
			logger.Debug(ctx, "http request", fields...)
		}
	})
}
