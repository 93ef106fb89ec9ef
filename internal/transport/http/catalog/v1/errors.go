package http

import (
	"errors"
	"net/http"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/platform/logger"
)

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code, body := mapError(r, err)
	writeJSON(w, r, code, body)
}

func mapError(r *http.Request, err error) (int, catalogv1.Error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		return newError(http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrTokenExpired):
		return newError(http.StatusUnauthorized, "session expired")
	case errors.Is(err, model.ErrUnauthorized):
		return newError(http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, model.ErrNotFound):
		return newError(http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrConflict):
		return newError(http.StatusConflict, err.Error())
	case errors.Is(err, model.ErrUnavailable):
		logger.Warn(r.Context(), "storage unavailable", logger.ErrorF(err))
		return newError(http.StatusServiceUnavailable, "service temporarily unavailable")
	default:
		logger.Error(r.Context(), "unhandled error", logger.ErrorF(err))
		return newError(http.StatusInternalServerError, "internal server error")
	}
}

func newError(code int, msg string) (int, catalogv1.Error) {
	return code, catalogv1.Error{Code: code, Message: msg}
}
