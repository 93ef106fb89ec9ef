package http

import (
	"fmt"
	"net/http"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	converter "github.com/you-humble/frio-catalog/internal/converter/http"
	"github.com/you-humble/frio-catalog/internal/model"
	"github.com/you-humble/frio-catalog/internal/transport/http/middleware"
	"github.com/you-humble/frio-catalog/platform/logger"
)

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.Credentials
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tok, err := h.auth.Login(r.Context(), converter.CredentialsToModel(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.TokenToAPI(tok))
}

// Register is only reachable by a signed-in admin.
func (h *handler) Register(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, r, fmt.Errorf("register admin without session: %w", model.ErrUnauthorized))
		return
	}

	var req catalogv1.Credentials
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	admin, err := h.auth.Register(r.Context(), converter.CredentialsToModel(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Info(r.Context(), "admin registered",
		logger.String("username", admin.Username),
		logger.String("created_by", claims.Username),
	)
	writeJSON(w, r, http.StatusCreated, converter.AdminToAPI(admin))
}
