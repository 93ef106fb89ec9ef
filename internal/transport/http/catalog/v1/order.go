package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	converter "github.com/you-humble/frio-catalog/internal/converter/http"
	"github.com/you-humble/frio-catalog/internal/model"
)

func (h *handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.CreateOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.orders.Create(r.Context(), converter.CreateOrderToModel(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.CreateOrderResultToAPI(res))
}

func (h *handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	var filter model.OrderFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := model.OrderStatus(raw)
		if !status.Valid() {
			writeError(w, r, fmt.Errorf("unknown order status %q: %w", raw, model.ErrValidation))
			return
		}
		filter.Status = &status
	}

	orders, err := h.orders.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.OrdersToAPI(orders))
}

func (h *handler) OrderByID(w http.ResponseWriter, r *http.Request) {
	ordID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, fmt.Errorf("invalid order id: %w", model.ErrValidation))
		return
	}

	ord, err := h.orders.ByID(r.Context(), ordID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.OrderToAPI(ord))
}

func (h *handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ordID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, fmt.Errorf("invalid order id: %w", model.ErrValidation))
		return
	}

	var req catalogv1.UpdateOrderStatusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ord, err := h.orders.UpdateStatus(r.Context(), ordID, model.OrderStatus(req.Status))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.OrderToAPI(ord))
}
