package http

import (
	"net/http"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	converter "github.com/you-humble/frio-catalog/internal/converter/http"
)

func (h *handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Settings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.SettingsToAPI(s))
}

func (h *handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.UpdateConfigRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	res, err := h.settings.UpdateExchangeRate(r.Context(), *req.ExchangeRate)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.UpdateRateResultToAPI(res))
}

// InstallKit serves both the admin kit config and the public kit meta.
func (h *handler) InstallKit(w http.ResponseWriter, r *http.Request) {
	items, err := h.kit.Meta(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, catalogv1.InstallKit{Items: converter.KitItemsToAPI(items)})
}

func (h *handler) UpdateInstallKit(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.InstallKit
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	specs, err := converter.KitItemsToModel(req.Items)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.kit.UpdateKit(r.Context(), specs)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, catalogv1.InstallKit{Items: converter.KitItemsToAPI(items)})
}

func (h *handler) PriceInstallKit(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.KitPriceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	price, err := h.kit.Price(r.Context(), converter.KitPriceToModel(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.KitPriceToAPI(price))
}

func (h *handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.dashboard.Dashboard(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.DashboardToAPI(d))
}
