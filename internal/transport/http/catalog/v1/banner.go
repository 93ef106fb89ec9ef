package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	converter "github.com/you-humble/frio-catalog/internal/converter/http"
	"github.com/you-humble/frio-catalog/internal/model"
)

func (h *handler) PublicBanners(w http.ResponseWriter, r *http.Request) {
	banners, err := h.banners.Public(r.Context(), model.BannerType(r.URL.Query().Get("type")))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BannersToAPI(banners))
}

func (h *handler) AllBanners(w http.ResponseWriter, r *http.Request) {
	var typ *model.BannerType
	if raw := r.URL.Query().Get("type"); raw != "" {
		typ = lo.ToPtr(model.BannerType(raw))
	}

	banners, err := h.banners.All(r.Context(), typ)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BannersToAPI(banners))
}

func (h *handler) CreateBanner(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.CreateBannerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	b, err := h.banners.Create(r.Context(), converter.CreateBannerToModel(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.BannerToAPI(b))
}

func (h *handler) UpdateBanner(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.UpdateBannerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	b, err := h.banners.Update(r.Context(), chi.URLParam(r, "id"), converter.UpdateBannerToModel(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BannerToAPI(b))
}

func (h *handler) DeleteBanner(w http.ResponseWriter, r *http.Request) {
	if err := h.banners.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, catalogv1.OK{OK: true})
}

func (h *handler) ToggleBanner(w http.ResponseWriter, r *http.Request) {
	b, err := h.banners.ToggleActive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.BannerToAPI(b))
}

func (h *handler) ReorderBanners(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.ReorderBannersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	n, err := h.banners.Reorder(r.Context(), req.IDs)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, catalogv1.ReorderBannersResponse{OK: true, Updated: n})
}
