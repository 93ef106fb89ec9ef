package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	converter "github.com/you-humble/frio-catalog/internal/converter/http"
	"github.com/you-humble/frio-catalog/internal/model"
)

func (h *handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	h.listProducts(w, r, true)
}

func (h *handler) ListAllProducts(w http.ResponseWriter, r *http.Request) {
	h.listProducts(w, r, false)
}

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request, activeOnly bool) {
	filter, err := productFilterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	filter.ActiveOnly = activeOnly

	page, err := h.products.Query(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProductPageToAPI(page))
}

func (h *handler) ProductByCode(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.ByCode(r.Context(), chi.URLParam(r, "code"), model.ByCodeOptions{IncrementViews: true})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProductToAPI(p))
}

func (h *handler) ProductByID(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.ByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProductToAPI(p))
}

func (h *handler) CategoriesMeta(w http.ResponseWriter, r *http.Request) {
	meta, err := h.products.CategoriesMeta(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.CategoriesMetaToAPI(meta))
}

func (h *handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.CreateProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.products.Create(r.Context(), converter.CreateProductToModel(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.ProductToAPI(p))
}

func (h *handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.UpdateProductRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	p, err := h.products.Update(r.Context(), chi.URLParam(r, "id"), converter.UpdateProductToModel(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProductToAPI(p))
}

func (h *handler) ToggleProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.products.ToggleActive(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.ProductToAPI(p))
}

func (h *handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, catalogv1.OK{OK: true})
}

// productFilterFromQuery reads category, subcategory, search, minPrice,
// maxPrice, page, limit, sort and order. Tag parameters may repeat or
// hold comma separated values.
func productFilterFromQuery(q url.Values) (model.ProductFilter, error) {
	filter := model.ProductFilter{
		Categories:    splitList(q["category"]),
		Subcategories: splitList(q["subcategory"]),
		Search:        strings.TrimSpace(q.Get("search")),
		SortField:     q.Get("sort"),
		SortOrder:     model.SortDesc,
	}

	var err error
	if filter.MinPriceARS, err = floatParam(q, "minPrice"); err != nil {
		return filter, err
	}
	if filter.MaxPriceARS, err = floatParam(q, "maxPrice"); err != nil {
		return filter, err
	}
	if filter.Page, err = intParam(q, "page"); err != nil {
		return filter, err
	}
	if filter.Limit, err = intParam(q, "limit"); err != nil {
		return filter, err
	}

	switch strings.ToLower(q.Get("order")) {
	case "", "desc":
	case "asc":
		filter.SortOrder = model.SortAsc
	default:
		return filter, fmt.Errorf("order must be asc or desc: %w", model.ErrValidation)
	}

	return filter, nil
}

func splitList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return lo.FlatMap(values, func(v string, _ int) []string { return strings.Split(v, ",") })
}

func floatParam(q url.Values, key string) (*float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number: %w", key, model.ErrValidation)
	}
	return &v, nil
}

func intParam(q url.Values, key string) (int64, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, model.ErrValidation)
	}
	return v, nil
}
