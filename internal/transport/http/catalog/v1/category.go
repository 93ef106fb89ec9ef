package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	catalogv1 "github.com/you-humble/frio-catalog/internal/api/catalog/v1"
	converter "github.com/you-humble/frio-catalog/internal/converter/http"
)

func (h *handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.categories.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.CategoriesToAPI(cats))
}

func (h *handler) CategoryTree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.categories.Tree(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.CategoryTreeToAPI(tree))
}

func (h *handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req catalogv1.CreateCategoryRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.categories.Create(r.Context(), converter.CreateCategoryToModel(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.CategoryToAPI(c))
}

func (h *handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.categories.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, catalogv1.OK{OK: true})
}
