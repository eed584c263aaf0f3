package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

type catalogEntryRequest struct {
	Name string `json:"name" validate:"required"`
}

// ListCatalog handles GET /api/v1/catalog/{kind}.
func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	names, err := h.catalog.List(r.Context(), kind)
	if err != nil {
		if strings.Contains(err.Error(), "unknown catalog kind") {
			h.errorResponse(w, http.StatusNotFound, "Unknown catalog")
			return
		}
		h.logger.Errorw("catalog list failed", "kind", kind, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to list catalog")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"kind":  kind,
		"names": names,
	})
}

// AddCatalogEntry handles POST /api/v1/catalog/{kind}.
func (h *Handler) AddCatalogEntry(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	var req catalogEntryRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if err := h.catalog.Add(r.Context(), kind, req.Name); err != nil {
		if strings.Contains(err.Error(), "unknown catalog kind") {
			h.errorResponse(w, http.StatusNotFound, "Unknown catalog")
			return
		}
		h.logger.Errorw("catalog add failed", "kind", kind, "name", req.Name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to add catalog entry")
		return
	}
	h.jsonResponse(w, http.StatusCreated, map[string]string{
		"kind": kind,
		"name": req.Name,
	})
}

// RemoveCatalogEntry handles DELETE /api/v1/catalog/{kind}/{name}.
func (h *Handler) RemoveCatalogEntry(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	name := chi.URLParam(r, "name")
	if err := h.catalog.Remove(r.Context(), kind, name); err != nil {
		if strings.Contains(err.Error(), "unknown catalog kind") {
			h.errorResponse(w, http.StatusNotFound, "Unknown catalog")
			return
		}
		h.logger.Errorw("catalog remove failed", "kind", kind, "name", name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to remove catalog entry")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
