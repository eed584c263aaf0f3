package handlers

import "net/http"

// Install creates the participant table and the catalog tables if absent.
// Idempotent; safe to call on a live system.
func (h *Handler) Install(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.matches.InstallSchema(ctx); err != nil {
		h.logger.Errorw("match schema install failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to install match schema")
		return
	}
	if err := h.catalog.InstallSchema(ctx); err != nil {
		h.logger.Errorw("catalog schema install failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to install catalog schema")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]string{"status": "installed"})
}

// NextMatchID reports the id the next accepted match will receive. Useful
// for form prefill; the authoritative assignment still happens at insert.
func (h *Handler) NextMatchID(w http.ResponseWriter, r *http.Request) {
	next, err := h.matches.NextMatchID(r.Context())
	if err != nil {
		h.logger.Errorw("next match id failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to read next match id")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]int64{"next_match_id": next})
}
