package handlers

import (
	"net/http"

	"github.com/devbm7/deadshot-stats/internal/models"
	"github.com/devbm7/deadshot-stats/internal/stats"
)

// IngestMatch handles POST /api/v1/ingest/matches. Validation collects every
// problem across all rows before rejecting, so the client sees the complete
// list in one round trip. Accepted submissions are queued; the match id is
// assigned asynchronously by the worker pool.
func (h *Handler) IngestMatch(w http.ResponseWriter, r *http.Request) {
	var sub models.MatchSubmission
	if !h.decodeJSON(w, r, &sub) {
		return
	}

	if msgs := stats.ValidateSubmission(sub.Rows); len(msgs) > 0 {
		h.logger.Infow("submission rejected", "violations", len(msgs))
		h.jsonResponse(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"accepted": false,
			"errors":   msgs,
		})
		return
	}

	id, ok := h.pool.Enqueue(sub)
	if !ok {
		h.errorResponse(w, http.StatusServiceUnavailable, "Ingestion queue is full")
		return
	}

	h.logger.Infow("submission accepted", "submission", id, "rows", len(sub.Rows))
	h.jsonResponse(w, http.StatusAccepted, map[string]interface{}{
		"accepted":      true,
		"submission_id": id,
		"rows":          len(sub.Rows),
	})
}
