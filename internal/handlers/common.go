package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]bool{
		"clickhouse": h.matches.Ping(ctx) == nil,
		"redis":      h.cache.Ping(ctx) == nil,
	}

	ready := true
	for _, ok := range checks {
		if !ok {
			ready = false
			break
		}
	}

	status := http.StatusOK
	if !ready {
		status = http.StatusServiceUnavailable
	}
	h.jsonResponse(w, status, map[string]interface{}{
		"ready":      ready,
		"checks":     checks,
		"queueDepth": h.pool.QueueDepth(),
	})
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON decodes a bounded request body into dest and runs struct
// validation. A false return means the response has already been written.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	if err := h.validator.Struct(dest); err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
