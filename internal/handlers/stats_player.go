package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListPlayers returns every player name present in the match table.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.stats.Players(r.Context())
	if err != nil {
		h.logger.Errorw("list players failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to list players")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"players": players})
}

// GetPlayerStats returns the full aggregate for one player.
func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	ps, ok, err := h.stats.Player(r.Context(), name)
	if err != nil {
		h.logger.Errorw("player stats failed", "player", name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute player stats")
		return
	}
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, ps)
}

// GetPlayerEvolution returns the chronological per-match trend with rolling
// means. An unknown player is an empty timeline, not an error.
func (h *Handler) GetPlayerEvolution(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	points, err := h.stats.Evolution(r.Context(), name)
	if err != nil {
		h.logger.Errorw("evolution failed", "player", name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute evolution")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"player_name": name,
		"timeline":    points,
	})
}

// GetPlayerStreaks returns win/loss streak figures for one player.
func (h *Handler) GetPlayerStreaks(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	st, ok, err := h.stats.Streaks(r.Context(), name)
	if err != nil {
		h.logger.Errorw("streaks failed", "player", name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute streaks")
		return
	}
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Player has no decided matches")
		return
	}
	h.jsonResponse(w, http.StatusOK, st)
}

// GetPlayerRole returns the rule-based role classification and strength
// scores for one player.
func (h *Handler) GetPlayerRole(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	profile, ok, err := h.stats.Role(r.Context(), name)
	if err != nil {
		h.logger.Errorw("role failed", "player", name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to classify role")
		return
	}
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, profile)
}

// GetPlayerPrediction returns the next-match forecast from recent form.
func (h *Handler) GetPlayerPrediction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	pred, ok, err := h.stats.Prediction(r.Context(), name)
	if err != nil {
		h.logger.Errorw("prediction failed", "player", name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute prediction")
		return
	}
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, pred)
}

// GetPlayerAchievements returns the fixed badge set with unlock state and
// progress for one player.
func (h *Handler) GetPlayerAchievements(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	list, ok, err := h.stats.Achievements(r.Context(), name)
	if err != nil {
		h.logger.Errorw("achievements failed", "player", name, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute achievements")
		return
	}
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Player not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"player_name":  name,
		"achievements": list,
	})
}
