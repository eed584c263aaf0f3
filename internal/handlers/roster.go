package handlers

import (
	"net/http"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// ComparePlayers handles POST /api/v1/teams/compare.
func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	var req models.CompareRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	result, ok, err := h.roster.Compare(r.Context(), req.PlayerA, req.PlayerB)
	if err != nil {
		h.logger.Errorw("comparison failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compare players")
		return
	}
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "One or both players not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, result)
}

// SimulateScenario handles POST /api/v1/teams/simulate.
func (h *Handler) SimulateScenario(w http.ResponseWriter, r *http.Request) {
	var req models.ScenarioRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	result, ok, err := h.roster.Simulate(r.Context(), req.Players, req.Opponents)
	if err != nil {
		h.logger.Errorw("simulation failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to simulate scenario")
		return
	}
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "No known players in roster")
		return
	}
	h.jsonResponse(w, http.StatusOK, result)
}

// FindOptimalTeam handles POST /api/v1/teams/optimal. The pool size is
// bounded server-side because the search enumerates every combination.
func (h *Handler) FindOptimalTeam(w http.ResponseWriter, r *http.Request) {
	var req models.OptimalTeamRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	result, ok, err := h.roster.Optimal(r.Context(), req.Pool, req.TeamSize)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if !ok {
		h.errorResponse(w, http.StatusUnprocessableEntity, "Pool cannot field a team of that size")
		return
	}
	h.jsonResponse(w, http.StatusOK, result)
}
