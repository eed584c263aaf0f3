package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GetOverview returns the dashboard landing summary.
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ov, err := h.stats.Overview(r.Context())
	if err != nil {
		h.logger.Errorw("overview failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute overview")
		return
	}
	h.jsonResponse(w, http.StatusOK, ov)
}

// GetLeaderboard returns the ranked player table for one metric. Unknown
// metrics fall back to the default rather than erroring.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	metric := chi.URLParam(r, "metric")
	rows, err := h.stats.Leaderboard(r.Context(), metric)
	if err != nil {
		h.logger.Errorw("leaderboard failed", "metric", metric, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute leaderboard")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"metric": metric,
		"rows":   rows,
	})
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	teams, err := h.stats.Teams(r.Context())
	if err != nil {
		h.logger.Errorw("team stats failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute team stats")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"teams": teams})
}

func (h *Handler) GetTeamChemistry(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.stats.Chemistry(r.Context())
	if err != nil {
		h.logger.Errorw("chemistry failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute chemistry")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"pairs": pairs})
}

func (h *Handler) GetFormations(w http.ResponseWriter, r *http.Request) {
	forms, err := h.stats.Formations(r.Context())
	if err != nil {
		h.logger.Errorw("formations failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute formations")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"formations": forms})
}

func (h *Handler) GetWeaponStats(w http.ResponseWriter, r *http.Request) {
	weapons, err := h.stats.Weapons(r.Context())
	if err != nil {
		h.logger.Errorw("weapon stats failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute weapon stats")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"weapons": weapons})
}

func (h *Handler) GetMapStats(w http.ResponseWriter, r *http.Request) {
	maps, err := h.stats.Maps(r.Context())
	if err != nil {
		h.logger.Errorw("map stats failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute map stats")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"maps": maps})
}

// GetMatch returns one match's summary by id.
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid match id")
		return
	}
	sum, ok, err := h.stats.Match(r.Context(), id)
	if err != nil {
		h.logger.Errorw("match summary failed", "match", id, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute match summary")
		return
	}
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Match not found")
		return
	}
	h.jsonResponse(w, http.StatusOK, sum)
}

// GetRecentActivity returns the last-N-days window, anchored at the newest
// row in the table. The days query parameter overrides the configured window.
func (h *Handler) GetRecentActivity(w http.ResponseWriter, r *http.Request) {
	days := 0
	if v := r.URL.Query().Get("days"); v != "" {
		d, err := strconv.Atoi(v)
		if err != nil || d <= 0 {
			h.errorResponse(w, http.StatusBadRequest, "Invalid days parameter")
			return
		}
		days = d
	}
	act, ok, err := h.stats.Recent(r.Context(), days)
	if err != nil {
		h.logger.Errorw("recent activity failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute recent activity")
		return
	}
	if !ok {
		h.jsonResponse(w, http.StatusOK, map[string]interface{}{"empty": true})
		return
	}
	h.jsonResponse(w, http.StatusOK, act)
}

func (h *Handler) GetDailyStats(w http.ResponseWriter, r *http.Request) {
	days, err := h.stats.Daily(r.Context())
	if err != nil {
		h.logger.Errorw("daily stats failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute daily stats")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"days": days})
}

func (h *Handler) GetSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.stats.Sessions(r.Context())
	if err != nil {
		h.logger.Errorw("sessions failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute sessions")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"sessions": sessions})
}

func (h *Handler) GetHourlyPatterns(w http.ResponseWriter, r *http.Request) {
	hours, err := h.stats.Hourly(r.Context())
	if err != nil {
		h.logger.Errorw("hourly patterns failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute hourly patterns")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"hours": hours})
}

func (h *Handler) GetTierRanking(w http.ResponseWriter, r *http.Request) {
	tiers, err := h.stats.Tiers(r.Context())
	if err != nil {
		h.logger.Errorw("tier ranking failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute tier ranking")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"tiers": tiers})
}

// GetClusters returns the k-means play-style grouping. Fewer than three
// players yields an empty set.
func (h *Handler) GetClusters(w http.ResponseWriter, r *http.Request) {
	clusters, err := h.stats.Clusters(r.Context())
	if err != nil {
		h.logger.Errorw("clustering failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute clusters")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"clusters": clusters})
}

func (h *Handler) GetRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.stats.Roles(r.Context())
	if err != nil {
		h.logger.Errorw("role profiles failed", "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Failed to compute roles")
		return
	}
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{"roles": roles})
}
