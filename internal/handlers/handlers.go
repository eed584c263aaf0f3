// Package handlers exposes the HTTP surface of the stats service: match
// ingestion, the read-side analytics endpoints, the team-composition tools
// and the catalog CRUD.
package handlers

import (
	"context"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/devbm7/deadshot-stats/internal/logic"
	"github.com/devbm7/deadshot-stats/internal/models"
)

// MaxBodySize limits request bodies to 1MB.
const MaxBodySize = 1048576

// IngestQueue is the worker pool surface the ingest endpoint talks to.
type IngestQueue interface {
	Enqueue(sub models.MatchSubmission) (uuid.UUID, bool)
	QueueDepth() int
}

// CatalogStore is the catalog surface (players, maps, weapons name lists).
type CatalogStore interface {
	List(ctx context.Context, kind string) ([]string, error)
	Add(ctx context.Context, kind, name string) error
	Remove(ctx context.Context, kind, name string) error
	InstallSchema(ctx context.Context) error
}

// SystemStore is the participant-table surface used by the system endpoints.
type SystemStore interface {
	InstallSchema(ctx context.Context) error
	NextMatchID(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// Pinger reports a dependency's liveness for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	WorkerPool IngestQueue
	Stats      logic.StatsService
	Roster     logic.RosterService
	Catalog    CatalogStore
	Matches    SystemStore
	Cache      Pinger
	Logger     *zap.Logger

	AllowedOrigins []string
}

type Handler struct {
	pool      IngestQueue
	stats     logic.StatsService
	roster    logic.RosterService
	catalog   CatalogStore
	matches   SystemStore
	cache     Pinger
	logger    *zap.SugaredLogger
	validator *validator.Validate

	allowedOrigins []string
}

func New(cfg Config) *Handler {
	return &Handler{
		pool:           cfg.WorkerPool,
		stats:          cfg.Stats,
		roster:         cfg.Roster,
		catalog:        cfg.Catalog,
		matches:        cfg.Matches,
		cache:          cfg.Cache,
		logger:         cfg.Logger.Sugar(),
		validator:      validator.New(),
		allowedOrigins: cfg.AllowedOrigins,
	}
}

// Router assembles the full route tree.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(metricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ingest/matches", h.IngestMatch)

		r.Route("/stats", func(r chi.Router) {
			r.Get("/overview", h.GetOverview)
			r.Get("/players", h.ListPlayers)
			r.Get("/players/{name}", h.GetPlayerStats)
			r.Get("/players/{name}/evolution", h.GetPlayerEvolution)
			r.Get("/players/{name}/streaks", h.GetPlayerStreaks)
			r.Get("/players/{name}/achievements", h.GetPlayerAchievements)
			r.Get("/players/{name}/role", h.GetPlayerRole)
			r.Get("/players/{name}/predictions", h.GetPlayerPrediction)
			r.Get("/leaderboard", h.GetLeaderboard)
			r.Get("/leaderboard/{metric}", h.GetLeaderboard)
			r.Get("/teams", h.GetTeamStats)
			r.Get("/teams/chemistry", h.GetTeamChemistry)
			r.Get("/teams/formations", h.GetFormations)
			r.Get("/weapons", h.GetWeaponStats)
			r.Get("/maps", h.GetMapStats)
			r.Get("/matches/{id}", h.GetMatch)
			r.Get("/recent", h.GetRecentActivity)
			r.Get("/daily", h.GetDailyStats)
			r.Get("/sessions", h.GetSessions)
			r.Get("/hourly", h.GetHourlyPatterns)
			r.Get("/tiers", h.GetTierRanking)
			r.Get("/clusters", h.GetClusters)
			r.Get("/roles", h.GetRoles)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Post("/compare", h.ComparePlayers)
			r.Post("/simulate", h.SimulateScenario)
			r.Post("/optimal", h.FindOptimalTeam)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/{kind}", h.ListCatalog)
			r.Post("/{kind}", h.AddCatalogEntry)
			r.Delete("/{kind}/{name}", h.RemoveCatalogEntry)
		})

		r.Route("/system", func(r chi.Router) {
			r.Post("/install", h.Install)
			r.Get("/next-match-id", h.NextMatchID)
		})
	})

	return r
}
