// Package logic wires the pure analytics engine to the stores. Services load
// an in-memory snapshot of the participant table, hand it to the stats
// package, and cache the hot aggregates in Redis.
package logic

import (
	"context"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// SnapshotProvider yields the full, normalized match table. The ClickHouse
// MatchStore is the production implementation; tests substitute a fixture.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) ([]models.MatchRow, error)
}

// StatsService serves every read-side computation of the dashboard.
type StatsService interface {
	Players(ctx context.Context) ([]string, error)
	Player(ctx context.Context, name string) (models.PlayerStats, bool, error)
	Evolution(ctx context.Context, name string) ([]models.EvolutionPoint, error)
	Streaks(ctx context.Context, name string) (models.StreakStats, bool, error)
	Achievements(ctx context.Context, name string) ([]models.AchievementStatus, bool, error)
	Role(ctx context.Context, name string) (models.RoleProfile, bool, error)
	Prediction(ctx context.Context, name string) (models.PlayerPrediction, bool, error)
	Leaderboard(ctx context.Context, metric string) ([]models.LeaderboardRow, error)
	Teams(ctx context.Context) ([]models.TeamStats, error)
	Chemistry(ctx context.Context) ([]models.ChemistryEntry, error)
	Formations(ctx context.Context) ([]models.FormationStats, error)
	Weapons(ctx context.Context) ([]models.WeaponStats, error)
	Maps(ctx context.Context) ([]models.MapStats, error)
	Match(ctx context.Context, matchID int64) (models.MatchSummary, bool, error)
	Recent(ctx context.Context, days int) (models.RecentActivity, bool, error)
	Daily(ctx context.Context) ([]models.DailyStats, error)
	Sessions(ctx context.Context) ([]models.SessionSummary, error)
	Hourly(ctx context.Context) ([]models.HourlyStats, error)
	Tiers(ctx context.Context) ([]models.TierEntry, error)
	Clusters(ctx context.Context) ([]models.Cluster, error)
	Roles(ctx context.Context) ([]models.RoleProfile, error)
	Overview(ctx context.Context) (models.Overview, error)
}

// RosterService serves the team-composition tools: pairwise comparison,
// scenario simulation and the exhaustive optimal-team search.
type RosterService interface {
	Compare(ctx context.Context, playerA, playerB string) (models.ComparisonResult, bool, error)
	Simulate(ctx context.Context, players, opponents []string) (models.ScenarioResult, bool, error)
	Optimal(ctx context.Context, pool []string, teamSize int) (models.OptimalTeamResult, bool, error)
}
