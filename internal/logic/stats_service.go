package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/devbm7/deadshot-stats/internal/models"
	"github.com/devbm7/deadshot-stats/internal/stats"
	"github.com/devbm7/deadshot-stats/internal/store"
)

// overviewTopN bounds the leaderboard excerpt embedded in the overview.
const overviewTopN = 5

type statsService struct {
	source SnapshotProvider
	cache  *store.Cache
	logger *zap.SugaredLogger

	recentWindowDays int
}

// NewStatsService builds the read-side service. cache may be nil; every
// method then computes from scratch.
func NewStatsService(source SnapshotProvider, cache *store.Cache, recentWindowDays int, logger *zap.SugaredLogger) StatsService {
	if recentWindowDays <= 0 {
		recentWindowDays = 7
	}
	return &statsService{
		source:           source,
		cache:            cache,
		logger:           logger,
		recentWindowDays: recentWindowDays,
	}
}

// table loads and normalizes the snapshot. A store failure degrades to an
// empty table so read endpoints report absence instead of erroring; the
// failure itself is logged for the operator.
func (s *statsService) table(ctx context.Context) []models.MatchRow {
	rows, err := s.source.Snapshot(ctx)
	if err != nil {
		s.logger.Errorw("snapshot load failed, serving empty table", "error", err)
		return nil
	}
	return stats.Normalize(rows)
}

func (s *statsService) Players(ctx context.Context) ([]string, error) {
	return stats.Players(s.table(ctx)), nil
}

func (s *statsService) Player(ctx context.Context, name string) (models.PlayerStats, bool, error) {
	ps, ok := stats.PlayerStats(s.table(ctx), name)
	return ps, ok, nil
}

func (s *statsService) Evolution(ctx context.Context, name string) ([]models.EvolutionPoint, error) {
	return stats.EvolutionTimeline(s.table(ctx), name), nil
}

func (s *statsService) Streaks(ctx context.Context, name string) (models.StreakStats, bool, error) {
	st, ok := stats.Streaks(s.table(ctx), name)
	return st, ok, nil
}

func (s *statsService) Achievements(ctx context.Context, name string) ([]models.AchievementStatus, bool, error) {
	list, ok := stats.Achievements(s.table(ctx), name)
	return list, ok, nil
}

func (s *statsService) Role(ctx context.Context, name string) (models.RoleProfile, bool, error) {
	ps, ok := stats.PlayerStats(s.table(ctx), name)
	if !ok {
		return models.RoleProfile{}, false, nil
	}
	return stats.ClassifyRole(ps), true, nil
}

func (s *statsService) Prediction(ctx context.Context, name string) (models.PlayerPrediction, bool, error) {
	pred, ok := stats.PredictPerformance(s.table(ctx), name)
	return pred, ok, nil
}

func (s *statsService) Leaderboard(ctx context.Context, metric string) ([]models.LeaderboardRow, error) {
	key := fmt.Sprintf("leaderboard:%s", metric)
	var cached []models.LeaderboardRow
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}
	rows := stats.Leaderboard(s.table(ctx), metric)
	s.cache.Set(ctx, key, rows)
	return rows, nil
}

func (s *statsService) Teams(ctx context.Context) ([]models.TeamStats, error) {
	return stats.TeamStatsAll(s.table(ctx)), nil
}

func (s *statsService) Chemistry(ctx context.Context) ([]models.ChemistryEntry, error) {
	return stats.TeamChemistry(s.table(ctx)), nil
}

func (s *statsService) Formations(ctx context.Context) ([]models.FormationStats, error) {
	return stats.Formations(s.table(ctx)), nil
}

func (s *statsService) Weapons(ctx context.Context) ([]models.WeaponStats, error) {
	return stats.WeaponStatsAll(s.table(ctx)), nil
}

func (s *statsService) Maps(ctx context.Context) ([]models.MapStats, error) {
	return stats.MapStatsAll(s.table(ctx)), nil
}

func (s *statsService) Match(ctx context.Context, matchID int64) (models.MatchSummary, bool, error) {
	sum, ok := stats.MatchSummary(s.table(ctx), matchID)
	return sum, ok, nil
}

func (s *statsService) Recent(ctx context.Context, days int) (models.RecentActivity, bool, error) {
	if days <= 0 {
		days = s.recentWindowDays
	}
	key := fmt.Sprintf("recent:%d", days)
	var cached models.RecentActivity
	if s.cache.Get(ctx, key, &cached) {
		return cached, true, nil
	}
	act, ok := stats.RecentActivityWindow(s.table(ctx), days)
	if ok {
		s.cache.Set(ctx, key, act)
	}
	return act, ok, nil
}

func (s *statsService) Daily(ctx context.Context) ([]models.DailyStats, error) {
	return stats.DailyBreakdown(s.table(ctx)), nil
}

func (s *statsService) Sessions(ctx context.Context) ([]models.SessionSummary, error) {
	return stats.Sessions(s.table(ctx)), nil
}

func (s *statsService) Hourly(ctx context.Context) ([]models.HourlyStats, error) {
	return stats.HourlyPatterns(s.table(ctx)), nil
}

func (s *statsService) Tiers(ctx context.Context) ([]models.TierEntry, error) {
	return stats.TierRanking(s.table(ctx)), nil
}

func (s *statsService) Clusters(ctx context.Context) ([]models.Cluster, error) {
	return stats.ClusterPlayers(s.table(ctx)), nil
}

func (s *statsService) Roles(ctx context.Context) ([]models.RoleProfile, error) {
	return stats.RoleProfiles(s.table(ctx)), nil
}

// Overview fans the independent sections out over one shared snapshot. The
// sections are pure computations on the same slice, so they can run
// concurrently without copies.
func (s *statsService) Overview(ctx context.Context) (models.Overview, error) {
	const key = "overview"
	var cached models.Overview
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	table := s.table(ctx)
	var ov models.Overview

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		matches := make(map[int64]struct{})
		for _, row := range table {
			matches[row.MatchID] = struct{}{}
			ov.TotalKills += row.Kills
			ov.TotalDeaths += row.Deaths
			if ov.FirstMatch.IsZero() || row.Datetime.Before(ov.FirstMatch) {
				ov.FirstMatch = row.Datetime
			}
			if row.Datetime.After(ov.LastMatch) {
				ov.LastMatch = row.Datetime
			}
		}
		ov.TotalMatches = len(matches)
		ov.TotalPlayers = len(stats.Players(table))
		return nil
	})
	g.Go(func() error {
		rows := stats.Leaderboard(table, stats.DefaultLeaderboardMetric)
		if len(rows) > overviewTopN {
			rows = rows[:overviewTopN]
		}
		ov.TopPlayers = rows
		return nil
	})
	g.Go(func() error {
		if act, ok := stats.RecentActivityWindow(table, s.recentWindowDays); ok {
			ov.Recent = act
		}
		return nil
	})
	g.Go(func() error {
		ov.TotalMaps = len(stats.MapStatsAll(table))
		ov.TotalWeapons = len(stats.WeaponStatsAll(table))
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Overview{}, err
	}

	s.cache.Set(ctx, key, ov)
	return ov, nil
}
