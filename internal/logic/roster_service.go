package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/devbm7/deadshot-stats/internal/models"
	"github.com/devbm7/deadshot-stats/internal/stats"
)

type rosterService struct {
	source      SnapshotProvider
	logger      *zap.SugaredLogger
	maxPoolSize int
}

// NewRosterService builds the team-composition service. maxPoolSize bounds
// the optimal-team search pool; the underlying search enumerates every
// C(n, k) roster and must not be handed an unbounded n.
func NewRosterService(source SnapshotProvider, maxPoolSize int, logger *zap.SugaredLogger) RosterService {
	if maxPoolSize <= 0 {
		maxPoolSize = 12
	}
	return &rosterService{source: source, logger: logger, maxPoolSize: maxPoolSize}
}

func (s *rosterService) table(ctx context.Context) []models.MatchRow {
	rows, err := s.source.Snapshot(ctx)
	if err != nil {
		s.logger.Errorw("snapshot load failed, serving empty table", "error", err)
		return nil
	}
	return stats.Normalize(rows)
}

func (s *rosterService) Compare(ctx context.Context, playerA, playerB string) (models.ComparisonResult, bool, error) {
	result, ok := stats.ComparePlayers(s.table(ctx), playerA, playerB)
	return result, ok, nil
}

func (s *rosterService) Simulate(ctx context.Context, players, opponents []string) (models.ScenarioResult, bool, error) {
	result, ok := stats.SimulateScenario(s.table(ctx), players, opponents)
	return result, ok, nil
}

func (s *rosterService) Optimal(ctx context.Context, pool []string, teamSize int) (models.OptimalTeamResult, bool, error) {
	if len(pool) > s.maxPoolSize {
		return models.OptimalTeamResult{}, false,
			fmt.Errorf("pool size %d exceeds the limit of %d", len(pool), s.maxPoolSize)
	}
	result, ok := stats.FindOptimalTeam(s.table(ctx), pool, teamSize)
	return result, ok, nil
}
