package stats

import (
	"math"
	"sort"
	"strings"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// comparisonMetrics are the head-to-head dimensions of a pairwise comparison,
// in display order.
var comparisonMetrics = []struct {
	name  string
	value func(models.PlayerStats) float64
}{
	{"kd_ratio", func(ps models.PlayerStats) float64 { return ps.KDRatio }},
	{"win_rate", func(ps models.PlayerStats) float64 { return ps.WinRate }},
	{"kills_per_min", func(ps models.PlayerStats) float64 { return ps.KillsPerMin }},
	{"assists_per_min", func(ps models.PlayerStats) float64 { return ps.AssistsPerMin }},
	{"total_matches", func(ps models.PlayerStats) float64 { return float64(ps.TotalMatches) }},
	{"total_kills", func(ps models.PlayerStats) float64 { return float64(ps.TotalKills) }},
}

// ComparePlayers reports the signed difference and the leading player for
// each comparison metric. The ok return is false when either player is
// missing from the table.
func ComparePlayers(table []models.MatchRow, playerA, playerB string) (models.ComparisonResult, bool) {
	statsA, okA := PlayerStats(table, playerA)
	statsB, okB := PlayerStats(table, playerB)
	if !okA || !okB {
		return models.ComparisonResult{}, false
	}

	result := models.ComparisonResult{PlayerA: playerA, PlayerB: playerB}
	for _, m := range comparisonMetrics {
		a, b := m.value(statsA), m.value(statsB)
		mc := models.MetricComparison{
			Metric: m.name,
			ValueA: a,
			ValueB: b,
			Diff:   round2(a - b),
		}
		switch {
		case a > b:
			mc.Leader = playerA
		case b > a:
			mc.Leader = playerB
		}
		result.Metrics = append(result.Metrics, mc)
	}
	return result, true
}

// rosterBase holds the averaged/summed inputs of a scenario simulation.
type rosterBase struct {
	players    []string
	roles      []string
	avgKD      float64
	avgWinRate float64
	sumKPM     float64
	sumAPM     float64
	synergy    float64
	strength   float64
}

// baseStrength folds a roster's averages and synergy into the single strength
// figure used both for the predicted win rate and for head-to-head deltas.
func (b *rosterBase) baseStrength() float64 {
	return b.avgKD*25 + b.avgWinRate*0.5 + b.synergy*0.3
}

// buildRoster aggregates a candidate roster. Names with no match history are
// skipped; a roster with no known players yields ok=false.
func buildRoster(table []models.MatchRow, names []string) (rosterBase, bool) {
	var base rosterBase
	roleSet := make(map[string]struct{})
	for _, name := range names {
		ps, ok := PlayerStats(table, name)
		if !ok {
			continue
		}
		base.players = append(base.players, name)
		base.avgKD += ps.KDRatio
		base.avgWinRate += ps.WinRate
		base.sumKPM += ps.KillsPerMin
		base.sumAPM += ps.AssistsPerMin
		role := ClassifyRole(ps).Role
		base.roles = append(base.roles, role)
		roleSet[role] = struct{}{}
	}
	if len(base.players) == 0 {
		return rosterBase{}, false
	}
	n := float64(len(base.players))
	base.avgKD /= n
	base.avgWinRate /= n

	base.synergy = 10 * float64(len(roleSet))
	_, hasKiller := roleSet[models.RoleKiller]
	_, hasSupport := roleSet[models.RoleSupport]
	if hasKiller && hasSupport {
		base.synergy += 20
	}
	if _, hasLeader := roleSet[models.RoleLeader]; hasLeader {
		base.synergy += 15
	}
	if base.synergy > 100 {
		base.synergy = 100
	}
	base.strength = base.baseStrength()
	return base, true
}

// SimulateScenario predicts how a candidate roster would perform: synergy
// from role complementarity and a heuristic win rate capped at 95. When an
// opponent roster is supplied, a head-to-head win rate is derived from the
// strength delta, clamped to [5, 95].
func SimulateScenario(table []models.MatchRow, players, opponents []string) (models.ScenarioResult, bool) {
	base, ok := buildRoster(table, players)
	if !ok {
		return models.ScenarioResult{}, false
	}

	result := models.ScenarioResult{
		Players:            base.players,
		Roles:              base.roles,
		AvgKDRatio:         round2(base.avgKD),
		AvgWinRate:         round1(base.avgWinRate),
		TotalKillsPerMin:   round2(base.sumKPM),
		TotalAssistsPerMin: round2(base.sumAPM),
		SynergyScore:       base.synergy,
		PredictedWinRate:   round1(math.Min(95, base.strength)),
	}

	if len(opponents) > 0 {
		opp, ok := buildRoster(table, opponents)
		if ok {
			result.OpponentPlayers = opp.players
			h2h := 50 + 0.8*(base.strength-opp.strength)
			result.HeadToHeadWinRate = round1(math.Min(95, math.Max(5, h2h)))
		}
	}

	return result, true
}

// FindOptimalTeam exhaustively enumerates every size-k combination of the
// pool, simulates each, and returns the best roster plus the full ranked set.
// The C(n, k) enumeration is a deliberate brute force with no pruning or
// approximation; it is only viable for small pools, and the caller is
// expected to bound the pool size before asking.
func FindOptimalTeam(table []models.MatchRow, pool []string, teamSize int) (models.OptimalTeamResult, bool) {
	pool = dedupSorted(append([]string(nil), pool...))
	if teamSize <= 0 || len(pool) < teamSize {
		return models.OptimalTeamResult{}, false
	}

	var candidates []models.TeamCandidate
	combinations(len(pool), teamSize, func(idx []int) {
		roster := make([]string, teamSize)
		for i, j := range idx {
			roster[i] = pool[j]
		}
		sim, ok := SimulateScenario(table, roster, nil)
		if !ok {
			return
		}
		score := 0.4*sim.PredictedWinRate + 0.3*sim.SynergyScore + 3*sim.AvgKDRatio
		candidates = append(candidates, models.TeamCandidate{
			Players:          roster,
			Score:            round2(score),
			SynergyScore:     sim.SynergyScore,
			PredictedWinRate: sim.PredictedWinRate,
			AvgKDRatio:       sim.AvgKDRatio,
		})
	})
	if len(candidates) == 0 {
		return models.OptimalTeamResult{}, false
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return strings.Join(candidates[i].Players, "|") < strings.Join(candidates[j].Players, "|")
	})

	return models.OptimalTeamResult{
		Best:       candidates[0],
		Candidates: candidates,
	}, true
}

// combinations visits every k-subset of [0, n) in lexicographic order.
func combinations(n, k int, visit func(idx []int)) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		visit(idx)
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
