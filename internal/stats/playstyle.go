package stats

import (
	"sort"
	"strings"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// ClassifyRole applies the rule-based role heuristic to a player's aggregate
// stats. Rules are evaluated in fixed priority order; the first match wins.
func ClassifyRole(ps models.PlayerStats) models.RoleProfile {
	profile := models.RoleProfile{PlayerName: ps.PlayerName}

	switch {
	case ps.KDRatio > 1.5 && ps.KillsPerMin > 0.8:
		profile.Role = models.RoleKiller
	case ps.AssistsPerMin > 0.3 && ps.DeathsPerMin < 0.5:
		profile.Role = models.RoleSupport
	case ps.KDRatio < 0.8 && ps.DeathsPerMin > 0.8:
		profile.Role = models.RoleAggressive
	case ps.WinRate > 60 && ps.KDRatio > 1.0:
		profile.Role = models.RoleLeader
	default:
		profile.Role = models.RoleBalanced
	}

	profile.KillingPower = capped(ps.KDRatio / 2)
	profile.SupportValue = capped(ps.AssistsPerMin / 0.5)
	profile.SurvivalRate = floored(1 - ps.DeathsPerMin)
	profile.WinningAbility = ps.WinRate / 100
	profile.Consistency = capped(float64(ps.TotalMatches) / 20)

	return profile
}

func capped(v float64) float64 {
	if v > 1 {
		return 1
	}
	return v
}

func floored(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// RoleProfiles classifies every player in the table, sorted by name.
func RoleProfiles(table []models.MatchRow) []models.RoleProfile {
	var out []models.RoleProfile
	for _, name := range Players(table) {
		ps, ok := PlayerStats(table, name)
		if !ok {
			continue
		}
		out = append(out, ClassifyRole(ps))
	}
	return out
}

// TeamChemistry evaluates every pair of players that shared a team in at
// least one team-mode match: the pairing's win rate under the team rule and
// a chemistry score of win-rate/100. Pairs with no shared matches are absent
// from the output, not reported as zero.
func TeamChemistry(table []models.MatchRow) []models.ChemistryEntry {
	groups := groupByMatch(table)

	type pairKey struct{ a, b string }
	type pairAgg struct {
		shared, wins, losses int
	}
	pairs := make(map[pairKey]*pairAgg)

	for _, group := range groups {
		if len(group) == 0 || !group[0].GameMode.IsTeamMode() {
			continue
		}
		// roster per team within this match
		rosters := make(map[string][]string)
		for _, row := range group {
			if t := row.TeamName(); t != "" {
				rosters[t] = append(rosters[t], row.PlayerName)
			}
		}
		for team, roster := range rosters {
			roster = dedupSorted(roster)
			if len(roster) < 2 {
				continue
			}
			outcome := TeamOutcome(group, team)
			for i := 0; i < len(roster); i++ {
				for j := i + 1; j < len(roster); j++ {
					key := pairKey{roster[i], roster[j]}
					agg, ok := pairs[key]
					if !ok {
						agg = &pairAgg{}
						pairs[key] = agg
					}
					agg.shared++
					switch outcome {
					case OutcomeWin:
						agg.wins++
					case OutcomeLoss:
						agg.losses++
					}
				}
			}
		}
	}

	keys := make([]pairKey, 0, len(pairs))
	for key := range pairs {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})

	out := make([]models.ChemistryEntry, 0, len(keys))
	for _, key := range keys {
		agg := pairs[key]
		wr := WinRate(agg.wins, agg.losses)
		out = append(out, models.ChemistryEntry{
			PlayerA:        key.a,
			PlayerB:        key.b,
			SharedMatches:  agg.shared,
			Wins:           agg.wins,
			Losses:         agg.losses,
			WinRate:        wr,
			ChemistryScore: round2(wr / 100),
		})
	}
	return out
}

// minFormationMatches filters out one-off lineups: a formation must be
// observed at least this many times to be reported.
const minFormationMatches = 2

// Formations accumulates per-lineup performance: the formation key is the
// sorted, deduplicated set of players fielded on one team in one match.
// Output is sorted by win rate descending, then match count, then key.
func Formations(table []models.MatchRow) []models.FormationStats {
	type formAgg struct {
		players []string
		matches int
		wins    int
		kills   int
		score   int
	}
	aggs := make(map[string]*formAgg)

	for _, group := range groupByMatch(table) {
		if len(group) == 0 || !group[0].GameMode.IsTeamMode() {
			continue
		}
		rosters := make(map[string][]string)
		teamKills := make(map[string]int)
		teamScore := make(map[string]int)
		for _, row := range group {
			t := row.TeamName()
			if t == "" {
				continue
			}
			rosters[t] = append(rosters[t], row.PlayerName)
			teamKills[t] += row.Kills
			teamScore[t] += row.Score
		}
		for team, roster := range rosters {
			roster = dedupSorted(roster)
			key := strings.Join(roster, "|")
			a, ok := aggs[key]
			if !ok {
				a = &formAgg{players: roster}
				aggs[key] = a
			}
			a.matches++
			if TeamOutcome(group, team) == OutcomeWin {
				a.wins++
			}
			a.kills += teamKills[team]
			a.score += teamScore[team]
		}
	}

	var out []models.FormationStats
	for _, a := range aggs {
		if a.matches < minFormationMatches {
			continue
		}
		n := float64(a.matches)
		out = append(out, models.FormationStats{
			Players:          a.players,
			Size:             len(a.players),
			Matches:          a.matches,
			Wins:             a.wins,
			WinRate:          round1(float64(a.wins) / n * 100),
			AvgKillsPerMatch: round1(float64(a.kills) / n),
			AvgScorePerMatch: round1(float64(a.score) / n),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].WinRate != out[j].WinRate {
			return out[i].WinRate > out[j].WinRate
		}
		if out[i].Matches != out[j].Matches {
			return out[i].Matches > out[j].Matches
		}
		return strings.Join(out[i].Players, "|") < strings.Join(out[j].Players, "|")
	})
	return out
}

// tierBrackets are the fixed top-down bracket sizes; everyone beyond the last
// bracket is Novice.
var tierBrackets = []struct {
	name string
	size int
}{
	{models.TierChampion, 1},
	{models.TierElite, 2},
	{models.TierVeteran, 3},
	{models.TierRookie, 4},
}

// TierRanking scores every player and assigns fixed-size tiers top-down.
func TierRanking(table []models.MatchRow) []models.TierEntry {
	var entries []models.TierEntry
	for _, name := range Players(table) {
		ps, ok := PlayerStats(table, name)
		if !ok {
			continue
		}
		score := 0.3*ps.KDRatio + 0.3*ps.WinRate + 0.2*ps.KillsPerMin +
			0.1*float64(ps.TotalMatches) + 0.1*ps.AssistsPerMin
		entries = append(entries, models.TierEntry{
			PlayerName:   name,
			RankingScore: round2(score),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].RankingScore != entries[j].RankingScore {
			return entries[i].RankingScore > entries[j].RankingScore
		}
		return entries[i].PlayerName < entries[j].PlayerName
	})

	idx := 0
	for b := range tierBrackets {
		for n := 0; n < tierBrackets[b].size && idx < len(entries); n++ {
			entries[idx].Rank = idx + 1
			entries[idx].Tier = tierBrackets[b].name
			idx++
		}
	}
	for ; idx < len(entries); idx++ {
		entries[idx].Rank = idx + 1
		entries[idx].Tier = models.TierNovice
	}
	return entries
}

// achievementDef is one fixed badge criterion. When reversed, lower metric
// values are better and progress is threshold/metric.
type achievementDef struct {
	id          string
	name        string
	description string
	threshold   float64
	metric      func(models.PlayerStats) float64
	reversed    bool
}

var achievementDefs = []achievementDef{
	{"kill_master", "Kill Master", "Reach 100 total kills", 100,
		func(ps models.PlayerStats) float64 { return float64(ps.TotalKills) }, false},
	{"sharpshooter", "Sharpshooter", "Hold a K/D ratio of 2.0", 2,
		func(ps models.PlayerStats) float64 { return ps.KDRatio }, false},
	{"veteran", "Veteran", "Play 50 matches", 50,
		func(ps models.PlayerStats) float64 { return float64(ps.TotalMatches) }, false},
	{"champion", "Champion", "Maintain a 60% win rate", 60,
		func(ps models.PlayerStats) float64 { return ps.WinRate }, false},
	{"score_hunter", "Score Hunter", "Accumulate 10000 total score", 10000,
		func(ps models.PlayerStats) float64 { return float64(ps.TotalScore) }, false},
	{"team_player", "Team Player", "Average 0.5 assists per minute", 0.5,
		func(ps models.PlayerStats) float64 { return ps.AssistsPerMin }, false},
	{"coin_collector", "Coin Collector", "Collect 1000 coins", 1000,
		func(ps models.PlayerStats) float64 { return float64(ps.TotalCoins) }, false},
	{"tag_specialist", "Tag Specialist", "Capture 50 tags", 50,
		func(ps models.PlayerStats) float64 { return float64(ps.TotalTags) }, false},
	{"marathon", "Marathon", "Play 500 total minutes", 500,
		func(ps models.PlayerStats) float64 { return float64(ps.TotalMinutes) }, false},
	{"survivor", "Survivor", "Keep deaths per minute at or below 0.5", 0.5,
		func(ps models.PlayerStats) float64 { return ps.DeathsPerMin }, true},
}

// Achievements evaluates the ten fixed badge criteria for one player. The ok
// return is false when the player has no rows.
func Achievements(table []models.MatchRow, player string) ([]models.AchievementStatus, bool) {
	ps, ok := PlayerStats(table, player)
	if !ok {
		return nil, false
	}

	out := make([]models.AchievementStatus, 0, len(achievementDefs))
	for _, def := range achievementDefs {
		v := def.metric(ps)
		status := models.AchievementStatus{
			ID:          def.id,
			Name:        def.name,
			Description: def.description,
		}
		if def.reversed {
			status.Unlocked = v <= def.threshold
			if v == 0 {
				status.Progress = 100
			} else {
				status.Progress = clampPct(def.threshold / v * 100)
			}
		} else {
			status.Unlocked = v >= def.threshold
			status.Progress = clampPct(v / def.threshold * 100)
		}
		out = append(out, status)
	}
	return out, true
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return round1(v)
}

func dedupSorted(names []string) []string {
	sort.Strings(names)
	out := names[:0]
	var last string
	for i, n := range names {
		if i == 0 || n != last {
			out = append(out, n)
		}
		last = n
	}
	return out
}
