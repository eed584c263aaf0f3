package stats

import (
	"sort"
	"time"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// TeamStatsAll aggregates every team identifier appearing in team-mode rows.
// Wins and losses follow the team rule of win attribution: a drawn match
// counts as neither. Output is sorted by team name.
func TeamStatsAll(table []models.MatchRow) []models.TeamStats {
	groups := groupByMatch(table)

	type teamAgg struct {
		matches  map[int64]struct{}
		kills    int
		deaths   int
		score    int
	}
	aggs := make(map[string]*teamAgg)
	for _, row := range table {
		if !row.GameMode.IsTeamMode() || row.Team == nil {
			continue
		}
		a, ok := aggs[*row.Team]
		if !ok {
			a = &teamAgg{matches: make(map[int64]struct{})}
			aggs[*row.Team] = a
		}
		a.matches[row.MatchID] = struct{}{}
		a.kills += row.Kills
		a.deaths += row.Deaths
		a.score += row.Score
	}

	teams := make([]string, 0, len(aggs))
	for team := range aggs {
		teams = append(teams, team)
	}
	sort.Strings(teams)

	out := make([]models.TeamStats, 0, len(teams))
	for _, team := range teams {
		a := aggs[team]
		ts := models.TeamStats{
			Team:        team,
			Matches:     len(a.matches),
			TotalKills:  a.kills,
			TotalDeaths: a.deaths,
			TotalScore:  a.score,
		}
		perMatchScore := 0
		for id := range a.matches {
			switch TeamOutcome(groups[id], team) {
			case OutcomeWin:
				ts.Wins++
			case OutcomeLoss:
				ts.Losses++
			}
			for _, row := range groups[id] {
				if row.TeamName() == team {
					perMatchScore += row.Score
				}
			}
		}
		ts.WinRate = WinRate(ts.Wins, ts.Losses)
		if ts.Matches > 0 {
			ts.AvgScorePerMatch = round1(float64(perMatchScore) / float64(ts.Matches))
		}
		out = append(out, ts)
	}
	return out
}

// WeaponStatsAll groups all rows by weapon, regardless of mode. Kills and
// scores keep their plain meaning even in Confirm modes; tags do not
// propagate here.
func WeaponStatsAll(table []models.MatchRow) []models.WeaponStats {
	type weaponAgg struct {
		uses   int
		kills  int
		deaths int
		score  int
	}
	aggs := make(map[string]*weaponAgg)
	for _, row := range table {
		if row.Weapon == "" {
			continue
		}
		a, ok := aggs[row.Weapon]
		if !ok {
			a = &weaponAgg{}
			aggs[row.Weapon] = a
		}
		a.uses++
		a.kills += row.Kills
		a.deaths += row.Deaths
		a.score += row.Score
	}

	weapons := make([]string, 0, len(aggs))
	for w := range aggs {
		weapons = append(weapons, w)
	}
	sort.Strings(weapons)

	out := make([]models.WeaponStats, 0, len(weapons))
	for _, w := range weapons {
		a := aggs[w]
		out = append(out, models.WeaponStats{
			Weapon:         w,
			UsageCount:     a.uses,
			TotalKills:     a.kills,
			TotalDeaths:    a.deaths,
			KDRatio:        KDRatio(a.kills, a.deaths),
			Accuracy:       Accuracy(a.kills, a.deaths),
			AvgKillsPerUse: round1(float64(a.kills) / float64(a.uses)),
			AvgScore:       round1(float64(a.score) / float64(a.uses)),
		})
	}
	return out
}

// MapStatsAll groups all rows by map name.
func MapStatsAll(table []models.MatchRow) []models.MapStats {
	type mapAgg struct {
		matches map[int64]struct{}
		kills   int
		deaths  int
		score   int
	}
	aggs := make(map[string]*mapAgg)
	for _, row := range table {
		a, ok := aggs[row.MapName]
		if !ok {
			a = &mapAgg{matches: make(map[int64]struct{})}
			aggs[row.MapName] = a
		}
		a.matches[row.MatchID] = struct{}{}
		a.kills += row.Kills
		a.deaths += row.Deaths
		a.score += row.Score
	}

	maps := make([]string, 0, len(aggs))
	for m := range aggs {
		maps = append(maps, m)
	}
	sort.Strings(maps)

	out := make([]models.MapStats, 0, len(maps))
	for _, m := range maps {
		a := aggs[m]
		n := float64(len(a.matches))
		out = append(out, models.MapStats{
			MapName:          m,
			MatchesPlayed:    len(a.matches),
			TotalKills:       a.kills,
			TotalDeaths:      a.deaths,
			KDRatio:          KDRatio(a.kills, a.deaths),
			AvgKillsPerMatch: round1(float64(a.kills) / n),
			AvgScorePerMatch: round1(float64(a.score) / n),
		})
	}
	return out
}

// leaderboardMetrics whitelists the sortable metric keys. Unknown keys fall
// back to the default rather than erroring, mirroring how the leaderboard
// stat parameter has always behaved.
var leaderboardMetrics = map[string]func(models.LeaderboardRow) float64{
	"kd_ratio":            func(r models.LeaderboardRow) float64 { return r.KDRatio },
	"accuracy":            func(r models.LeaderboardRow) float64 { return r.Accuracy },
	"win_rate":            func(r models.LeaderboardRow) float64 { return r.WinRate },
	"total_kills":         func(r models.LeaderboardRow) float64 { return float64(r.TotalKills) },
	"avg_kills_per_match": func(r models.LeaderboardRow) float64 { return r.AvgKillsPerMatch },
	"kills_per_min":       func(r models.LeaderboardRow) float64 { return r.KillsPerMin },
	"total_score":         func(r models.LeaderboardRow) float64 { return float64(r.TotalScore) },
	"total_coins":         func(r models.LeaderboardRow) float64 { return float64(r.TotalCoins) },
	"total_matches":       func(r models.LeaderboardRow) float64 { return float64(r.TotalMatches) },
}

// DefaultLeaderboardMetric is used when the requested key is unknown or blank.
const DefaultLeaderboardMetric = "kd_ratio"

// Leaderboard builds one row per player and sorts descending by the requested
// metric, with the player name as tiebreak. An empty table yields an empty
// slice, not an error.
func Leaderboard(table []models.MatchRow, metric string) []models.LeaderboardRow {
	key, ok := leaderboardMetrics[metric]
	if !ok {
		key = leaderboardMetrics[DefaultLeaderboardMetric]
	}

	players := Players(table)
	rows := make([]models.LeaderboardRow, 0, len(players))
	for _, name := range players {
		ps, ok := PlayerStats(table, name)
		if !ok {
			continue
		}
		rows = append(rows, models.LeaderboardRow{
			PlayerName:       ps.PlayerName,
			KDRatio:          ps.KDRatio,
			Accuracy:         ps.Accuracy,
			WinRate:          ps.WinRate,
			TotalKills:       ps.TotalKills,
			AvgKillsPerMatch: ps.AvgKillsPerMatch,
			KillsPerMin:      ps.KillsPerMin,
			TotalScore:       ps.TotalScore,
			TotalCoins:       ps.TotalCoins,
			TotalMatches:     ps.TotalMatches,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := key(rows[i]), key(rows[j])
		if a != b {
			return a > b
		}
		return rows[i].PlayerName < rows[j].PlayerName
	})
	return rows
}

// RecentActivityWindow summarizes the last `days` days of the table, anchored
// at the table's maximum datetime. The ok return is false for an empty table.
func RecentActivityWindow(table []models.MatchRow, days int) (models.RecentActivity, bool) {
	if len(table) == 0 {
		return models.RecentActivity{}, false
	}
	if days <= 0 {
		days = 7
	}

	var max time.Time
	for _, row := range table {
		if row.Datetime.After(max) {
			max = row.Datetime
		}
	}
	cutoff := max.AddDate(0, 0, -days)

	act := models.RecentActivity{Days: days}
	matches := make(map[int64]struct{})
	playerCounts := make(map[string]int)
	weaponCounts := make(map[string]int)
	for _, row := range table {
		if row.Datetime.Before(cutoff) {
			continue
		}
		matches[row.MatchID] = struct{}{}
		playerCounts[row.PlayerName]++
		if row.Weapon != "" {
			weaponCounts[row.Weapon]++
		}
		act.RecentKills += row.Kills
	}
	act.RecentMatches = len(matches)
	act.RecentPlayers = len(playerCounts)
	act.MostActivePlayer = modeOf(playerCounts)

	weapons := make([]models.WeaponUsage, 0, len(weaponCounts))
	for w, c := range weaponCounts {
		weapons = append(weapons, models.WeaponUsage{Weapon: w, Count: c})
	}
	sort.Slice(weapons, func(i, j int) bool {
		if weapons[i].Count != weapons[j].Count {
			return weapons[i].Count > weapons[j].Count
		}
		return weapons[i].Weapon < weapons[j].Weapon
	})
	if len(weapons) > 3 {
		weapons = weapons[:3]
	}
	act.TopWeapons = weapons

	return act, true
}

// MatchSummary describes a single match. The winner follows the win
// attribution rules: in team modes the team with the strictly highest metric
// sum, in FFA modes the first participant holding the match maximum. A drawn
// team match has no winner.
func MatchSummary(table []models.MatchRow, matchID int64) (models.MatchSummary, bool) {
	group := groupByMatch(table)[matchID]
	if len(group) == 0 {
		return models.MatchSummary{}, false
	}

	first := group[0]
	sum := models.MatchSummary{
		MatchID:      matchID,
		Datetime:     first.Datetime,
		GameMode:     first.GameMode,
		MapName:      first.MapName,
		MatchLength:  first.MatchLength,
		TotalPlayers: len(group),
	}

	topKills := 0
	for _, row := range group {
		sum.TotalKills += row.Kills
		sum.TotalDeaths += row.Deaths
		sum.TotalScore += row.Score
		if row.Kills > topKills {
			topKills = row.Kills
			sum.TopKiller = row.PlayerName
		}
		sum.Players = append(sum.Players, models.MatchPlayerLine{
			PlayerName: row.PlayerName,
			Team:       row.Team,
			Kills:      row.Kills,
			Deaths:     row.Deaths,
			Assists:    row.Assists,
			Score:      row.Score,
			Tags:       row.Tags,
			Weapon:     row.Weapon,
		})
	}

	if first.GameMode.IsTeamMode() {
		for _, row := range group {
			if TeamOutcome(group, row.TeamName()) == OutcomeWin {
				sum.Winner = row.TeamName()
				break
			}
		}
	} else {
		best := 0
		for _, row := range group {
			if v := row.WinMetric(); v > best {
				best = v
				sum.Winner = row.PlayerName
			}
		}
	}

	return sum, true
}
