package stats

import (
	"sort"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// matchTotals is one player's summed line for a single match.
type matchTotals struct {
	kills, deaths, assists, score, tags int
}

// PlayerStats aggregates every row belonging to one player. The second return
// is false when the table holds no rows for the player; callers must branch
// on it before reading any field.
func PlayerStats(table []models.MatchRow, player string) (models.PlayerStats, bool) {
	rows := playerRows(table, player)
	if len(rows) == 0 {
		return models.PlayerStats{}, false
	}

	ps := models.PlayerStats{PlayerName: player}

	perMatch := make(map[int64]*matchTotals)
	minutes := 0
	weaponCounts := make(map[string]int)
	pingSum, pingCount := 0, 0

	for _, row := range rows {
		mt, ok := perMatch[row.MatchID]
		if !ok {
			mt = &matchTotals{}
			perMatch[row.MatchID] = mt
			minutes += row.MatchLength
		}
		mt.kills += row.Kills
		mt.deaths += row.Deaths
		mt.assists += row.AssistCount()
		mt.score += row.Score
		if row.Tags != nil {
			mt.tags += *row.Tags
		}

		ps.TotalKills += row.Kills
		ps.TotalDeaths += row.Deaths
		ps.TotalAssists += row.AssistCount()
		ps.TotalScore += row.Score
		if row.Coins != nil {
			ps.TotalCoins += *row.Coins
		}
		if row.Tags != nil {
			ps.TotalTags += *row.Tags
		}
		if row.Weapon != "" {
			weaponCounts[row.Weapon]++
		}
		if row.Ping != nil {
			pingSum += *row.Ping
			pingCount++
		}
	}

	ps.TotalMatches = len(perMatch)
	ps.TotalMinutes = minutes

	var killSum, deathSum, assistSum, scoreSum int
	for _, mt := range perMatch {
		killSum += mt.kills
		deathSum += mt.deaths
		assistSum += mt.assists
		scoreSum += mt.score
		if mt.kills > ps.BestMatchKills {
			ps.BestMatchKills = mt.kills
		}
		if mt.score > ps.BestMatchScore {
			ps.BestMatchScore = mt.score
		}
		if mt.assists > ps.BestMatchAssists {
			ps.BestMatchAssists = mt.assists
		}
		if mt.tags > ps.BestMatchTags {
			ps.BestMatchTags = mt.tags
		}
	}

	n := float64(ps.TotalMatches)
	ps.AvgKillsPerMatch = round1(float64(killSum) / n)
	ps.AvgDeathsPerMatch = round1(float64(deathSum) / n)
	ps.AvgAssistsPerMatch = round1(float64(assistSum) / n)
	ps.AvgScorePerMatch = round1(float64(scoreSum) / n)

	ps.KDRatio = KDRatio(ps.TotalKills, ps.TotalDeaths)
	ps.Accuracy = Accuracy(ps.TotalKills, ps.TotalDeaths)

	if minutes > 0 {
		m := float64(minutes)
		ps.KillsPerMin = round2(float64(ps.TotalKills) / m)
		ps.DeathsPerMin = round2(float64(ps.TotalDeaths) / m)
		ps.AssistsPerMin = round2(float64(ps.TotalAssists) / m)
		ps.ScorePerMin = round2(float64(ps.TotalScore) / m)
	}

	ps.FavoriteWeapon = modeOf(weaponCounts)
	if ps.FavoriteWeapon == "" {
		ps.FavoriteWeapon = "Unknown"
	}

	if pingCount > 0 {
		avg := round1(float64(pingSum) / float64(pingCount))
		ps.AvgPing = &avg
	}

	ps.Wins, ps.Losses = PlayerWinLoss(table, player)
	ps.WinRate = WinRate(ps.Wins, ps.Losses)

	return ps, true
}

// modeOf returns the most frequent key, breaking ties by the smaller key so
// the result is stable. Empty input returns "".
func modeOf(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best, bestCount := "", 0
	for _, k := range keys {
		if counts[k] > bestCount {
			best, bestCount = k, counts[k]
		}
	}
	return best
}
