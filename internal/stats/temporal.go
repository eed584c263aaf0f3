package stats

import (
	"sort"
	"time"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// rollingWindow is the trailing mean window used to smooth timeline series.
const rollingWindow = 3

// EvolutionTimeline builds a player's chronological per-match trend: raw K/D
// and per-minute rates, plus a trailing rolling mean (window 3, minimum
// period 1) of each series. An unknown player yields an empty slice.
func EvolutionTimeline(table []models.MatchRow, player string) []models.EvolutionPoint {
	rows := playerRows(table, player)
	if len(rows) == 0 {
		return nil
	}

	perMatch := make(map[int64]*matchTotals)
	info := make(map[int64]models.MatchRow)
	for _, row := range rows {
		mt, ok := perMatch[row.MatchID]
		if !ok {
			mt = &matchTotals{}
			perMatch[row.MatchID] = mt
			info[row.MatchID] = row
		}
		mt.kills += row.Kills
		mt.deaths += row.Deaths
		mt.score += row.Score
	}

	ids := make([]int64, 0, len(perMatch))
	for id := range perMatch {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := info[ids[i]].Datetime, info[ids[j]].Datetime
		if !a.Equal(b) {
			return a.Before(b)
		}
		return ids[i] < ids[j]
	})

	points := make([]models.EvolutionPoint, 0, len(ids))
	for _, id := range ids {
		mt := perMatch[id]
		p := models.EvolutionPoint{
			MatchID:  id,
			Datetime: info[id].Datetime,
			KDRatio:  KDRatio(mt.kills, mt.deaths),
		}
		if length := info[id].MatchLength; length > 0 {
			p.KillsPerMin = round2(float64(mt.kills) / float64(length))
			p.ScorePerMin = round2(float64(mt.score) / float64(length))
		}
		points = append(points, p)
	}

	for i := range points {
		lo := i - rollingWindow + 1
		if lo < 0 {
			lo = 0
		}
		var kd, kpm, spm float64
		n := float64(i - lo + 1)
		for j := lo; j <= i; j++ {
			kd += points[j].KDRatio
			kpm += points[j].KillsPerMin
			spm += points[j].ScorePerMin
		}
		points[i].SmoothedKD = round2(kd / n)
		points[i].SmoothedKillsPerMin = round2(kpm / n)
		points[i].SmoothedScorePerMin = round2(spm / n)
	}

	return points
}

// Streaks scans a player's chronological win/loss sequence once. Undecided
// matches (draws, degenerate matches) are excluded from the sequence. The ok
// return is false when the player has no decided matches.
func Streaks(table []models.MatchRow, player string) (models.StreakStats, bool) {
	outcomes := playerOutcomesChrono(table, player)
	if len(outcomes) == 0 {
		return models.StreakStats{}, false
	}

	st := models.StreakStats{PlayerName: player, DecidedMatches: len(outcomes)}

	run := 0
	var runIsWin bool
	for _, win := range outcomes {
		if run == 0 || win != runIsWin {
			run = 1
			runIsWin = win
		} else {
			run++
		}
		if runIsWin && run > st.MaxWinStreak {
			st.MaxWinStreak = run
		}
		if !runIsWin && run > st.MaxLossStreak {
			st.MaxLossStreak = run
		}
	}
	if runIsWin {
		st.CurrentStreak = run
	} else {
		st.CurrentStreak = -run
	}

	lo := len(outcomes) - 10
	if lo < 0 {
		lo = 0
	}
	recentWins := 0
	for _, win := range outcomes[lo:] {
		if win {
			recentWins++
		}
	}
	st.RecentWinRate = WinRate(recentWins, len(outcomes)-lo-recentWins)

	return st, true
}

// dateOnly truncates a timestamp to its calendar date.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DailyBreakdown aggregates every row by calendar date, sorted ascending.
func DailyBreakdown(table []models.MatchRow) []models.DailyStats {
	type dayAgg struct {
		matches map[int64]struct{}
		kills   int
		deaths  int
		score   int
	}
	aggs := make(map[time.Time]*dayAgg)
	for _, row := range table {
		day := dateOnly(row.Datetime)
		a, ok := aggs[day]
		if !ok {
			a = &dayAgg{matches: make(map[int64]struct{})}
			aggs[day] = a
		}
		a.matches[row.MatchID] = struct{}{}
		a.kills += row.Kills
		a.deaths += row.Deaths
		a.score += row.Score
	}

	days := make([]time.Time, 0, len(aggs))
	for day := range aggs {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	out := make([]models.DailyStats, 0, len(days))
	for _, day := range days {
		a := aggs[day]
		out = append(out, models.DailyStats{
			Date:    day,
			Matches: len(a.matches),
			Kills:   a.kills,
			Deaths:  a.deaths,
			Score:   a.score,
			KDRatio: KDRatio(a.kills, a.deaths),
		})
	}
	return out
}

// Sessions segments play dates into gaming sessions: consecutive calendar
// days belong to the same session, any gap of more than one day starts a new
// one. Session ids are 1-based in chronological order.
func Sessions(table []models.MatchRow) []models.SessionSummary {
	daily := DailyBreakdown(table)
	if len(daily) == 0 {
		return nil
	}

	var sessions []models.SessionSummary
	var cur *models.SessionSummary
	for _, day := range daily {
		if cur != nil && day.Date.Sub(cur.EndDate) <= 24*time.Hour {
			cur.EndDate = day.Date
		} else {
			sessions = append(sessions, models.SessionSummary{
				SessionID: len(sessions) + 1,
				StartDate: day.Date,
				EndDate:   day.Date,
				PeakDay:   day.Date,
				PeakKD:    day.KDRatio,
			})
			cur = &sessions[len(sessions)-1]
		}
		cur.TotalMatches += day.Matches
		cur.TotalKills += day.Kills
		cur.TotalDeaths += day.Deaths
		cur.TotalScore += day.Score
		if day.KDRatio > cur.PeakKD {
			cur.PeakKD = day.KDRatio
			cur.PeakDay = day.Date
		}
		cur.DurationDays = int(cur.EndDate.Sub(cur.StartDate).Hours()/24) + 1
	}
	return sessions
}

// HourlyPatterns reports the mean per-row kills, deaths and score for each
// hour of day present in the table, sorted by hour. Independent of session
// segmentation.
func HourlyPatterns(table []models.MatchRow) []models.HourlyStats {
	type hourAgg struct {
		rows   int
		kills  int
		deaths int
		score  int
	}
	aggs := make(map[int]*hourAgg)
	for _, row := range table {
		h := row.Datetime.Hour()
		a, ok := aggs[h]
		if !ok {
			a = &hourAgg{}
			aggs[h] = a
		}
		a.rows++
		a.kills += row.Kills
		a.deaths += row.Deaths
		a.score += row.Score
	}

	hours := make([]int, 0, len(aggs))
	for h := range aggs {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	out := make([]models.HourlyStats, 0, len(hours))
	for _, h := range hours {
		a := aggs[h]
		n := float64(a.rows)
		out = append(out, models.HourlyStats{
			Hour:      h,
			Rows:      a.rows,
			AvgKills:  round2(float64(a.kills) / n),
			AvgDeaths: round2(float64(a.deaths) / n),
			AvgScore:  round2(float64(a.score) / n),
		})
	}
	return out
}
