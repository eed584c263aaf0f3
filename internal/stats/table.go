// Package stats is the analytics engine: pure functions that derive player,
// team, weapon, map and session statistics from a flat table of
// match-participant rows. Nothing in this package performs I/O or keeps state
// between calls; every function is a deterministic transform of the snapshot
// it is handed. Absence (empty table, unknown player) is signalled through
// empty results and ok flags, never through errors.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// KDRatio divides kills by deaths with the zero-death convention used across
// the whole engine: with zero deaths the ratio is the kill count itself, or 0
// when there are no kills either. Rounded to 2 decimals.
func KDRatio(kills, deaths int) float64 {
	if deaths == 0 {
		if kills > 0 {
			return float64(kills)
		}
		return 0
	}
	return round2(float64(kills) / float64(deaths))
}

// Accuracy is kills/(kills+deaths) as a percentage, 1 decimal.
func Accuracy(kills, deaths int) float64 {
	total := kills + deaths
	if total == 0 {
		return 0
	}
	return round1(float64(kills) / float64(total) * 100)
}

// WinRate is wins/(wins+losses) as a percentage, 1 decimal, 0 when no match
// was decided.
func WinRate(wins, losses int) float64 {
	decided := wins + losses
	if decided == 0 {
		return 0
	}
	return round1(float64(wins) / float64(decided) * 100)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// Naive strips the timezone from a timestamp, keeping its wall-clock reading.
// Upstream rows arrive with inconsistent tz tagging; every datetime entering
// the engine goes through this exactly once, at the snapshot boundary.
func Naive(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)
}

// Normalize returns a copy of the table with all datetimes made tz-naive.
func Normalize(table []models.MatchRow) []models.MatchRow {
	out := make([]models.MatchRow, len(table))
	for i, row := range table {
		row.Datetime = Naive(row.Datetime)
		out[i] = row
	}
	return out
}

// groupByMatch buckets rows by match id.
func groupByMatch(table []models.MatchRow) map[int64][]models.MatchRow {
	groups := make(map[int64][]models.MatchRow)
	for _, row := range table {
		groups[row.MatchID] = append(groups[row.MatchID], row)
	}
	return groups
}

// matchesChrono returns the distinct match ids of the table ordered by match
// datetime, with the id as tiebreak.
func matchesChrono(table []models.MatchRow) []int64 {
	type matchTime struct {
		id int64
		at time.Time
	}
	seen := make(map[int64]time.Time)
	for _, row := range table {
		if _, ok := seen[row.MatchID]; !ok {
			seen[row.MatchID] = row.Datetime
		}
	}
	order := make([]matchTime, 0, len(seen))
	for id, at := range seen {
		order = append(order, matchTime{id, at})
	}
	sort.Slice(order, func(i, j int) bool {
		if !order[i].at.Equal(order[j].at) {
			return order[i].at.Before(order[j].at)
		}
		return order[i].id < order[j].id
	})
	ids := make([]int64, len(order))
	for i, m := range order {
		ids[i] = m.id
	}
	return ids
}

// playerRows filters the table down to one player's rows.
func playerRows(table []models.MatchRow, player string) []models.MatchRow {
	var out []models.MatchRow
	for _, row := range table {
		if row.PlayerName == player {
			out = append(out, row)
		}
	}
	return out
}

// Players returns the distinct player names of the table, sorted.
func Players(table []models.MatchRow) []string {
	seen := make(map[string]struct{})
	for _, row := range table {
		seen[row.PlayerName] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
