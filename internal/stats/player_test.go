package stats

import (
	"reflect"
	"testing"
)

func TestPlayerStatsMissing(t *testing.T) {
	table := makeTable(rowSpec{match: 1, player: "Ace", kills: 5})
	if _, ok := PlayerStats(table, "Ghost"); ok {
		t.Fatal("expected ok=false for unknown player")
	}
	if _, ok := PlayerStats(nil, "Ace"); ok {
		t.Fatal("expected ok=false on empty table")
	}
}

func TestPlayerStatsTotals(t *testing.T) {
	table := makeTable(
		rowSpec{match: 1, day: 0, player: "Ace", kills: 10, deaths: 5, score: 100, weapon: "AR", ping: 40, coins: 30, length: 10},
		rowSpec{match: 1, day: 0, player: "Bolt", kills: 3, deaths: 10, score: 40},
		rowSpec{match: 2, day: 1, player: "Ace", kills: 8, deaths: 2, score: 120, weapon: "Sniper", ping: 60, coins: 20, length: 15},
		rowSpec{match: 2, day: 1, player: "Bolt", kills: 5, deaths: 8, score: 60},
		rowSpec{match: 3, day: 2, player: "Ace", kills: 6, deaths: 3, score: 80, weapon: "AR", length: 5},
		rowSpec{match: 3, day: 2, player: "Bolt", kills: 9, deaths: 6, score: 90},
	)

	ps, ok := PlayerStats(table, "Ace")
	if !ok {
		t.Fatal("expected stats for Ace")
	}

	if ps.TotalMatches != 3 {
		t.Errorf("TotalMatches = %d, want 3", ps.TotalMatches)
	}
	if ps.TotalKills != 24 || ps.TotalDeaths != 10 || ps.TotalScore != 300 {
		t.Errorf("totals = %d/%d/%d, want 24/10/300", ps.TotalKills, ps.TotalDeaths, ps.TotalScore)
	}
	if ps.TotalMinutes != 30 {
		t.Errorf("TotalMinutes = %d, want 30", ps.TotalMinutes)
	}
	if ps.TotalCoins != 50 {
		t.Errorf("TotalCoins = %d, want 50", ps.TotalCoins)
	}
	if ps.KDRatio != 2.4 {
		t.Errorf("KDRatio = %v, want 2.4", ps.KDRatio)
	}
	// 24/(24+10)*100 = 70.588... -> 70.6
	if ps.Accuracy != 70.6 {
		t.Errorf("Accuracy = %v, want 70.6", ps.Accuracy)
	}
	if ps.AvgKillsPerMatch != 8.0 {
		t.Errorf("AvgKillsPerMatch = %v, want 8.0", ps.AvgKillsPerMatch)
	}
	if ps.KillsPerMin != 0.8 {
		t.Errorf("KillsPerMin = %v, want 0.8", ps.KillsPerMin)
	}
	if ps.BestMatchKills != 10 || ps.BestMatchScore != 120 {
		t.Errorf("bests = %d/%d, want 10/120", ps.BestMatchKills, ps.BestMatchScore)
	}
	// AR appears twice, Sniper once
	if ps.FavoriteWeapon != "AR" {
		t.Errorf("FavoriteWeapon = %q, want AR", ps.FavoriteWeapon)
	}
	if ps.AvgPing == nil || *ps.AvgPing != 50.0 {
		t.Errorf("AvgPing = %v, want 50.0", ps.AvgPing)
	}
	// FFA wins by top score: Ace wins matches 1 and 2, loses match 3.
	if ps.Wins != 2 || ps.Losses != 1 {
		t.Errorf("wins/losses = %d/%d, want 2/1", ps.Wins, ps.Losses)
	}
	if ps.WinRate != 66.7 {
		t.Errorf("WinRate = %v, want 66.7", ps.WinRate)
	}
}

func TestPlayerStatsAbsentOptionals(t *testing.T) {
	table := makeTable(rowSpec{match: 1, player: "Ace", kills: 5, deaths: 1, score: 50})
	ps, ok := PlayerStats(table, "Ace")
	if !ok {
		t.Fatal("expected stats")
	}
	if ps.AvgPing != nil {
		t.Errorf("AvgPing = %v, want nil when no row carries ping", *ps.AvgPing)
	}
	if ps.TotalCoins != 0 || ps.TotalTags != 0 {
		t.Errorf("coins/tags = %d/%d, want 0/0", ps.TotalCoins, ps.TotalTags)
	}
}

func TestPlayerStatsIdempotent(t *testing.T) {
	table := makeTable(
		rowSpec{match: 1, day: 0, player: "Ace", kills: 7, deaths: 3, score: 70, ping: 30},
		rowSpec{match: 1, day: 0, player: "Bolt", kills: 2, deaths: 7, score: 20},
		rowSpec{match: 2, day: 1, player: "Ace", kills: 1, deaths: 9, score: 10},
		rowSpec{match: 2, day: 1, player: "Bolt", kills: 8, deaths: 1, score: 90},
	)
	first, _ := PlayerStats(table, "Ace")
	second, _ := PlayerStats(table, "Ace")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated computation diverged:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestModeOf(t *testing.T) {
	tests := []struct {
		name   string
		counts map[string]int
		want   string
	}{
		{"empty", map[string]int{}, ""},
		{"single", map[string]int{"AR": 3}, "AR"},
		{"clear winner", map[string]int{"AR": 1, "Sniper": 4}, "Sniper"},
		{"tie picks smaller key", map[string]int{"SMG": 2, "AR": 2}, "AR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := modeOf(tt.counts); got != tt.want {
				t.Errorf("modeOf = %q, want %q", got, tt.want)
			}
		})
	}
}
