package stats

import (
	"testing"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// rosterTable builds two matches where Slayer (Killer) and Medic (Support)
// win together on Alpha against Punch and Dart on Bravo.
func rosterTable() []models.MatchRow {
	var specs []rowSpec
	for m := int64(1); m <= 2; m++ {
		day := int(m - 1)
		specs = append(specs,
			rowSpec{match: m, day: day, mode: models.ModeTeam, team: "Alpha", player: "Slayer", kills: 30, deaths: 5, score: 100, length: 10},
			rowSpec{match: m, day: day, mode: models.ModeTeam, team: "Alpha", player: "Medic", kills: 5, deaths: 2, assists: 8, score: 60, length: 10},
			rowSpec{match: m, day: day, mode: models.ModeTeam, team: "Bravo", player: "Punch", kills: 2, deaths: 20, score: 20, length: 10},
			rowSpec{match: m, day: day, mode: models.ModeTeam, team: "Bravo", player: "Dart", kills: 6, deaths: 8, score: 30, length: 10},
		)
	}
	return makeTable(specs...)
}

func TestComparePlayers(t *testing.T) {
	table := rosterTable()
	result, ok := ComparePlayers(table, "Slayer", "Punch")
	if !ok {
		t.Fatal("expected comparison")
	}
	if len(result.Metrics) != len(comparisonMetrics) {
		t.Fatalf("got %d metrics, want %d", len(result.Metrics), len(comparisonMetrics))
	}
	for _, m := range result.Metrics {
		switch m.Metric {
		case "kd_ratio":
			// Slayer 60/10 = 6.0, Punch 4/40 = 0.1
			if m.ValueA != 6.0 || m.ValueB != 0.1 || m.Leader != "Slayer" {
				t.Errorf("kd_ratio = %+v, want 6.0 vs 0.1 led by Slayer", m)
			}
			if m.Diff != 5.9 {
				t.Errorf("kd_ratio diff = %v, want 5.9", m.Diff)
			}
		case "total_matches":
			if m.Leader != "" {
				t.Errorf("equal metric has leader %q, want none", m.Leader)
			}
		}
	}

	if _, ok := ComparePlayers(table, "Slayer", "Ghost"); ok {
		t.Error("expected ok=false for unknown opponent")
	}
}

func TestSimulateScenario(t *testing.T) {
	table := rosterTable()
	result, ok := SimulateScenario(table, []string{"Slayer", "Medic"}, nil)
	if !ok {
		t.Fatal("expected scenario result")
	}
	// Slayer: KD 6.0, 3.0 kills/min -> Killer.
	// Medic: KD 2.5 but only 0.5 kills/min; 0.8 assists/min, 0.2 deaths/min -> Support.
	if result.Roles[0] != models.RoleKiller || result.Roles[1] != models.RoleSupport {
		t.Fatalf("roles = %v, want [Killer Support]", result.Roles)
	}
	// Two distinct roles and the Killer+Support bonus: 10*2 + 20.
	if result.SynergyScore != 40.0 {
		t.Errorf("SynergyScore = %v, want 40.0", result.SynergyScore)
	}
	if result.AvgKDRatio != 4.25 {
		t.Errorf("AvgKDRatio = %v, want 4.25", result.AvgKDRatio)
	}
	if result.AvgWinRate != 100.0 {
		t.Errorf("AvgWinRate = %v, want 100.0", result.AvgWinRate)
	}
	// Strength far exceeds the cap.
	if result.PredictedWinRate != 95.0 {
		t.Errorf("PredictedWinRate = %v, want capped 95.0", result.PredictedWinRate)
	}
}

func TestSimulateScenarioHeadToHead(t *testing.T) {
	table := rosterTable()
	result, ok := SimulateScenario(table, []string{"Slayer", "Medic"}, []string{"Punch", "Dart"})
	if !ok {
		t.Fatal("expected scenario result")
	}
	if len(result.OpponentPlayers) != 2 {
		t.Fatalf("opponents = %v, want 2 players", result.OpponentPlayers)
	}
	// The strength gap is enormous; the clamp holds the ceiling.
	if result.HeadToHeadWinRate != 95.0 {
		t.Errorf("HeadToHeadWinRate = %v, want clamped 95.0", result.HeadToHeadWinRate)
	}
}

func TestSimulateScenarioUnknownNames(t *testing.T) {
	table := rosterTable()
	// Unknown names are skipped, known ones still simulate.
	result, ok := SimulateScenario(table, []string{"Ghost", "Slayer"}, nil)
	if !ok {
		t.Fatal("expected scenario result with one known player")
	}
	if len(result.Players) != 1 || result.Players[0] != "Slayer" {
		t.Errorf("players = %v, want [Slayer]", result.Players)
	}

	if _, ok := SimulateScenario(table, []string{"Ghost", "Wraith"}, nil); ok {
		t.Error("expected ok=false when no name is known")
	}
}

func TestFindOptimalTeam(t *testing.T) {
	table := rosterTable()
	pool := []string{"Slayer", "Medic", "Punch", "Dart"}

	result, ok := FindOptimalTeam(table, pool, 2)
	if !ok {
		t.Fatal("expected optimal team result")
	}
	if len(result.Candidates) != 6 {
		t.Fatalf("got %d candidates for C(4,2), want 6", len(result.Candidates))
	}
	// The Killer+Support duo dominates every alternative.
	best := result.Best
	if best.Players[0] != "Medic" || best.Players[1] != "Slayer" {
		t.Errorf("best roster = %v, want [Medic Slayer]", best.Players)
	}
	for i := 1; i < len(result.Candidates); i++ {
		if result.Candidates[i].Score > result.Candidates[i-1].Score {
			t.Fatalf("candidates not sorted by score at %d", i)
		}
	}

	if _, ok := FindOptimalTeam(table, pool, 0); ok {
		t.Error("expected ok=false for zero team size")
	}
	if _, ok := FindOptimalTeam(table, []string{"Slayer"}, 2); ok {
		t.Error("expected ok=false when the pool is smaller than the team")
	}
}

func TestCombinations(t *testing.T) {
	var got [][]int
	combinations(4, 2, func(idx []int) {
		c := make([]int, len(idx))
		copy(c, idx)
		got = append(got, c)
	})
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	if len(got) != len(want) {
		t.Fatalf("got %d combinations, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i][0] != want[i][0] || got[i][1] != want[i][1] {
			t.Fatalf("combination %d = %v, want %v", i, got[i], want[i])
		}
	}
}
