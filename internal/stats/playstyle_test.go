package stats

import (
	"testing"

	"github.com/devbm7/deadshot-stats/internal/models"
)

func TestClassifyRole(t *testing.T) {
	tests := []struct {
		name string
		ps   models.PlayerStats
		want string
	}{
		{"killer", models.PlayerStats{KDRatio: 2.0, KillsPerMin: 1.0}, models.RoleKiller},
		{"support", models.PlayerStats{KDRatio: 1.0, AssistsPerMin: 0.4, DeathsPerMin: 0.3}, models.RoleSupport},
		{"aggressive", models.PlayerStats{KDRatio: 0.5, DeathsPerMin: 1.0}, models.RoleAggressive},
		{"leader", models.PlayerStats{KDRatio: 1.2, KillsPerMin: 0.5, WinRate: 70}, models.RoleLeader},
		{"balanced", models.PlayerStats{KDRatio: 1.0, KillsPerMin: 0.5, WinRate: 50}, models.RoleBalanced},
		// Killer wins over Leader even when both rules match
		{"priority order", models.PlayerStats{KDRatio: 2.0, KillsPerMin: 1.0, WinRate: 80}, models.RoleKiller},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyRole(tt.ps).Role; got != tt.want {
				t.Errorf("role = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyRoleStrengths(t *testing.T) {
	ps := models.PlayerStats{
		KDRatio:       3.0, // capped at 1.0
		AssistsPerMin: 0.25,
		DeathsPerMin:  0.4,
		WinRate:       55,
		TotalMatches:  10,
	}
	p := ClassifyRole(ps)
	if p.KillingPower != 1.0 {
		t.Errorf("KillingPower = %v, want capped 1.0", p.KillingPower)
	}
	if p.SupportValue != 0.5 {
		t.Errorf("SupportValue = %v, want 0.5", p.SupportValue)
	}
	if p.SurvivalRate != 0.6 {
		t.Errorf("SurvivalRate = %v, want 0.6", p.SurvivalRate)
	}
	if p.WinningAbility != 0.55 {
		t.Errorf("WinningAbility = %v, want 0.55", p.WinningAbility)
	}
	if p.Consistency != 0.5 {
		t.Errorf("Consistency = %v, want 0.5", p.Consistency)
	}
}

func TestTeamChemistry(t *testing.T) {
	table := makeTable(
		// Match 1: Ace+Bolt win together
		rowSpec{match: 1, day: 0, mode: models.ModeTeam, team: "Alpha", player: "Ace", score: 20},
		rowSpec{match: 1, day: 0, mode: models.ModeTeam, team: "Alpha", player: "Bolt", score: 10},
		rowSpec{match: 1, day: 0, mode: models.ModeTeam, team: "Bravo", player: "Crow", score: 5},
		// Match 2: Ace+Bolt lose together
		rowSpec{match: 2, day: 1, mode: models.ModeTeam, team: "Alpha", player: "Ace", score: 5},
		rowSpec{match: 2, day: 1, mode: models.ModeTeam, team: "Alpha", player: "Bolt", score: 5},
		rowSpec{match: 2, day: 1, mode: models.ModeTeam, team: "Bravo", player: "Crow", score: 30},
	)
	entries := TeamChemistry(table)
	if len(entries) != 1 {
		t.Fatalf("got %d pairs, want 1 (Crow never shares a team)", len(entries))
	}
	e := entries[0]
	if e.PlayerA != "Ace" || e.PlayerB != "Bolt" {
		t.Fatalf("pair = %s/%s, want Ace/Bolt", e.PlayerA, e.PlayerB)
	}
	if e.SharedMatches != 2 || e.Wins != 1 || e.Losses != 1 {
		t.Errorf("record = %d shared, %d/%d, want 2 shared, 1/1", e.SharedMatches, e.Wins, e.Losses)
	}
	if e.WinRate != 50.0 || e.ChemistryScore != 0.5 {
		t.Errorf("win rate/score = %v/%v, want 50.0/0.5", e.WinRate, e.ChemistryScore)
	}
}

func TestFormations(t *testing.T) {
	duo := func(match int64, day, aScore, bScore int) []rowSpec {
		return []rowSpec{
			{match: match, day: day, mode: models.ModeTeam, team: "Alpha", player: "Ace", score: aScore},
			{match: match, day: day, mode: models.ModeTeam, team: "Alpha", player: "Bolt", score: aScore},
			{match: match, day: day, mode: models.ModeTeam, team: "Bravo", player: "Crow", score: bScore},
		}
	}
	var specs []rowSpec
	specs = append(specs, duo(1, 0, 20, 5)...)  // Ace+Bolt win
	specs = append(specs, duo(2, 1, 10, 50)...) // Ace+Bolt lose
	// One-off lineup, below the repeat threshold
	specs = append(specs,
		rowSpec{match: 3, day: 2, mode: models.ModeTeam, team: "Alpha", player: "Dart", score: 10},
		rowSpec{match: 3, day: 2, mode: models.ModeTeam, team: "Bravo", player: "Crow", score: 5},
	)
	table := makeTable(specs...)

	forms := Formations(table)
	if len(forms) != 2 {
		// Ace|Bolt appears twice, Crow (solo roster) appears three times.
		t.Fatalf("got %d formations, want 2", len(forms))
	}
	var duoForm *models.FormationStats
	for i := range forms {
		if forms[i].Size == 2 {
			duoForm = &forms[i]
		}
	}
	if duoForm == nil {
		t.Fatal("duo formation missing")
	}
	if duoForm.Players[0] != "Ace" || duoForm.Players[1] != "Bolt" {
		t.Errorf("roster = %v, want [Ace Bolt]", duoForm.Players)
	}
	if duoForm.Matches != 2 || duoForm.Wins != 1 || duoForm.WinRate != 50.0 {
		t.Errorf("record = %d matches %d wins %v%%, want 2/1/50.0", duoForm.Matches, duoForm.Wins, duoForm.WinRate)
	}
}

func TestTierRanking(t *testing.T) {
	// Five players with strictly decreasing kill counts in one FFA match.
	table := makeTable(
		rowSpec{match: 1, player: "P1", kills: 50, deaths: 5, score: 500},
		rowSpec{match: 1, player: "P2", kills: 40, deaths: 5, score: 400},
		rowSpec{match: 1, player: "P3", kills: 30, deaths: 5, score: 300},
		rowSpec{match: 1, player: "P4", kills: 20, deaths: 5, score: 200},
		rowSpec{match: 1, player: "P5", kills: 10, deaths: 5, score: 100},
	)
	entries := TierRanking(table)
	if len(entries) != 5 {
		t.Fatalf("got %d entries, want 5", len(entries))
	}
	wantTiers := []string{models.TierChampion, models.TierElite, models.TierElite,
		models.TierVeteran, models.TierVeteran}
	for i, want := range wantTiers {
		if entries[i].Tier != want {
			t.Errorf("rank %d tier = %q, want %q", i+1, entries[i].Tier, want)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("entry %d rank = %d, want %d", i, entries[i].Rank, i+1)
		}
	}
	if entries[0].PlayerName != "P1" {
		t.Errorf("champion = %s, want P1", entries[0].PlayerName)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].RankingScore > entries[i-1].RankingScore {
			t.Fatalf("scores not descending at %d", i)
		}
	}
}

func TestAchievementsThreshold(t *testing.T) {
	find := func(list []models.AchievementStatus, id string) models.AchievementStatus {
		for _, a := range list {
			if a.ID == id {
				return a
			}
		}
		t.Fatalf("achievement %q missing", id)
		return models.AchievementStatus{}
	}

	// 99 kills: one short of Kill Master
	table := makeTable(rowSpec{match: 1, player: "Ace", kills: 99, deaths: 50, score: 500})
	list, ok := Achievements(table, "Ace")
	if !ok {
		t.Fatal("expected achievements")
	}
	if len(list) != 10 {
		t.Fatalf("got %d achievements, want 10", len(list))
	}
	km := find(list, "kill_master")
	if km.Unlocked || km.Progress != 99.0 {
		t.Errorf("kill_master at 99 kills = unlocked=%v progress=%v, want locked at 99.0", km.Unlocked, km.Progress)
	}

	// 100 kills: unlocked, progress clamped to 100
	table = makeTable(rowSpec{match: 1, player: "Ace", kills: 100, deaths: 50, score: 500})
	list, _ = Achievements(table, "Ace")
	km = find(list, "kill_master")
	if !km.Unlocked || km.Progress != 100.0 {
		t.Errorf("kill_master at 100 kills = unlocked=%v progress=%v, want unlocked at 100.0", km.Unlocked, km.Progress)
	}
}

func TestAchievementsReversed(t *testing.T) {
	// 2 deaths over 10 minutes: 0.2 deaths per minute, under the 0.5 bar.
	table := makeTable(rowSpec{match: 1, player: "Ace", kills: 5, deaths: 2, score: 50, length: 10})
	list, _ := Achievements(table, "Ace")
	for _, a := range list {
		if a.ID != "survivor" {
			continue
		}
		if !a.Unlocked || a.Progress != 100.0 {
			t.Errorf("survivor at 0.2 dpm = unlocked=%v progress=%v, want unlocked at 100.0", a.Unlocked, a.Progress)
		}
		return
	}
	t.Fatal("survivor achievement missing")
}

func TestAchievementsUnknownPlayer(t *testing.T) {
	if _, ok := Achievements(nil, "Ghost"); ok {
		t.Error("expected ok=false")
	}
}

func TestDedupSorted(t *testing.T) {
	got := dedupSorted([]string{"b", "a", "b", "c", "a"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
