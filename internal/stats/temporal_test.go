package stats

import "testing"

func TestEvolutionTimeline(t *testing.T) {
	table := makeTable(
		rowSpec{match: 1, day: 0, player: "Ace", kills: 10, deaths: 5, score: 100, length: 10},
		rowSpec{match: 2, day: 1, player: "Ace", kills: 6, deaths: 3, score: 60, length: 10},
		rowSpec{match: 3, day: 2, player: "Ace", kills: 3, deaths: 6, score: 30, length: 10},
	)
	points := EvolutionTimeline(table, "Ace")
	if len(points) != 3 {
		t.Fatalf("got %d points, want 3", len(points))
	}
	if points[0].KDRatio != 2.0 || points[1].KDRatio != 2.0 || points[2].KDRatio != 0.5 {
		t.Errorf("raw KD series = %v/%v/%v, want 2.0/2.0/0.5",
			points[0].KDRatio, points[1].KDRatio, points[2].KDRatio)
	}
	if points[0].KillsPerMin != 1.0 {
		t.Errorf("KillsPerMin[0] = %v, want 1.0", points[0].KillsPerMin)
	}
	// Trailing means: [2.0], [2.0 2.0], [2.0 2.0 0.5]
	if points[0].SmoothedKD != 2.0 {
		t.Errorf("SmoothedKD[0] = %v, want 2.0", points[0].SmoothedKD)
	}
	if points[2].SmoothedKD != 1.5 {
		t.Errorf("SmoothedKD[2] = %v, want 1.5", points[2].SmoothedKD)
	}

	if got := EvolutionTimeline(table, "Ghost"); len(got) != 0 {
		t.Errorf("unknown player yields %d points, want 0", len(got))
	}
}

func TestEvolutionTimelineChronologicalOrder(t *testing.T) {
	// Insertion order deliberately scrambled; output follows datetime.
	table := makeTable(
		rowSpec{match: 3, day: 2, player: "Ace", kills: 1},
		rowSpec{match: 1, day: 0, player: "Ace", kills: 2},
		rowSpec{match: 2, day: 1, player: "Ace", kills: 3},
	)
	points := EvolutionTimeline(table, "Ace")
	for i := 1; i < len(points); i++ {
		if points[i].Datetime.Before(points[i-1].Datetime) {
			t.Fatalf("points out of chronological order at %d", i)
		}
	}
}

func TestStreaks(t *testing.T) {
	// Sequence W, W, L, W
	table := makeTable(
		rowSpec{match: 1, day: 0, player: "Ace", score: 20},
		rowSpec{match: 1, day: 0, player: "Bolt", score: 10},
		rowSpec{match: 2, day: 1, player: "Ace", score: 30},
		rowSpec{match: 2, day: 1, player: "Bolt", score: 15},
		rowSpec{match: 3, day: 2, player: "Ace", score: 5},
		rowSpec{match: 3, day: 2, player: "Bolt", score: 25},
		rowSpec{match: 4, day: 3, player: "Ace", score: 40},
		rowSpec{match: 4, day: 3, player: "Bolt", score: 10},
	)
	st, ok := Streaks(table, "Ace")
	if !ok {
		t.Fatal("expected streaks")
	}
	if st.CurrentStreak != 1 {
		t.Errorf("CurrentStreak = %d, want 1", st.CurrentStreak)
	}
	if st.MaxWinStreak != 2 {
		t.Errorf("MaxWinStreak = %d, want 2", st.MaxWinStreak)
	}
	if st.MaxLossStreak != 1 {
		t.Errorf("MaxLossStreak = %d, want 1", st.MaxLossStreak)
	}
	if st.DecidedMatches != 4 {
		t.Errorf("DecidedMatches = %d, want 4", st.DecidedMatches)
	}
	// 3 wins in the last 4 decided matches
	if st.RecentWinRate != 75.0 {
		t.Errorf("RecentWinRate = %v, want 75.0", st.RecentWinRate)
	}
}

func TestStreaksLosingCurrent(t *testing.T) {
	table := makeTable(
		rowSpec{match: 1, day: 0, player: "Ace", score: 20},
		rowSpec{match: 1, day: 0, player: "Bolt", score: 10},
		rowSpec{match: 2, day: 1, player: "Ace", score: 5},
		rowSpec{match: 2, day: 1, player: "Bolt", score: 25},
		rowSpec{match: 3, day: 2, player: "Ace", score: 5},
		rowSpec{match: 3, day: 2, player: "Bolt", score: 25},
	)
	st, ok := Streaks(table, "Ace")
	if !ok {
		t.Fatal("expected streaks")
	}
	if st.CurrentStreak != -2 {
		t.Errorf("CurrentStreak = %d, want -2", st.CurrentStreak)
	}
}

func TestStreaksNoDecidedMatches(t *testing.T) {
	if _, ok := Streaks(nil, "Ace"); ok {
		t.Error("expected ok=false on empty table")
	}
}

func TestDailyBreakdown(t *testing.T) {
	table := makeTable(
		rowSpec{match: 1, day: 0, player: "Ace", kills: 10, deaths: 5, score: 100},
		rowSpec{match: 1, day: 0, player: "Bolt", kills: 2, deaths: 10, score: 20},
		rowSpec{match: 2, day: 1, player: "Ace", kills: 4, deaths: 4, score: 40},
	)
	days := DailyBreakdown(table)
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if days[0].Matches != 1 || days[0].Kills != 12 {
		t.Errorf("day 0 = %+v, want 1 match, 12 kills", days[0])
	}
	if !days[0].Date.Before(days[1].Date) {
		t.Error("days not sorted ascending")
	}
}

func TestSessions(t *testing.T) {
	// Days 1, 2, 4: the gap between 2 and 4 splits the sessions.
	table := makeTable(
		rowSpec{match: 1, day: 0, player: "Ace", kills: 5, deaths: 5, score: 50},
		rowSpec{match: 2, day: 1, player: "Ace", kills: 10, deaths: 2, score: 100},
		rowSpec{match: 3, day: 3, player: "Ace", kills: 3, deaths: 3, score: 30},
	)
	sessions := Sessions(table)
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}
	first, second := sessions[0], sessions[1]
	if first.SessionID != 1 || second.SessionID != 2 {
		t.Errorf("session ids = %d/%d, want 1/2", first.SessionID, second.SessionID)
	}
	if first.DurationDays != 2 || second.DurationDays != 1 {
		t.Errorf("durations = %d/%d, want 2/1", first.DurationDays, second.DurationDays)
	}
	if first.TotalMatches != 2 || first.TotalKills != 15 {
		t.Errorf("session 1 = %d matches, %d kills, want 2/15", first.TotalMatches, first.TotalKills)
	}
	// Peak day is the second day of session 1: KD 10/2 = 5.0
	if first.PeakKD != 5.0 || !first.PeakDay.Equal(dateOnly(testBase.AddDate(0, 0, 1))) {
		t.Errorf("session 1 peak = %v on %v, want 5.0 on day 2", first.PeakKD, first.PeakDay)
	}

	if got := Sessions(nil); got != nil {
		t.Errorf("empty table yields %v, want nil", got)
	}
}

func TestHourlyPatterns(t *testing.T) {
	table := makeTable(
		rowSpec{match: 1, hour: 0, player: "Ace", kills: 10, deaths: 4, score: 100},
		rowSpec{match: 1, hour: 0, player: "Bolt", kills: 6, deaths: 8, score: 60},
		rowSpec{match: 2, day: 1, hour: 2, player: "Ace", kills: 3, deaths: 3, score: 30},
	)
	hours := HourlyPatterns(table)
	if len(hours) != 2 {
		t.Fatalf("got %d hours, want 2", len(hours))
	}
	// testBase is 20:00, so hour offsets 0 and 2 land on 20 and 22.
	if hours[0].Hour != 20 || hours[1].Hour != 22 {
		t.Fatalf("hours = %d/%d, want 20/22", hours[0].Hour, hours[1].Hour)
	}
	if hours[0].Rows != 2 || hours[0].AvgKills != 8.0 {
		t.Errorf("hour 20 = %d rows, avg %v kills, want 2/8.0", hours[0].Rows, hours[0].AvgKills)
	}
}
