package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexNumberUnmarshal(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantSet   bool
		wantValid bool
		wantValue float64
	}{
		{"number", `42`, true, true, 42},
		{"float", `1.5`, true, true, 1.5},
		{"numeric string", `"17"`, true, true, 17},
		{"padded numeric string", `" 8 "`, true, true, 8},
		{"null", `null`, false, false, 0},
		{"empty string", `""`, false, false, 0},
		{"non-numeric string", `"abc"`, true, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n FlexNumber
			if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
				t.Fatalf("unmarshal %s: %v", tt.in, err)
			}
			if n.Set != tt.wantSet || n.Valid != tt.wantValid {
				t.Errorf("Set/Valid = %v/%v, want %v/%v", n.Set, n.Valid, tt.wantSet, tt.wantValid)
			}
			if n.Valid && n.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", n.Value, tt.wantValue)
			}
		})
	}
}

func TestFlexNumberInSubmissionRow(t *testing.T) {
	payload := `{
		"game_mode": "Team",
		"map_name": "Harbor",
		"team": "Alpha",
		"player_name": "Ace",
		"kills": "12",
		"deaths": 4,
		"assists": "3",
		"score": 120,
		"weapon": "AR",
		"ping": null,
		"match_length": 10
	}`
	var row SubmissionRow
	if err := json.Unmarshal([]byte(payload), &row); err != nil {
		t.Fatalf("unmarshal row: %v", err)
	}
	if !row.Kills.Valid || row.Kills.Int() != 12 {
		t.Errorf("kills = %+v, want valid 12", row.Kills)
	}
	if !row.Deaths.Valid || row.Deaths.Int() != 4 {
		t.Errorf("deaths = %+v, want valid 4", row.Deaths)
	}
	if row.Ping.Set {
		t.Error("null ping must stay unset")
	}
	if row.Team == nil || *row.Team != "Alpha" {
		t.Errorf("team = %v, want Alpha", row.Team)
	}
}

func TestSubmissionRowToRow(t *testing.T) {
	team := "Alpha"
	row := SubmissionRow{
		GameMode:    ModeTeam,
		MapName:     "Harbor",
		Team:        &team,
		PlayerName:  "Ace",
		Kills:       Num(10),
		Deaths:      Num(5),
		Assists:     Num(3),
		Score:       Num(100),
		Weapon:      "AR",
		MatchLength: Num(12),
	}
	dt := time.Date(2025, 3, 1, 20, 0, 0, 0, time.UTC)
	got := row.ToRow(7, dt)
	if got.MatchID != 7 || got.PlayerName != "Ace" || got.Kills != 10 {
		t.Errorf("row = %+v", got)
	}
	if !got.Datetime.Equal(dt) {
		t.Errorf("datetime = %v, want %v", got.Datetime, dt)
	}
	if got.Assists == nil || *got.Assists != 3 {
		t.Errorf("assists = %v, want 3", got.Assists)
	}
	if got.Ping != nil || got.Coins != nil || got.Tags != nil {
		t.Error("absent optionals must stay nil")
	}
	if got.MatchLength != 12 {
		t.Errorf("match length = %d, want 12", got.MatchLength)
	}
}
