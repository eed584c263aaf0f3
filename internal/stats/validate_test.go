package stats

import (
	"testing"

	"github.com/devbm7/deadshot-stats/internal/models"
)

func validRow() models.SubmissionRow {
	return models.SubmissionRow{
		GameMode:    models.ModeFFA,
		MapName:     "Refinery",
		PlayerName:  "Ace",
		Kills:       models.Num(10),
		Deaths:      models.Num(5),
		Score:       models.Num(100),
		Weapon:      "AR",
		MatchLength: models.Num(10),
	}
}

func TestValidateSubmissionClean(t *testing.T) {
	if errs := ValidateSubmission([]models.SubmissionRow{validRow()}); len(errs) != 0 {
		t.Errorf("valid row produced errors: %v", errs)
	}
}

func TestValidateSubmissionMissingRequired(t *testing.T) {
	row := validRow()
	row.MatchLength = models.FlexNumber{}
	errs := ValidateSubmission([]models.SubmissionRow{row})
	if len(errs) != 1 || errs[0] != "Missing required field: match_length" {
		t.Errorf("errs = %v, want exactly the match_length message", errs)
	}
}

func TestValidateSubmissionInvalidNumeric(t *testing.T) {
	row := validRow()
	row.Kills = models.FlexNumber{Raw: "abc", Set: true}
	errs := ValidateSubmission([]models.SubmissionRow{row})
	if len(errs) != 1 || errs[0] != "Invalid numeric value for kills" {
		t.Errorf("errs = %v, want exactly the invalid kills message", errs)
	}
}

func TestValidateSubmissionTeamAssists(t *testing.T) {
	team := "Alpha"
	row := validRow()
	row.GameMode = models.ModeTeam
	row.Team = &team
	errs := ValidateSubmission([]models.SubmissionRow{row})
	if len(errs) != 1 || errs[0] != "Assists required for team matches" {
		t.Errorf("errs = %v, want exactly the team assists message", errs)
	}

	row.Assists = models.Num(3)
	if errs := ValidateSubmission([]models.SubmissionRow{row}); len(errs) != 0 {
		t.Errorf("row with assists produced errors: %v", errs)
	}
}

func TestValidateSubmissionCollectsAll(t *testing.T) {
	// A thoroughly broken row reports every problem at once.
	row := models.SubmissionRow{
		GameMode: models.ModeFFA,
		Kills:    models.FlexNumber{Raw: "??", Set: true},
	}
	errs := ValidateSubmission([]models.SubmissionRow{row})
	// Missing: player_name, deaths, score, weapon, match_length.
	// Invalid: kills. Present but set: kills, so not missing.
	if len(errs) != 6 {
		t.Fatalf("got %d errors, want 6: %v", len(errs), errs)
	}
}

func TestValidateSubmissionMultipleRows(t *testing.T) {
	bad := validRow()
	bad.PlayerName = ""
	errs := ValidateSubmission([]models.SubmissionRow{validRow(), bad})
	if len(errs) != 1 || errs[0] != "Missing required field: player_name" {
		t.Errorf("errs = %v, want one player_name message", errs)
	}
}
