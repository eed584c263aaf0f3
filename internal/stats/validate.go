package stats

import (
	"fmt"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// requiredFields must be present and non-empty on every submitted row before
// a match is admitted to the store.
var requiredFields = []struct {
	name    string
	present func(*models.SubmissionRow) bool
}{
	{"player_name", func(r *models.SubmissionRow) bool { return r.PlayerName != "" }},
	{"kills", func(r *models.SubmissionRow) bool { return r.Kills.Set }},
	{"deaths", func(r *models.SubmissionRow) bool { return r.Deaths.Set }},
	{"score", func(r *models.SubmissionRow) bool { return r.Score.Set }},
	{"weapon", func(r *models.SubmissionRow) bool { return r.Weapon != "" }},
	{"match_length", func(r *models.SubmissionRow) bool { return r.MatchLength.Set }},
}

// numericFields are checked for parseability whenever present.
var numericFields = []struct {
	name  string
	value func(*models.SubmissionRow) models.FlexNumber
}{
	{"kills", func(r *models.SubmissionRow) models.FlexNumber { return r.Kills }},
	{"deaths", func(r *models.SubmissionRow) models.FlexNumber { return r.Deaths }},
	{"assists", func(r *models.SubmissionRow) models.FlexNumber { return r.Assists }},
	{"score", func(r *models.SubmissionRow) models.FlexNumber { return r.Score }},
	{"ping", func(r *models.SubmissionRow) models.FlexNumber { return r.Ping }},
	{"coins", func(r *models.SubmissionRow) models.FlexNumber { return r.Coins }},
	{"tags", func(r *models.SubmissionRow) models.FlexNumber { return r.Tags }},
	{"match_length", func(r *models.SubmissionRow) models.FlexNumber { return r.MatchLength }},
}

// ValidateSubmission checks every row of a match submission and collects
// human-readable messages for all violations at once; it never short-circuits
// on the first problem. An empty result means the submission is admissible.
func ValidateSubmission(rows []models.SubmissionRow) []string {
	var errs []string
	for i := range rows {
		row := &rows[i]

		for _, f := range requiredFields {
			if !f.present(row) {
				errs = append(errs, fmt.Sprintf("Missing required field: %s", f.name))
			}
		}

		for _, f := range numericFields {
			if v := f.value(row); v.Set && !v.Valid {
				errs = append(errs, fmt.Sprintf("Invalid numeric value for %s", f.name))
			}
		}

		if row.GameMode.IsTeamMode() && !row.Assists.Set {
			errs = append(errs, "Assists required for team matches")
		}
	}
	return errs
}
