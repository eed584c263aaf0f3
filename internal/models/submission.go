package models

import "time"

// SubmissionRow is one player's line in an incoming match submission, before
// validation. Numeric fields are FlexNumber so that string-encoded or
// malformed values survive decoding and surface as validation messages.
type SubmissionRow struct {
	GameMode    GameMode   `json:"game_mode"`
	MapName     string     `json:"map_name"`
	Team        *string    `json:"team,omitempty"`
	PlayerName  string     `json:"player_name"`
	Kills       FlexNumber `json:"kills"`
	Deaths      FlexNumber `json:"deaths"`
	Assists     FlexNumber `json:"assists"`
	Score       FlexNumber `json:"score"`
	Weapon      string     `json:"weapon"`
	Ping        FlexNumber `json:"ping"`
	Coins       FlexNumber `json:"coins"`
	Tags        FlexNumber `json:"tags"`
	MatchLength FlexNumber `json:"match_length"`
}

// MatchSubmission is one match's worth of rows submitted for ingestion.
// Datetime may carry any timezone; the store normalizes it once at the
// boundary. The match id is assigned by the store, never by the client.
type MatchSubmission struct {
	Datetime time.Time       `json:"datetime" validate:"required"`
	Rows     []SubmissionRow `json:"rows" validate:"required,min=1,dive"`
}

// ToRow converts a validated submission row into a MatchRow. It must only be
// called after ValidateSubmission reported no errors for the row.
func (r *SubmissionRow) ToRow(matchID int64, dt time.Time) MatchRow {
	row := MatchRow{
		MatchID:     matchID,
		Datetime:    dt,
		GameMode:    r.GameMode,
		MapName:     r.MapName,
		Team:        r.Team,
		PlayerName:  r.PlayerName,
		Kills:       r.Kills.Int(),
		Deaths:      r.Deaths.Int(),
		Score:       r.Score.Int(),
		Weapon:      r.Weapon,
		MatchLength: r.MatchLength.Int(),
	}
	if r.Assists.Set && r.Assists.Valid {
		v := r.Assists.Int()
		row.Assists = &v
	}
	if r.Ping.Set && r.Ping.Valid {
		v := r.Ping.Int()
		row.Ping = &v
	}
	if r.Coins.Set && r.Coins.Valid {
		v := r.Coins.Int()
		row.Coins = &v
	}
	if r.Tags.Set && r.Tags.Valid {
		v := r.Tags.Int()
		row.Tags = &v
	}
	return row
}
