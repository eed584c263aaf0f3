package models

import "time"

// GameMode identifies the ruleset a match was played under. The mode decides
// which scoring field determines the winner and which per-row fields are
// meaningful (team, assists, tags).
type GameMode string

const (
	ModeTeam        GameMode = "Team"
	ModeFFA         GameMode = "FFA"
	ModeConfirm     GameMode = "Confirm"
	ModeTeamConfirm GameMode = "Team Confirm"
)

// IsTeamMode reports whether rows of this mode carry a team identifier.
func (m GameMode) IsTeamMode() bool {
	return m == ModeTeam || m == ModeTeamConfirm
}

// IsConfirmMode reports whether tags, not score, decide the win condition.
func (m GameMode) IsConfirmMode() bool {
	return m == ModeConfirm || m == ModeTeamConfirm
}

// MatchRow is one player's line in one match — the sole input entity of the
// analytics engine. All rows sharing a MatchID share Datetime, GameMode,
// MapName and MatchLength. Optional fields are pointers so that "absent" is
// distinguishable from zero.
type MatchRow struct {
	MatchID     int64     `json:"match_id"`
	Datetime    time.Time `json:"datetime"`
	GameMode    GameMode  `json:"game_mode"`
	MapName     string    `json:"map_name"`
	Team        *string   `json:"team,omitempty"`
	PlayerName  string    `json:"player_name"`
	Kills       int       `json:"kills"`
	Deaths      int       `json:"deaths"`
	Assists     *int      `json:"assists,omitempty"`
	Score       int       `json:"score"`
	Weapon      string    `json:"weapon"`
	Ping        *int      `json:"ping,omitempty"`
	Coins       *int      `json:"coins,omitempty"`
	Tags        *int      `json:"tags,omitempty"`
	MatchLength int       `json:"match_length"` // minutes
}

// TeamName returns the row's team or "" when the row has none (FFA modes).
func (r *MatchRow) TeamName() string {
	if r.Team == nil {
		return ""
	}
	return *r.Team
}

// WinMetric returns the value that decides the winner for this row's mode:
// tags in Confirm variants, score otherwise. A nil tags field counts as 0.
func (r *MatchRow) WinMetric() int {
	if r.GameMode.IsConfirmMode() {
		if r.Tags == nil {
			return 0
		}
		return *r.Tags
	}
	return r.Score
}

// AssistCount returns assists or 0 when the mode has no assist concept.
func (r *MatchRow) AssistCount() int {
	if r.Assists == nil {
		return 0
	}
	return *r.Assists
}
