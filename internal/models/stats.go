package models

import "time"

// PlayerStats is the aggregate of every match row belonging to one player.
// Percentages are rounded to 1 decimal, per-minute rates and ratios to 2.
type PlayerStats struct {
	PlayerName string `json:"player_name"`

	TotalMatches int `json:"total_matches"`
	TotalKills   int `json:"total_kills"`
	TotalDeaths  int `json:"total_deaths"`
	TotalAssists int `json:"total_assists"`
	TotalScore   int `json:"total_score"`
	TotalCoins   int `json:"total_coins"`
	TotalTags    int `json:"total_tags"`
	TotalMinutes int `json:"total_minutes"`

	Wins    int     `json:"wins"`
	Losses  int     `json:"losses"`
	WinRate float64 `json:"win_rate"`

	KDRatio  float64 `json:"kd_ratio"`
	Accuracy float64 `json:"accuracy"` // kills / (kills + deaths) * 100

	AvgKillsPerMatch   float64 `json:"avg_kills_per_match"`
	AvgDeathsPerMatch  float64 `json:"avg_deaths_per_match"`
	AvgAssistsPerMatch float64 `json:"avg_assists_per_match"`
	AvgScorePerMatch   float64 `json:"avg_score_per_match"`

	KillsPerMin   float64 `json:"kills_per_min"`
	DeathsPerMin  float64 `json:"deaths_per_min"`
	AssistsPerMin float64 `json:"assists_per_min"`
	ScorePerMin   float64 `json:"score_per_min"`

	BestMatchKills   int `json:"best_match_kills"`
	BestMatchScore   int `json:"best_match_score"`
	BestMatchAssists int `json:"best_match_assists"`
	BestMatchTags    int `json:"best_match_tags"`

	FavoriteWeapon string `json:"favorite_weapon"`

	// AvgPing is nil when no row for the player carried ping data. A player
	// whose ping averaged to zero is not the same as one with no ping at all.
	AvgPing *float64 `json:"avg_ping"`
}

// TeamStats aggregates one team identifier across all team-mode matches.
type TeamStats struct {
	Team             string  `json:"team"`
	Matches          int     `json:"matches"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	WinRate          float64 `json:"win_rate"`
	TotalKills       int     `json:"total_kills"`
	TotalDeaths      int     `json:"total_deaths"`
	TotalScore       int     `json:"total_score"`
	AvgScorePerMatch float64 `json:"avg_score_per_match"`
}

// WeaponStats aggregates all rows that used one weapon, regardless of mode.
type WeaponStats struct {
	Weapon         string  `json:"weapon"`
	UsageCount     int     `json:"usage_count"`
	TotalKills     int     `json:"total_kills"`
	TotalDeaths    int     `json:"total_deaths"`
	KDRatio        float64 `json:"kd_ratio"`
	Accuracy       float64 `json:"accuracy"`
	AvgKillsPerUse float64 `json:"avg_kills_per_use"`
	AvgScore       float64 `json:"avg_score"`
}

// MapStats aggregates all rows played on one map.
type MapStats struct {
	MapName          string  `json:"map_name"`
	MatchesPlayed    int     `json:"matches_played"`
	TotalKills       int     `json:"total_kills"`
	TotalDeaths      int     `json:"total_deaths"`
	KDRatio          float64 `json:"kd_ratio"`
	AvgKillsPerMatch float64 `json:"avg_kills_per_match"`
	AvgScorePerMatch float64 `json:"avg_score_per_match"`
}

// LeaderboardRow is one player's line in a ranked leaderboard.
type LeaderboardRow struct {
	PlayerName       string  `json:"player_name"`
	KDRatio          float64 `json:"kd_ratio"`
	Accuracy         float64 `json:"accuracy"`
	WinRate          float64 `json:"win_rate"`
	TotalKills       int     `json:"total_kills"`
	AvgKillsPerMatch float64 `json:"avg_kills_per_match"`
	KillsPerMin      float64 `json:"kills_per_min"`
	TotalScore       int     `json:"total_score"`
	TotalCoins       int     `json:"total_coins"`
	TotalMatches     int     `json:"total_matches"`
}

// WeaponUsage is a weapon's row count inside an activity window.
type WeaponUsage struct {
	Weapon string `json:"weapon"`
	Count  int    `json:"count"`
}

// RecentActivity summarizes the last N days of the table, anchored at the
// table's most recent datetime rather than the wall clock.
type RecentActivity struct {
	Days             int           `json:"days"`
	RecentMatches    int           `json:"recent_matches"`
	RecentPlayers    int           `json:"recent_players"`
	RecentKills      int           `json:"recent_kills"`
	MostActivePlayer string        `json:"most_active_player"`
	TopWeapons       []WeaponUsage `json:"top_weapons"`
}

// Overview is the dashboard landing summary: global totals, the current
// top of the default leaderboard, and the recent activity window.
type Overview struct {
	TotalMatches int       `json:"total_matches"`
	TotalPlayers int       `json:"total_players"`
	TotalKills   int       `json:"total_kills"`
	TotalDeaths  int       `json:"total_deaths"`
	TotalMaps    int       `json:"total_maps"`
	TotalWeapons int       `json:"total_weapons"`
	FirstMatch   time.Time `json:"first_match"`
	LastMatch    time.Time `json:"last_match"`

	TopPlayers []LeaderboardRow `json:"top_players"`
	Recent     RecentActivity   `json:"recent"`
}

// MatchPlayerLine is one participant's line inside a match summary.
type MatchPlayerLine struct {
	PlayerName string  `json:"player_name"`
	Team       *string `json:"team,omitempty"`
	Kills      int     `json:"kills"`
	Deaths     int     `json:"deaths"`
	Assists    *int    `json:"assists,omitempty"`
	Score      int     `json:"score"`
	Tags       *int    `json:"tags,omitempty"`
	Weapon     string  `json:"weapon"`
}

// MatchSummary describes a single match. Winner is a team name in team modes
// and a player name in FFA modes; it is empty when the match was drawn or
// degenerate (single team).
type MatchSummary struct {
	MatchID      int64             `json:"match_id"`
	Datetime     time.Time         `json:"datetime"`
	GameMode     GameMode          `json:"game_mode"`
	MapName      string            `json:"map_name"`
	MatchLength  int               `json:"match_length"`
	TotalPlayers int               `json:"total_players"`
	TotalKills   int               `json:"total_kills"`
	TotalDeaths  int               `json:"total_deaths"`
	TotalScore   int               `json:"total_score"`
	Winner       string            `json:"winner,omitempty"`
	TopKiller    string            `json:"top_killer,omitempty"`
	Players      []MatchPlayerLine `json:"players"`
}
