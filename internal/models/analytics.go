package models

import "time"

// EvolutionPoint is one match in a player's performance timeline. The
// Smoothed* fields are a trailing rolling mean (window 3, minimum period 1)
// over the raw series.
type EvolutionPoint struct {
	MatchID     int64     `json:"match_id"`
	Datetime    time.Time `json:"datetime"`
	KDRatio     float64   `json:"kd_ratio"`
	KillsPerMin float64   `json:"kills_per_min"`
	ScorePerMin float64   `json:"score_per_min"`

	SmoothedKD          float64 `json:"smoothed_kd"`
	SmoothedKillsPerMin float64 `json:"smoothed_kills_per_min"`
	SmoothedScorePerMin float64 `json:"smoothed_score_per_min"`
}

// StreakStats captures a player's win/loss runs. CurrentStreak is signed:
// positive when the most recent decided match was a win, negative for a loss,
// magnitude is the run length.
type StreakStats struct {
	PlayerName      string  `json:"player_name"`
	CurrentStreak   int     `json:"current_streak"`
	MaxWinStreak    int     `json:"max_win_streak"`
	MaxLossStreak   int     `json:"max_loss_streak"`
	RecentWinRate   float64 `json:"recent_win_rate"` // last 10 decided matches
	DecidedMatches  int     `json:"decided_matches"`
}

// DailyStats aggregates every row on one calendar date.
type DailyStats struct {
	Date       time.Time `json:"date"`
	Matches    int       `json:"matches"`
	Kills      int       `json:"kills"`
	Deaths     int       `json:"deaths"`
	Score      int       `json:"score"`
	KDRatio    float64   `json:"kd_ratio"`
}

// SessionSummary is a maximal run of consecutive play dates: any gap of more
// than one calendar day starts a new session.
type SessionSummary struct {
	SessionID    int       `json:"session_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	DurationDays int       `json:"duration_days"`
	TotalMatches int       `json:"total_matches"`
	TotalKills   int       `json:"total_kills"`
	TotalDeaths  int       `json:"total_deaths"`
	TotalScore   int       `json:"total_score"`
	PeakDay      time.Time `json:"peak_day"`
	PeakKD       float64   `json:"peak_kd"`
}

// HourlyStats is the mean per-row performance for one hour of the day.
type HourlyStats struct {
	Hour      int     `json:"hour"`
	Rows      int     `json:"rows"`
	AvgKills  float64 `json:"avg_kills"`
	AvgDeaths float64 `json:"avg_deaths"`
	AvgScore  float64 `json:"avg_score"`
}

// Role labels produced by the rule-based classifier.
const (
	RoleKiller     = "Killer"
	RoleSupport    = "Support"
	RoleAggressive = "Aggressive"
	RoleLeader     = "Leader"
	RoleBalanced   = "Balanced"
)

// RoleProfile is a player's classified role plus five normalized (0-1)
// strength scores.
type RoleProfile struct {
	PlayerName     string  `json:"player_name"`
	Role           string  `json:"role"`
	KillingPower   float64 `json:"killing_power"`
	SupportValue   float64 `json:"support_value"`
	SurvivalRate   float64 `json:"survival_rate"`
	WinningAbility float64 `json:"winning_ability"`
	Consistency    float64 `json:"consistency"`
}

// Trend labels for recent-form analysis.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// PlayerPrediction is a next-match forecast built from a player's recent
// form. RecentKD is newest-first.
type PlayerPrediction struct {
	PlayerName      string    `json:"player_name"`
	ExpectedKD      float64   `json:"expected_kd"`
	Trend           string    `json:"trend"`
	Confidence      float64   `json:"confidence"`
	RecentKD        []float64 `json:"recent_kd"`
	PredictedKills  int       `json:"predicted_kills"`
	PredictedDeaths int       `json:"predicted_deaths"`
}

// ClusterFeatures are the per-cluster averages of the raw feature vector used
// for play-style grouping.
type ClusterFeatures struct {
	KDRatio       float64 `json:"kd_ratio"`
	KillsPerMin   float64 `json:"kills_per_min"`
	DeathsPerMin  float64 `json:"deaths_per_min"`
	AssistsPerMin float64 `json:"assists_per_min"`
	ScorePerMin   float64 `json:"score_per_min"`
	WinRate       float64 `json:"win_rate"`
}

// Cluster is one play-style group found by k-means.
type Cluster struct {
	ClusterID int             `json:"cluster_id"`
	Players   []string        `json:"players"`
	Averages  ClusterFeatures `json:"averages"`
}

// ChemistryEntry reports how a pair of players performs when fielded on the
// same team. Pairs that never shared a team are absent from the output.
type ChemistryEntry struct {
	PlayerA        string  `json:"player_a"`
	PlayerB        string  `json:"player_b"`
	SharedMatches  int     `json:"shared_matches"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	WinRate        float64 `json:"win_rate"`
	ChemistryScore float64 `json:"chemistry_score"` // win_rate / 100
}

// FormationStats aggregates a specific order-independent set of players who
// appeared on the same team together. Only formations seen in at least two
// matches are reported.
type FormationStats struct {
	Players          []string `json:"players"`
	Size             int      `json:"size"`
	Matches          int      `json:"matches"`
	Wins             int      `json:"wins"`
	WinRate          float64  `json:"win_rate"`
	AvgKillsPerMatch float64  `json:"avg_kills_per_match"`
	AvgScorePerMatch float64  `json:"avg_score_per_match"`
}

// Tier names, assigned top-down by ranking score in fixed bracket sizes.
const (
	TierChampion = "Champion"
	TierElite    = "Elite"
	TierVeteran  = "Veteran"
	TierRookie   = "Rookie"
	TierNovice   = "Novice"
)

// TierEntry is one player's row in the battle-royale style tier ranking.
type TierEntry struct {
	Rank         int     `json:"rank"`
	PlayerName   string  `json:"player_name"`
	Tier         string  `json:"tier"`
	RankingScore float64 `json:"ranking_score"`
}

// AchievementStatus reports one badge criterion for one player. Progress is
// a percentage clamped to [0, 100].
type AchievementStatus struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Unlocked    bool    `json:"unlocked"`
	Progress    float64 `json:"progress"`
}
