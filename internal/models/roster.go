package models

// MetricComparison is one metric's head-to-head line in a player comparison.
// Leader is empty when the two values are equal.
type MetricComparison struct {
	Metric string  `json:"metric"`
	ValueA float64 `json:"value_a"`
	ValueB float64 `json:"value_b"`
	Diff   float64 `json:"diff"` // value_a - value_b
	Leader string  `json:"leader,omitempty"`
}

// ComparisonResult is the full pairwise comparison of two players.
type ComparisonResult struct {
	PlayerA string             `json:"player_a"`
	PlayerB string             `json:"player_b"`
	Metrics []MetricComparison `json:"metrics"`
}

// ScenarioResult is the outcome of simulating a candidate roster. The
// head-to-head fields are only populated when an opponent roster was supplied.
type ScenarioResult struct {
	Players           []string `json:"players"`
	Roles             []string `json:"roles"`
	AvgKDRatio        float64  `json:"avg_kd_ratio"`
	AvgWinRate        float64  `json:"avg_win_rate"`
	TotalKillsPerMin  float64  `json:"total_kills_per_min"`
	TotalAssistsPerMin float64 `json:"total_assists_per_min"`
	SynergyScore      float64  `json:"synergy_score"`
	PredictedWinRate  float64  `json:"predicted_win_rate"`

	OpponentPlayers   []string `json:"opponent_players,omitempty"`
	HeadToHeadWinRate float64  `json:"head_to_head_win_rate,omitempty"`
}

// TeamCandidate is one scored roster in an optimal-team search.
type TeamCandidate struct {
	Players          []string `json:"players"`
	Score            float64  `json:"score"`
	SynergyScore     float64  `json:"synergy_score"`
	PredictedWinRate float64  `json:"predicted_win_rate"`
	AvgKDRatio       float64  `json:"avg_kd_ratio"`
}

// OptimalTeamResult is the best roster plus the full ranked candidate set.
// The search is an exhaustive C(n, k) enumeration and is bounded by the
// caller-side pool size limit.
type OptimalTeamResult struct {
	Best       TeamCandidate   `json:"best"`
	Candidates []TeamCandidate `json:"candidates"`
}

// CompareRequest asks for a pairwise comparison of two players.
type CompareRequest struct {
	PlayerA string `json:"player_a" validate:"required"`
	PlayerB string `json:"player_b" validate:"required"`
}

// ScenarioRequest asks for a team-scenario simulation.
type ScenarioRequest struct {
	Players   []string `json:"players" validate:"required,min=1"`
	Opponents []string `json:"opponents,omitempty"`
}

// OptimalTeamRequest asks for an exhaustive optimal-team search.
type OptimalTeamRequest struct {
	Pool     []string `json:"pool" validate:"required,min=1"`
	TeamSize int      `json:"team_size" validate:"required,min=1"`
}
