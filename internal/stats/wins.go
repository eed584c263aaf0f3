package stats

import "github.com/devbm7/deadshot-stats/internal/models"

// Outcome is one side's result in one match.
type Outcome int

const (
	// OutcomeNone means the match produced no result for the side, e.g. a
	// degenerate single-team match.
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLoss
	// OutcomeDraw only occurs in team modes, when two team sums tie exactly.
	// It counts as neither a win nor a loss.
	OutcomeDraw
)

// TeamOutcome decides a team's result within one match group: the team's
// summed win metric (score, or tags in Confirm variants) is compared against
// the best sum among the other teams present. A single-team match yields
// OutcomeNone for everyone.
func TeamOutcome(group []models.MatchRow, team string) Outcome {
	own := 0
	ownSeen := false
	otherSums := make(map[string]int)
	for _, row := range group {
		t := row.TeamName()
		if t == "" {
			continue
		}
		if t == team {
			own += row.WinMetric()
			ownSeen = true
		} else {
			otherSums[t] += row.WinMetric()
		}
	}
	if !ownSeen || len(otherSums) == 0 {
		return OutcomeNone
	}
	best := 0
	first := true
	for _, sum := range otherSums {
		if first || sum > best {
			best = sum
			first = false
		}
	}
	switch {
	case own > best:
		return OutcomeWin
	case own < best:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// ffaOutcome decides an individual's result in a free-for-all match group:
// equal to the match maximum is a win, so ties at the top all win. Everything
// below the maximum is a loss. This is deliberately asymmetric with the team
// rule, where an exact tie is a draw; the asymmetry matches the observed
// behavior of the dashboard and is preserved, not fixed.
func ffaOutcome(group []models.MatchRow, player string) Outcome {
	own := 0
	found := false
	max := 0
	for _, row := range group {
		v := row.WinMetric()
		if v > max {
			max = v
		}
		if row.PlayerName == player {
			own = v
			found = true
		}
	}
	if !found {
		return OutcomeNone
	}
	if own >= max {
		return OutcomeWin
	}
	return OutcomeLoss
}

// PlayerOutcome decides one player's result in one match group, dispatching
// on the group's mode.
func PlayerOutcome(group []models.MatchRow, player string) Outcome {
	if len(group) == 0 {
		return OutcomeNone
	}
	if group[0].GameMode.IsTeamMode() {
		for _, row := range group {
			if row.PlayerName == player {
				return TeamOutcome(group, row.TeamName())
			}
		}
		return OutcomeNone
	}
	return ffaOutcome(group, player)
}

// MatchOutcome is a convenience lookup for one match id in the full table.
func MatchOutcome(table []models.MatchRow, matchID int64, player string) Outcome {
	return PlayerOutcome(groupByMatch(table)[matchID], player)
}

// PlayerWinLoss tallies a player's decided matches across the whole table.
// Draws and degenerate matches count as neither.
func PlayerWinLoss(table []models.MatchRow, player string) (wins, losses int) {
	for _, group := range groupByMatch(table) {
		switch PlayerOutcome(group, player) {
		case OutcomeWin:
			wins++
		case OutcomeLoss:
			losses++
		}
	}
	return wins, losses
}

// playerOutcomesChrono lists a player's decided match outcomes in match
// datetime order. Undecided matches are skipped.
func playerOutcomesChrono(table []models.MatchRow, player string) []bool {
	groups := groupByMatch(table)
	var outcomes []bool
	for _, id := range matchesChrono(table) {
		switch PlayerOutcome(groups[id], player) {
		case OutcomeWin:
			outcomes = append(outcomes, true)
		case OutcomeLoss:
			outcomes = append(outcomes, false)
		}
	}
	return outcomes
}
