package stats

import (
	"math"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// predictionWindow caps how many recent matches feed the forecast.
const predictionWindow = 10

// PredictPerformance forecasts a player's next match from recent form. The
// expected K/D is the mean over the last ten matches; the trend compares the
// latest match against that mean with a 10% band and needs at least three
// matches to be called. Confidence grows with sample size, capped at 0.95.
func PredictPerformance(table []models.MatchRow, player string) (models.PlayerPrediction, bool) {
	points := EvolutionTimeline(table, player)
	if len(points) == 0 {
		return models.PlayerPrediction{}, false
	}

	start := 0
	if len(points) > predictionWindow {
		start = len(points) - predictionWindow
	}
	recent := points[start:]

	pred := models.PlayerPrediction{
		PlayerName: player,
		Trend:      models.TrendStable,
	}

	var sumKD float64
	for i := len(recent) - 1; i >= 0; i-- {
		pred.RecentKD = append(pred.RecentKD, recent[i].KDRatio)
		sumKD += recent[i].KDRatio
	}
	pred.ExpectedKD = round2(sumKD / float64(len(recent)))

	if len(recent) >= 3 {
		latest := pred.RecentKD[0]
		switch {
		case latest > pred.ExpectedKD*1.1:
			pred.Trend = models.TrendImproving
		case latest < pred.ExpectedKD*0.9:
			pred.Trend = models.TrendDeclining
		}
	}

	ps, _ := PlayerStats(table, player)
	avgDeaths := 0.0
	if ps.TotalMatches > 0 {
		avgDeaths = float64(ps.TotalDeaths) / float64(ps.TotalMatches)
	}
	pred.PredictedDeaths = int(math.Round(avgDeaths))
	pred.PredictedKills = int(math.Round(pred.ExpectedKD * avgDeaths))
	if pred.PredictedKills == 0 {
		// Deathless history: fall back to the historical kill average.
		pred.PredictedKills = int(math.Round(ps.AvgKillsPerMatch))
	}

	pred.Confidence = math.Min(0.95, 0.5+0.05*float64(len(recent)))

	return pred, true
}
