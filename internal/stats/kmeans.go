package stats

import (
	"math"

	"github.com/devbm7/deadshot-stats/internal/models"
)

// Clustering uses a small from-scratch k-means: the feature space is tiny
// (6 dimensions, dozens of points at most), so an iterative
// assign-to-nearest-centroid loop with a fixed cap is all that is needed.
const (
	clusterCount   = 3
	kmeansMaxIters = 100
)

// ClusterPlayers standardizes each player's feature vector (zero mean, unit
// variance per feature across the population) and partitions the players into
// k=3 play-style groups. Fewer players than clusters yields an empty result.
// Reported averages are over the raw, unstandardized features.
func ClusterPlayers(table []models.MatchRow) []models.Cluster {
	players := Players(table)
	if len(players) < clusterCount {
		return nil
	}

	raw := make([][]float64, 0, len(players))
	names := make([]string, 0, len(players))
	for _, name := range players {
		ps, ok := PlayerStats(table, name)
		if !ok {
			continue
		}
		raw = append(raw, []float64{
			ps.KDRatio,
			ps.KillsPerMin,
			ps.DeathsPerMin,
			ps.AssistsPerMin,
			ps.ScorePerMin,
			ps.WinRate,
		})
		names = append(names, name)
	}
	if len(raw) < clusterCount {
		return nil
	}

	assignments := kmeans(standardize(raw), clusterCount)

	clusters := make([]models.Cluster, clusterCount)
	sums := make([][]float64, clusterCount)
	for c := range clusters {
		clusters[c].ClusterID = c
		sums[c] = make([]float64, len(raw[0]))
	}
	for i, c := range assignments {
		clusters[c].Players = append(clusters[c].Players, names[i])
		for f, v := range raw[i] {
			sums[c][f] += v
		}
	}
	for c := range clusters {
		n := float64(len(clusters[c].Players))
		if n == 0 {
			continue
		}
		clusters[c].Averages = models.ClusterFeatures{
			KDRatio:       round2(sums[c][0] / n),
			KillsPerMin:   round2(sums[c][1] / n),
			DeathsPerMin:  round2(sums[c][2] / n),
			AssistsPerMin: round2(sums[c][3] / n),
			ScorePerMin:   round2(sums[c][4] / n),
			WinRate:       round1(sums[c][5] / n),
		}
	}
	return clusters
}

// standardize rescales each feature column to zero mean and unit variance.
// A constant column (zero variance) maps to all zeros.
func standardize(points [][]float64) [][]float64 {
	n := len(points)
	dims := len(points[0])
	mean := make([]float64, dims)
	std := make([]float64, dims)

	for _, p := range points {
		for f, v := range p {
			mean[f] += v
		}
	}
	for f := range mean {
		mean[f] /= float64(n)
	}
	for _, p := range points {
		for f, v := range p {
			d := v - mean[f]
			std[f] += d * d
		}
	}
	for f := range std {
		std[f] = math.Sqrt(std[f] / float64(n))
	}

	out := make([][]float64, n)
	for i, p := range points {
		out[i] = make([]float64, dims)
		for f, v := range p {
			if std[f] > 0 {
				out[i][f] = (v - mean[f]) / std[f]
			}
		}
	}
	return out
}

// kmeans partitions points into k groups, minimizing within-cluster squared
// distance. Initial centroids are points spread evenly across the input,
// which keeps the result deterministic for identical snapshots.
func kmeans(points [][]float64, k int) []int {
	n := len(points)
	dims := len(points[0])

	centroids := make([][]float64, k)
	for c := 0; c < k; c++ {
		src := points[c*n/k]
		centroids[c] = make([]float64, dims)
		copy(centroids[c], src)
	}

	assignments := make([]int, n)
	for iter := 0; iter < kmeansMaxIters; iter++ {
		changed := false
		for i, p := range points {
			best, bestDist := 0, math.MaxFloat64
			for c, cent := range centroids {
				if d := sqDist(p, cent); d < bestDist {
					best, bestDist = c, d
				}
			}
			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		counts := make([]int, k)
		next := make([][]float64, k)
		for c := range next {
			next[c] = make([]float64, dims)
		}
		for i, p := range points {
			c := assignments[i]
			counts[c]++
			for f, v := range p {
				next[c][f] += v
			}
		}
		for c := range next {
			if counts[c] == 0 {
				// Empty cluster keeps its previous centroid
				copy(next[c], centroids[c])
				continue
			}
			for f := range next[c] {
				next[c][f] /= float64(counts[c])
			}
		}
		centroids = next
	}
	return assignments
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
