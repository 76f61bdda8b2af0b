package engine

import (
	"math"
	"slices"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// AnalyzeScarcity computes per-position scarcity metrics from the remaining
// pool and its VORP values. Always computed against the pool minus all
// picked players, never the full pool.
func AnalyzeScarcity(remaining []*model.Player, vorp map[string]float64,
	levels map[model.Position]float64, cfg Config) map[model.Position]model.ScarcityMetric {

	byPos := make(map[model.Position][]float64)
	for _, p := range remaining {
		byPos[p.Position] = append(byPos[p.Position], vorp[p.ID])
	}

	out := make(map[model.Position]model.ScarcityMetric, len(model.AllPositions))
	for _, pos := range model.AllPositions {
		values := byPos[pos]
		slices.SortFunc(values, func(a, b float64) int {
			switch {
			case a > b:
				return -1
			case a < b:
				return 1
			default:
				return 0
			}
		})
		out[pos] = analyzePosition(pos, values, levels[pos], cfg)
	}
	return out
}

func analyzePosition(pos model.Position, vorps []float64, level float64, cfg Config) model.ScarcityMetric {
	m := model.ScarcityMetric{
		Position:         pos,
		ReplacementLevel: level,
		PlayersRemaining: len(vorps),
	}
	if len(vorps) == 0 {
		return m
	}

	topN := cfg.TopNAvgVORP
	if topN > len(vorps) {
		topN = len(vorps)
	}
	var sum float64
	for _, v := range vorps[:topN] {
		sum += v
	}
	m.AvgVORPRemaining = sum / float64(topN)

	m.DropoffAtNextTier = firstTierDrop(vorps, cfg)

	raw := m.DropoffAtNextTier / float64(max(len(vorps), 1))
	m.ScarcityScore = math.Min(cfg.ScarcityCap, raw*cfg.ScarcityScale)

	m.UrgencyFlag = m.ScarcityScore > cfg.UrgencyScore[pos] &&
		m.PlayersRemaining < cfg.UrgencyCount[pos]
	return m
}

// firstTierDrop returns the gap size at the first tier break below the top
// remaining player. A break is declared when the relative drop exceeds
// TierDropPct or the absolute drop exceeds GapStdDevMult standard deviations
// of the within-position gaps.
func firstTierDrop(vorps []float64, cfg Config) float64 {
	if len(vorps) < 2 {
		return 0
	}

	gaps := make([]float64, len(vorps)-1)
	for i := range gaps {
		gaps[i] = vorps[i] - vorps[i+1]
	}
	sd := stdDev(gaps)

	for i, gap := range gaps {
		if vorps[i] > 0 && gap/vorps[i] > cfg.TierDropPct {
			return gap
		}
		if sd > 0 && gap > cfg.GapStdDevMult*sd {
			return gap
		}
	}
	return 0
}

func stdDev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	mean := sum / float64(len(xs))

	var ss float64
	for _, x := range xs {
		d := x - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(xs)))
}
