package engine

import (
	"slices"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// ReplacementRank is the 1-based rank at a position whose points define the
// replacement level: one starter slot per team plus the position's share of
// the league's flex slots. The rank is fractional when flex shares don't
// land on a whole player; callers interpolate.
func ReplacementRank(league model.LeagueConfig, pos model.Position) float64 {
	rank := float64(league.TeamCount * league.StarterCount(pos))
	if pos.FlexEligible() {
		rank += float64(league.TeamCount*league.FlexSlots) * league.FlexShare[pos]
	}
	return rank
}

// ReplacementLevels computes the replacement point level for every position
// from the remaining (undrafted) pool. Pure over its inputs: the same pool
// always yields the same levels regardless of call order or prior picks.
//
// Positions with fewer remaining players than the replacement rank fall back
// to the lowest remaining player's points; empty pools degrade to zero.
func ReplacementLevels(remaining []*model.Player, league model.LeagueConfig) map[model.Position]float64 {
	byPos := groupByPoints(remaining, league.ScoringMode)

	levels := make(map[model.Position]float64, len(model.AllPositions))
	for _, pos := range model.AllPositions {
		levels[pos] = replacementLevel(byPos[pos], ReplacementRank(league, pos))
	}
	return levels
}

// replacementLevel interpolates the points value at a fractional 1-based
// rank in a descending points list.
func replacementLevel(points []float64, rank float64) float64 {
	if len(points) == 0 {
		return 0
	}
	if rank <= 1 {
		return points[0]
	}
	if rank >= float64(len(points)) {
		return points[len(points)-1]
	}

	lo := int(rank) // 1-based rank of the player above the cut
	frac := rank - float64(lo)
	upper := points[lo-1]
	lower := points[lo]
	return upper + (lower-upper)*frac
}

// VORP maps every remaining player to projected points minus the replacement
// level at their position.
func VORP(remaining []*model.Player, levels map[model.Position]float64, mode model.ScoringMode) map[string]float64 {
	out := make(map[string]float64, len(remaining))
	for _, p := range remaining {
		out[p.ID] = p.ProjectedPoints(mode) - levels[p.Position]
	}
	return out
}

// groupByPoints buckets players by position as descending point lists.
func groupByPoints(players []*model.Player, mode model.ScoringMode) map[model.Position][]float64 {
	byPos := make(map[model.Position][]float64)
	for _, p := range players {
		byPos[p.Position] = append(byPos[p.Position], p.ProjectedPoints(mode))
	}
	for pos := range byPos {
		slices.SortFunc(byPos[pos], func(a, b float64) int {
			switch {
			case a > b:
				return -1
			case a < b:
				return 1
			default:
				return 0
			}
		})
	}
	return byPos
}

// SortByProjection orders players descending by projected points for the
// given mode, breaking ties by ID so repeated runs stay deterministic.
func SortByProjection(players []*model.Player, mode model.ScoringMode) []*model.Player {
	sorted := append([]*model.Player(nil), players...)
	slices.SortFunc(sorted, func(a, b *model.Player) int {
		pa, pb := a.ProjectedPoints(mode), b.ProjectedPoints(mode)
		switch {
		case pa > pb:
			return -1
		case pa < pb:
			return 1
		default:
			return compareStrings(a.ID, b.ID)
		}
	})
	return sorted
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
