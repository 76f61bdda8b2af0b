package engine

import (
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// NeedScore reports how badly a roster still wants a position. Unfilled
// starting slots (including the position's flex share) count at full weight;
// once starters are covered only a decayed bench-depth residual remains.
// Fully satisfied positions report zero; the score never goes negative.
func NeedScore(roster *model.RosterState, league model.LeagueConfig, cfg Config, pos model.Position) float64 {
	starterSlots := float64(league.StarterCount(pos))
	if pos.FlexEligible() {
		starterSlots += float64(league.FlexSlots) * league.FlexShare[pos]
	}
	target := starterSlots + benchAllowance(league, pos, starterSlots)

	count := float64(roster.Counts[pos])
	if count < starterSlots {
		return starterSlots - count
	}
	if count < target {
		return cfg.BenchNeedWeight * (target - count)
	}
	return 0
}

// NeedScores computes the full per-position need map for a roster.
func NeedScores(roster *model.RosterState, league model.LeagueConfig, cfg Config) map[model.Position]float64 {
	out := make(map[model.Position]float64, len(model.AllPositions))
	for _, pos := range model.AllPositions {
		out[pos] = NeedScore(roster, league, cfg, pos)
	}
	return out
}

// benchAllowance splits the bench slots across positions in proportion to
// their starting demand, so a 2-RB league wants more bench RBs than QBs.
func benchAllowance(league model.LeagueConfig, pos model.Position, starterSlots float64) float64 {
	totalStarters := float64(league.FlexSlots)
	for _, n := range league.Starters {
		totalStarters += float64(n)
	}
	if totalStarters <= 0 {
		return 0
	}
	bench := float64(league.RosterSize) - totalStarters
	if bench <= 0 {
		return 0
	}
	return bench * starterSlots / totalStarters
}
