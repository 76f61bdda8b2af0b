package engine

import (
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// FeatureVec is the candidate feature set the utility model scores:
// value (scaled VORP), position scarcity, team need, and availability risk.
type FeatureVec struct {
	Value    float64
	Scarcity float64
	Need     float64
	Risk     float64
}

// Utility is the linear combination of features under a weight set.
func Utility(w model.UtilityWeights, f FeatureVec) float64 {
	return w.Value*f.Value + w.Scarcity*f.Scarcity + w.Need*f.Need + w.AvailabilityRisk*f.Risk
}

// Bot is the calibrated pick model. One weight vector backs both query
// modes: deterministic ranking for advice and softmax sampling for bot
// turns, so there is no duplicated weight state.
type Bot struct {
	weights model.UtilityWeights
	cfg     Config
}

func NewBot(weights model.UtilityWeights, cfg Config) *Bot {
	return &Bot{weights: weights, cfg: cfg}
}

func (b *Bot) Weights() model.UtilityWeights {
	return b.weights
}

// AvailabilityRisk is the cheap proxy for the probability that a candidate
// is gone before the acting team's next turn, without running Monte Carlo:
// the normal CDF of the candidate's ADP against the pick index of that next
// turn. A player whose ADP is far before the next turn is almost certainly
// gone; far after, almost certainly safe.
func (b *Bot) AvailabilityRisk(p *model.Player, mode model.ScoringMode, nextPickIndex int) float64 {
	adp := p.ADP(mode)
	// ADP is 1-based pick number; compare against the 1-based next pick.
	z := (float64(nextPickIndex+1) - adp) / b.cfg.ADPSigma
	return normalCDF(z)
}

// Features builds the feature vector for one candidate in a given draft
// context. VORP is divided by VORPScale so all features live in comparable
// ranges for the softmax.
func (b *Bot) Features(p *model.Player, st *SimState, roster *model.RosterState, nextPickIndex int) FeatureVec {
	return FeatureVec{
		Value:    st.VORP[p.ID] / b.cfg.VORPScale,
		Scarcity: st.Scarcity[p.Position].ScarcityScore,
		Need:     NeedScore(roster, st.League, b.cfg, p.Position),
		Risk:     b.AvailabilityRisk(p, st.League.ScoringMode, nextPickIndex),
	}
}

// Score evaluates every candidate for the acting team, descending by
// utility. Candidates beyond CandidatePool (by projection) are skipped to
// bound work per query.
func (b *Bot) Score(st *SimState, teamID int) []model.Candidate {
	roster := st.Rosters[teamID]
	nextPick, ok := st.NextPickIndex(teamID)
	if !ok {
		nextPick = st.CurrentPick
	}

	pool := SortByProjection(st.Remaining, st.League.ScoringMode)
	if len(pool) > b.cfg.CandidatePool {
		pool = pool[:b.cfg.CandidatePool]
	}

	cands := make([]model.Candidate, 0, len(pool))
	for _, p := range pool {
		f := b.Features(p, st, roster, nextPick)
		cands = append(cands, model.Candidate{
			PlayerID:         p.ID,
			Name:             p.Name,
			Position:         p.Position,
			Utility:          Utility(b.weights, f),
			VORP:             st.VORP[p.ID],
			ScarcityScore:    f.Scarcity,
			NeedScore:        f.Need,
			AvailabilityRisk: f.Risk,
			Rationale:        rationale(p, f, st),
		})
	}

	slices.SortFunc(cands, func(a, c model.Candidate) int {
		switch {
		case a.Utility > c.Utility:
			return -1
		case a.Utility < c.Utility:
			return 1
		default:
			return compareStrings(a.PlayerID, c.PlayerID)
		}
	})
	return cands
}

// Rank is the deterministic query mode: candidates sorted by utility.
func (b *Bot) Rank(st *SimState, teamID int, limit int) []model.Candidate {
	cands := b.Score(st, teamID)
	if limit > 0 && len(cands) > limit {
		cands = cands[:limit]
	}
	return cands
}

// Sample is the stochastic query mode: draw one candidate from the softmax
// distribution restricted to the top-K by utility. This gives bot turns
// realistic variance instead of always taking the single best player.
func (b *Bot) Sample(rng *rand.Rand, st *SimState, teamID int) (model.Candidate, bool) {
	cands := b.Score(st, teamID)
	if len(cands) == 0 {
		return model.Candidate{}, false
	}

	k := b.cfg.TopK
	if k > len(cands) {
		k = len(cands)
	}
	top := cands[:k]

	// Softmax over the top-K, shifted by the max utility for stability.
	maxU := top[0].Utility
	weights := make([]float64, k)
	var total float64
	for i, c := range top {
		weights[i] = math.Exp((c.Utility - maxU) / b.cfg.Temperature)
		total += weights[i]
	}

	r := rng.Float64() * total
	for i, w := range weights {
		r -= w
		if r <= 0 {
			return top[i], true
		}
	}
	return top[k-1], true
}

func rationale(p *model.Player, f FeatureVec, st *SimState) string {
	var reasons []string
	if f.Need >= 1 {
		reasons = append(reasons, fmt.Sprintf("fills %s need", p.Position))
	}
	if st.Scarcity[p.Position].UrgencyFlag {
		reasons = append(reasons, fmt.Sprintf("tier break approaching at %s", p.Position))
	}
	if f.Risk > 0.5 {
		reasons = append(reasons, "unlikely to survive to next turn")
	}
	if len(reasons) == 0 {
		return "best value available"
	}

	out := reasons[0]
	for _, r := range reasons[1:] {
		out += "; " + r
	}
	return out
}

// normalCDF is the standard normal cumulative distribution function.
func normalCDF(z float64) float64 {
	return 0.5 * (1 + math.Erf(z/math.Sqrt2))
}
