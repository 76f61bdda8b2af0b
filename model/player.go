package model

// Player is one row of the projection pool a draft session consumes. Records
// are immutable once loaded for a session; drafted status lives in the
// session's pick list, never on the player itself.
type Player struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Position   Position `json:"position"`
	Team       *NFLTeam `json:"team,omitempty"`
	ByeWeek    int      `json:"bye_week"`
	InjuryRisk float64  `json:"injury_risk"` // 0 (durable) .. 1 (high risk)

	// Per scoring-mode projections. A zero value means no projection; the
	// accessor methods treat missing data uniformly.
	ProjectedPPR      float64 `json:"projected_ppr"`
	ProjectedHalfPPR  float64 `json:"projected_half_ppr"`
	ProjectedStandard float64 `json:"projected_standard"`

	ADPPPR      float64 `json:"adp_ppr"`
	ADPHalfPPR  float64 `json:"adp_half_ppr"`
	ADPStandard float64 `json:"adp_standard"`
	ECRPPR      int     `json:"ecr_ppr"`
	ECRHalfPPR  int     `json:"ecr_half_ppr"`
	ECRStandard int     `json:"ecr_standard"`
}

// ProjectedPoints returns the projection for the given scoring mode.
func (p *Player) ProjectedPoints(mode ScoringMode) float64 {
	switch mode {
	case ScoringHalfPPR:
		return p.ProjectedHalfPPR
	case ScoringStandard:
		return p.ProjectedStandard
	default:
		return p.ProjectedPPR
	}
}

// ADP returns the average draft position for the given scoring mode, falling
// back to any mode that has data. Players with no ADP at all report
// UndraftedADP, which sorts them behind every drafted-in-practice player.
func (p *Player) ADP(mode ScoringMode) float64 {
	var primary float64
	switch mode {
	case ScoringHalfPPR:
		primary = p.ADPHalfPPR
	case ScoringStandard:
		primary = p.ADPStandard
	default:
		primary = p.ADPPPR
	}
	if primary > 0 {
		return primary
	}
	for _, v := range []float64{p.ADPPPR, p.ADPHalfPPR, p.ADPStandard} {
		if v > 0 {
			return v
		}
	}
	return UndraftedADP
}

// ECR returns the expert consensus rank for the given scoring mode, or 0 if
// the player is unranked.
func (p *Player) ECR(mode ScoringMode) int {
	switch mode {
	case ScoringHalfPPR:
		return p.ECRHalfPPR
	case ScoringStandard:
		return p.ECRStandard
	default:
		return p.ECRPPR
	}
}

// UndraftedADP is the sentinel ADP for players that never appear in draft
// data. It only needs to be larger than any real pick number.
const UndraftedADP = 999
