package engine

import (
	"math"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// RosterProjection collapses a drafted roster into a weekly scoring
// distribution for the season simulator. Only the optimal starting lineup
// contributes: bench depth hedges injuries but scores nothing.
func RosterProjection(teamID int, name string, roster []*model.Player,
	league model.LeagueConfig, cfg Config) model.TeamProjection {

	lineup := OptimalLineup(roster, league)

	weeks := float64(cfg.SeasonWeeks)
	if weeks <= 0 {
		weeks = float64(DefaultConfig().SeasonWeeks)
	}

	var mean, variance float64
	for _, p := range lineup {
		weekly := p.ProjectedPoints(league.ScoringMode) / weeks
		mean += weekly

		coef, ok := cfg.WeeklyVarCoef[p.Position]
		if !ok {
			coef = 0.25
		}
		sd := weekly * coef
		variance += sd * sd
	}

	return model.TeamProjection{
		TeamID:     teamID,
		Name:       name,
		WeeklyMean: mean,
		WeeklyStd:  math.Sqrt(variance),
	}
}

// OptimalLineup fills every starting slot greedily by projected points in
// the league's scoring mode, then fills flex slots with the best remaining
// flex-eligible players. A short roster leaves slots empty rather than
// erroring.
func OptimalLineup(roster []*model.Player, league model.LeagueConfig) []*model.Player {
	byPos := make(map[model.Position][]*model.Player)
	for _, p := range roster {
		byPos[p.Position] = append(byPos[p.Position], p)
	}
	for pos := range byPos {
		byPos[pos] = SortByProjection(byPos[pos], league.ScoringMode)
	}

	var lineup []*model.Player
	used := make(map[string]bool)

	for _, pos := range model.AllPositions {
		n := league.Starters[pos]
		pool := byPos[pos]
		for i := 0; i < n && i < len(pool); i++ {
			lineup = append(lineup, pool[i])
			used[pool[i].ID] = true
		}
	}

	for i := 0; i < league.FlexSlots; i++ {
		var best *model.Player
		for _, pos := range model.FlexPositions {
			for _, p := range byPos[pos] {
				if used[p.ID] {
					continue
				}
				if best == nil || p.ProjectedPoints(league.ScoringMode) > best.ProjectedPoints(league.ScoringMode) {
					best = p
				}
				break // pool is sorted, first unused is the position's best
			}
		}
		if best == nil {
			break
		}
		lineup = append(lineup, best)
		used[best.ID] = true
	}
	return lineup
}
