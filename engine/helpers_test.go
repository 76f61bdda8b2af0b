package engine

import (
	"fmt"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// testPool builds a deterministic projection pool: a descending points
// ladder per position, with ADP assigned from the overall projection order.
func testPool() []*model.Player {
	shape := []struct {
		pos   model.Position
		count int
		top   float64
		step  float64
	}{
		{model.POS_QB, 20, 380, 8},
		{model.POS_RB, 40, 330, 6},
		{model.POS_WR, 40, 320, 5.5},
		{model.POS_TE, 20, 250, 9},
		{model.POS_K, 12, 160, 4},
		{model.POS_DEF, 12, 150, 4},
	}

	var pool []*model.Player
	for _, s := range shape {
		for i := 0; i < s.count; i++ {
			pool = append(pool, &model.Player{
				ID:           fmt.Sprintf("%s%02d", s.pos, i+1),
				Name:         fmt.Sprintf("%s Player %d", s.pos, i+1),
				Position:     s.pos,
				ProjectedPPR: s.top - float64(i)*s.step,
			})
		}
	}
	for i, p := range SortByProjection(pool, model.ScoringPPR) {
		p.ADPPPR = float64(i + 1)
	}
	return pool
}

func emptyRosters(teams int) map[int]*model.RosterState {
	rosters := make(map[int]*model.RosterState, teams)
	for id := 1; id <= teams; id++ {
		rosters[id] = &model.RosterState{
			TeamID:     id,
			Counts:     make(map[model.Position]int),
			NeedScores: make(map[model.Position]float64),
		}
	}
	return rosters
}

// newTestState is a fresh 12-team PPR draft at pick zero.
func newTestState(cfg Config) *SimState {
	league := model.DefaultLeagueConfig()
	order := SnakeOrder(league.TeamCount, league.RosterSize, league.Snake)
	return NewSimState(league, order, 0, testPool(), emptyRosters(league.TeamCount), cfg)
}
