package controller

import (
	"context"
	"fmt"

	"github.com/papapp1293/FantasyFootballDraftHelper/engine"
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

func (c *controller) SimulateSeason(ctx context.Context, teams []model.TeamProjection,
	sched model.Schedule, format model.PlayoffFormat, trials int) (*model.SeasonSummary, error) {

	return c.season.Simulate(ctx, teams, sched, format, trials, c.clock.Now().UnixNano())
}

func (c *controller) SimulateSeasonFromSession(ctx context.Context, sessionID string, trials int) (*model.SeasonSummary, error) {
	s, err := c.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if s.Status() != model.DraftCompleted {
		return nil, fmt.Errorf("session %s is %s, season simulation needs a completed draft", sessionID, s.Status())
	}

	players := make(map[string]*model.Player)
	for _, p := range s.Pool() {
		players[p.ID] = p
	}

	cfg := s.Config()
	view := s.View()
	teams := make([]model.TeamProjection, 0, cfg.TeamCount)
	for id := 1; id <= cfg.TeamCount; id++ {
		roster := make([]*model.Player, 0, cfg.RosterSize)
		for _, playerID := range view.Rosters[id].PlayerIDs {
			if p, ok := players[playerID]; ok {
				roster = append(roster, p)
			}
		}

		name := fmt.Sprintf("Team %d", id)
		if id == cfg.UserSlot {
			name = "Your Team"
		}
		teams = append(teams, engine.RosterProjection(id, name, roster, cfg, c.engCfg))
	}

	return c.season.Simulate(ctx, teams, model.Schedule{}, model.PlayoffFormat{}, trials, c.clock.Now().UnixNano())
}
