package controller

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/rs/zerolog/log"

	"github.com/papapp1293/FantasyFootballDraftHelper/engine"
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

func (c *controller) CreateSession(ctx context.Context, cfg model.LeagueConfig) (model.DraftView, error) {
	pool, err := c.db.ListPlayers(ctx, cfg.ScoringMode, DefaultPoolSize)
	if err != nil {
		return model.DraftView{}, fmt.Errorf("error loading player pool: %w", err)
	}

	s, err := c.registry.Create(cfg, pool, c.engCfg)
	if err != nil {
		return model.DraftView{}, err
	}
	return s.View(), nil
}

func (c *controller) StartSession(sessionID string) (model.DraftView, error) {
	s, err := c.registry.Get(sessionID)
	if err != nil {
		return model.DraftView{}, err
	}
	if err := s.Start(); err != nil {
		return model.DraftView{}, err
	}
	return s.View(), nil
}

func (c *controller) GetState(sessionID string) (model.DraftView, error) {
	s, err := c.registry.Get(sessionID)
	if err != nil {
		return model.DraftView{}, err
	}
	return s.View(), nil
}

func (c *controller) ListSessions() []model.DraftView {
	ids := c.registry.List()
	views := make([]model.DraftView, 0, len(ids))
	for _, id := range ids {
		s, err := c.registry.Get(id)
		if err != nil {
			continue // removed between List and Get
		}
		views = append(views, s.View())
	}
	return views
}

func (c *controller) DeleteSession(sessionID string) error {
	if _, err := c.registry.Get(sessionID); err != nil {
		return err
	}
	c.registry.Remove(sessionID)
	return nil
}

func (c *controller) SubmitPick(ctx context.Context, sessionID string, teamID int, playerID string) (model.DraftView, error) {
	s, err := c.registry.Get(sessionID)
	if err != nil {
		return model.DraftView{}, err
	}

	rec, err := s.SubmitPick(teamID, playerID, false, "")
	if err != nil {
		return model.DraftView{}, err
	}
	log.Info().
		Str("session_id", sessionID).
		Int("overall", rec.Overall).
		Int("team_id", teamID).
		Str("player_id", playerID).
		Msg("pick confirmed")

	if err := c.persistIfComplete(ctx, sessionID); err != nil {
		return model.DraftView{}, err
	}
	return s.View(), nil
}

func (c *controller) AdvanceBots(ctx context.Context, sessionID string) (model.DraftView, error) {
	s, err := c.registry.Get(sessionID)
	if err != nil {
		return model.DraftView{}, err
	}

	bot := c.currentBot()
	rng := rand.New(rand.NewSource(c.clock.Now().UnixNano()))

	for s.Status() == model.DraftInProgress && !s.UserOnClock() {
		if err := ctx.Err(); err != nil {
			return model.DraftView{}, err
		}

		st, err := s.SimState()
		if err != nil {
			return model.DraftView{}, err
		}
		teamID := st.CurrentTeam()

		cand, ok := bot.Sample(rng, st, teamID)
		if !ok {
			return model.DraftView{}, fmt.Errorf("no candidates left for team %d in session %s", teamID, sessionID)
		}
		if _, err := s.SubmitPick(teamID, cand.PlayerID, true, cand.Rationale); err != nil {
			return model.DraftView{}, fmt.Errorf("bot pick for team %d failed: %w", teamID, err)
		}
	}

	if err := c.persistIfComplete(ctx, sessionID); err != nil {
		return model.DraftView{}, err
	}
	return s.View(), nil
}

// persistIfComplete stores a finished draft for the calibration job. The
// session stays in the registry so its state remains queryable.
func (c *controller) persistIfComplete(ctx context.Context, sessionID string) error {
	s, err := c.registry.Get(sessionID)
	if err != nil {
		return err
	}
	if s.Status() != model.DraftCompleted {
		return nil
	}

	done, err := s.Completed()
	if err != nil {
		return err
	}
	if err := c.db.SaveDraftResult(ctx, done); err != nil {
		return fmt.Errorf("error persisting draft %s: %w", sessionID, err)
	}
	log.Info().Str("session_id", sessionID).Int("picks", len(done.Picks)).Msg("draft completed and stored")
	return nil
}

func (c *controller) GetAdvice(ctx context.Context, sessionID string, teamID int, mode model.AdviceMode, limit int) ([]model.Candidate, error) {
	s, err := c.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	st, err := s.SimState()
	if err != nil {
		return nil, err
	}

	bot := c.currentBot()
	if mode == model.AdviceStochastic {
		rng := rand.New(rand.NewSource(c.clock.Now().UnixNano()))
		cand, ok := bot.Sample(rng, st, teamID)
		if !ok {
			return nil, fmt.Errorf("no candidates left in session %s", sessionID)
		}
		return []model.Candidate{cand}, nil
	}
	return bot.Rank(st, teamID, limit), nil
}

func (c *controller) ForecastAvailability(ctx context.Context, sessionID string, teamID, trials int) (*model.AvailabilityForecast, error) {
	s, err := c.registry.Get(sessionID)
	if err != nil {
		return nil, err
	}
	st, err := s.SimState()
	if err != nil {
		return nil, err
	}

	f := engine.NewForecaster(c.currentBot(), c.engCfg)
	return f.Forecast(ctx, st, teamID, trials, c.clock.Now().UnixNano())
}
