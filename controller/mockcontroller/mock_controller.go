package mockcontroller

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

type C struct {
	mock.Mock
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (c *C) ListPlayers(ctx context.Context, mode model.ScoringMode, limit int) ([]*model.Player, error) {
	args := c.Called(ctx, mode, limit)

	var players []*model.Player
	if args.Get(0) != nil {
		players = args.Get(0).([]*model.Player)
	}
	return players, args.Error(1)
}

func (c *C) UpsertPlayers(ctx context.Context, players []*model.Player) error {
	args := c.Called(ctx, players)
	return args.Error(0)
}

func (c *C) CreateSession(ctx context.Context, cfg model.LeagueConfig) (model.DraftView, error) {
	args := c.Called(ctx, cfg)
	return args.Get(0).(model.DraftView), args.Error(1)
}

func (c *C) ListSessions() []model.DraftView {
	args := c.Called()

	var views []model.DraftView
	if args.Get(0) != nil {
		views = args.Get(0).([]model.DraftView)
	}
	return views
}

func (c *C) DeleteSession(sessionID string) error {
	args := c.Called(sessionID)
	return args.Error(0)
}

func (c *C) StartSession(sessionID string) (model.DraftView, error) {
	args := c.Called(sessionID)
	return args.Get(0).(model.DraftView), args.Error(1)
}

func (c *C) GetState(sessionID string) (model.DraftView, error) {
	args := c.Called(sessionID)
	return args.Get(0).(model.DraftView), args.Error(1)
}

func (c *C) SubmitPick(ctx context.Context, sessionID string, teamID int, playerID string) (model.DraftView, error) {
	args := c.Called(ctx, sessionID, teamID, playerID)
	return args.Get(0).(model.DraftView), args.Error(1)
}

func (c *C) AdvanceBots(ctx context.Context, sessionID string) (model.DraftView, error) {
	args := c.Called(ctx, sessionID)
	return args.Get(0).(model.DraftView), args.Error(1)
}

func (c *C) GetAdvice(ctx context.Context, sessionID string, teamID int, mode model.AdviceMode, limit int) ([]model.Candidate, error) {
	args := c.Called(ctx, sessionID, teamID, mode, limit)

	var cands []model.Candidate
	if args.Get(0) != nil {
		cands = args.Get(0).([]model.Candidate)
	}
	return cands, args.Error(1)
}

func (c *C) ForecastAvailability(ctx context.Context, sessionID string, teamID, trials int) (*model.AvailabilityForecast, error) {
	args := c.Called(ctx, sessionID, teamID, trials)

	var f *model.AvailabilityForecast
	if args.Get(0) != nil {
		f = args.Get(0).(*model.AvailabilityForecast)
	}
	return f, args.Error(1)
}

func (c *C) SimulateSeason(ctx context.Context, teams []model.TeamProjection, sched model.Schedule,
	format model.PlayoffFormat, trials int) (*model.SeasonSummary, error) {
	args := c.Called(ctx, teams, sched, format, trials)

	var s *model.SeasonSummary
	if args.Get(0) != nil {
		s = args.Get(0).(*model.SeasonSummary)
	}
	return s, args.Error(1)
}

func (c *C) SimulateSeasonFromSession(ctx context.Context, sessionID string, trials int) (*model.SeasonSummary, error) {
	args := c.Called(ctx, sessionID, trials)

	var s *model.SeasonSummary
	if args.Get(0) != nil {
		s = args.Get(0).(*model.SeasonSummary)
	}
	return s, args.Error(1)
}

func (c *C) CalibrateWeights(ctx context.Context) (model.UtilityWeights, error) {
	args := c.Called(ctx)
	return args.Get(0).(model.UtilityWeights), args.Error(1)
}
