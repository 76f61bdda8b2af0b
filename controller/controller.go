package controller

import (
	"context"
	"sync"

	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog/log"

	"github.com/papapp1293/FantasyFootballDraftHelper/db"
	"github.com/papapp1293/FantasyFootballDraftHelper/draft"
	"github.com/papapp1293/FantasyFootballDraftHelper/engine"
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// DefaultPoolSize caps the draftable pool per session. Players past this
// depth never get drafted in practice and only slow the simulations down.
const DefaultPoolSize = 300

// C encapsulates business logic without worrying about any web layers
type C interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	// ListPlayers returns the draftable pool for a scoring mode, best ADP
	// first. A limit of 0 returns everything.
	ListPlayers(ctx context.Context, mode model.ScoringMode, limit int) ([]*model.Player, error)
	UpsertPlayers(ctx context.Context, players []*model.Player) error

	// CreateSession validates the config and registers a new draft in
	// CONFIGURING. StartSession freezes it and opens pick submission.
	CreateSession(ctx context.Context, cfg model.LeagueConfig) (model.DraftView, error)
	StartSession(sessionID string) (model.DraftView, error)
	GetState(sessionID string) (model.DraftView, error)
	ListSessions() []model.DraftView
	DeleteSession(sessionID string) error
	// SubmitPick confirms a manual selection for the team on the clock.
	// Completed drafts are persisted for calibration as a side effect.
	SubmitPick(ctx context.Context, sessionID string, teamID int, playerID string) (model.DraftView, error)
	// AdvanceBots plays bot turns until the human team is on the clock or
	// the draft completes.
	AdvanceBots(ctx context.Context, sessionID string) (model.DraftView, error)

	GetAdvice(ctx context.Context, sessionID string, teamID int, mode model.AdviceMode, limit int) ([]model.Candidate, error)
	ForecastAvailability(ctx context.Context, sessionID string, teamID, trials int) (*model.AvailabilityForecast, error)

	SimulateSeason(ctx context.Context, teams []model.TeamProjection, sched model.Schedule,
		format model.PlayoffFormat, trials int) (*model.SeasonSummary, error)
	// SimulateSeasonFromSession projects every roster of a completed draft
	// and simulates the season between them.
	SimulateSeasonFromSession(ctx context.Context, sessionID string, trials int) (*model.SeasonSummary, error)

	// CalibrateWeights refits the bot utility weights from every stored
	// draft result and swaps them in for subsequent sessions.
	CalibrateWeights(ctx context.Context) (model.UtilityWeights, error)
}

type controller struct {
	clock    clock.Clock
	db       db.DB
	registry *draft.Registry
	engCfg   engine.Config
	season   *engine.SeasonSimulator

	// weights guard: calibration swaps the bot under live traffic.
	mu  sync.RWMutex
	bot *engine.Bot
}

func New(clock clock.Clock, database db.DB, engCfg engine.Config, weights model.UtilityWeights) (C, error) {
	c := &controller{
		clock:    clock,
		db:       database,
		registry: draft.NewRegistry(clock),
		engCfg:   engCfg,
		season:   engine.NewSeasonSimulator(engCfg),
		bot:      engine.NewBot(weights, engCfg),
	}
	return c, nil
}

func (c *controller) currentBot() *engine.Bot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.bot
}

func (c *controller) swapBot(weights model.UtilityWeights) {
	c.mu.Lock()
	c.bot = engine.NewBot(weights, c.engCfg)
	c.mu.Unlock()

	log.Info().
		Float64("value", weights.Value).
		Float64("scarcity", weights.Scarcity).
		Float64("need", weights.Need).
		Float64("availability_risk", weights.AvailabilityRisk).
		Msg("bot weights updated")
}

func (c *controller) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	return c.db.GetPlayer(ctx, id)
}

func (c *controller) ListPlayers(ctx context.Context, mode model.ScoringMode, limit int) ([]*model.Player, error) {
	return c.db.ListPlayers(ctx, mode, limit)
}

func (c *controller) UpsertPlayers(ctx context.Context, players []*model.Player) error {
	for _, p := range players {
		if err := c.db.SavePlayer(ctx, p); err != nil {
			return err
		}
	}
	log.Info().Int("players", len(players)).Msg("player pool updated")
	return nil
}
