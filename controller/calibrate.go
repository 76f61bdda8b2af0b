package controller

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/papapp1293/FantasyFootballDraftHelper/engine"
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

func (c *controller) CalibrateWeights(ctx context.Context) (model.UtilityWeights, error) {
	drafts, err := c.db.ListDraftResults(ctx)
	if err != nil {
		return model.UtilityWeights{}, fmt.Errorf("error loading stored drafts: %w", err)
	}
	pool, err := c.db.ListPlayers(ctx, model.ScoringPPR, 0)
	if err != nil {
		return model.UtilityWeights{}, fmt.Errorf("error loading player pool: %w", err)
	}

	obs, err := engine.BuildObservations(drafts, pool, c.engCfg)
	if err != nil {
		return model.UtilityWeights{}, fmt.Errorf("error replaying drafts: %w", err)
	}
	log.Info().
		Int("drafts", len(drafts)).
		Int("observations", len(obs)).
		Msg("starting weight calibration")

	weights, _, err := engine.Calibrate(obs, engine.DefaultCalibrationOptions())
	if err != nil {
		return model.UtilityWeights{}, err
	}

	c.swapBot(weights)
	return weights, nil
}
