package db

import (
	"context"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

type DB interface {
	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	SavePlayer(ctx context.Context, p *model.Player) error
	// ListPlayers returns the draftable pool sorted by ADP for the given
	// scoring mode, best pick first. A limit of 0 means no limit.
	ListPlayers(ctx context.Context, mode model.ScoringMode, limit int) ([]*model.Player, error)

	// Completed drafts are stored for the offline calibration job.
	SaveDraftResult(ctx context.Context, d model.CompletedDraft) error
	GetDraftResult(ctx context.Context, sessionID string) (*model.CompletedDraft, error)
	ListDraftResults(ctx context.Context) ([]model.CompletedDraft, error)

	Close()
}
