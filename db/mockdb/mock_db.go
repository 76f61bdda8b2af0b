package mockdb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

type DB struct {
	mock.Mock
}

func (db *DB) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := db.Called(ctx, id)

	var p *model.Player
	if args.Get(0) != nil {
		p = args.Get(0).(*model.Player)
	}
	return p, args.Error(1)
}

func (db *DB) SavePlayer(ctx context.Context, p *model.Player) error {
	args := db.Called(ctx, p)
	return args.Error(0)
}

func (db *DB) ListPlayers(ctx context.Context, mode model.ScoringMode, limit int) ([]*model.Player, error) {
	args := db.Called(ctx, mode, limit)

	var players []*model.Player
	if args.Get(0) != nil {
		players = args.Get(0).([]*model.Player)
	}
	return players, args.Error(1)
}

func (db *DB) SaveDraftResult(ctx context.Context, d model.CompletedDraft) error {
	args := db.Called(ctx, d)
	return args.Error(0)
}

func (db *DB) GetDraftResult(ctx context.Context, sessionID string) (*model.CompletedDraft, error) {
	args := db.Called(ctx, sessionID)

	var d *model.CompletedDraft
	if args.Get(0) != nil {
		d = args.Get(0).(*model.CompletedDraft)
	}
	return d, args.Error(1)
}

func (db *DB) ListDraftResults(ctx context.Context) ([]model.CompletedDraft, error) {
	args := db.Called(ctx)

	var drafts []model.CompletedDraft
	if args.Get(0) != nil {
		drafts = args.Get(0).([]model.CompletedDraft)
	}
	return drafts, args.Error(1)
}

func (db *DB) Close() {
	db.Called()
}
