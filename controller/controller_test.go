package controller

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/stretchr/testify/mock"

	"github.com/papapp1293/FantasyFootballDraftHelper/db/mockdb"
	"github.com/papapp1293/FantasyFootballDraftHelper/draft"
	"github.com/papapp1293/FantasyFootballDraftHelper/engine"
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

func testPool(size int) []*model.Player {
	positions := []model.Position{model.POS_QB, model.POS_RB, model.POS_WR,
		model.POS_TE, model.POS_K, model.POS_DEF}

	pool := make([]*model.Player, 0, size)
	for i := 0; i < size; i++ {
		pool = append(pool, &model.Player{
			ID:           fmt.Sprintf("p%03d", i+1),
			Name:         fmt.Sprintf("Player %d", i+1),
			Position:     positions[i%len(positions)],
			ProjectedPPR: 400 - float64(i),
			ADPPPR:       float64(i + 1),
		})
	}
	return pool
}

func smallLeague() model.LeagueConfig {
	return model.LeagueConfig{
		TeamCount:   2,
		UserSlot:    1,
		Snake:       true,
		ScoringMode: model.ScoringPPR,
		RosterSize:  2,
		Starters:    map[model.Position]int{model.POS_RB: 1},
		FlexShare:   map[model.Position]float64{},
	}
}

func newTestController(t *testing.T, database *mockdb.DB) C {
	t.Helper()
	ctrl, err := New(clock.New(), database, engine.DefaultConfig(), model.DefaultUtilityWeights())
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	return ctrl
}

func TestDraftFlow(t *testing.T) {
	ctx := context.Background()
	database := &mockdb.DB{}
	database.On("ListPlayers", mock.Anything, model.ScoringPPR, DefaultPoolSize).Return(testPool(20), nil)
	database.On("SaveDraftResult", mock.Anything, mock.Anything).Return(nil)

	ctrl := newTestController(t, database)

	view, err := ctrl.CreateSession(ctx, smallLeague())
	if err != nil {
		t.Fatalf("error creating session: %v", err)
	}
	if view.Status != model.DraftConfiguring {
		t.Fatalf("new session status = %s, want CONFIGURING", view.Status)
	}

	view, err = ctrl.StartSession(view.SessionID)
	if err != nil {
		t.Fatalf("error starting session: %v", err)
	}
	if view.Status != model.DraftInProgress || view.CurrentTeamID != 1 {
		t.Fatalf("started session status %s, team %d on clock", view.Status, view.CurrentTeamID)
	}

	// User pick, then the bots play teams 2 and 2 (snake), then the user
	// closes the draft.
	if _, err := ctrl.SubmitPick(ctx, view.SessionID, 1, "p001"); err != nil {
		t.Fatalf("user pick failed: %v", err)
	}
	view, err = ctrl.AdvanceBots(ctx, view.SessionID)
	if err != nil {
		t.Fatalf("advancing bots failed: %v", err)
	}
	if view.PicksMade != 3 || view.CurrentTeamID != 1 {
		t.Fatalf("after bots: %d picks made, team %d on clock", view.PicksMade, view.CurrentTeamID)
	}
	for _, pick := range view.Picks[1:] {
		if !pick.Auto || pick.Rationale == "" {
			t.Errorf("bot pick %d not marked auto with a rationale", pick.Overall)
		}
	}

	view, err = ctrl.SubmitPick(ctx, view.SessionID, 1, "p015")
	if err != nil {
		t.Fatalf("final pick failed: %v", err)
	}
	if view.Status != model.DraftCompleted {
		t.Fatalf("status after final pick = %s, want COMPLETED", view.Status)
	}
	database.AssertCalled(t, "SaveDraftResult", mock.Anything, mock.Anything)
}

func TestListAndDeleteSessions(t *testing.T) {
	ctx := context.Background()
	database := &mockdb.DB{}
	database.On("ListPlayers", mock.Anything, model.ScoringPPR, DefaultPoolSize).Return(testPool(20), nil)
	ctrl := newTestController(t, database)

	if got := ctrl.ListSessions(); len(got) != 0 {
		t.Fatalf("expected no sessions, got %d", len(got))
	}

	view, err := ctrl.CreateSession(ctx, smallLeague())
	if err != nil {
		t.Fatalf("error creating session: %v", err)
	}
	if got := ctrl.ListSessions(); len(got) != 1 || got[0].SessionID != view.SessionID {
		t.Errorf("unexpected session list: %+v", got)
	}

	if err := ctrl.DeleteSession(view.SessionID); err != nil {
		t.Fatalf("error deleting session: %v", err)
	}
	if err := ctrl.DeleteSession(view.SessionID); !errors.Is(err, draft.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound for second delete, got %v", err)
	}
	if got := ctrl.ListSessions(); len(got) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(got))
	}
}

func TestSubmitPickErrorsPassThrough(t *testing.T) {
	ctx := context.Background()
	database := &mockdb.DB{}
	database.On("ListPlayers", mock.Anything, model.ScoringPPR, DefaultPoolSize).Return(testPool(20), nil)

	ctrl := newTestController(t, database)
	view, err := ctrl.CreateSession(ctx, smallLeague())
	if err != nil {
		t.Fatalf("error creating session: %v", err)
	}
	if _, err := ctrl.StartSession(view.SessionID); err != nil {
		t.Fatalf("error starting session: %v", err)
	}

	if _, err := ctrl.SubmitPick(ctx, "missing", 1, "p001"); !errors.Is(err, draft.ErrSessionNotFound) {
		t.Errorf("unknown session gave %v, want ErrSessionNotFound", err)
	}
	if _, err := ctrl.SubmitPick(ctx, view.SessionID, 2, "p001"); !errors.Is(err, draft.ErrTurnViolation) {
		t.Errorf("out-of-turn pick gave %v, want ErrTurnViolation", err)
	}
	if _, err := ctrl.SubmitPick(ctx, view.SessionID, 1, "ghost"); !errors.Is(err, draft.ErrPlayerUnavailable) {
		t.Errorf("unknown player gave %v, want ErrPlayerUnavailable", err)
	}
}

func TestGetAdvice(t *testing.T) {
	ctx := context.Background()
	database := &mockdb.DB{}
	database.On("ListPlayers", mock.Anything, model.ScoringPPR, DefaultPoolSize).Return(testPool(20), nil)

	ctrl := newTestController(t, database)
	view, _ := ctrl.CreateSession(ctx, smallLeague())
	if _, err := ctrl.StartSession(view.SessionID); err != nil {
		t.Fatalf("error starting session: %v", err)
	}

	advice, err := ctrl.GetAdvice(ctx, view.SessionID, 1, model.AdviceDeterministic, 5)
	if err != nil {
		t.Fatalf("error getting advice: %v", err)
	}
	if len(advice) != 5 {
		t.Fatalf("got %d candidates, want 5", len(advice))
	}
	for i := 1; i < len(advice); i++ {
		if advice[i].Utility > advice[i-1].Utility {
			t.Errorf("advice not sorted by utility at %d", i)
		}
	}

	sampled, err := ctrl.GetAdvice(ctx, view.SessionID, 1, model.AdviceStochastic, 5)
	if err != nil {
		t.Fatalf("error getting stochastic advice: %v", err)
	}
	if len(sampled) != 1 {
		t.Errorf("stochastic advice returned %d candidates, want 1", len(sampled))
	}
}

func TestForecastAvailability(t *testing.T) {
	ctx := context.Background()
	database := &mockdb.DB{}
	database.On("ListPlayers", mock.Anything, model.ScoringPPR, DefaultPoolSize).Return(testPool(20), nil)

	ctrl := newTestController(t, database)
	view, _ := ctrl.CreateSession(ctx, smallLeague())
	if _, err := ctrl.StartSession(view.SessionID); err != nil {
		t.Fatalf("error starting session: %v", err)
	}

	forecast, err := ctrl.ForecastAvailability(ctx, view.SessionID, 1, 30)
	if err != nil {
		t.Fatalf("error forecasting: %v", err)
	}
	if forecast.Trials != 30 {
		t.Errorf("ran %d trials, want 30", forecast.Trials)
	}
	for id, p := range forecast.Probabilities {
		if p < 0 || p > 1 {
			t.Errorf("probability for %s out of range: %.3f", id, p)
		}
	}
}

func TestSimulateSeasonFromSession(t *testing.T) {
	ctx := context.Background()
	database := &mockdb.DB{}
	database.On("ListPlayers", mock.Anything, model.ScoringPPR, DefaultPoolSize).Return(testPool(20), nil)
	database.On("SaveDraftResult", mock.Anything, mock.Anything).Return(nil)

	ctrl := newTestController(t, database)
	view, _ := ctrl.CreateSession(ctx, smallLeague())
	if _, err := ctrl.StartSession(view.SessionID); err != nil {
		t.Fatalf("error starting session: %v", err)
	}

	// Incomplete drafts can't be season-simulated.
	if _, err := ctrl.SimulateSeasonFromSession(ctx, view.SessionID, 50); err == nil {
		t.Error("expected an error for an in-progress draft")
	}

	if _, err := ctrl.SubmitPick(ctx, view.SessionID, 1, "p001"); err != nil {
		t.Fatalf("user pick failed: %v", err)
	}
	if _, err := ctrl.AdvanceBots(ctx, view.SessionID); err != nil {
		t.Fatalf("advancing bots failed: %v", err)
	}
	if _, err := ctrl.SubmitPick(ctx, view.SessionID, 1, "p015"); err != nil {
		t.Fatalf("final pick failed: %v", err)
	}

	summary, err := ctrl.SimulateSeasonFromSession(ctx, view.SessionID, 50)
	if err != nil {
		t.Fatalf("error simulating season: %v", err)
	}
	if len(summary.Teams) != 2 {
		t.Fatalf("summary covers %d teams, want 2", len(summary.Teams))
	}
	var titles float64
	for _, team := range summary.Teams {
		titles += team.ChampionshipOdds
	}
	if math.Abs(titles-1) > 1e-9 {
		t.Errorf("championship odds sum to %.3f, want 1", titles)
	}
}

func TestCalibrateWeights(t *testing.T) {
	ctx := context.Background()
	pool := testPool(20)

	// A stored draft whose picks always took the best player available.
	cfg := smallLeague()
	order := engine.SnakeOrder(cfg.TeamCount, cfg.RosterSize, cfg.Snake)
	stored := model.CompletedDraft{SessionID: "old-draft", Config: cfg}
	for i, teamID := range order {
		stored.Picks = append(stored.Picks, model.PickRecord{
			Overall:  i,
			TeamID:   teamID,
			PlayerID: fmt.Sprintf("p%03d", i+1),
		})
	}

	database := &mockdb.DB{}
	database.On("ListDraftResults", mock.Anything).Return([]model.CompletedDraft{stored}, nil)
	database.On("ListPlayers", mock.Anything, model.ScoringPPR, 0).Return(pool, nil)

	ctrl := newTestController(t, database)
	weights, err := ctrl.CalibrateWeights(ctx)
	if err != nil {
		t.Fatalf("error calibrating: %v", err)
	}
	if weights == (model.UtilityWeights{}) {
		t.Error("calibration returned zero weights")
	}
}

func TestCalibrateWeightsNoDrafts(t *testing.T) {
	database := &mockdb.DB{}
	database.On("ListDraftResults", mock.Anything).Return([]model.CompletedDraft{}, nil)
	database.On("ListPlayers", mock.Anything, model.ScoringPPR, 0).Return(testPool(20), nil)

	ctrl := newTestController(t, database)
	if _, err := ctrl.CalibrateWeights(context.Background()); !errors.Is(err, engine.ErrNoObservations) {
		t.Errorf("expected ErrNoObservations, got %v", err)
	}
}
