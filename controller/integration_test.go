package controller

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/papapp1293/FantasyFootballDraftHelper/engine"
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
	"github.com/papapp1293/FantasyFootballDraftHelper/testutils"
)

func newTestControllerWithDB(t *testing.T) C {
	t.Helper()
	ctrl, err := New(testDB.Clock, testDB.DB, engine.DefaultConfig(), model.DefaultUtilityWeights())
	if err != nil {
		t.Fatalf("error constructing controller: %v", err)
	}
	return ctrl
}

// A global testDB instance to use for all of the tests instead of setting up a new one each time.
var testDB *testutils.TestDB

// TestMain controls the main for the tests and allows for setup and shutdown of the tests
func TestMain(m *testing.M) {
	defer func() {
		// Catch all panics to make sure the shutdown is successfully run
		if r := recover(); r != nil {
			if testDB != nil {
				testDB.Shutdown()
			}
			fmt.Printf("panic - %v\n", r)
		}
	}()

	// Setup the global testDB variable
	testDB = testutils.NewTestDB()
	defer testDB.Shutdown()
	code := m.Run()
	os.Exit(code)
}

func TestGetPlayerFromDB(t *testing.T) {
	ctrl := newTestControllerWithDB(t)
	ctx := context.Background()

	p, err := ctrl.GetPlayer(ctx, testutils.JalenHurts.ID)
	if err != nil {
		t.Fatalf("error getting player: %v", err)
	}
	if p.Name != "Jalen Hurts" || p.Position != model.POS_QB {
		t.Errorf("unexpected player: %+v", p)
	}
}

func TestDraftPersistence(t *testing.T) {
	ctrl := newTestControllerWithDB(t)
	ctx := context.Background()

	view, err := ctrl.CreateSession(ctx, smallLeague())
	if err != nil {
		t.Fatalf("error creating session: %v", err)
	}
	if _, err := ctrl.StartSession(view.SessionID); err != nil {
		t.Fatalf("error starting session: %v", err)
	}

	// Snake order with 2 teams and 2 roster spots: team 1, 2, 2, 1.
	if view, err = ctrl.SubmitPick(ctx, view.SessionID, 1, testutils.BreeceHall.ID); err != nil {
		t.Fatalf("error submitting user pick: %v", err)
	}
	if view, err = ctrl.AdvanceBots(ctx, view.SessionID); err != nil {
		t.Fatalf("error advancing bots: %v", err)
	}
	if view.PicksMade != 3 {
		t.Fatalf("expected 3 picks after bot turns, got %d", view.PicksMade)
	}

	// The final user pick is whichever fixture player is still available.
	taken := make(map[string]bool)
	for _, p := range view.Picks {
		taken[p.PlayerID] = true
	}
	var last string
	for _, p := range []*model.Player{testutils.JalenHurts, testutils.BijanRobinson,
		testutils.CeeDeeLamb, testutils.TylerLockett, testutils.TJHockenson} {
		if !taken[p.ID] {
			last = p.ID
			break
		}
	}
	if view, err = ctrl.SubmitPick(ctx, view.SessionID, 1, last); err != nil {
		t.Fatalf("error submitting final pick: %v", err)
	}
	if view.Status != model.DraftCompleted {
		t.Fatalf("expected completed draft, got %s", view.Status)
	}

	// Completion stores the draft for the calibration job.
	stored, err := testDB.DB.GetDraftResult(ctx, view.SessionID)
	if err != nil {
		t.Fatalf("error loading stored draft: %v", err)
	}
	if len(stored.Picks) != 4 {
		t.Errorf("expected 4 stored picks, got %d", len(stored.Picks))
	}
	if stored.Config.TeamCount != 2 {
		t.Errorf("unexpected stored config: %+v", stored.Config)
	}

	// A completed draft can seed a season simulation.
	summary, err := ctrl.SimulateSeasonFromSession(ctx, view.SessionID, 50)
	if err != nil {
		t.Fatalf("error simulating season: %v", err)
	}
	if len(summary.Teams) != 2 {
		t.Errorf("expected 2 simulated teams, got %d", len(summary.Teams))
	}
}
