package engine

import (
	"context"
	"testing"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

func TestForecastProbabilityBounds(t *testing.T) {
	cfg := DefaultConfig()
	f := NewForecaster(NewBot(model.DefaultUtilityWeights(), cfg), cfg)
	st := newTestState(cfg)
	st.ApplyPick("RB01", cfg) // team 1 is off the clock, next turn at pick 23

	out, err := f.Forecast(context.Background(), st, 1, 60, 42)
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}
	if out.Trials != 60 {
		t.Errorf("ran %d trials, want 60", out.Trials)
	}
	if out.PicksUntilTurn != 22 {
		t.Errorf("picks until turn = %d, want 22", out.PicksUntilTurn)
	}
	for id, p := range out.Probabilities {
		if p < 0 || p > 1 {
			t.Errorf("probability for %s out of range: %.3f", id, p)
		}
	}
	if len(out.Probabilities) != len(st.Remaining) {
		t.Errorf("forecast covers %d players, pool has %d", len(out.Probabilities), len(st.Remaining))
	}
}

func TestForecastTopPlayersTaken(t *testing.T) {
	cfg := DefaultConfig()
	f := NewForecaster(NewBot(model.DefaultUtilityWeights(), cfg), cfg)
	st := newTestState(cfg)
	st.ApplyPick("RB01", cfg)

	out, err := f.Forecast(context.Background(), st, 1, 60, 42)
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}

	// 22 bot picks intervene; the top-utility RB should almost never survive
	// while a deep bench kicker is never touched that early.
	if p := out.Probabilities["RB02"]; p > 0.2 {
		t.Errorf("top RB survives with probability %.3f, expected near 0", p)
	}
	if p := out.Probabilities["K12"]; p < 0.99 {
		t.Errorf("deep kicker survives with probability %.3f, expected ~1", p)
	}
}

func TestForecastNoRemainingTurn(t *testing.T) {
	cfg := DefaultConfig()
	f := NewForecaster(NewBot(model.DefaultUtilityWeights(), cfg), cfg)

	league := model.DefaultLeagueConfig()
	order := SnakeOrder(league.TeamCount, league.RosterSize, league.Snake)
	// Start past team 1's final pick. Round 16 is reversed, so team 1 picks
	// last at index 191; pick 192 is off the end.
	st := NewSimState(league, order, len(order), testPool(), emptyRosters(league.TeamCount), cfg)

	out, err := f.Forecast(context.Background(), st, 1, 50, 1)
	if err != nil {
		t.Fatalf("forecast failed: %v", err)
	}
	if out.Trials != 0 {
		t.Errorf("no-turn forecast ran %d trials", out.Trials)
	}
	if len(out.Probabilities) != 0 {
		t.Errorf("no-turn forecast reported %d probabilities", len(out.Probabilities))
	}
}

func TestForecastHonorsCancellation(t *testing.T) {
	cfg := DefaultConfig()
	f := NewForecaster(NewBot(model.DefaultUtilityWeights(), cfg), cfg)
	st := newTestState(cfg)
	st.ApplyPick("RB01", cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.Forecast(ctx, st, 1, 500, 1); err == nil {
		t.Error("cancelled forecast should return the context error")
	}
}

func TestForecastLeavesSnapshotUntouched(t *testing.T) {
	cfg := DefaultConfig()
	f := NewForecaster(NewBot(model.DefaultUtilityWeights(), cfg), cfg)
	st := newTestState(cfg)
	st.ApplyPick("RB01", cfg)

	before := len(st.Remaining)
	pick := st.CurrentPick
	if _, err := f.Forecast(context.Background(), st, 1, 20, 3); err != nil {
		t.Fatalf("forecast failed: %v", err)
	}
	if len(st.Remaining) != before || st.CurrentPick != pick {
		t.Error("forecast mutated the snapshot it was given")
	}
}
