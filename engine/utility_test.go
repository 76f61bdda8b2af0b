package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

func TestUtilityLinear(t *testing.T) {
	w := model.UtilityWeights{Value: 1, Scarcity: 2, Need: 3, AvailabilityRisk: 4}
	f := FeatureVec{Value: 1, Scarcity: 0.5, Need: 0.25, Risk: 0.1}

	want := 1.0 + 1.0 + 0.75 + 0.4
	if got := Utility(w, f); math.Abs(got-want) > 1e-9 {
		t.Errorf("utility = %.4f, want %.4f", got, want)
	}
}

func TestAvailabilityRisk(t *testing.T) {
	bot := NewBot(model.DefaultUtilityWeights(), DefaultConfig())
	mode := model.ScoringPPR

	early := &model.Player{ID: "a", ADPPPR: 1}
	late := &model.Player{ID: "b", ADPPPR: 200}

	if got := bot.AvailabilityRisk(early, mode, 30); got < 0.99 {
		t.Errorf("ADP 1 player at pick 30 should be near-certain gone, risk %.3f", got)
	}
	if got := bot.AvailabilityRisk(late, mode, 30); got > 0.01 {
		t.Errorf("ADP 200 player at pick 30 should be near-certain safe, risk %.3f", got)
	}

	// Risk grows as the next turn moves later.
	mid := &model.Player{ID: "c", ADPPPR: 50}
	prev := 0.0
	for _, pick := range []int{30, 45, 60, 90} {
		risk := bot.AvailabilityRisk(mid, mode, pick)
		if risk < prev {
			t.Errorf("risk not monotonic in pick index: %.3f after %.3f", risk, prev)
		}
		prev = risk
	}
}

func TestRankDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	bot := NewBot(model.DefaultUtilityWeights(), cfg)
	st := newTestState(cfg)

	first := bot.Rank(st, 1, 10)
	second := bot.Rank(st, 1, 10)
	if len(first) != 10 || len(second) != 10 {
		t.Fatalf("rank lengths were %d and %d, want 10", len(first), len(second))
	}
	for i := range first {
		if first[i].PlayerID != second[i].PlayerID {
			t.Errorf("rank position %d differs between calls: %s vs %s",
				i, first[i].PlayerID, second[i].PlayerID)
		}
	}
	for i := 1; i < len(first); i++ {
		if first[i].Utility > first[i-1].Utility {
			t.Errorf("rank not descending at position %d", i)
		}
	}
}

func TestSampleStaysInTopK(t *testing.T) {
	cfg := DefaultConfig()
	bot := NewBot(model.DefaultUtilityWeights(), cfg)
	st := newTestState(cfg)
	rng := rand.New(rand.NewSource(7))

	top := make(map[string]bool, cfg.TopK)
	for _, c := range bot.Rank(st, 1, cfg.TopK) {
		top[c.PlayerID] = true
	}

	for i := 0; i < 200; i++ {
		c, ok := bot.Sample(rng, st, 1)
		if !ok {
			t.Fatal("sample returned no candidate from a full pool")
		}
		if !top[c.PlayerID] {
			t.Fatalf("sampled %s outside the top %d", c.PlayerID, cfg.TopK)
		}
	}
}

func TestSampleEmptyPool(t *testing.T) {
	cfg := DefaultConfig()
	bot := NewBot(model.DefaultUtilityWeights(), cfg)
	league := model.DefaultLeagueConfig()
	order := SnakeOrder(league.TeamCount, league.RosterSize, league.Snake)
	st := NewSimState(league, order, 0, nil, emptyRosters(league.TeamCount), cfg)

	if _, ok := bot.Sample(rand.New(rand.NewSource(1)), st, 1); ok {
		t.Error("sample from an empty pool should report no candidate")
	}
}

func TestCandidateRationalePresent(t *testing.T) {
	cfg := DefaultConfig()
	bot := NewBot(model.DefaultUtilityWeights(), cfg)
	st := newTestState(cfg)

	for _, c := range bot.Rank(st, 1, 5) {
		if c.Rationale == "" {
			t.Errorf("candidate %s has no rationale", c.PlayerID)
		}
	}
}
