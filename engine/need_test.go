package engine

import (
	"math"
	"testing"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

func TestNeedScoreStarterShortfall(t *testing.T) {
	cfg := DefaultConfig()
	league := model.DefaultLeagueConfig()
	roster := emptyRosters(1)[1]

	// 2 dedicated RB starters plus the 0.45 flex share.
	if got := NeedScore(roster, league, cfg, model.POS_RB); math.Abs(got-2.45) > 1e-9 {
		t.Errorf("empty roster RB need = %.3f, want 2.45", got)
	}
	if got := NeedScore(roster, league, cfg, model.POS_QB); got != 1 {
		t.Errorf("empty roster QB need = %.3f, want 1", got)
	}
}

func TestNeedScoreBenchResidual(t *testing.T) {
	cfg := DefaultConfig()
	league := model.DefaultLeagueConfig()
	roster := emptyRosters(1)[1]
	roster.Counts[model.POS_RB] = 3

	got := NeedScore(roster, league, cfg, model.POS_RB)
	if got <= 0 {
		t.Fatalf("covered starters should leave a bench residual, got %.3f", got)
	}
	if got >= 1 {
		t.Errorf("bench residual %.3f should be well below a starter shortfall", got)
	}
}

func TestNeedScoreSaturates(t *testing.T) {
	cfg := DefaultConfig()
	league := model.DefaultLeagueConfig()
	roster := emptyRosters(1)[1]
	roster.Counts[model.POS_QB] = 4

	if got := NeedScore(roster, league, cfg, model.POS_QB); got != 0 {
		t.Errorf("overstuffed position still reports need %.3f", got)
	}
}

func TestNeedScoreNeverNegative(t *testing.T) {
	cfg := DefaultConfig()
	league := model.DefaultLeagueConfig()

	for _, pos := range model.AllPositions {
		for count := 0; count <= league.RosterSize; count++ {
			roster := emptyRosters(1)[1]
			roster.Counts[pos] = count
			if got := NeedScore(roster, league, cfg, pos); got < 0 {
				t.Errorf("%s with %d rostered gives negative need %.3f", pos, count, got)
			}
		}
	}
}

func TestNeedScoresCoversAllPositions(t *testing.T) {
	cfg := DefaultConfig()
	league := model.DefaultLeagueConfig()
	scores := NeedScores(emptyRosters(1)[1], league, cfg)

	for _, pos := range model.AllPositions {
		if _, ok := scores[pos]; !ok {
			t.Errorf("need map missing %s", pos)
		}
	}
}
