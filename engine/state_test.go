package engine

import (
	"testing"
)

func TestApplyPickAdvancesState(t *testing.T) {
	cfg := DefaultConfig()
	st := newTestState(cfg)
	poolBefore := len(st.Remaining)

	st.ApplyPick("RB01", cfg)

	if len(st.Remaining) != poolBefore-1 {
		t.Errorf("pool went from %d to %d, want one removal", poolBefore, len(st.Remaining))
	}
	if st.CurrentPick != 1 {
		t.Errorf("current pick = %d, want 1", st.CurrentPick)
	}
	roster := st.Rosters[1]
	if len(roster.PlayerIDs) != 1 || roster.PlayerIDs[0] != "RB01" {
		t.Errorf("team 1 roster was not credited: %v", roster.PlayerIDs)
	}
	if _, ok := st.VORP["RB01"]; ok {
		t.Error("picked player still has a VORP entry after recompute")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	cfg := DefaultConfig()
	st := newTestState(cfg)
	clone := st.Clone()

	clone.ApplyPick("QB01", cfg)

	if st.CurrentPick != 0 {
		t.Errorf("original pick index moved to %d", st.CurrentPick)
	}
	if len(st.Remaining) != len(clone.Remaining)+1 {
		t.Error("original pool shrank with the clone's pick")
	}
	if len(st.Rosters[1].PlayerIDs) != 0 {
		t.Error("original roster picked up the clone's player")
	}
}

func TestNextPickIndexFollowsSnake(t *testing.T) {
	cfg := DefaultConfig()
	st := newTestState(cfg)

	if idx, ok := st.NextPickIndex(1); !ok || idx != 0 {
		t.Errorf("team 1 next pick = %d %v, want 0 true", idx, ok)
	}
	st.CurrentPick = 1
	if idx, ok := st.NextPickIndex(1); !ok || idx != 23 {
		t.Errorf("team 1 next pick after the clock moved = %d %v, want 23 true", idx, ok)
	}
	if idx, ok := st.NextPickIndex(12); !ok || idx != 11 {
		t.Errorf("team 12 next pick = %d %v, want 11 true", idx, ok)
	}
}
