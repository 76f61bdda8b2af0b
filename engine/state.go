package engine

import (
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// SimState is a self-contained, mutable copy of a draft in progress: the
// remaining pool, rosters, and derived metrics. The draft state machine
// hands out SimStates as frozen snapshots; simulations clone and advance
// them freely without ever touching live session state.
type SimState struct {
	League      model.LeagueConfig
	Order       []int // full pick order, one team id per global pick index
	CurrentPick int
	Remaining   []*model.Player
	Rosters     map[int]*model.RosterState

	Levels   map[model.Position]float64
	VORP     map[string]float64
	Scarcity map[model.Position]model.ScarcityMetric
}

// NewSimState builds a state from a pool and recomputes all derived metrics.
func NewSimState(league model.LeagueConfig, order []int, currentPick int,
	remaining []*model.Player, rosters map[int]*model.RosterState, cfg Config) *SimState {

	st := &SimState{
		League:      league,
		Order:       order,
		CurrentPick: currentPick,
		Remaining:   remaining,
		Rosters:     rosters,
	}
	st.Recompute(cfg)
	return st
}

// Recompute refreshes replacement levels, VORP, and scarcity from the
// current remaining pool. Idempotent for a fixed pool.
func (st *SimState) Recompute(cfg Config) {
	st.Levels = ReplacementLevels(st.Remaining, st.League)
	st.VORP = VORP(st.Remaining, st.Levels, st.League.ScoringMode)
	st.Scarcity = AnalyzeScarcity(st.Remaining, st.VORP, st.Levels, cfg)
}

// Clone deep-copies everything a simulation trial mutates. Player records
// themselves are immutable and shared.
func (st *SimState) Clone() *SimState {
	c := &SimState{
		League:      st.League,
		Order:       st.Order, // fixed at creation, never mutated
		CurrentPick: st.CurrentPick,
		Remaining:   append([]*model.Player(nil), st.Remaining...),
		Rosters:     make(map[int]*model.RosterState, len(st.Rosters)),
		Levels:      make(map[model.Position]float64, len(st.Levels)),
		VORP:        make(map[string]float64, len(st.VORP)),
		Scarcity:    make(map[model.Position]model.ScarcityMetric, len(st.Scarcity)),
	}
	for id, r := range st.Rosters {
		c.Rosters[id] = r.Clone()
	}
	for k, v := range st.Levels {
		c.Levels[k] = v
	}
	for k, v := range st.VORP {
		c.VORP[k] = v
	}
	for k, v := range st.Scarcity {
		c.Scarcity[k] = v
	}
	return c
}

// CurrentTeam is the team on the clock, derived from the pick order.
func (st *SimState) CurrentTeam() int {
	if st.CurrentPick >= len(st.Order) {
		return st.Order[len(st.Order)-1]
	}
	return st.Order[st.CurrentPick]
}

// NextPickIndex finds a team's next turn at or after the current pick.
func (st *SimState) NextPickIndex(teamID int) (int, bool) {
	for i := st.CurrentPick; i < len(st.Order); i++ {
		if st.Order[i] == teamID {
			return i, true
		}
	}
	return 0, false
}

// ApplyPick removes the player from the pool, credits the acting team's
// roster, advances the pick index, and recomputes derived metrics. Used by
// simulation trials; the live state machine has its own guarded version.
func (st *SimState) ApplyPick(playerID string, cfg Config) {
	teamID := st.CurrentTeam()

	for i, p := range st.Remaining {
		if p.ID == playerID {
			roster := st.Rosters[teamID]
			roster.PlayerIDs = append(roster.PlayerIDs, p.ID)
			roster.Counts[p.Position]++
			st.Remaining = append(st.Remaining[:i], st.Remaining[i+1:]...)
			break
		}
	}

	st.CurrentPick++
	st.Recompute(cfg)
}
