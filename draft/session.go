package draft

import (
	"fmt"
	"sync"

	"github.com/itbasis/go-clock"

	"github.com/papapp1293/FantasyFootballDraftHelper/engine"
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// Session is the turn-based state machine for one live draft. All entry
// points serialize on the session mutex, so concurrent submissions are
// applied one at a time and a rejected pick leaves no trace.
//
// The lifecycle is CONFIGURING -> IN_PROGRESS -> COMPLETED, forward only.
type Session struct {
	mu sync.Mutex

	id     string
	clock  clock.Clock
	cfg    model.LeagueConfig
	engCfg engine.Config

	status model.DraftStatus
	pool   []*model.Player
	st     *engine.SimState
	picks  []model.PickRecord
}

// NewSession validates the league configuration against the pool and
// returns a session in CONFIGURING. The pool is used as-is: callers decide
// its size and ordering.
func NewSession(id string, cfg model.LeagueConfig, pool []*model.Player,
	engCfg engine.Config, clk clock.Clock) (*Session, error) {

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(pool) < cfg.TotalPicks() {
		return nil, fmt.Errorf("%w: %d players for %d picks", ErrPoolTooSmall, len(pool), cfg.TotalPicks())
	}

	return &Session{
		id:     id,
		clock:  clk,
		cfg:    cfg,
		engCfg: engCfg,
		status: model.DraftConfiguring,
		pool:   pool,
	}, nil
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Config() model.LeagueConfig {
	return s.cfg
}

func (s *Session) Status() model.DraftStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Start freezes the configuration, precomputes the full pick order, and
// moves the session to IN_PROGRESS.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != model.DraftConfiguring {
		return ErrSessionStarted
	}

	order := engine.SnakeOrder(s.cfg.TeamCount, s.cfg.RosterSize, s.cfg.Snake)
	rosters := make(map[int]*model.RosterState, s.cfg.TeamCount)
	for id := 1; id <= s.cfg.TeamCount; id++ {
		rosters[id] = &model.RosterState{
			TeamID:     id,
			Counts:     make(map[model.Position]int),
			NeedScores: make(map[model.Position]float64),
		}
	}

	s.st = engine.NewSimState(s.cfg, order, 0, append([]*model.Player(nil), s.pool...), rosters, s.engCfg)
	s.refreshNeeds()
	s.status = model.DraftInProgress
	return nil
}

// SubmitPick confirms one selection for the team on the clock. Every check
// runs before any mutation, so a rejected pick leaves the session exactly
// as it was.
func (s *Session) SubmitPick(teamID int, playerID string, auto bool, rationale string) (model.PickRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.status {
	case model.DraftConfiguring:
		return model.PickRecord{}, ErrSessionNotStarted
	case model.DraftCompleted:
		return model.PickRecord{}, ErrSessionComplete
	}

	if s.st.CurrentTeam() != teamID {
		return model.PickRecord{}, fmt.Errorf("%w: team %d on the clock, got %d",
			ErrTurnViolation, s.st.CurrentTeam(), teamID)
	}

	var player *model.Player
	for _, p := range s.st.Remaining {
		if p.ID == playerID {
			player = p
			break
		}
	}
	if player == nil {
		return model.PickRecord{}, fmt.Errorf("%w: %s", ErrPlayerUnavailable, playerID)
	}

	round, pickInRound := engine.RoundAndPick(s.st.CurrentPick, s.cfg.TeamCount)
	record := model.PickRecord{
		Overall:     s.st.CurrentPick,
		TeamID:      teamID,
		PlayerID:    playerID,
		Round:       round,
		PickInRound: pickInRound,
		Timestamp:   s.clock.Now().UTC(),
		Auto:        auto,
		Rationale:   rationale,
	}

	s.st.ApplyPick(playerID, s.engCfg)
	s.picks = append(s.picks, record)
	s.refreshNeeds()

	if len(s.picks) == s.cfg.TotalPicks() {
		s.status = model.DraftCompleted
	}
	return record, nil
}

// View returns a fully copied snapshot. Holding a view never observes later
// session mutations.
func (s *Session) View() model.DraftView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := model.DraftView{
		SessionID:  s.id,
		Status:     s.status,
		Config:     s.cfg,
		PicksMade:  len(s.picks),
		TotalPicks: s.cfg.TotalPicks(),
		Picks:      append([]model.PickRecord(nil), s.picks...),
		Rosters:    make(map[int]*model.RosterState),
		Scarcity:   make(map[model.Position]model.ScarcityMetric),
	}
	if s.st == nil {
		return view
	}

	view.CurrentPick = s.st.CurrentPick
	if s.status == model.DraftInProgress {
		view.CurrentTeamID = s.st.CurrentTeam()
	}
	for id, r := range s.st.Rosters {
		view.Rosters[id] = r.Clone()
	}
	for pos, m := range s.st.Scarcity {
		view.Scarcity[pos] = m
	}
	return view
}

// SimState hands out an independent clone for simulations and advice
// queries. The live state is never shared.
func (s *Session) SimState() (*engine.SimState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st == nil {
		return nil, ErrSessionNotStarted
	}
	return s.st.Clone(), nil
}

// Completed exports the finished session for persistence and calibration.
func (s *Session) Completed() (model.CompletedDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != model.DraftCompleted {
		return model.CompletedDraft{}, fmt.Errorf("session %s is %s, not completed", s.id, s.status)
	}
	return model.CompletedDraft{
		SessionID: s.id,
		Config:    s.cfg,
		Picks:     append([]model.PickRecord(nil), s.picks...),
	}, nil
}

// Pool returns a copy of the full player pool the session drafted from,
// drafted players included.
func (s *Session) Pool() []*model.Player {
	return append([]*model.Player(nil), s.pool...)
}

// UserOnClock reports whether the human team is up next.
func (s *Session) UserOnClock() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st == nil || s.status != model.DraftInProgress {
		return false
	}
	return s.st.CurrentTeam() == s.cfg.UserSlot
}

// refreshNeeds keeps the per-roster need maps in sync after pool changes.
// Callers hold the session mutex.
func (s *Session) refreshNeeds() {
	for _, r := range s.st.Rosters {
		r.NeedScores = engine.NeedScores(r, s.cfg, s.engCfg)
	}
}
