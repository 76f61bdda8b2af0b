package model

import (
	"time"
)

// DraftStatus is the lifecycle state of a draft session.
type DraftStatus string

const (
	DraftConfiguring DraftStatus = "CONFIGURING"
	DraftInProgress  DraftStatus = "IN_PROGRESS"
	DraftCompleted   DraftStatus = "COMPLETED"
)

// PickRecord is one confirmed selection. Records are append-only; once a
// pick is written it never changes.
type PickRecord struct {
	Overall     int       `json:"overall"` // 0-based global pick index
	TeamID      int       `json:"team_id"`
	PlayerID    string    `json:"player_id"`
	Round       int       `json:"round"`
	PickInRound int       `json:"pick_in_round"`
	Timestamp   time.Time `json:"timestamp"`
	Auto        bool      `json:"auto"` // true when generated by the bot model
	Rationale   string    `json:"rationale,omitempty"`
}

// RosterState tracks one team's picks during a session. It is owned by the
// draft state machine and mutated only on confirmed picks.
type RosterState struct {
	TeamID     int                  `json:"team_id"`
	PlayerIDs  []string             `json:"player_ids"`
	Counts     map[Position]int     `json:"counts"`
	NeedScores map[Position]float64 `json:"need_scores"`
}

// Clone returns an independent deep copy.
func (r *RosterState) Clone() *RosterState {
	c := &RosterState{
		TeamID:     r.TeamID,
		PlayerIDs:  append([]string(nil), r.PlayerIDs...),
		Counts:     make(map[Position]int, len(r.Counts)),
		NeedScores: make(map[Position]float64, len(r.NeedScores)),
	}
	for k, v := range r.Counts {
		c.Counts[k] = v
	}
	for k, v := range r.NeedScores {
		c.NeedScores[k] = v
	}
	return c
}

// ScarcityMetric summarizes how thin a position has become. Recomputed
// against the remaining pool after every confirmed pick.
type ScarcityMetric struct {
	Position          Position `json:"position"`
	AvgVORPRemaining  float64  `json:"avg_vorp_remaining"`
	DropoffAtNextTier float64  `json:"dropoff_at_next_tier"`
	ScarcityScore     float64  `json:"scarcity_score"`
	UrgencyFlag       bool     `json:"urgency_flag"`
	ReplacementLevel  float64  `json:"replacement_level"`
	PlayersRemaining  int      `json:"players_remaining"`
}

// DraftView is the read-only snapshot of a session handed to callers.
// Everything in it is copied; holding a view never observes later mutations.
type DraftView struct {
	SessionID     string                      `json:"session_id"`
	Status        DraftStatus                 `json:"status"`
	Config        LeagueConfig                `json:"config"`
	CurrentPick   int                         `json:"current_pick"` // 0-based global index
	CurrentTeamID int                         `json:"current_team_id"`
	PicksMade     int                         `json:"picks_made"`
	TotalPicks    int                         `json:"total_picks"`
	Picks         []PickRecord                `json:"picks"`
	Rosters       map[int]*RosterState        `json:"rosters"`
	Scarcity      map[Position]ScarcityMetric `json:"scarcity"`
}

// CompletedDraft is a finished session as stored for offline calibration:
// the league shape it ran under and its full append-only pick list.
type CompletedDraft struct {
	SessionID string       `json:"session_id"`
	Config    LeagueConfig `json:"config"`
	Picks     []PickRecord `json:"picks"`
}

// Candidate is one row of draft advice: a player plus the utility components
// that produced its rank.
type Candidate struct {
	PlayerID         string   `json:"player_id"`
	Name             string   `json:"name"`
	Position         Position `json:"position"`
	Utility          float64  `json:"utility"`
	VORP             float64  `json:"vorp"`
	ScarcityScore    float64  `json:"scarcity_score"`
	NeedScore        float64  `json:"need_score"`
	AvailabilityRisk float64  `json:"availability_risk"`
	Rationale        string   `json:"rationale"`
}

// AdviceMode selects between the two query modes of the bot utility model.
type AdviceMode string

const (
	AdviceDeterministic AdviceMode = "deterministic"
	AdviceStochastic    AdviceMode = "stochastic"
)

// AvailabilityForecast reports, per undrafted player, the probability of
// surviving until the target team's next turn.
type AvailabilityForecast struct {
	TeamID          int                `json:"team_id"`
	NextPickIndex   int                `json:"next_pick_index"`
	PicksUntilTurn  int                `json:"picks_until_turn"`
	Trials          int                `json:"trials"`
	Probabilities   map[string]float64 `json:"probabilities"`
	LikelyAvailable []string           `json:"likely_available"`
}
