package model

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid league configuration")

// LeagueConfig is the roster-shape and draft configuration a session is
// created with. It comes from the surrounding service layer and is treated
// as read-only by the engine.
type LeagueConfig struct {
	TeamCount   int         `yaml:"team_count" json:"team_count"`
	UserSlot    int         `yaml:"user_slot" json:"user_slot"` // 1-based draft slot of the human team
	Snake       bool        `yaml:"snake" json:"snake"`
	ScoringMode ScoringMode `yaml:"scoring_mode" json:"scoring_mode"`
	RosterSize  int         `yaml:"roster_size" json:"roster_size"`

	// Starting lineup slots per position, plus dedicated FLEX slots filled
	// by RB/WR/TE.
	Starters  map[Position]int `yaml:"starters" json:"starters"`
	FlexSlots int              `yaml:"flex_slots" json:"flex_slots"`

	// FlexShare apportions FLEX slots across eligible positions based on
	// historical flex usage. Values should sum to roughly 1.
	FlexShare map[Position]float64 `yaml:"flex_share" json:"flex_share"`
}

// DefaultLeagueConfig mirrors a standard 12-team PPR league:
// QB/2RB/2WR/TE/FLEX/K/DEF starters with a 16-man roster.
func DefaultLeagueConfig() LeagueConfig {
	return LeagueConfig{
		TeamCount:   12,
		UserSlot:    1,
		Snake:       true,
		ScoringMode: ScoringPPR,
		RosterSize:  16,
		Starters: map[Position]int{
			POS_QB:  1,
			POS_RB:  2,
			POS_WR:  2,
			POS_TE:  1,
			POS_K:   1,
			POS_DEF: 1,
		},
		FlexSlots: 1,
		FlexShare: map[Position]float64{
			POS_RB: 0.45,
			POS_WR: 0.45,
			POS_TE: 0.10,
		},
	}
}

func (c *LeagueConfig) Validate() error {
	if c.TeamCount < 2 || c.TeamCount > 16 {
		return fmt.Errorf("%w: team count %d out of range [2,16]", ErrInvalidConfig, c.TeamCount)
	}
	if c.UserSlot < 1 || c.UserSlot > c.TeamCount {
		return fmt.Errorf("%w: user slot %d out of range [1,%d]", ErrInvalidConfig, c.UserSlot, c.TeamCount)
	}
	if c.RosterSize < 1 {
		return fmt.Errorf("%w: roster size %d", ErrInvalidConfig, c.RosterSize)
	}
	if c.ScoringMode == "" {
		return fmt.Errorf("%w: scoring mode is required", ErrInvalidConfig)
	}
	starters := c.FlexSlots
	for _, n := range c.Starters {
		starters += n
	}
	if starters > c.RosterSize {
		return fmt.Errorf("%w: %d starting slots exceed roster size %d", ErrInvalidConfig, starters, c.RosterSize)
	}
	return nil
}

// StarterCount returns the number of dedicated starting slots at a position.
func (c *LeagueConfig) StarterCount(pos Position) int {
	return c.Starters[pos]
}

// TotalPicks is the number of picks in a complete draft.
func (c *LeagueConfig) TotalPicks() int {
	return c.TeamCount * c.RosterSize
}
