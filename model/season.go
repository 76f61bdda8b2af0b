package model

// TeamProjection is the season simulator's input for one fantasy team: the
// weekly scoring distribution derived from its final roster.
type TeamProjection struct {
	TeamID     int     `json:"team_id"`
	Name       string  `json:"name,omitempty"`
	WeeklyMean float64 `json:"weekly_mean"`
	WeeklyStd  float64 `json:"weekly_std"`
}

// ScheduledMatchup pairs two teams in a given regular-season week.
type ScheduledMatchup struct {
	Week  int `json:"week"`
	TeamA int `json:"team_a"`
	TeamB int `json:"team_b"`
}

// Schedule describes the regular season. An empty Matchups list means the
// simulator generates a rotating round-robin itself.
type Schedule struct {
	Weeks    int                `json:"weeks"`
	Matchups []ScheduledMatchup `json:"matchups,omitempty"`
}

// PlayoffFormat configures the end-of-season bracket. Seeds of 6 gives the
// top two seeds first-round byes; 4 is a plain two-round bracket; 2 is a
// single championship game.
type PlayoffFormat struct {
	Seeds int `json:"seeds"`
}

// TeamOutcome aggregates one team's results across season trials.
type TeamOutcome struct {
	TeamID           int     `json:"team_id"`
	Name             string  `json:"name,omitempty"`
	AvgWins          float64 `json:"avg_wins"`
	AvgLosses        float64 `json:"avg_losses"`
	AvgPointsFor     float64 `json:"avg_points_for"`
	AvgPointsAgainst float64 `json:"avg_points_against"`
	PlayoffOdds      float64 `json:"playoff_odds"`      // fraction of trials in [0,1]
	ChampionshipOdds float64 `json:"championship_odds"` // fraction of trials in [0,1]
}

// SeasonSummary is the aggregate over all Monte Carlo trials.
type SeasonSummary struct {
	Trials      int           `json:"trials"`
	Weeks       int           `json:"weeks"`
	Playoffs    PlayoffFormat `json:"playoffs"`
	Teams       []TeamOutcome `json:"teams"` // sorted by championship odds descending
	ParityScore float64       `json:"parity_score"` // [0,100], higher means more parity
}
