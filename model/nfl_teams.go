package model

import (
	"fmt"
	"strings"
)

// NFLTeam identifies the NFL club a fantasy player belongs to. Free agents
// and team defenses without projection data resolve to TEAM_FA.
type NFLTeam struct {
	code   string
	loc    string
	mascot string
}

func (t *NFLTeam) String() string {
	return t.code
}

func (t *NFLTeam) Code() string {
	return t.code
}

// MarshalText/UnmarshalText carry the team code over JSON, so API payloads
// read "PHI" rather than an opaque struct.
func (t *NFLTeam) MarshalText() ([]byte, error) {
	return []byte(t.code), nil
}

func (t *NFLTeam) UnmarshalText(text []byte) error {
	*t = *ParseTeam(string(text))
	return nil
}

func (t *NFLTeam) Friendly() string {
	if t.loc == "" {
		return t.code
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

var (
	TEAM_FA = &NFLTeam{code: "FA"}

	// NFC
	TEAM_ARI = &NFLTeam{code: "ARI", loc: "Arizona", mascot: "Cardinals"}
	TEAM_ATL = &NFLTeam{code: "ATL", loc: "Atlanta", mascot: "Falcons"}
	TEAM_CAR = &NFLTeam{code: "CAR", loc: "Carolina", mascot: "Panthers"}
	TEAM_CHI = &NFLTeam{code: "CHI", loc: "Chicago", mascot: "Bears"}
	TEAM_DAL = &NFLTeam{code: "DAL", loc: "Dallas", mascot: "Cowboys"}
	TEAM_DET = &NFLTeam{code: "DET", loc: "Detroit", mascot: "Lions"}
	TEAM_GB  = &NFLTeam{code: "GB", loc: "Green Bay", mascot: "Packers"}
	TEAM_LAR = &NFLTeam{code: "LAR", loc: "Los Angeles", mascot: "Rams"}
	TEAM_MIN = &NFLTeam{code: "MIN", loc: "Minnesota", mascot: "Vikings"}
	TEAM_NO  = &NFLTeam{code: "NO", loc: "New Orleans", mascot: "Saints"}
	TEAM_NYG = &NFLTeam{code: "NYG", loc: "New York", mascot: "Giants"}
	TEAM_PHI = &NFLTeam{code: "PHI", loc: "Philadelphia", mascot: "Eagles"}
	TEAM_SF  = &NFLTeam{code: "SF", loc: "San Francisco", mascot: "49ers"}
	TEAM_SEA = &NFLTeam{code: "SEA", loc: "Seattle", mascot: "Seahawks"}
	TEAM_TB  = &NFLTeam{code: "TB", loc: "Tampa Bay", mascot: "Buccaneers"}
	TEAM_WAS = &NFLTeam{code: "WAS", loc: "Washington", mascot: "Commanders"}

	// AFC
	TEAM_BAL = &NFLTeam{code: "BAL", loc: "Baltimore", mascot: "Ravens"}
	TEAM_BUF = &NFLTeam{code: "BUF", loc: "Buffalo", mascot: "Bills"}
	TEAM_CIN = &NFLTeam{code: "CIN", loc: "Cincinnati", mascot: "Bengals"}
	TEAM_CLE = &NFLTeam{code: "CLE", loc: "Cleveland", mascot: "Browns"}
	TEAM_DEN = &NFLTeam{code: "DEN", loc: "Denver", mascot: "Broncos"}
	TEAM_HOU = &NFLTeam{code: "HOU", loc: "Houston", mascot: "Texans"}
	TEAM_IND = &NFLTeam{code: "IND", loc: "Indianapolis", mascot: "Colts"}
	TEAM_JAX = &NFLTeam{code: "JAX", loc: "Jacksonville", mascot: "Jaguars"}
	TEAM_KC  = &NFLTeam{code: "KC", loc: "Kansas City", mascot: "Chiefs"}
	TEAM_LV  = &NFLTeam{code: "LV", loc: "Las Vegas", mascot: "Raiders"}
	TEAM_LAC = &NFLTeam{code: "LAC", loc: "Los Angeles", mascot: "Chargers"}
	TEAM_MIA = &NFLTeam{code: "MIA", loc: "Miami", mascot: "Dolphins"}
	TEAM_NE  = &NFLTeam{code: "NE", loc: "New England", mascot: "Patriots"}
	TEAM_NYJ = &NFLTeam{code: "NYJ", loc: "New York", mascot: "Jets"}
	TEAM_PIT = &NFLTeam{code: "PIT", loc: "Pittsburgh", mascot: "Steelers"}
	TEAM_TEN = &NFLTeam{code: "TEN", loc: "Tennessee", mascot: "Titans"}

	teamMap = buildTeamMap()
)

// ParseTeam resolves a team by code, location, or mascot. Unknown names
// resolve to TEAM_FA rather than failing, matching how projection feeds
// handle players between clubs.
func ParseTeam(name string) *NFLTeam {
	t := teamMap[strings.ToLower(strings.TrimSpace(name))]
	if t == nil {
		return TEAM_FA
	}
	return t
}

func buildTeamMap() map[string]*NFLTeam {
	teams := []*NFLTeam{
		TEAM_ARI, TEAM_ATL, TEAM_CAR, TEAM_CHI, TEAM_DAL, TEAM_DET, TEAM_GB, TEAM_LAR,
		TEAM_MIN, TEAM_NO, TEAM_NYG, TEAM_PHI, TEAM_SF, TEAM_SEA, TEAM_TB, TEAM_WAS,
		TEAM_BAL, TEAM_BUF, TEAM_CIN, TEAM_CLE, TEAM_DEN, TEAM_HOU, TEAM_IND, TEAM_JAX,
		TEAM_KC, TEAM_LV, TEAM_LAC, TEAM_MIA, TEAM_NE, TEAM_NYJ, TEAM_PIT, TEAM_TEN,
		TEAM_FA,
	}

	m := make(map[string]*NFLTeam)
	for _, t := range teams {
		m[strings.ToLower(t.code)] = t
		if t.loc != "" {
			m[strings.ToLower(t.loc)] = t
		}
		if t.mascot != "" {
			m[strings.ToLower(t.mascot)] = t
		}
	}
	return m
}
