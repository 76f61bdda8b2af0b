package engine

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"github.com/rs/zerolog/log"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// SeasonSimulator is an independent Monte Carlo engine over completed
// rosters. It never depends on the draft state machine.
type SeasonSimulator struct {
	cfg Config
}

func NewSeasonSimulator(cfg Config) *SeasonSimulator {
	return &SeasonSimulator{cfg: cfg}
}

type seasonRecord struct {
	wins    int
	points  float64
	against float64
}

// Simulate runs trials full seasons: weekly scores are sampled from each
// team's distribution, matchups resolved by higher score, standings ranked
// by wins then points, and a single-elimination bracket crowns a champion.
// Statistical edge cases degrade rather than fail: zero variance means
// deterministic scores, and fewer teams than seeds shrinks the bracket.
func (s *SeasonSimulator) Simulate(ctx context.Context, teams []model.TeamProjection,
	sched model.Schedule, format model.PlayoffFormat, trials int, seed int64) (*model.SeasonSummary, error) {

	if len(teams) < 2 {
		return nil, fmt.Errorf("season simulation needs at least 2 teams, got %d", len(teams))
	}
	if trials <= 0 {
		trials = s.cfg.SeasonTrials
	}
	weeks := sched.Weeks
	if weeks <= 0 {
		weeks = s.cfg.SeasonWeeks
	}
	seeds := format.Seeds
	if seeds <= 0 {
		seeds = s.cfg.PlayoffSeeds
	}
	if seeds > len(teams) {
		seeds = len(teams)
	}

	matchups := sched.Matchups
	if len(matchups) == 0 {
		matchups = roundRobin(teams, weeks)
	} else {
		ids := make(map[int]bool, len(teams))
		for _, t := range teams {
			ids[t.TeamID] = true
		}
		for _, m := range matchups {
			if m.Week < 1 || m.Week > weeks {
				return nil, fmt.Errorf("matchup week %d outside the %d-week season", m.Week, weeks)
			}
			if !ids[m.TeamA] || !ids[m.TeamB] {
				return nil, fmt.Errorf("matchup week %d references an unknown team (%d vs %d)", m.Week, m.TeamA, m.TeamB)
			}
			if m.TeamA == m.TeamB {
				return nil, fmt.Errorf("matchup week %d pairs team %d against itself", m.Week, m.TeamA)
			}
		}
	}

	rng := rand.New(rand.NewSource(seed))

	type agg struct {
		wins, points, against float64
		playoffs, titles      int
	}
	totals := make(map[int]*agg, len(teams))
	for _, t := range teams {
		totals[t.TeamID] = &agg{}
	}

	// Playoff rounds need score samples past the regular season.
	playoffWeeks := 0
	for n := seeds; n > 1; n = (n + 1) / 2 {
		playoffWeeks++
	}

	for trial := 0; trial < trials; trial++ {
		if trial%64 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		scores := sampleScores(rng, teams, weeks+playoffWeeks)
		records := playRegularSeason(teams, matchups, scores)
		seeded := standings(teams, records)[:seeds]

		for _, teamID := range seeded {
			totals[teamID].playoffs++
		}
		champion := playBracket(seeded, scores, weeks)
		totals[champion].titles++

		for _, t := range teams {
			r := records[t.TeamID]
			totals[t.TeamID].wins += float64(r.wins)
			totals[t.TeamID].points += r.points
			totals[t.TeamID].against += r.against
		}
	}

	gamesPerTeam := countGames(teams, matchups)
	summary := &model.SeasonSummary{
		Trials:   trials,
		Weeks:    weeks,
		Playoffs: model.PlayoffFormat{Seeds: seeds},
	}
	var avgWins []float64
	for _, t := range teams {
		a := totals[t.TeamID]
		n := float64(trials)
		out := model.TeamOutcome{
			TeamID:           t.TeamID,
			Name:             t.Name,
			AvgWins:          a.wins / n,
			AvgLosses:        float64(gamesPerTeam[t.TeamID]) - a.wins/n,
			AvgPointsFor:     a.points / n,
			AvgPointsAgainst: a.against / n,
			PlayoffOdds:      float64(a.playoffs) / n,
			ChampionshipOdds: float64(a.titles) / n,
		}
		summary.Teams = append(summary.Teams, out)
		avgWins = append(avgWins, out.AvgWins)
	}
	slices.SortFunc(summary.Teams, func(a, b model.TeamOutcome) int {
		switch {
		case a.ChampionshipOdds > b.ChampionshipOdds:
			return -1
		case a.ChampionshipOdds < b.ChampionshipOdds:
			return 1
		default:
			return a.TeamID - b.TeamID
		}
	})
	summary.ParityScore = parityScore(avgWins, weeks)

	log.Debug().
		Int("teams", len(teams)).
		Int("trials", trials).
		Float64("parity", summary.ParityScore).
		Msg("season simulation complete")
	return summary, nil
}

// sampleScores draws every team's weekly score. Zero or negative variance
// degrades to the deterministic mean.
func sampleScores(rng *rand.Rand, teams []model.TeamProjection, weeks int) map[int][]float64 {
	scores := make(map[int][]float64, len(teams))
	for _, t := range teams {
		ws := make([]float64, weeks)
		for w := range ws {
			if t.WeeklyStd > 0 {
				ws[w] = t.WeeklyMean + rng.NormFloat64()*t.WeeklyStd
				if ws[w] < 0 {
					ws[w] = 0
				}
			} else {
				ws[w] = t.WeeklyMean
			}
		}
		scores[t.TeamID] = ws
	}
	return scores
}

func playRegularSeason(teams []model.TeamProjection, matchups []model.ScheduledMatchup,
	scores map[int][]float64) map[int]*seasonRecord {

	records := make(map[int]*seasonRecord, len(teams))
	for _, t := range teams {
		records[t.TeamID] = &seasonRecord{}
	}

	for _, m := range matchups {
		a := scores[m.TeamA][m.Week-1]
		b := scores[m.TeamB][m.Week-1]

		records[m.TeamA].points += a
		records[m.TeamA].against += b
		records[m.TeamB].points += b
		records[m.TeamB].against += a

		if a >= b {
			records[m.TeamA].wins++
		} else {
			records[m.TeamB].wins++
		}
	}
	return records
}

// standings ranks team ids by wins, then total points.
func standings(teams []model.TeamProjection, records map[int]*seasonRecord) []int {
	ids := make([]int, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.TeamID)
	}
	slices.SortFunc(ids, func(a, b int) int {
		ra, rb := records[a], records[b]
		if ra.wins != rb.wins {
			return rb.wins - ra.wins
		}
		switch {
		case ra.points > rb.points:
			return -1
		case ra.points < rb.points:
			return 1
		default:
			return a - b
		}
	})
	return ids
}

// playBracket resolves single-elimination seeding. With 6 seeds the top two
// get first-round byes; other sizes pair best remaining against worst.
func playBracket(seeded []int, scores map[int][]float64, regularWeeks int) int {
	week := regularWeeks // 0-based index of the first playoff week's sample

	alive := append([]int(nil), seeded...)
	if len(alive) == 6 {
		// Wild card: 3v6 and 4v5, top two seeds rest.
		w1 := winner(alive[2], alive[5], scores, week)
		w2 := winner(alive[3], alive[4], scores, week)
		alive = []int{alive[0], alive[1], w1, w2}
		week++
	}

	for len(alive) > 1 {
		var next []int
		for i := 0; i < len(alive)/2; i++ {
			next = append(next, winner(alive[i], alive[len(alive)-1-i], scores, week))
		}
		if len(alive)%2 == 1 {
			next = append(next, alive[len(alive)/2])
		}
		alive = next
		week++
	}
	return alive[0]
}

func winner(a, b int, scores map[int][]float64, week int) int {
	sa, sb := playoffScore(scores[a], week), playoffScore(scores[b], week)
	if sa >= sb {
		return a
	}
	return b
}

func playoffScore(ws []float64, week int) float64 {
	if week < len(ws) {
		return ws[week]
	}
	return ws[len(ws)-1]
}

// roundRobin builds a rotating schedule using the circle method. Odd team
// counts give one team a bye each week (the bye pairing is dropped).
func roundRobin(teams []model.TeamProjection, weeks int) []model.ScheduledMatchup {
	ids := make([]int, 0, len(teams))
	for _, t := range teams {
		ids = append(ids, t.TeamID)
	}
	const bye = -1
	if len(ids)%2 == 1 {
		ids = append(ids, bye)
	}
	n := len(ids)

	var matchups []model.ScheduledMatchup
	for w := 1; w <= weeks; w++ {
		for i := 0; i < n/2; i++ {
			a, b := ids[i], ids[n-1-i]
			if a != bye && b != bye {
				matchups = append(matchups, model.ScheduledMatchup{Week: w, TeamA: a, TeamB: b})
			}
		}
		// Rotate all but the first entry.
		last := ids[n-1]
		copy(ids[2:], ids[1:n-1])
		ids[1] = last
	}
	return matchups
}

func countGames(teams []model.TeamProjection, matchups []model.ScheduledMatchup) map[int]int {
	games := make(map[int]int, len(teams))
	for _, m := range matchups {
		games[m.TeamA]++
		games[m.TeamB]++
	}
	return games
}

// parityScore summarizes the dispersion of average win totals: 100 means
// every team wins the same number of games, 0 means maximal spread.
func parityScore(avgWins []float64, weeks int) float64 {
	if len(avgWins) == 0 || weeks == 0 {
		return 0
	}
	sd := stdDev(avgWins)
	maxSpread := float64(weeks) / 2
	score := 100 * (1 - sd/maxSpread)
	return math.Max(0, math.Min(100, score))
}
