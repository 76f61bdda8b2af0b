package engine

import (
	"context"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// Forecaster estimates, per undrafted player, the probability of surviving
// until a target team's next turn by running disposable Monte Carlo trials
// against frozen copies of the draft state.
type Forecaster struct {
	bot *Bot
	cfg Config
}

func NewForecaster(bot *Bot, cfg Config) *Forecaster {
	return &Forecaster{bot: bot, cfg: cfg}
}

// Forecast runs trials independent simulations. Each trial clones the
// snapshot and lets the bot model play every intervening pick up to (not
// including) the target team's next turn. The live session is never touched;
// cancellation is honored between trials.
func (f *Forecaster) Forecast(ctx context.Context, st *SimState, teamID, trials int, seed int64) (*model.AvailabilityForecast, error) {
	if trials <= 0 {
		trials = f.cfg.ForecastTrials
	}

	nextPick, ok := st.NextPickIndex(teamID)
	if !ok {
		// Team has no remaining turn; everything still on the board is
		// trivially "available" at a turn that never comes.
		return &model.AvailabilityForecast{
			TeamID:        teamID,
			NextPickIndex: len(st.Order),
			Trials:        0,
			Probabilities: map[string]float64{},
		}, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > trials {
		workers = trials
	}

	// Per-worker survival counts, merged at the end. Trials are independent
	// and share nothing but the read-only snapshot.
	counts := make([]map[string]int, workers)
	completed := make([]int, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		share := trials / workers
		if w < trials%workers {
			share++
		}

		wg.Add(1)
		go func(w, share int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed + int64(w)))
			local := make(map[string]int)

			for t := 0; t < share; t++ {
				if ctx.Err() != nil {
					break
				}
				trial := st.Clone()
				f.runTrial(rng, trial, nextPick)
				for _, p := range trial.Remaining {
					local[p.ID]++
				}
				completed[w]++
			}
			counts[w] = local
		}(w, share)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ran := 0
	for _, c := range completed {
		ran += c
	}
	survived := make(map[string]int)
	for _, local := range counts {
		for id, n := range local {
			survived[id] += n
		}
	}

	out := &model.AvailabilityForecast{
		TeamID:         teamID,
		NextPickIndex:  nextPick,
		PicksUntilTurn: nextPick - st.CurrentPick,
		Trials:         ran,
		Probabilities:  make(map[string]float64, len(st.Remaining)),
	}
	for _, p := range st.Remaining {
		prob := 0.0
		if ran > 0 {
			prob = float64(survived[p.ID]) / float64(ran)
		}
		out.Probabilities[p.ID] = prob
		if prob >= f.cfg.AvailabilityThreshold {
			out.LikelyAvailable = append(out.LikelyAvailable, p.ID)
		}
	}
	sort.Strings(out.LikelyAvailable)

	log.Debug().
		Int("team_id", teamID).
		Int("trials", ran).
		Int("picks_until_turn", out.PicksUntilTurn).
		Int("likely_available", len(out.LikelyAvailable)).
		Msg("availability forecast complete")
	return out, nil
}

// runTrial plays bot picks from the trial's current pick up to the target
// pick index.
func (f *Forecaster) runTrial(rng *rand.Rand, trial *SimState, targetPick int) {
	for trial.CurrentPick < targetPick && len(trial.Remaining) > 0 {
		c, ok := f.bot.Sample(rng, trial, trial.CurrentTeam())
		if !ok {
			return
		}
		trial.ApplyPick(c.PlayerID, f.cfg)
	}
}
