package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// ChoiceObservation is one observed pick treated as the top choice among
// its simultaneously-available candidate set, per the Plackett-Luce model.
type ChoiceObservation struct {
	Features []FeatureVec // feature vector per available candidate
	Chosen   int          // index of the candidate actually picked
}

// CalibrationOptions tune the gradient-ascent fit.
type CalibrationOptions struct {
	LearningRate float64
	MaxIters     int
	Tolerance    float64 // minimum log-likelihood improvement to continue
}

func DefaultCalibrationOptions() CalibrationOptions {
	return CalibrationOptions{
		LearningRate: 0.05,
		MaxIters:     200,
		Tolerance:    1e-6,
	}
}

// IterationStat reports fit progress for one iteration.
type IterationStat struct {
	Iteration     int
	LogLikelihood float64
}

var ErrNoObservations = errors.New("no choice observations to calibrate from")

// Calibrate fits utility weights by gradient ascent on the Plackett-Luce
// log-likelihood: P(choice=i | set) = exp(u_i) / sum_j exp(u_j). The result
// is an immutable weight set consumed read-only by live sessions.
func Calibrate(obs []ChoiceObservation, opts CalibrationOptions) (model.UtilityWeights, []IterationStat, error) {
	if len(obs) == 0 {
		return model.UtilityWeights{}, nil, ErrNoObservations
	}

	w := model.DefaultUtilityWeights()
	prevLL := math.Inf(-1)
	var history []IterationStat

	for iter := 1; iter <= opts.MaxIters; iter++ {
		ll, grad := evaluate(w, obs)
		history = append(history, IterationStat{Iteration: iter, LogLikelihood: ll})

		log.Debug().
			Int("iteration", iter).
			Float64("log_likelihood", ll).
			Msg("calibration iteration")

		if ll-prevLL < opts.Tolerance && iter > 1 {
			break
		}
		prevLL = ll

		scale := opts.LearningRate / float64(len(obs))
		w.Value += scale * grad.Value
		w.Scarcity += scale * grad.Scarcity
		w.Need += scale * grad.Need
		w.AvailabilityRisk += scale * grad.Risk
	}

	log.Info().
		Int("observations", len(obs)).
		Int("iterations", len(history)).
		Float64("final_log_likelihood", history[len(history)-1].LogLikelihood).
		Msg("calibration complete")
	return w, history, nil
}

// evaluate returns the total log-likelihood and its gradient: for each
// observation, the chosen candidate's features minus the softmax-expected
// features of the available set.
func evaluate(w model.UtilityWeights, obs []ChoiceObservation) (float64, FeatureVec) {
	var ll float64
	var grad FeatureVec

	for _, o := range obs {
		utils := make([]float64, len(o.Features))
		maxU := math.Inf(-1)
		for i, f := range o.Features {
			utils[i] = Utility(w, f)
			if utils[i] > maxU {
				maxU = utils[i]
			}
		}

		var z float64
		probs := make([]float64, len(utils))
		for i, u := range utils {
			probs[i] = math.Exp(u - maxU)
			z += probs[i]
		}

		var expected FeatureVec
		for i := range probs {
			probs[i] /= z
			expected.Value += probs[i] * o.Features[i].Value
			expected.Scarcity += probs[i] * o.Features[i].Scarcity
			expected.Need += probs[i] * o.Features[i].Need
			expected.Risk += probs[i] * o.Features[i].Risk
		}

		ll += math.Log(probs[o.Chosen])
		chosen := o.Features[o.Chosen]
		grad.Value += chosen.Value - expected.Value
		grad.Scarcity += chosen.Scarcity - expected.Scarcity
		grad.Need += chosen.Need - expected.Need
		grad.Risk += chosen.Risk - expected.Risk
	}
	return ll, grad
}

// BuildObservations replays completed drafts against the player pool and
// reconstructs the candidate set and feature vectors that were in front of
// each pick. The replay uses the same feature pipeline as live scoring, so
// the fitted weights transfer directly.
func BuildObservations(drafts []model.CompletedDraft, pool []*model.Player, cfg Config) ([]ChoiceObservation, error) {
	bot := NewBot(model.DefaultUtilityWeights(), cfg) // Features depends only on cfg, not weights

	players := make(map[string]*model.Player, len(pool))
	for _, p := range pool {
		players[p.ID] = p
	}

	var obs []ChoiceObservation
	for _, d := range drafts {
		if err := d.Config.Validate(); err != nil {
			return nil, fmt.Errorf("draft %s: %w", d.SessionID, err)
		}

		order := SnakeOrder(d.Config.TeamCount, d.Config.RosterSize, d.Config.Snake)
		rosters := make(map[int]*model.RosterState, d.Config.TeamCount)
		for id := 1; id <= d.Config.TeamCount; id++ {
			rosters[id] = &model.RosterState{
				TeamID:     id,
				Counts:     make(map[model.Position]int),
				NeedScores: make(map[model.Position]float64),
			}
		}
		st := NewSimState(d.Config, order, 0, append([]*model.Player(nil), pool...), rosters, cfg)

		for _, pick := range d.Picks {
			if _, known := players[pick.PlayerID]; !known {
				// Player missing from today's pool: no observation, but the
				// pick still consumed a turn, so the replay must advance.
				st.ApplyPick(pick.PlayerID, cfg)
				continue
			}

			candidates := SortByProjection(st.Remaining, d.Config.ScoringMode)
			if len(candidates) > cfg.CandidatePool {
				candidates = candidates[:cfg.CandidatePool]
			}

			roster := st.Rosters[pick.TeamID]
			nextPick, ok := st.NextPickIndex(pick.TeamID)
			if !ok {
				nextPick = st.CurrentPick
			}

			o := ChoiceObservation{Chosen: -1}
			for i, c := range candidates {
				o.Features = append(o.Features, bot.Features(c, st, roster, nextPick))
				if c.ID == pick.PlayerID {
					o.Chosen = i
				}
			}
			if o.Chosen >= 0 && len(o.Features) > 1 {
				obs = append(obs, o)
			}

			st.ApplyPick(pick.PlayerID, cfg)
		}
	}
	return obs, nil
}
