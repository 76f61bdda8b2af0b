package engine

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// Config holds the engine's tunable parameters. The tier-break thresholds and
// scarcity weights are empirically tuned, not derived, so everything is
// loadable from a yaml file and falls back to defaults in code.
type Config struct {
	// Scarcity analysis.
	TierDropPct   float64 `yaml:"tier_drop_pct"`   // relative drop that declares a tier break
	GapStdDevMult float64 `yaml:"gap_stddev_mult"` // absolute-drop multiplier over gap std dev
	TopNAvgVORP   int     `yaml:"top_n_avg_vorp"`  // how many remaining players feed avg VORP
	ScarcityScale float64 `yaml:"scarcity_scale"`
	ScarcityCap   float64 `yaml:"scarcity_cap"`

	// Urgency thresholds differ by position depth: QB pools are shallow by
	// design while RB/WR run deep.
	UrgencyScore map[model.Position]float64 `yaml:"urgency_score"`
	UrgencyCount map[model.Position]int     `yaml:"urgency_count"`

	// Need scoring.
	BenchNeedWeight float64 `yaml:"bench_need_weight"`

	// Bot utility model.
	VORPScale     float64 `yaml:"vorp_scale"`     // divides raw VORP into feature range
	ADPSigma      float64 `yaml:"adp_sigma"`      // spread of the ADP availability proxy
	TopK          int     `yaml:"top_k"`          // stochastic sampling pool size
	Temperature   float64 `yaml:"temperature"`    // softmax temperature for bot picks
	CandidatePool int     `yaml:"candidate_pool"` // candidates considered per simulated pick

	// Availability forecaster.
	ForecastTrials        int     `yaml:"forecast_trials"`
	AvailabilityThreshold float64 `yaml:"availability_threshold"`

	// Season simulator.
	SeasonTrials  int                        `yaml:"season_trials"`
	SeasonWeeks   int                        `yaml:"season_weeks"`
	PlayoffSeeds  int                        `yaml:"playoff_seeds"`
	WeeklyVarCoef map[model.Position]float64 `yaml:"weekly_var_coef"`
}

// DefaultConfig returns the tuned defaults. Validate them against historical
// outcomes before trusting them for a new season's data.
func DefaultConfig() Config {
	return Config{
		TierDropPct:   0.15,
		GapStdDevMult: 1.0,
		TopNAvgVORP:   10,
		ScarcityScale: 20.0,
		ScarcityCap:   10.0,
		UrgencyScore: map[model.Position]float64{
			model.POS_QB:  2.0,
			model.POS_RB:  1.5,
			model.POS_WR:  1.5,
			model.POS_TE:  2.0,
			model.POS_K:   3.0,
			model.POS_DEF: 3.0,
		},
		UrgencyCount: map[model.Position]int{
			model.POS_QB:  8,
			model.POS_RB:  15,
			model.POS_WR:  15,
			model.POS_TE:  8,
			model.POS_K:   5,
			model.POS_DEF: 5,
		},
		BenchNeedWeight: 0.25,
		VORPScale:       10.0,
		ADPSigma:        7.0,
		TopK:            3,
		Temperature:     1.0,
		CandidatePool:   50,
		ForecastTrials:  400,

		AvailabilityThreshold: 0.60,

		SeasonTrials: 2000,
		SeasonWeeks:  14,
		PlayoffSeeds: 6,
		WeeklyVarCoef: map[model.Position]float64{
			model.POS_QB:  0.15,
			model.POS_RB:  0.25,
			model.POS_WR:  0.28,
			model.POS_TE:  0.30,
			model.POS_K:   0.35,
			model.POS_DEF: 0.40,
		},
	}
}

// LoadConfig reads a yaml config file and overlays it on the defaults, so a
// partial file only overrides what it names.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading engine config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing engine config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.TierDropPct <= 0 || c.TierDropPct >= 1 {
		return fmt.Errorf("tier_drop_pct %.3f out of range (0,1)", c.TierDropPct)
	}
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be at least 1, got %d", c.TopK)
	}
	if c.AvailabilityThreshold < 0 || c.AvailabilityThreshold > 1 {
		return fmt.Errorf("availability_threshold %.3f out of range [0,1]", c.AvailabilityThreshold)
	}
	if c.Temperature <= 0 {
		return fmt.Errorf("temperature must be positive, got %.3f", c.Temperature)
	}
	return nil
}

// LoadWeights reads a calibrated weight file produced by the offline
// calibration job. The weight set is immutable once loaded.
func LoadWeights(path string) (model.UtilityWeights, error) {
	var w model.UtilityWeights
	data, err := os.ReadFile(path)
	if err != nil {
		return w, fmt.Errorf("error reading weights file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return w, fmt.Errorf("error parsing weights file %s: %w", path, err)
	}
	return w, nil
}

// SaveWeights writes a calibrated weight set for live sessions to consume.
func SaveWeights(path string, w model.UtilityWeights) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Errorf("error marshaling weights: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing weights file %s: %w", path, err)
	}
	return nil
}
