package model

// UtilityWeights are the learned coefficients of the bot's linear utility
// over the candidate feature set. They are produced by the offline
// Plackett-Luce calibration job and read-only during live drafts.
type UtilityWeights struct {
	Value            float64 `yaml:"value" json:"value"`
	Scarcity         float64 `yaml:"scarcity" json:"scarcity"`
	Need             float64 `yaml:"need" json:"need"`
	AvailabilityRisk float64 `yaml:"availability_risk" json:"availability_risk"`
}

// DefaultUtilityWeights are used before any calibration has run. They weight
// value most heavily with moderate scarcity and need influence, roughly what
// an uncalibrated drafter does.
func DefaultUtilityWeights() UtilityWeights {
	return UtilityWeights{
		Value:            1.0,
		Scarcity:         0.5,
		Need:             0.8,
		AvailabilityRisk: 0.6,
	}
}
