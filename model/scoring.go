package model

import (
	"fmt"
	"strings"
)

type ScoringMode string

const (
	ScoringPPR      ScoringMode = "ppr"
	ScoringHalfPPR  ScoringMode = "half_ppr"
	ScoringStandard ScoringMode = "standard"
)

func ParseScoringMode(s string) (ScoringMode, error) {
	switch strings.ToLower(s) {
	case "ppr", "":
		return ScoringPPR, nil
	case "half_ppr", "half-ppr", "half":
		return ScoringHalfPPR, nil
	case "standard", "std":
		return ScoringStandard, nil
	default:
		return "", fmt.Errorf("unknown scoring mode: %s", s)
	}
}
