package model

import (
	"strings"
)

type Position string

const (
	POS_UNKNOWN Position = "UNK"
	POS_QB      Position = "QB"
	POS_RB      Position = "RB"
	POS_WR      Position = "WR"
	POS_TE      Position = "TE"
	POS_K       Position = "K"
	POS_DEF     Position = "DEF"
)

// AllPositions lists every draftable position. The order is stable and is
// used when iterating maps keyed by position so output stays deterministic.
var AllPositions = []Position{POS_QB, POS_RB, POS_WR, POS_TE, POS_K, POS_DEF}

// FlexPositions are the positions eligible to fill a FLEX roster slot.
var FlexPositions = []Position{POS_RB, POS_WR, POS_TE}

func ParsePosition(pos string) Position {
	pos = strings.ToLower(pos)
	switch pos {
	case "qb":
		return POS_QB
	case "rb", "fb":
		return POS_RB
	case "wr":
		return POS_WR
	case "te":
		return POS_TE
	case "k", "pk":
		return POS_K
	case "def", "dst", "d/st":
		return POS_DEF
	default:
		return POS_UNKNOWN
	}
}

func (p Position) FlexEligible() bool {
	for _, f := range FlexPositions {
		if p == f {
			return true
		}
	}
	return false
}
