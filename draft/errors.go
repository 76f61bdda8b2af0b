package draft

import "errors"

var (
	ErrSessionNotFound   = errors.New("draft session not found")
	ErrSessionStarted    = errors.New("draft session already started")
	ErrSessionNotStarted = errors.New("draft session not started")
	ErrSessionComplete   = errors.New("draft session is complete")
	ErrTurnViolation     = errors.New("not this team's turn")
	ErrPlayerUnavailable = errors.New("player already drafted or unknown")
	ErrPoolTooSmall      = errors.New("player pool smaller than the draft")
)
