package draft

import (
	"sync"

	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/rs/zerolog/log"

	"github.com/papapp1293/FantasyFootballDraftHelper/engine"
	"github.com/papapp1293/FantasyFootballDraftHelper/model"
)

// Registry holds every live session in memory, keyed by session id.
// Sessions are in-memory only; completed drafts are persisted separately.
type Registry struct {
	mu       sync.RWMutex
	clock    clock.Clock
	sessions map[string]*Session
}

func NewRegistry(clk clock.Clock) *Registry {
	return &Registry{
		clock:    clk,
		sessions: make(map[string]*Session),
	}
}

// Create builds and registers a new session with a generated id.
func (r *Registry) Create(cfg model.LeagueConfig, pool []*model.Player, engCfg engine.Config) (*Session, error) {
	s, err := NewSession(uuid.NewString(), cfg, pool, engCfg, r.clock)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()

	log.Info().
		Str("session_id", s.ID()).
		Int("teams", cfg.TeamCount).
		Int("pool", len(pool)).
		Msg("draft session created")
	return s, nil
}

func (r *Registry) Get(id string) (*Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Remove drops a session from the registry. Removing an unknown id is a
// no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// List returns the ids of every registered session.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	return ids
}
