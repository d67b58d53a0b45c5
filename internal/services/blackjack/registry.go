package blackjack

import (
	"errors"
	"sync"
	"time"

	"github.com/RubenJ01/MiloBot/internal/common/clock"
	"github.com/RubenJ01/MiloBot/internal/metrics"
	"github.com/RubenJ01/MiloBot/internal/models"
)

// entry wraps one registered session. Its mutex serializes mutations for
// that session only; mutations on different keys proceed in parallel.
type entry struct {
	mu sync.Mutex

	game         *models.BlackjackGame
	lastActivity time.Time
	ended        bool
}

// Snapshot is a point-in-time view of one registered session handed to the
// reaper. It carries no reference to the live game state.
type Snapshot struct {
	Key          string
	UserID       string
	ChannelID    string
	CreatedAt    time.Time
	LastActivity time.Time
}

// RegistryConfig holds configuration for the session registry
type RegistryConfig struct {
	// Clock provides timestamps, defaults to the system clock
	Clock clock.Clock
}

// Registry is a concurrent mapping from session key to active game state.
// It exclusively owns all registered games; callers mutate them only through
// Update.
type Registry struct {
	clock clock.Clock

	mu       sync.RWMutex
	sessions map[string]*entry
}

// NewRegistry creates an empty session registry
func NewRegistry(cfg *RegistryConfig) (*Registry, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	return &Registry{
		clock:    c,
		sessions: make(map[string]*entry),
	}, nil
}

// Start registers a new session under the given key. A key with an active
// session fails with ErrSessionAlreadyActive rather than overwriting it.
func (r *Registry) Start(key string, game *models.BlackjackGame) error {
	if key == "" || game == nil {
		return errors.New("key and game cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[key]; exists {
		return ErrSessionAlreadyActive
	}

	r.sessions[key] = &entry{
		game:         game,
		lastActivity: r.clock.Now(),
	}
	metrics.ActiveSessions.Set(float64(len(r.sessions)))

	return nil
}

// Get returns a copy of the current game state for a key
func (r *Registry) Get(key string) (*models.BlackjackGame, error) {
	r.mu.RLock()
	e, ok := r.sessions[key]
	r.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.ended {
		return nil, ErrSessionNotFound
	}

	copied := *e.game
	return &copied, nil
}

// Update applies a mutation to the session under its per-key lock and
// refreshes the last-activity timestamp. A mutator error is passed through
// and leaves the activity timestamp refreshed anyway, since the player did
// act on the session.
func (r *Registry) Update(key string, mutate func(game *models.BlackjackGame) error) error {
	r.mu.RLock()
	e, ok := r.sessions[key]
	r.mu.RUnlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	// The session may have been ended while we waited for the lock
	if e.ended {
		return ErrSessionNotFound
	}

	e.lastActivity = r.clock.Now()
	return mutate(e.game)
}

// End removes the session for a key. Ending a key with no session is a
// no-op, never an error.
func (r *Registry) End(key string) {
	r.mu.Lock()
	e, ok := r.sessions[key]
	if ok {
		delete(r.sessions, key)
	}
	metrics.ActiveSessions.Set(float64(len(r.sessions)))
	r.mu.Unlock()

	if !ok {
		return
	}

	// Serialize with any in-flight Update before marking the entry dead
	e.mu.Lock()
	e.ended = true
	e.mu.Unlock()
}

// SnapshotAll returns a point-in-time view of every session. The registry
// lock is held only long enough to copy the entry list, so concurrent
// starts and updates are not blocked while the caller iterates.
func (r *Registry) SnapshotAll() []Snapshot {
	r.mu.RLock()
	entries := make(map[string]*entry, len(r.sessions))
	for key, e := range r.sessions {
		entries[key] = e
	}
	r.mu.RUnlock()

	snapshots := make([]Snapshot, 0, len(entries))
	for key, e := range entries {
		e.mu.Lock()
		if !e.ended {
			snapshots = append(snapshots, Snapshot{
				Key:          key,
				UserID:       e.game.UserID,
				ChannelID:    e.game.ChannelID,
				CreatedAt:    e.game.CreatedAt,
				LastActivity: e.lastActivity,
			})
		}
		e.mu.Unlock()
	}

	return snapshots
}

// Len returns the number of active sessions
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
