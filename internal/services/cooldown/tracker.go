package cooldown

import (
	"errors"
	"sync"
	"time"

	"github.com/RubenJ01/MiloBot/internal/common/clock"
)

// recordKey identifies one (user, command) cooldown record
type recordKey struct {
	userID  string
	command string
}

// Config holds configuration for the cooldown tracker
type Config struct {
	// Clock provides the current time, defaults to the system clock
	Clock clock.Clock
}

// Tracker enforces a minimum interval between invocations of the same
// command by the same user. Check-and-record is atomic: the whole ledger is
// guarded by one lock, and critical sections are a map lookup plus a store.
type Tracker struct {
	clock clock.Clock

	mu      sync.Mutex
	records map[recordKey]time.Time
}

// New creates a new cooldown tracker
func New(cfg *Config) (*Tracker, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	return &Tracker{
		clock:   c,
		records: make(map[recordKey]time.Time),
	}, nil
}

// Check performs an atomic check-and-record for one invocation. If the user
// is off cooldown the invocation time is recorded and allowed is true.
// Otherwise allowed is false, remaining holds the wait left, and the record
// is untouched so repeated denied attempts do not reset the window.
func (t *Tracker) Check(userID, commandName string, cooldown time.Duration) (allowed bool, remaining time.Duration) {
	if cooldown <= 0 {
		return true, 0
	}

	key := recordKey{userID: userID, command: commandName}
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	last, ok := t.records[key]
	if ok {
		elapsed := now.Sub(last)
		if elapsed < cooldown {
			return false, cooldown - elapsed
		}
	}

	t.records[key] = now
	return true, 0
}

// Sweep drops records older than the given age and returns how many were
// removed. The ledger would otherwise grow without bound over the process
// lifetime.
func (t *Tracker) Sweep(olderThan time.Duration) int {
	now := t.clock.Now()

	t.mu.Lock()
	defer t.mu.Unlock()

	removed := 0
	for key, last := range t.records {
		if now.Sub(last) > olderThan {
			delete(t.records, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of records in the ledger
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}
