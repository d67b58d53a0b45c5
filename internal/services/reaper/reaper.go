// Package reaper evicts idle game sessions on a fixed schedule,
// independent of event traffic.
package reaper

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/RubenJ01/MiloBot/internal/common/clock"
	"github.com/RubenJ01/MiloBot/internal/metrics"
	"github.com/RubenJ01/MiloBot/internal/services/blackjack"
)

const (
	defaultInterval    = time.Hour
	defaultIdleTimeout = 900 * time.Second

	// Cooldown records older than this are dropped during a run
	defaultCooldownRetention = 24 * time.Hour
)

// SessionStore is the slice of the session registry the reaper needs
type SessionStore interface {
	SnapshotAll() []blackjack.Snapshot
	End(key string)
}

// CooldownSweeper drops stale cooldown records
type CooldownSweeper interface {
	Sweep(olderThan time.Duration) int
}

// Notifier delivers the per-run summary, best-effort
type Notifier interface {
	Notify(content string) error
}

// Config holds configuration for the reaper
type Config struct {
	// Sessions is the registry to scan
	Sessions SessionStore

	// Cooldowns, when set, is swept on each run
	Cooldowns CooldownSweeper

	// Notifier, when set, receives one summary per run
	Notifier Notifier

	// Clock provides the current time, defaults to the system clock
	Clock clock.Clock

	// Interval between runs, defaults to one hour
	Interval time.Duration

	// IdleTimeout is how long a session may sit untouched, defaults to
	// 900 seconds
	IdleTimeout time.Duration

	// CooldownRetention is the sweep age for cooldown records
	CooldownRetention time.Duration
}

// Reaper periodically evicts sessions idle beyond the threshold
type Reaper struct {
	sessions          SessionStore
	cooldowns         CooldownSweeper
	notifier          Notifier
	clock             clock.Clock
	interval          time.Duration
	idleTimeout       time.Duration
	cooldownRetention time.Duration
}

// New creates a new reaper
func New(cfg *Config) (*Reaper, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session store cannot be nil")
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	idleTimeout := cfg.IdleTimeout
	if idleTimeout <= 0 {
		idleTimeout = defaultIdleTimeout
	}

	retention := cfg.CooldownRetention
	if retention <= 0 {
		retention = defaultCooldownRetention
	}

	return &Reaper{
		sessions:          cfg.Sessions,
		cooldowns:         cfg.Cooldowns,
		notifier:          cfg.Notifier,
		clock:             c,
		interval:          interval,
		idleTimeout:       idleTimeout,
		cooldownRetention: retention,
	}, nil
}

// Start runs the reaper loop until the context is cancelled
func (r *Reaper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.RunOnce()
			}
		}
	}()
}

// RunOnce performs a single eviction pass and returns the number of
// sessions removed. Elapsed time is measured against the injected clock;
// timestamps produced by time.Now carry a monotonic reading, so wall-clock
// adjustments cannot skew the idle computation.
func (r *Reaper) RunOnce() int {
	log.Println("Attempting to clear idle game sessions")

	now := r.clock.Now()

	var expired []blackjack.Snapshot
	for _, snap := range r.sessions.SnapshotAll() {
		if elapsed := now.Sub(snap.LastActivity); elapsed > r.idleTimeout {
			log.Printf("Game session by %s timed out, %d seconds since last activity",
				snap.Key, int(elapsed.Seconds()))
			expired = append(expired, snap)
		}
	}

	for _, snap := range expired {
		r.sessions.End(snap.Key)
	}
	metrics.SessionsReaped.Add(float64(len(expired)))

	if len(expired) == 0 {
		log.Println("No game sessions timed out")
	} else {
		log.Printf("Removed %d idle game sessions", len(expired))
	}

	if r.cooldowns != nil {
		if swept := r.cooldowns.Sweep(r.cooldownRetention); swept > 0 {
			log.Printf("Swept %d stale cooldown records", swept)
		}
	}

	// The eviction already happened, so a failed notification only logs
	if r.notifier != nil {
		summary := fmt.Sprintf("Removed %d idle game sessions.", len(expired))
		if err := r.notifier.Notify(summary); err != nil {
			log.Printf("Failed to send reaper summary: %v", err)
		}
	}

	return len(expired)
}
