package prefix

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"unicode"

	prefixRepo "github.com/RubenJ01/MiloBot/internal/repositories/prefix"
)

// ErrInvalidPrefix is returned when a prefix is empty, contains whitespace,
// or contains non-printable characters
var ErrInvalidPrefix = errors.New("prefix must be non-empty printable text without whitespace")

// Config holds configuration for the prefix service
type Config struct {
	// Repo is the persistence collaborator for prefixes
	Repo prefixRepo.Repository

	// DefaultPrefix is used for guilds with no persisted prefix
	DefaultPrefix string
}

// service implements the Service interface. The in-memory cache is the fast
// path; the repository is the source of truth. Operations on the same guild
// are serialized through a per-guild lock.
type service struct {
	repo          prefixRepo.Repository
	defaultPrefix string

	mu    sync.RWMutex
	cache map[string]string

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

// New creates a new prefix service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Repo == nil {
		return nil, errors.New("prefix repository cannot be nil")
	}

	if err := Validate(cfg.DefaultPrefix); err != nil {
		return nil, fmt.Errorf("invalid default prefix %q: %w", cfg.DefaultPrefix, err)
	}

	return &service{
		repo:          cfg.Repo,
		defaultPrefix: cfg.DefaultPrefix,
		cache:         make(map[string]string),
		locks:         make(map[string]*sync.Mutex),
	}, nil
}

// Validate reports whether a prefix is acceptable: at least one character,
// all printable, no whitespace.
func Validate(p string) error {
	if p == "" {
		return ErrInvalidPrefix
	}
	for _, r := range p {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return ErrInvalidPrefix
		}
	}
	return nil
}

// guildLock returns the lock serializing operations for a single guild
func (s *service) guildLock(guildID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.locks[guildID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[guildID] = l
	}
	return l
}

// GetPrefix returns the prefix for a guild. Cache misses read through to the
// repository; guilds with no persisted row get the default, which is written
// through so the next lookup is a cache hit. Persistence failures degrade to
// the default prefix.
func (s *service) GetPrefix(ctx context.Context, guildID string) string {
	if guildID == "" {
		return s.defaultPrefix
	}

	s.mu.RLock()
	cached, ok := s.cache[guildID]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	l := s.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	// Another dispatch may have filled the cache while we waited
	s.mu.RLock()
	cached, ok = s.cache[guildID]
	s.mu.RUnlock()
	if ok {
		return cached
	}

	output, err := s.repo.GetPrefix(ctx, &prefixRepo.GetPrefixInput{
		GuildID: guildID,
	})
	if err == nil {
		s.setCached(guildID, output.Prefix)
		return output.Prefix
	}

	if !errors.Is(err, prefixRepo.ErrPrefixNotFound) {
		// Degrade to the default without caching so a healthy store is
		// consulted again next time
		log.Printf("Failed to read prefix for guild %s: %v", guildID, err)
		return s.defaultPrefix
	}

	// First sight of this guild: persist the default
	if err := s.repo.SetPrefix(ctx, &prefixRepo.SetPrefixInput{
		GuildID: guildID,
		Prefix:  s.defaultPrefix,
	}); err != nil {
		log.Printf("Failed to persist default prefix for guild %s: %v", guildID, err)
		return s.defaultPrefix
	}

	s.setCached(guildID, s.defaultPrefix)
	return s.defaultPrefix
}

// SetPrefix validates and persists a new prefix for a guild, then updates
// the cache. Persistence happens first so the cache never gets ahead of the
// source of truth.
func (s *service) SetPrefix(ctx context.Context, guildID, newPrefix string) error {
	if guildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	if err := Validate(newPrefix); err != nil {
		return err
	}

	l := s.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	if err := s.repo.SetPrefix(ctx, &prefixRepo.SetPrefixInput{
		GuildID: guildID,
		Prefix:  newPrefix,
	}); err != nil {
		return fmt.Errorf("failed to persist prefix: %w", err)
	}

	s.setCached(guildID, newPrefix)
	return nil
}

// RemoveGuild evicts the cached prefix and deletes the persisted row,
// called when the bot leaves a guild
func (s *service) RemoveGuild(ctx context.Context, guildID string) error {
	if guildID == "" {
		return errors.New("guild ID cannot be empty")
	}

	l := s.guildLock(guildID)
	l.Lock()
	defer l.Unlock()

	s.mu.Lock()
	delete(s.cache, guildID)
	s.mu.Unlock()

	if err := s.repo.DeletePrefix(ctx, &prefixRepo.DeletePrefixInput{
		GuildID: guildID,
	}); err != nil {
		return fmt.Errorf("failed to delete prefix: %w", err)
	}

	return nil
}

// WarmUp bulk-loads persisted prefixes for the given guilds and persists the
// default for guilds without a row yet
func (s *service) WarmUp(ctx context.Context, guildIDs []string) error {
	output, err := s.repo.GetAllPrefixes(ctx)
	if err != nil {
		return fmt.Errorf("failed to load prefixes: %w", err)
	}

	for _, guildID := range guildIDs {
		if p, ok := output.Prefixes[guildID]; ok {
			s.setCached(guildID, p)
			continue
		}

		log.Printf("Guild %s does not have a configured prefix", guildID)
		if err := s.repo.SetPrefix(ctx, &prefixRepo.SetPrefixInput{
			GuildID: guildID,
			Prefix:  s.defaultPrefix,
		}); err != nil {
			log.Printf("Failed to persist default prefix for guild %s: %v", guildID, err)
			continue
		}
		s.setCached(guildID, s.defaultPrefix)
	}

	return nil
}

func (s *service) setCached(guildID, p string) {
	s.mu.Lock()
	s.cache[guildID] = p
	s.mu.Unlock()
}
