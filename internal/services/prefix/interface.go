package prefix

import "context"

// Service defines the interface for guild prefix resolution
type Service interface {
	// GetPrefix returns the command prefix for a guild, falling back to
	// the configured default when nothing is persisted
	GetPrefix(ctx context.Context, guildID string) string

	// SetPrefix validates and persists a new prefix for a guild
	SetPrefix(ctx context.Context, guildID, newPrefix string) error

	// RemoveGuild drops the cached and persisted prefix for a guild
	RemoveGuild(ctx context.Context, guildID string) error

	// WarmUp preloads the cache for the given guilds, persisting the
	// default prefix for guilds seen for the first time
	WarmUp(ctx context.Context, guildIDs []string) error
}
