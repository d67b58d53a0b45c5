package prefix

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/RubenJ01/MiloBot/internal/repositories/prefix Repository

// Repository defines the interface for guild prefix persistence
type Repository interface {
	// GetPrefix retrieves the prefix configured for a guild
	GetPrefix(ctx context.Context, input *GetPrefixInput) (*GetPrefixOutput, error)

	// SetPrefix persists the prefix for a guild
	SetPrefix(ctx context.Context, input *SetPrefixInput) error

	// DeletePrefix removes the persisted prefix for a guild
	DeletePrefix(ctx context.Context, input *DeletePrefixInput) error

	// GetAllPrefixes retrieves every persisted guild prefix
	GetAllPrefixes(ctx context.Context) (*GetAllPrefixesOutput, error)
}
