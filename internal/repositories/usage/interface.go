package usage

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/RubenJ01/MiloBot/internal/repositories/usage Repository

// Repository defines the interface for command usage accounting
type Repository interface {
	// IncrementUsage adds one to the invocation counter for a command
	IncrementUsage(ctx context.Context, input *IncrementUsageInput) error

	// GetUsage retrieves the invocation counter for a command
	GetUsage(ctx context.Context, input *GetUsageInput) (*GetUsageOutput, error)

	// GetAllUsage retrieves every command counter
	GetAllUsage(ctx context.Context) (*GetAllUsageOutput, error)
}
