package user

import (
	"context"

	"github.com/RubenJ01/MiloBot/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/RubenJ01/MiloBot/internal/repositories/user Repository

// Repository defines the interface for user record persistence
type Repository interface {
	// SaveUser persists a user record
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user record by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// DeleteUser removes a user record
	DeleteUser(ctx context.Context, input *DeleteUserInput) error
}
