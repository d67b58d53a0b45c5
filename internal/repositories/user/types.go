package user

import "github.com/RubenJ01/MiloBot/internal/models"

// SaveUserInput contains parameters for saving a user record
type SaveUserInput struct {
	User *models.User
}

// GetUserInput contains parameters for retrieving a user record
type GetUserInput struct {
	UserID string
}

// DeleteUserInput contains parameters for removing a user record
type DeleteUserInput struct {
	UserID string
}
