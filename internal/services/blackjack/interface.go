package blackjack

import "context"

// Service defines the interface for blackjack game operations
type Service interface {
	// StartGame opens a new table for a player and deals the opening hands
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// Hit draws a card for the player
	Hit(ctx context.Context, input *HitInput) (*HitOutput, error)

	// Stand ends the player's turn, plays out the dealer and settles the bet
	Stand(ctx context.Context, input *StandInput) (*StandOutput, error)

	// GetGame returns the current state of a player's table
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
}
