package blackjack

import "github.com/RubenJ01/MiloBot/internal/models"

// StartGameInput contains parameters for opening a table
type StartGameInput struct {
	UserID    string
	UserName  string
	ChannelID string
	Bet       int
}

// StartGameOutput contains the result of opening a table
type StartGameOutput struct {
	Game *models.BlackjackGame

	// Payout is the amount credited back immediately, non-zero only when
	// the opening deal settled the game (a natural)
	Payout int
}

// HitInput contains parameters for drawing a card
type HitInput struct {
	UserID string
}

// HitOutput contains the result of drawing a card
type HitOutput struct {
	Game *models.BlackjackGame

	// Busted is true when the draw ended the game
	Busted bool
}

// StandInput contains parameters for standing
type StandInput struct {
	UserID string
}

// StandOutput contains the result of standing
type StandOutput struct {
	Game *models.BlackjackGame

	// Payout is the amount credited back to the player, stake included
	Payout int
}

// GetGameInput contains parameters for reading a table
type GetGameInput struct {
	UserID string
}

// GetGameOutput contains the result of reading a table
type GetGameOutput struct {
	Game *models.BlackjackGame
}
