package blackjack

import "errors"

// Define errors
var (
	ErrSessionAlreadyActive = errors.New("a game is already active for this player")
	ErrSessionNotFound      = errors.New("no active game for this player")
	ErrInvalidBet           = errors.New("bet is outside the allowed range")
	ErrInsufficientFunds    = errors.New("not enough morbcoins for this bet")
	ErrGameFinished         = errors.New("game is already finished")
)
