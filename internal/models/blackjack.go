package models

import (
	"time"

	"github.com/RubenJ01/MiloBot/internal/cards"
)

// BlackjackState represents the current phase of a blackjack game
type BlackjackState string

const (
	// BlackjackStatePlayerTurn indicates the player may still hit or stand
	BlackjackStatePlayerTurn BlackjackState = "player_turn"

	// BlackjackStateFinished indicates the game has been settled
	BlackjackStateFinished BlackjackState = "finished"
)

// BlackjackOutcome represents the result of a finished game
type BlackjackOutcome string

const (
	// BlackjackOutcomeNone means the game is still in progress
	BlackjackOutcomeNone BlackjackOutcome = ""

	// BlackjackOutcomeWin means the player beat the dealer
	BlackjackOutcomeWin BlackjackOutcome = "win"

	// BlackjackOutcomeNatural means the player won with a two-card 21
	BlackjackOutcomeNatural BlackjackOutcome = "natural"

	// BlackjackOutcomeLose means the dealer beat the player
	BlackjackOutcomeLose BlackjackOutcome = "lose"

	// BlackjackOutcomePush means the hands tied and the bet is returned
	BlackjackOutcomePush BlackjackOutcome = "push"
)

// BlackjackGame is the in-memory state of one blackjack table
type BlackjackGame struct {
	// ID is the unique identifier for this game
	ID string

	// UserID is the Discord user playing the game
	UserID string

	// ChannelID is the Discord channel where the game was started
	ChannelID string

	// Bet is the amount of morbcoins wagered
	Bet int

	// PlayerHand holds the player's cards
	PlayerHand []cards.Card

	// DealerHand holds the dealer's cards
	DealerHand []cards.Card

	// Deck holds the remaining undealt cards
	Deck []cards.Card

	// State is the current phase of the game
	State BlackjackState

	// Outcome is set once the game is settled
	Outcome BlackjackOutcome

	// CreatedAt is when the game was started
	CreatedAt time.Time
}

// Draw removes and returns the top card of the deck
func (g *BlackjackGame) Draw() cards.Card {
	card := g.Deck[0]
	g.Deck = g.Deck[1:]
	return card
}
