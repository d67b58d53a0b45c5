package blackjack

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/RubenJ01/MiloBot/internal/cards"
	"github.com/RubenJ01/MiloBot/internal/common/clock"
	"github.com/RubenJ01/MiloBot/internal/models"
	userRepo "github.com/RubenJ01/MiloBot/internal/repositories/user"
)

const (
	defaultMinBet           = 1
	defaultMaxBet           = 10000
	defaultStartingCurrency = 500

	// Dealer stands on all 17s
	dealerStandValue = 17
)

// Shuffler randomizes a deck in place before the opening deal
type Shuffler interface {
	Shuffle(deck []cards.Card)
}

// Config holds configuration for the blackjack service
type Config struct {
	// Registry holds the active sessions
	Registry *Registry

	// UserRepo persists player balances
	UserRepo userRepo.Repository

	// Shuffler randomizes decks, defaults to an unseeded cards shuffler
	Shuffler Shuffler

	// Clock provides timestamps, defaults to the system clock
	Clock clock.Clock

	// MinBet and MaxBet bound the wager, zero for defaults
	MinBet int
	MaxBet int

	// StartingCurrency seeds the balance of users seen for the first time
	StartingCurrency int
}

// service implements the Service interface
type service struct {
	registry         *Registry
	userRepo         userRepo.Repository
	shuffler         Shuffler
	clock            clock.Clock
	minBet           int
	maxBet           int
	startingCurrency int
}

// New creates a new blackjack service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Registry == nil {
		return nil, errors.New("session registry cannot be nil")
	}

	if cfg.UserRepo == nil {
		return nil, errors.New("user repository cannot be nil")
	}

	shuffler := cfg.Shuffler
	if shuffler == nil {
		shuffler = cards.New(&cards.Config{})
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	minBet := cfg.MinBet
	if minBet <= 0 {
		minBet = defaultMinBet
	}

	maxBet := cfg.MaxBet
	if maxBet <= 0 {
		maxBet = defaultMaxBet
	}

	starting := cfg.StartingCurrency
	if starting <= 0 {
		starting = defaultStartingCurrency
	}

	return &service{
		registry:         cfg.Registry,
		userRepo:         cfg.UserRepo,
		shuffler:         shuffler,
		clock:            c,
		minBet:           minBet,
		maxBet:           maxBet,
		startingCurrency: starting,
	}, nil
}

// SessionRegistry returns the registry the service mutates
func (s *service) SessionRegistry() *Registry {
	return s.registry
}

// StartGame opens a new table for a player. The session is registered first
// so two near-simultaneous starts by the same player cannot both succeed,
// then the bet is debited; a failed debit tears the session down again.
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	if input.Bet < s.minBet || input.Bet > s.maxBet {
		return nil, ErrInvalidBet
	}

	deck := cards.NewDeck()
	s.shuffler.Shuffle(deck)

	now := s.clock.Now()
	game := &models.BlackjackGame{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		ChannelID: input.ChannelID,
		Bet:       input.Bet,
		Deck:      deck,
		State:     models.BlackjackStatePlayerTurn,
		CreatedAt: now,
	}

	// Opening deal: player, dealer, player, dealer
	game.PlayerHand = append(game.PlayerHand, game.Draw())
	game.DealerHand = append(game.DealerHand, game.Draw())
	game.PlayerHand = append(game.PlayerHand, game.Draw())
	game.DealerHand = append(game.DealerHand, game.Draw())

	// A natural settles the game on the spot. The outcome is decided here,
	// before registration: once the game is in the registry it may only be
	// written under its per-key lock, through Update.
	if cards.IsBlackjack(game.PlayerHand) {
		if cards.IsBlackjack(game.DealerHand) {
			game.Outcome = models.BlackjackOutcomePush
		} else {
			game.Outcome = models.BlackjackOutcomeNatural
		}
		game.State = models.BlackjackStateFinished
	}

	copied := *game

	if err := s.registry.Start(input.UserID, game); err != nil {
		return nil, err
	}

	user, err := s.getOrCreateUser(ctx, input.UserID, input.UserName)
	if err != nil {
		s.registry.End(input.UserID)
		return nil, err
	}

	if user.Currency < input.Bet {
		s.registry.End(input.UserID)
		return nil, ErrInsufficientFunds
	}

	user.Currency -= input.Bet
	user.UpdatedAt = now
	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: user}); err != nil {
		s.registry.End(input.UserID)
		return nil, fmt.Errorf("failed to take bet: %w", err)
	}

	output := &StartGameOutput{Game: &copied}
	if copied.State == models.BlackjackStateFinished {
		output.Payout = s.settle(ctx, &copied)
		s.registry.End(input.UserID)
	}

	return output, nil
}

// Hit draws a card for the player. Busting finishes and settles the game.
func (s *service) Hit(ctx context.Context, input *HitInput) (*HitOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	var copied models.BlackjackGame
	err := s.registry.Update(input.UserID, func(game *models.BlackjackGame) error {
		if game.State != models.BlackjackStatePlayerTurn {
			return ErrGameFinished
		}

		game.PlayerHand = append(game.PlayerHand, game.Draw())
		if cards.IsBust(game.PlayerHand) {
			game.Outcome = models.BlackjackOutcomeLose
			game.State = models.BlackjackStateFinished
		}

		copied = *game
		return nil
	})
	if err != nil {
		return nil, err
	}

	busted := copied.State == models.BlackjackStateFinished
	if busted {
		// The bet was taken at the start; a bust pays nothing back
		s.registry.End(input.UserID)
	}

	return &HitOutput{
		Game:   &copied,
		Busted: busted,
	}, nil
}

// Stand ends the player's turn, plays out the dealer's hand and settles
// the bet
func (s *service) Stand(ctx context.Context, input *StandInput) (*StandOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	var copied models.BlackjackGame
	err := s.registry.Update(input.UserID, func(game *models.BlackjackGame) error {
		if game.State != models.BlackjackStatePlayerTurn {
			return ErrGameFinished
		}

		for cards.HandValue(game.DealerHand) < dealerStandValue {
			game.DealerHand = append(game.DealerHand, game.Draw())
		}

		playerValue := cards.HandValue(game.PlayerHand)
		dealerValue := cards.HandValue(game.DealerHand)
		switch {
		case dealerValue > 21 || playerValue > dealerValue:
			game.Outcome = models.BlackjackOutcomeWin
		case playerValue == dealerValue:
			game.Outcome = models.BlackjackOutcomePush
		default:
			game.Outcome = models.BlackjackOutcomeLose
		}
		game.State = models.BlackjackStateFinished

		copied = *game
		return nil
	})
	if err != nil {
		return nil, err
	}

	payout := s.settle(ctx, &copied)
	s.registry.End(input.UserID)

	return &StandOutput{
		Game:   &copied,
		Payout: payout,
	}, nil
}

// GetGame returns a copy of the player's current table
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	game, err := s.registry.Get(input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

// getOrCreateUser loads the user record, creating one with the starting
// balance on first sight
func (s *service) getOrCreateUser(ctx context.Context, userID, userName string) (*models.User, error) {
	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: userID,
	})
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, userRepo.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	user = &models.User{
		ID:        userID,
		Name:      userName,
		Currency:  s.startingCurrency,
		UpdatedAt: s.clock.Now(),
	}
	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: user}); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// settle computes the payout for a finished game and credits it back to the
// player. The credit is best-effort: a persistence failure is logged but the
// game outcome stands.
func (s *service) settle(ctx context.Context, game *models.BlackjackGame) int {
	var payout int
	switch game.Outcome {
	case models.BlackjackOutcomeNatural:
		// Naturals pay 3:2 on top of the returned stake
		payout = game.Bet + game.Bet*3/2
	case models.BlackjackOutcomeWin:
		payout = game.Bet * 2
	case models.BlackjackOutcomePush:
		payout = game.Bet
	default:
		return 0
	}

	user, err := s.userRepo.GetUser(ctx, &userRepo.GetUserInput{
		UserID: game.UserID,
	})
	if err != nil {
		log.Printf("Failed to load user %s for payout of %d: %v", game.UserID, payout, err)
		return payout
	}

	user.Currency += payout
	user.UpdatedAt = s.clock.Now()
	if err := s.userRepo.SaveUser(ctx, &userRepo.SaveUserInput{User: user}); err != nil {
		log.Printf("Failed to credit payout of %d to user %s: %v", payout, game.UserID, err)
	}

	return payout
}
