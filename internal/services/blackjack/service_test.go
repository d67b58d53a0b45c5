package blackjack

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/RubenJ01/MiloBot/internal/cards"
	"github.com/RubenJ01/MiloBot/internal/common/clock/mocks"
	"github.com/RubenJ01/MiloBot/internal/models"
	userRepo "github.com/RubenJ01/MiloBot/internal/repositories/user"
	userMocks "github.com/RubenJ01/MiloBot/internal/repositories/user/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BlackjackServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUserRepo *userMocks.MockRepository
	mockClock    *mocks.MockClock
	registry     *Registry
	svc          Service
	ctx          context.Context

	testTime   time.Time
	testUserID string

	// users backs the stateful repository fake
	users map[string]models.User
}

func (s *BlackjackServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUserRepo = userMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"
	s.users = make(map[string]models.User)

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	registry, err := NewRegistry(&RegistryConfig{Clock: s.mockClock})
	s.Require().NoError(err)
	s.registry = registry

	svc, err := New(&Config{
		Registry: s.registry,
		UserRepo: s.mockUserRepo,
		Shuffler: cards.New(&cards.Config{Seed: 7}),
		Clock:    s.mockClock,
		MinBet:   1,
		MaxBet:   1000,
	})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *BlackjackServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBlackjackServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BlackjackServiceTestSuite))
}

// useFakeUserStore wires the repository mock to an in-memory user table so
// tests can assert balances without depending on the shuffled deal.
func (s *BlackjackServiceTestSuite) useFakeUserStore() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.GetUserInput) (*models.User, error) {
			u, ok := s.users[input.UserID]
			if !ok {
				return nil, userRepo.ErrUserNotFound
			}
			copied := u
			return &copied, nil
		}).
		AnyTimes()
	s.mockUserRepo.EXPECT().
		SaveUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *userRepo.SaveUserInput) error {
			s.users[input.User.ID] = *input.User
			return nil
		}).
		AnyTimes()
}

// craftGame registers a session with a fixed deal so hit/stand tests are
// deterministic
func (s *BlackjackServiceTestSuite) craftGame(player, dealer, deck []cards.Card) {
	game := &models.BlackjackGame{
		ID:         "test-game-id",
		UserID:     s.testUserID,
		ChannelID:  "test-channel-id",
		Bet:        50,
		PlayerHand: player,
		DealerHand: dealer,
		Deck:       deck,
		State:      models.BlackjackStatePlayerTurn,
		CreatedAt:  s.testTime,
	}
	s.Require().NoError(s.registry.Start(s.testUserID, game))
}

func (s *BlackjackServiceTestSuite) TestStartGameCreatesUserAndTakesBet() {
	s.useFakeUserStore()

	output, err := s.svc.StartGame(s.ctx, &StartGameInput{
		UserID:    s.testUserID,
		UserName:  "Test User",
		ChannelID: "test-channel-id",
		Bet:       50,
	})
	s.Require().NoError(err)
	s.Require().NotNil(output.Game)

	s.Len(output.Game.PlayerHand, 2)
	s.Len(output.Game.DealerHand, 2)
	s.Equal(48, len(output.Game.Deck))

	// First sight seeds the default balance, then the bet comes out and
	// any immediate settlement goes back in
	s.Equal(500-50+output.Payout, s.users[s.testUserID].Currency)

	if output.Game.State == models.BlackjackStateFinished {
		// Opening naturals settle and free the table immediately
		s.Equal(0, s.registry.Len())
	} else {
		s.Equal(0, output.Payout)
		s.Equal(1, s.registry.Len())
	}
}

func (s *BlackjackServiceTestSuite) TestStartGameInsufficientFunds() {
	s.users[s.testUserID] = models.User{ID: s.testUserID, Name: "Test User", Currency: 10}
	s.useFakeUserStore()

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{
		UserID:    s.testUserID,
		ChannelID: "test-channel-id",
		Bet:       50,
	})
	s.Require().ErrorIs(err, ErrInsufficientFunds)

	// No session left behind, balance untouched
	s.Equal(0, s.registry.Len())
	s.Equal(10, s.users[s.testUserID].Currency)
}

func (s *BlackjackServiceTestSuite) TestStartGameWhileSessionActive() {
	s.craftGame(
		[]cards.Card{{Suit: cards.SuitClubs, Rank: cards.RankTen}, {Suit: cards.SuitHearts, Rank: cards.RankFive}},
		[]cards.Card{{Suit: cards.SuitSpades, Rank: cards.RankKing}},
		cards.NewDeck(),
	)

	_, err := s.svc.StartGame(s.ctx, &StartGameInput{
		UserID:    s.testUserID,
		ChannelID: "test-channel-id",
		Bet:       50,
	})
	s.Require().ErrorIs(err, ErrSessionAlreadyActive)
}

func (s *BlackjackServiceTestSuite) TestStartGameInvalidBet() {
	_, err := s.svc.StartGame(s.ctx, &StartGameInput{
		UserID:    s.testUserID,
		ChannelID: "test-channel-id",
		Bet:       0,
	})
	s.Require().ErrorIs(err, ErrInvalidBet)

	_, err = s.svc.StartGame(s.ctx, &StartGameInput{
		UserID:    s.testUserID,
		ChannelID: "test-channel-id",
		Bet:       5000,
	})
	s.Require().ErrorIs(err, ErrInvalidBet)
}

func (s *BlackjackServiceTestSuite) TestHitDrawsCard() {
	s.craftGame(
		[]cards.Card{{Suit: cards.SuitClubs, Rank: cards.RankTen}, {Suit: cards.SuitHearts, Rank: cards.RankFive}},
		[]cards.Card{{Suit: cards.SuitSpades, Rank: cards.RankKing}, {Suit: cards.SuitDiamonds, Rank: cards.RankSix}},
		[]cards.Card{{Suit: cards.SuitClubs, Rank: cards.RankFour}},
	)

	output, err := s.svc.Hit(s.ctx, &HitInput{UserID: s.testUserID})
	s.Require().NoError(err)

	s.False(output.Busted)
	s.Len(output.Game.PlayerHand, 3)
	s.Equal(19, cards.HandValue(output.Game.PlayerHand))
	s.Equal(1, s.registry.Len())
}

func (s *BlackjackServiceTestSuite) TestHitBustEndsGame() {
	s.craftGame(
		[]cards.Card{{Suit: cards.SuitClubs, Rank: cards.RankTen}, {Suit: cards.SuitHearts, Rank: cards.RankNine}},
		[]cards.Card{{Suit: cards.SuitSpades, Rank: cards.RankKing}, {Suit: cards.SuitDiamonds, Rank: cards.RankSix}},
		[]cards.Card{{Suit: cards.SuitClubs, Rank: cards.RankKing}},
	)

	output, err := s.svc.Hit(s.ctx, &HitInput{UserID: s.testUserID})
	s.Require().NoError(err)

	s.True(output.Busted)
	s.Equal(models.BlackjackOutcomeLose, output.Game.Outcome)
	s.Equal(models.BlackjackStateFinished, output.Game.State)
	s.Equal(0, s.registry.Len())
}

func (s *BlackjackServiceTestSuite) TestHitWithoutSession() {
	_, err := s.svc.Hit(s.ctx, &HitInput{UserID: s.testUserID})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *BlackjackServiceTestSuite) TestStandDealerDrawsAndPlayerWins() {
	s.users[s.testUserID] = models.User{ID: s.testUserID, Currency: 450}
	s.useFakeUserStore()

	s.craftGame(
		[]cards.Card{{Suit: cards.SuitClubs, Rank: cards.RankKing}, {Suit: cards.SuitHearts, Rank: cards.RankQueen}},
		[]cards.Card{{Suit: cards.SuitSpades, Rank: cards.RankKing}, {Suit: cards.SuitDiamonds, Rank: cards.RankSix}},
		[]cards.Card{{Suit: cards.SuitClubs, Rank: cards.RankTwo}},
	)

	output, err := s.svc.Stand(s.ctx, &StandInput{UserID: s.testUserID})
	s.Require().NoError(err)

	// Dealer drew to 18, player stands on 20
	s.Equal(18, cards.HandValue(output.Game.DealerHand))
	s.Equal(models.BlackjackOutcomeWin, output.Game.Outcome)
	s.Equal(100, output.Payout)
	s.Equal(550, s.users[s.testUserID].Currency)
	s.Equal(0, s.registry.Len())
}

func (s *BlackjackServiceTestSuite) TestStandPushReturnsStake() {
	s.users[s.testUserID] = models.User{ID: s.testUserID, Currency: 450}
	s.useFakeUserStore()

	s.craftGame(
		[]cards.Card{{Suit: cards.SuitClubs, Rank: cards.RankKing}, {Suit: cards.SuitHearts, Rank: cards.RankQueen}},
		[]cards.Card{{Suit: cards.SuitSpades, Rank: cards.RankKing}, {Suit: cards.SuitDiamonds, Rank: cards.RankJack}},
		cards.NewDeck(),
	)

	output, err := s.svc.Stand(s.ctx, &StandInput{UserID: s.testUserID})
	s.Require().NoError(err)

	s.Equal(models.BlackjackOutcomePush, output.Game.Outcome)
	s.Equal(50, output.Payout)
	s.Equal(500, s.users[s.testUserID].Currency)
}

func (s *BlackjackServiceTestSuite) TestStandDealerWins() {
	s.craftGame(
		[]cards.Card{{Suit: cards.SuitClubs, Rank: cards.RankKing}, {Suit: cards.SuitHearts, Rank: cards.RankSeven}},
		[]cards.Card{{Suit: cards.SuitSpades, Rank: cards.RankKing}, {Suit: cards.SuitDiamonds, Rank: cards.RankNine}},
		cards.NewDeck(),
	)

	output, err := s.svc.Stand(s.ctx, &StandInput{UserID: s.testUserID})
	s.Require().NoError(err)

	// A loss pays nothing, so the user repository is never touched
	s.Equal(models.BlackjackOutcomeLose, output.Game.Outcome)
	s.Equal(0, output.Payout)
	s.Equal(0, s.registry.Len())
}

func (s *BlackjackServiceTestSuite) TestStandSettlementFailureStillEndsGame() {
	s.mockUserRepo.EXPECT().
		GetUser(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused"))

	s.craftGame(
		[]cards.Card{{Suit: cards.SuitClubs, Rank: cards.RankKing}, {Suit: cards.SuitHearts, Rank: cards.RankQueen}},
		[]cards.Card{{Suit: cards.SuitSpades, Rank: cards.RankKing}, {Suit: cards.SuitDiamonds, Rank: cards.RankEight}},
		cards.NewDeck(),
	)

	output, err := s.svc.Stand(s.ctx, &StandInput{UserID: s.testUserID})
	s.Require().NoError(err)

	s.Equal(models.BlackjackOutcomeWin, output.Game.Outcome)
	s.Equal(100, output.Payout)
	s.Equal(0, s.registry.Len())
}

func (s *BlackjackServiceTestSuite) TestGetGame() {
	s.craftGame(
		[]cards.Card{{Suit: cards.SuitClubs, Rank: cards.RankTen}, {Suit: cards.SuitHearts, Rank: cards.RankFive}},
		[]cards.Card{{Suit: cards.SuitSpades, Rank: cards.RankKing}, {Suit: cards.SuitDiamonds, Rank: cards.RankSix}},
		cards.NewDeck(),
	)

	output, err := s.svc.GetGame(s.ctx, &GetGameInput{UserID: s.testUserID})
	s.Require().NoError(err)
	s.Equal("test-game-id", output.Game.ID)

	_, err = s.svc.GetGame(s.ctx, &GetGameInput{UserID: "other-user"})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

// stackedShuffler moves the given cards to the top of the deck, in order,
// so tests control the opening deal
type stackedShuffler struct {
	top []cards.Card
}

func (f *stackedShuffler) Shuffle(deck []cards.Card) {
	for i, want := range f.top {
		for j := i; j < len(deck); j++ {
			if deck[j] == want {
				deck[i], deck[j] = deck[j], deck[i]
				break
			}
		}
	}
}

func (s *BlackjackServiceTestSuite) newServiceWithShuffler(sh Shuffler) Service {
	svc, err := New(&Config{
		Registry: s.registry,
		UserRepo: s.mockUserRepo,
		Shuffler: sh,
		Clock:    s.mockClock,
		MinBet:   1,
		MaxBet:   1000,
	})
	s.Require().NoError(err)
	return svc
}

func (s *BlackjackServiceTestSuite) TestNewWithMinimalConfig() {
	s.useFakeUserStore()

	// Only the required collaborators, the way the entrypoint wires it
	// before tuning: shuffler and clock fall back to defaults
	svc, err := New(&Config{
		Registry: s.registry,
		UserRepo: s.mockUserRepo,
	})
	s.Require().NoError(err)

	output, err := svc.StartGame(s.ctx, &StartGameInput{
		UserID:    s.testUserID,
		UserName:  "Tester",
		ChannelID: "test-channel-id",
		Bet:       50,
	})
	s.Require().NoError(err)
	s.Len(output.Game.PlayerHand, 2)
	s.Len(output.Game.DealerHand, 2)
}

func (s *BlackjackServiceTestSuite) TestStartGameNaturalSettlesImmediately() {
	s.useFakeUserStore()

	// Player is dealt A K, dealer 9 7
	svc := s.newServiceWithShuffler(&stackedShuffler{top: []cards.Card{
		{Suit: cards.SuitSpades, Rank: cards.RankAce},
		{Suit: cards.SuitClubs, Rank: cards.RankNine},
		{Suit: cards.SuitHearts, Rank: cards.RankKing},
		{Suit: cards.SuitDiamonds, Rank: cards.RankSeven},
	}})

	output, err := svc.StartGame(s.ctx, &StartGameInput{
		UserID:    s.testUserID,
		UserName:  "Tester",
		ChannelID: "test-channel-id",
		Bet:       100,
	})
	s.Require().NoError(err)

	s.Equal(models.BlackjackStateFinished, output.Game.State)
	s.Equal(models.BlackjackOutcomeNatural, output.Game.Outcome)
	s.Equal(250, output.Payout)

	// Settled games leave the registry, so the player can start another
	// table right away
	s.Equal(0, s.registry.Len())
	s.Equal(500-100+250, s.users[s.testUserID].Currency)

	_, err = svc.StartGame(s.ctx, &StartGameInput{
		UserID:    s.testUserID,
		UserName:  "Tester",
		ChannelID: "test-channel-id",
		Bet:       100,
	})
	s.Require().NoError(err)
}

func (s *BlackjackServiceTestSuite) TestStartGameDoubleNaturalPushes() {
	s.useFakeUserStore()

	svc := s.newServiceWithShuffler(&stackedShuffler{top: []cards.Card{
		{Suit: cards.SuitSpades, Rank: cards.RankAce},
		{Suit: cards.SuitHearts, Rank: cards.RankAce},
		{Suit: cards.SuitHearts, Rank: cards.RankKing},
		{Suit: cards.SuitDiamonds, Rank: cards.RankKing},
	}})

	output, err := svc.StartGame(s.ctx, &StartGameInput{
		UserID:    s.testUserID,
		UserName:  "Tester",
		ChannelID: "test-channel-id",
		Bet:       100,
	})
	s.Require().NoError(err)

	s.Equal(models.BlackjackOutcomePush, output.Game.Outcome)
	s.Equal(100, output.Payout)
	s.Equal(0, s.registry.Len())
	s.Equal(500, s.users[s.testUserID].Currency)
}

func (s *BlackjackServiceTestSuite) TestStartGameOutputIsSnapshot() {
	s.useFakeUserStore()

	// A deal with no natural so the game stays open
	svc := s.newServiceWithShuffler(&stackedShuffler{top: []cards.Card{
		{Suit: cards.SuitSpades, Rank: cards.RankTen},
		{Suit: cards.SuitClubs, Rank: cards.RankNine},
		{Suit: cards.SuitHearts, Rank: cards.RankFive},
		{Suit: cards.SuitDiamonds, Rank: cards.RankSeven},
	}})

	output, err := svc.StartGame(s.ctx, &StartGameInput{
		UserID:    s.testUserID,
		UserName:  "Tester",
		ChannelID: "test-channel-id",
		Bet:       50,
	})
	s.Require().NoError(err)
	s.Equal(models.BlackjackStatePlayerTurn, output.Game.State)

	_, err = svc.Hit(s.ctx, &HitInput{UserID: s.testUserID})
	s.Require().NoError(err)

	// The startup snapshot is detached from the live session
	s.Len(output.Game.PlayerHand, 2)
	live, err := s.registry.Get(s.testUserID)
	s.Require().NoError(err)
	s.Len(live.PlayerHand, 3)
}
