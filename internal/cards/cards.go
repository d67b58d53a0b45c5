package cards

import (
	"fmt"
	"math/rand"
	"time"
)

// Suit identifies one of the four card suits
type Suit string

const (
	SuitClubs    Suit = "Clubs"
	SuitDiamonds Suit = "Diamonds"
	SuitHearts   Suit = "Hearts"
	SuitSpades   Suit = "Spades"
)

// Rank identifies a card rank, Ace through King
type Rank int

const (
	RankAce Rank = iota + 1
	RankTwo
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
)

// Card is a single playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// String returns a short human-readable form, e.g. "A♠" or "10♥"
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.rankLabel(), c.suitSymbol())
}

func (c Card) rankLabel() string {
	switch c.Rank {
	case RankAce:
		return "A"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	default:
		return fmt.Sprintf("%d", int(c.Rank))
	}
}

func (c Card) suitSymbol() string {
	switch c.Suit {
	case SuitClubs:
		return "♣"
	case SuitDiamonds:
		return "♦"
	case SuitHearts:
		return "♥"
	default:
		return "♠"
	}
}

// NewDeck returns a standard 52-card deck in suit/rank order
func NewDeck() []Card {
	suits := []Suit{SuitClubs, SuitDiamonds, SuitHearts, SuitSpades}
	deck := make([]Card, 0, 52)
	for _, suit := range suits {
		for rank := RankAce; rank <= RankKing; rank++ {
			deck = append(deck, Card{Suit: suit, Rank: rank})
		}
	}
	return deck
}

// Shuffler shuffles decks using its own random source
type Shuffler struct {
	random *rand.Rand
}

// Config for the shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new shuffler
func New(cfg *Config) *Shuffler {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)
	random := rand.New(source)

	return &Shuffler{
		random: random,
	}
}

// Shuffle randomizes the order of the given deck in place
func (s *Shuffler) Shuffle(deck []Card) {
	s.random.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
}

// HandValue returns the best blackjack value of a hand. Aces count as 11
// unless that would bust the hand, in which case they drop to 1.
func HandValue(hand []Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		switch {
		case c.Rank == RankAce:
			aces++
			total += 11
		case c.Rank >= RankTen:
			total += 10
		default:
			total += int(c.Rank)
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsBlackjack reports whether a hand is a natural: two cards totalling 21
func IsBlackjack(hand []Card) bool {
	return len(hand) == 2 && HandValue(hand) == 21
}

// IsBust reports whether a hand is over 21
func IsBust(hand []Card) bool {
	return HandValue(hand) > 21
}
