package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, 52)

	seen := make(map[Card]bool)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	first := NewDeck()
	New(&Config{Seed: 42}).Shuffle(first)

	second := NewDeck()
	New(&Config{Seed: 42}).Shuffle(second)

	assert.Equal(t, first, second)
}

func TestHandValue(t *testing.T) {
	tests := []struct {
		name string
		hand []Card
		want int
	}{
		{
			name: "number cards",
			hand: []Card{{SuitClubs, RankTwo}, {SuitHearts, RankSeven}},
			want: 9,
		},
		{
			name: "face cards count ten",
			hand: []Card{{SuitClubs, RankKing}, {SuitHearts, RankQueen}},
			want: 20,
		},
		{
			name: "ace counts eleven",
			hand: []Card{{SuitClubs, RankAce}, {SuitHearts, RankSix}},
			want: 17,
		},
		{
			name: "ace drops to one on bust",
			hand: []Card{{SuitClubs, RankAce}, {SuitHearts, RankNine}, {SuitSpades, RankFive}},
			want: 15,
		},
		{
			name: "two aces",
			hand: []Card{{SuitClubs, RankAce}, {SuitHearts, RankAce}, {SuitSpades, RankNine}},
			want: 21,
		},
		{
			name: "natural",
			hand: []Card{{SuitClubs, RankAce}, {SuitHearts, RankJack}},
			want: 21,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HandValue(tt.hand))
		})
	}
}

func TestIsBlackjack(t *testing.T) {
	assert.True(t, IsBlackjack([]Card{{SuitClubs, RankAce}, {SuitHearts, RankKing}}))
	assert.False(t, IsBlackjack([]Card{{SuitClubs, RankAce}, {SuitHearts, RankFive}, {SuitSpades, RankFive}}))
	assert.False(t, IsBlackjack([]Card{{SuitClubs, RankTen}, {SuitHearts, RankKing}}))
}

func TestIsBust(t *testing.T) {
	assert.True(t, IsBust([]Card{{SuitClubs, RankKing}, {SuitHearts, RankQueen}, {SuitSpades, RankFive}}))
	assert.False(t, IsBust([]Card{{SuitClubs, RankKing}, {SuitHearts, RankQueen}}))
}
