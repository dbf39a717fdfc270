package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPokerHandPacking(t *testing.T) {
	t.Parallel()

	// Kings full of twos: primary bit 12, secondary bit 1.
	h := newPokerHand(FullHouse, 1<<12, 1<<1)
	assert.Equal(t, FullHouse, h.Type())
	assert.Equal(t, []Rank{King}, h.PrimaryRanks())
	assert.Equal(t, []Rank{Two}, h.SecondaryRanks())
	assert.Equal(t, PokerHand(6<<27|1<<25|1), h)
}

func TestPokerHandAceBits(t *testing.T) {
	t.Parallel()

	high := newPokerHand(Pair, aceHighRankBit, 1<<12|1<<11|1<<10)
	assert.Equal(t, []Rank{Ace}, high.PrimaryRanks())
	assert.Equal(t, []Rank{King, Queen, Jack}, high.SecondaryRanks())

	wheel := newPokerHand(Straight, fiveHighStraightPrimary, 0)
	assert.Equal(t, []Rank{Five, Four, Three, Two, Ace}, wheel.PrimaryRanks())
	assert.Empty(t, wheel.SecondaryRanks())
}

func TestPokerHandCompare(t *testing.T) {
	t.Parallel()

	low := newPokerHand(Pair, 1<<4, 1<<12|1<<11|1<<10)
	high := newPokerHand(Pair, 1<<5, 1<<3|1<<2|1<<1)

	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))
	assert.True(t, high.Beats(low))
	assert.False(t, low.Beats(high))
	assert.True(t, low.Ties(low))
	assert.False(t, low.Ties(high))
}

func TestPokerHandString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		hand     PokerHand
		expected string
	}{
		{newPokerHand(FourOfAKind, aceHighRankBit, 1<<12), "Four of a Kind [Ace] [King]"},
		{newPokerHand(Straight, fiveHighStraightPrimary, 0), "Straight [Five, Four, Three, Two, Ace]"},
		{newPokerHand(TwoPair, 1<<6|1<<4, 1<<10), "Two Pair [Seven, Five] [Jack]"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.hand.String())
	}
}

func TestHandTypeString(t *testing.T) {
	t.Parallel()

	for _, ht := range HandTypes {
		assert.NotEqual(t, "Unknown", ht.String())
	}
	assert.Equal(t, "Unknown", HandType(NumHandTypes).String())
}
