package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupEvaluatorMatchesBitwise(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the full lookup table")
	}
	t.Parallel()

	var (
		lookup  Evaluator = LookupEvaluator{}
		bitwise Evaluator = BitwiseEvaluator{}
	)

	deck := FullDeck()
	hands, err := Combinations(deck[:], 5)
	require.NoError(t, err)

	counts := make(map[HandType]int)
	for set := range hands {
		cards := set.Cards()
		want, err := bitwise.EvaluateFiveCardHand(cards)
		require.NoError(t, err)
		got, err := lookup.EvaluateFiveCardHand(cards)
		require.NoError(t, err)
		if want != got {
			require.Failf(t, "lookup disagrees", "%s: bitwise=%s lookup=%s", set, want, got)
		}
		counts[got.Type()]++
	}
	assert.Equal(t, expectedFiveCardCounts, counts)
}

func TestLookupEvaluatorSevenCards(t *testing.T) {
	if testing.Short() {
		t.Skip("builds the full lookup table")
	}
	t.Parallel()

	for _, h := range []string{
		"AS AH 6D 4C 4H 2H AC",
		"2H 3H 4D 5H 6C 9H KH",
		"3S 4H 5D 6C 7S 8H KD",
	} {
		cards := MustParseCards(h)
		want, err := EvaluateSevenCardHand(cards)
		require.NoError(t, err)
		got, err := LookupEvaluator{}.EvaluateSevenCardHand(cards)
		require.NoError(t, err)
		assert.Equal(t, want, got, h)
	}
}

func TestLookupEvaluatorErrors(t *testing.T) {
	t.Parallel()

	_, err := LookupEvaluator{}.EvaluateFiveCardHand(MustParseCards("AS KS"))
	assert.ErrorIs(t, err, ErrInvalidHandSize)

	_, err = LookupEvaluator{}.EvaluateSevenCardHand(MustParseCards("AS KS QS JS 10S"))
	assert.ErrorIs(t, err, ErrInvalidHandSize)

	_, err = LookupEvaluator{}.EvaluateFiveCardHand(MustParseCards("AS AS QS JS 10S"))
	assert.ErrorIs(t, err, ErrDuplicateCard)
}

func TestLookupKey(t *testing.T) {
	t.Parallel()

	suited := NewCardSet(MustParseCards("AS KS QS JS 10S")...)
	// Deck order is A, 10, J, Q, K for spades.
	assert.Equal(t, uint32(lookupSuitedBit|12<<16|11<<12|10<<8|9<<4|0), lookupKey(suited.Bits()))

	offsuit := NewCardSet(MustParseCards("AS KH QS JS 10S")...)
	assert.Zero(t, lookupKey(offsuit.Bits())&lookupSuitedBit)
}
