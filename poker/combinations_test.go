package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombinationsOrder(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("AS 2S 3S 4S")
	combos, err := Combinations(cards, 2)
	require.NoError(t, err)

	var got []string
	for set := range combos {
		got = append(got, set.String())
	}
	assert.Equal(t, []string{
		"[AS 2S]", "[AS 3S]", "[AS 4S]",
		"[2S 3S]", "[2S 4S]",
		"[3S 4S]",
	}, got)
}

func TestCombinationsFollowSourcePositions(t *testing.T) {
	t.Parallel()

	// Positions, not deck order, decide the sequence.
	cards := MustParseCards("KC AS QH")
	combos, err := Combinations(cards, 2)
	require.NoError(t, err)

	var got []CardSet
	for set := range combos {
		got = append(got, set)
	}
	assert.Equal(t, []CardSet{
		NewCardSet(MustParseCards("KC AS")...),
		NewCardSet(MustParseCards("KC QH")...),
		NewCardSet(MustParseCards("AS QH")...),
	}, got)
}

func TestCombinationsCounts(t *testing.T) {
	t.Parallel()

	deck := FullDeck()
	tests := []struct{ n, k int }{
		{5, 5}, {7, 5}, {10, 1}, {10, 3}, {13, 6}, {52, 2}, {52, 3},
	}

	for _, tt := range tests {
		combos, err := Combinations(deck[:tt.n], tt.k)
		require.NoError(t, err)

		seen := make(map[CardSet]bool)
		for set := range combos {
			require.Equal(t, tt.k, set.Len())
			seen[set] = true
		}
		assert.Len(t, seen, Binomial(tt.n, tt.k), "C(%d,%d)", tt.n, tt.k)
	}
}

func TestCombinationsRestartable(t *testing.T) {
	t.Parallel()

	deck := FullDeck()
	combos, err := Combinations(deck[:6], 3)
	require.NoError(t, err)

	count := func() int {
		n := 0
		for range combos {
			n++
		}
		return n
	}
	assert.Equal(t, 20, count())
	assert.Equal(t, 20, count())

	// Stopping early leaves the sequence usable.
	for range combos {
		break
	}
	assert.Equal(t, 20, count())
}

func TestCombinationsErrors(t *testing.T) {
	t.Parallel()

	_, err := Combinations(nil, 1)
	assert.ErrorIs(t, err, ErrInvalidCombination)

	cards := MustParseCards("AS KS QS")
	_, err = Combinations(cards, 0)
	assert.ErrorIs(t, err, ErrInvalidCombination)
	_, err = Combinations(cards, 4)
	assert.ErrorIs(t, err, ErrInvalidCombination)
	_, err = Combinations(MustParseCards("AS AS"), 1)
	assert.ErrorIs(t, err, ErrDuplicateCard)
}

func TestBinomial(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2598960, Binomial(52, 5))
	assert.Equal(t, 133784560, Binomial(52, 7))
	assert.Equal(t, 21, Binomial(7, 5))
	assert.Equal(t, 1, Binomial(5, 0))
	assert.Equal(t, 0, Binomial(5, 6))
}
