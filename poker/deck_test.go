package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/cardeval/internal/randutil"
)

func TestDeckDealsEveryCardOnce(t *testing.T) {
	t.Parallel()

	deck := NewDeck(randutil.New(1))
	require.Equal(t, NumCards, deck.Remaining())

	seen := NewMutableCardSet()
	for deck.Remaining() > 0 {
		c, ok := deck.DealOne()
		require.True(t, ok)
		require.True(t, seen.Add(c), "dealt %s twice", c)
	}
	assert.Equal(t, FullDeckSet(), seen.Snapshot())

	_, ok := deck.DealOne()
	assert.False(t, ok)
	assert.Nil(t, deck.Deal(1))
}

func TestDeckDeterministic(t *testing.T) {
	t.Parallel()

	a := NewDeck(randutil.New(99))
	b := NewDeck(randutil.New(99))
	assert.Equal(t, a.Deal(10), b.Deal(10))
}

func TestNewDeckWithout(t *testing.T) {
	t.Parallel()

	known := NewCardSet(MustParseCards("AS KS 2C")...)
	deck := NewDeckWithout(randutil.New(3), known)
	require.Equal(t, NumCards-3, deck.Remaining())

	dealt := NewCardSet(deck.Deal(deck.Remaining())...)
	assert.False(t, dealt.Overlaps(known))
	assert.Equal(t, FullDeckSet().Except(known), dealt)

	deck.Shuffle()
	assert.Equal(t, NumCards-3, deck.Remaining())
}
