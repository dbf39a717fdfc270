package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorizeHoleCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		cards    string
		expected HoleCardCategory
	}{
		{"pocket aces", "AS AH", CategoryPremium},
		{"pocket jacks", "JH JD", CategoryPremium},
		{"ace king offsuit", "AC KH", CategoryPremium},
		{"pocket tens", "TC TH", CategoryStrong},
		{"ace queen suited", "AS QS", CategoryStrong},
		{"ace jack offsuit", "AD JC", CategoryStrong},
		{"pocket sevens", "7H 7C", CategoryMedium},
		{"king queen suited", "KS QS", CategoryMedium},
		{"queen jack suited", "QD JD", CategoryMedium},
		{"pocket twos", "2C 2H", CategoryWeak},
		{"suited connectors", "7H 6H", CategoryWeak},
		{"suited one gapper", "5D 3D", CategoryWeak},
		{"seven two offsuit", "7C 2H", CategoryTrash},
		{"king queen offsuit", "KS QH", CategoryTrash},
		{"same card twice", "AS AS", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cards, err := ParseCards(tt.cards)
			require.NoError(t, err)
			require.Len(t, cards, 2)
			assert.Equal(t, tt.expected, CategorizeHoleCards(cards[0], cards[1]))
		})
	}
}

func TestCategorizeHoleCardsInvalid(t *testing.T) {
	t.Parallel()
	assert.Equal(t, CategoryUnknown, CategorizeHoleCards(NewCard(13, Spades), NewCard(Ace, Hearts)))
}
