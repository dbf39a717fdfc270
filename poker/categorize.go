package poker

// HoleCardCategory is a rough preflop strength bucket for two hole cards.
type HoleCardCategory string

const (
	CategoryPremium HoleCardCategory = "Premium"
	CategoryStrong  HoleCardCategory = "Strong"
	CategoryMedium  HoleCardCategory = "Medium"
	CategoryWeak    HoleCardCategory = "Weak"
	CategoryTrash   HoleCardCategory = "Trash"
	CategoryUnknown HoleCardCategory = "Unknown"
)

// CategorizeHoleCards buckets a starting hand:
// Premium (JJ+, AK), Strong (TT, AQ, AJ), Medium (77-99, suited broadway),
// Weak (22-66, suited cards within two ranks), Trash (everything else).
func CategorizeHoleCards(first, second Card) HoleCardCategory {
	if !first.Valid() || !second.Valid() || first == second {
		return CategoryUnknown
	}

	low, high := first.Rank().highValue(), second.Rank().highValue()
	if low > high {
		low, high = high, low
	}
	pair := low == high
	suited := first.Suit() == second.Suit()

	switch {
	case pair && low >= 11, low == 13 && high == 14:
		return CategoryPremium
	case pair && low == 10, high == 14 && (low == 12 || low == 11):
		return CategoryStrong
	case pair && low >= 7, suited && low >= 10:
		return CategoryMedium
	case pair, suited && high-low <= 2:
		return CategoryWeak
	}
	return CategoryTrash
}

// highValue returns the rank's face value with the ace counted as 14.
func (r Rank) highValue() int {
	if r == Ace {
		return 14
	}
	return int(r) + 1
}
