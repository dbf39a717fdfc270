package poker

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
	// FiveOfAKind needs wild cards and never comes out of a standard deck.
	FiveOfAKind
)

// NumHandTypes is the number of hand types, FiveOfAKind included.
const NumHandTypes = 11

// HandTypes lists every hand type from weakest to strongest.
var HandTypes = [NumHandTypes]HandType{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush,
	FullHouse, FourOfAKind, StraightFlush, RoyalFlush, FiveOfAKind,
}

// String returns a human-readable hand type.
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		return "Unknown"
	}
}
