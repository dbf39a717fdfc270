package poker

// Suit selects which 16-bit lane of a hand mask a card occupies.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of suits in a deck.
const NumSuits = 4

// Suits lists every suit in lane order.
var Suits = [NumSuits]Suit{Spades, Hearts, Diamonds, Clubs}

var suitNames = [NumSuits]string{"Spades", "Hearts", "Diamonds", "Clubs"}

// String returns the suit name, e.g. "Hearts".
func (s Suit) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return suitNames[s]
}

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s < NumSuits
}

// next returns the suit after s, wrapping Clubs back to Spades.
func (s Suit) next() Suit {
	return (s + 1) % NumSuits
}
