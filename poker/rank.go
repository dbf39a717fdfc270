package poker

// Rank is the rank of a card. Ace is zero so a rank can be shifted straight
// into its bit position without adjusting.
type Rank uint8

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks in a suit.
const NumRanks = 13

// Ranks lists every rank in ascending numeric order, Ace first.
var Ranks = [NumRanks]Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

var rankNames = [NumRanks]string{
	"Ace", "Two", "Three", "Four", "Five", "Six", "Seven",
	"Eight", "Nine", "Ten", "Jack", "Queen", "King",
}

// String returns the rank name, e.g. "Queen".
func (r Rank) String() string {
	if !r.Valid() {
		return "Unknown"
	}
	return rankNames[r]
}

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r < NumRanks
}
