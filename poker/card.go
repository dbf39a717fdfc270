package poker

import (
	"github.com/lox/cardeval/internal/bitops"
)

// Card is a single playing card. It is a small value type; two cards are
// equal when both rank and suit match.
//
// A card has three integer encodings:
//
//	Index          suit*13 + rank, 0..51 in suit-then-rank order
//	BitIndex       a single bit at Index, used by card sets
//	BitMask        a single bit at rank + suit*16, used by the evaluator
//
// The bit mask places each suit in its own 16-bit lane of a uint64 (spades in
// bits 0-12, hearts 16-28, diamonds 32-44, clubs 48-60), leaving three guard
// bits between lanes.
type Card struct {
	rank Rank
	suit Suit
}

// NumCards is the number of cards in a full deck.
const NumCards = NumRanks * NumSuits

// NewCard returns the card with the given rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// Valid reports whether both rank and suit are in range.
func (c Card) Valid() bool {
	return c.rank.Valid() && c.suit.Valid()
}

// Index returns the card's position in a full deck, 0..51.
func (c Card) Index() int {
	return int(c.suit)*NumRanks + int(c.rank)
}

// BitIndex returns a mask with a single bit set at Index.
func (c Card) BitIndex() uint64 {
	return 1 << c.Index()
}

// BitMask returns a mask with the rank bit set inside the suit's 16-bit lane.
func (c Card) BitMask() uint64 {
	return BitMaskOf(c.rank, c.suit)
}

// AceHighBitMask is BitMask with an ace moved from bit 0 to bit 13 of its
// lane, so an ace always ranks above a king.
func (c Card) AceHighBitMask() uint64 {
	rank := uint64(1) << c.rank
	// An ace (bit 0) is copied to bit 13, then bit 0 is cleared.
	rank = (rank | rank<<13) & 0x3FFE
	return rank << (uint(c.suit) << 4)
}

// BitMaskOf returns the evaluator mask for a rank and suit: one bit at
// rank + suit*16.
func BitMaskOf(rank Rank, suit Suit) uint64 {
	return 1 << (uint(rank) + uint(suit)*16)
}

// CardFromIndex is the inverse of Card.Index. The index must be in 0..51.
func CardFromIndex(index int) Card {
	return Card{rank: Rank(index % NumRanks), suit: Suit(index / NumRanks)}
}

// CardFromBitIndex is the inverse of Card.BitIndex. Exactly one bit of
// bitIndex must be set.
func CardFromBitIndex(bitIndex uint64) Card {
	return CardFromIndex(bitops.TrailingZeroCount(bitIndex))
}

// CardFromBitMask is the inverse of Card.BitMask. Exactly one bit of mask must
// be set; the result is undefined otherwise.
func CardFromBitMask(mask uint64) Card {
	return CardFromBitIndex(bitops.CompactLanes13(mask))
}

// FullDeck returns the 52 cards in suit then rank order: AS, 2S ... KS, AH ...
func FullDeck() [NumCards]Card {
	var deck [NumCards]Card
	for i := range deck {
		deck[i] = CardFromIndex(i)
	}
	return deck
}

// String returns the card in the default format, e.g. "AS" or "10H".
func (c Card) String() string {
	return UpperLetters.Format(c)
}
