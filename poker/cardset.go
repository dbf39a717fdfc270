package poker

import (
	"iter"
	"strings"

	"github.com/lox/cardeval/internal/bitops"
)

// CardSet is an immutable set of cards stored as one bit per deck index. The
// zero value is the empty set. Operations return new sets.
type CardSet struct {
	bits uint64
}

const fullDeckBits = 1<<NumCards - 1

// NewCardSet returns a set holding the given cards.
func NewCardSet(cards ...Card) CardSet {
	var s CardSet
	for _, c := range cards {
		s.bits |= c.BitIndex()
	}
	return s
}

// CardSetFromBits returns the set whose BitIndex union is bits. Bits above
// the 52nd are dropped.
func CardSetFromBits(bits uint64) CardSet {
	return CardSet{bits: bits & fullDeckBits}
}

// FullDeckSet returns the set of all 52 cards.
func FullDeckSet() CardSet {
	return CardSet{bits: fullDeckBits}
}

// Bits returns the union of the members' BitIndex values.
func (s CardSet) Bits() uint64 { return s.bits }

// Len returns the number of cards in the set.
func (s CardSet) Len() int { return bitops.PopCount(s.bits) }

// IsEmpty reports whether the set has no cards.
func (s CardSet) IsEmpty() bool { return s.bits == 0 }

// Contains reports whether c is in the set.
func (s CardSet) Contains(c Card) bool { return s.bits&c.BitIndex() != 0 }

// Add returns s with c added.
func (s CardSet) Add(c Card) CardSet { return CardSet{bits: s.bits | c.BitIndex()} }

// Remove returns s without c.
func (s CardSet) Remove(c Card) CardSet { return CardSet{bits: s.bits &^ c.BitIndex()} }

// Union returns the cards in either set.
func (s CardSet) Union(other CardSet) CardSet { return CardSet{bits: s.bits | other.bits} }

// Intersect returns the cards in both sets.
func (s CardSet) Intersect(other CardSet) CardSet { return CardSet{bits: s.bits & other.bits} }

// Except returns the cards in s that are not in other.
func (s CardSet) Except(other CardSet) CardSet { return CardSet{bits: s.bits &^ other.bits} }

// SymmetricExcept returns the cards in exactly one of the two sets.
func (s CardSet) SymmetricExcept(other CardSet) CardSet {
	return CardSet{bits: s.bits ^ other.bits}
}

// IsSubsetOf reports whether every card of s is in other.
func (s CardSet) IsSubsetOf(other CardSet) bool { return s.bits&^other.bits == 0 }

// IsSupersetOf reports whether every card of other is in s.
func (s CardSet) IsSupersetOf(other CardSet) bool { return other.IsSubsetOf(s) }

// IsProperSubsetOf reports whether s is a subset of other and smaller.
func (s CardSet) IsProperSubsetOf(other CardSet) bool {
	return s.IsSubsetOf(other) && s.bits != other.bits
}

// IsProperSupersetOf reports whether s is a superset of other and larger.
func (s CardSet) IsProperSupersetOf(other CardSet) bool { return other.IsProperSubsetOf(s) }

// Overlaps reports whether the sets share at least one card.
func (s CardSet) Overlaps(other CardSet) bool { return s.bits&other.bits != 0 }

// All yields the cards in deck index order.
func (s CardSet) All() iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for bits := s.bits; bits != 0; bits = bitops.ResetLowestSetBit(bits) {
			if !yield(CardFromBitIndex(bitops.ExtractLowestSetBit(bits))) {
				return
			}
		}
	}
}

// Cards returns the cards in deck index order.
func (s CardSet) Cards() []Card {
	cards := make([]Card, 0, s.Len())
	for c := range s.All() {
		cards = append(cards, c)
	}
	return cards
}

// BitMask returns the evaluator hand mask for the set: the OR of every
// member's Card.BitMask.
func (s CardSet) BitMask() uint64 {
	var mask uint64
	for suit := range uint(NumSuits) {
		ranks := (s.bits >> (suit * NumRanks)) & bitops.RankBits
		mask |= ranks << (suit * 16)
	}
	return mask
}

func (s CardSet) aceHighMask() uint64 {
	return bitops.MoveLowAcesHigh(s.BitMask())
}

// String formats the set with UpperLetters, e.g. "[AS 10H KD]".
func (s CardSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(UpperLetters.FormatCards(s.Cards()))
	sb.WriteByte(']')
	return sb.String()
}
