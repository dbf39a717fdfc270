package poker

import (
	"sync"

	"github.com/lox/cardeval/internal/bitops"
)

const (
	// A lookup key holds the five ranks as 4-bit nibbles, in deck index order,
	// plus one bit that is set when all five cards share a suit.
	lookupSuitedBit  = 1 << 20
	lookupTableSize  = 1 << 21
	lookupRankBits   = 4
	lookupHandLength = 5
)

// LookupEvaluator classifies hands with a precomputed table indexed by the
// ranks of the five cards and whether they share a suit. The table is built
// from the bitwise evaluator the first time any LookupEvaluator is used and
// is shared by all of them.
type LookupEvaluator struct{}

var lookupTable = sync.OnceValue(buildLookupTable)

// EvaluateFiveCardHand implements Evaluator.
func (LookupEvaluator) EvaluateFiveCardHand(cards []Card) (PokerHand, error) {
	if len(cards) != lookupHandLength {
		return 0, &HandSizeError{Expected: lookupHandLength, Actual: len(cards)}
	}
	set, err := distinctSet(cards)
	if err != nil {
		return 0, err
	}
	return lookupTable()[lookupKey(set.bits)], nil
}

// EvaluateSevenCardHand implements Evaluator.
func (LookupEvaluator) EvaluateSevenCardHand(cards []Card) (PokerHand, error) {
	if len(cards) != 7 {
		return 0, &HandSizeError{Expected: 7, Actual: len(cards)}
	}
	if _, err := distinctSet(cards); err != nil {
		return 0, err
	}

	table := lookupTable()
	var best PokerHand
	for _, s := range sevenCardSubsets {
		bits := cards[s[0]].BitIndex() | cards[s[1]].BitIndex() | cards[s[2]].BitIndex() |
			cards[s[3]].BitIndex() | cards[s[4]].BitIndex()
		if hand := table[lookupKey(bits)]; hand > best {
			best = hand
		}
	}
	return best, nil
}

func distinctSet(cards []Card) (CardSet, error) {
	var set CardSet
	for _, c := range cards {
		if !c.Valid() {
			return CardSet{}, ErrInvalidCard
		}
		set.bits |= c.BitIndex()
	}
	if set.Len() != len(cards) {
		return CardSet{}, ErrDuplicateCard
	}
	return set, nil
}

// lookupKey builds the table key for five cards given as BitIndex bits.
func lookupKey(bits uint64) uint32 {
	var key, suits uint32
	for i := 0; bits != 0; i++ {
		index := bitops.TrailingZeroCount(bits)
		key |= uint32(index%NumRanks) << (i * lookupRankBits)
		suits |= 1 << (index / NumRanks)
		bits = bitops.ResetLowestSetBit(bits)
	}
	if suits&(suits-1) == 0 {
		key |= lookupSuitedBit
	}
	return key
}

func buildLookupTable() []PokerHand {
	table := make([]PokerHand, lookupTableSize)
	deck := FullDeck()
	hands, _ := Combinations(deck[:], lookupHandLength)
	for set := range hands {
		table[lookupKey(set.bits)] = evaluateAceHigh(set.aceHighMask())
	}
	return table
}
