package poker

import (
	"cmp"
	"strings"

	"github.com/lox/cardeval/internal/bitops"
)

// PokerHand is the strength of a classified five card hand, packed so that a
// greater value is always a strictly better hand:
//
//	bits  0-12  secondary rank mask (kickers), ace high only
//	bits 13-26  primary rank mask; bit 13 is a low ace, bit 26 a high ace
//	bits 27-30  hand type
//
// Comparing two PokerHands with < or Compare therefore orders by hand type,
// then by primary ranks as a set, then by secondary ranks.
type PokerHand uint32

const (
	handTypeShift   = 27
	primaryShift    = 13
	handTypeMask    = 0x78000000
	primaryRankMask = 0x07FFE000
	secondaryMask   = 0x00001FFF
	aceHighRankBit  = 1 << 13
)

// newPokerHand packs a hand. Both rank masks use bit 13 for a high ace; only
// the primary mask may also use bit 0 for a low ace, so the secondary mask is
// stored shifted down one bit.
func newPokerHand(t HandType, primary, secondary uint64) PokerHand {
	return PokerHand(uint32(t)<<handTypeShift |
		uint32(primary)<<primaryShift |
		uint32(secondary)>>1)
}

// Type returns the hand category.
func (h PokerHand) Type() HandType {
	return HandType((h & handTypeMask) >> handTypeShift)
}

// PrimaryRanks returns the ranks that decide the category, highest first.
// For a five-high straight the ace comes last.
func (h PokerHand) PrimaryRanks() []Rank {
	return ranksFromMask(uint64(h&primaryRankMask) >> primaryShift)
}

// SecondaryRanks returns the kicker ranks, highest first. It is empty for
// hands whose primary ranks already use all five cards.
func (h PokerHand) SecondaryRanks() []Rank {
	return ranksFromMask(uint64(h&secondaryMask) << 1)
}

// Compare returns -1 if h is weaker than other, 0 if they tie and 1 if h is stronger.
func (h PokerHand) Compare(other PokerHand) int {
	return cmp.Compare(h, other)
}

// Beats reports whether h is strictly stronger than other.
func (h PokerHand) Beats(other PokerHand) bool {
	return h.Compare(other) > 0
}

// Ties reports whether h and other are of equal strength.
func (h PokerHand) Ties(other PokerHand) bool {
	return h.Compare(other) == 0
}

// String returns e.g. "Four of a Kind [Ace] [King]".
func (h PokerHand) String() string {
	var sb strings.Builder
	sb.WriteString(h.Type().String())
	writeRanks(&sb, h.PrimaryRanks())
	if h&secondaryMask != 0 {
		writeRanks(&sb, h.SecondaryRanks())
	}
	return sb.String()
}

func writeRanks(sb *strings.Builder, ranks []Rank) {
	sb.WriteString(" [")
	for i, r := range ranks {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(r.String())
	}
	sb.WriteByte(']')
}

// ranksFromMask converts a 14-bit rank mask into ranks, highest first. Bit
// 13 and bit 0 both mean ace.
func ranksFromMask(mask uint64) []Rank {
	ranks := make([]Rank, bitops.PopCount(mask))
	for i := len(ranks) - 1; mask != 0; i-- {
		ranks[i] = rankFromBit(bitops.TrailingZeroCount(mask))
		mask = bitops.ResetLowestSetBit(mask)
	}
	return ranks
}

func rankFromBit(bit int) Rank {
	if bit == 13 {
		return Ace
	}
	return Rank(bit)
}
