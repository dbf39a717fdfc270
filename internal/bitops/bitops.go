// Package bitops holds the integer primitives the hand evaluator is built from.
//
// A 64-bit hand mask is treated as four 16-bit lanes, one per suit. Lane
// reductions (OR, AND, XOR) collapse the four lanes into a single 16-bit rank
// mask. Population count and trailing-zero count have a hardware path
// (math/bits intrinsics) and a portable path; both always agree.
package bitops

import "math/bits"

const (
	// Lane0 .. Lane3 select one 16-bit lane of a hand mask.
	Lane0 uint64 = 0x000000000000FFFF
	Lane1 uint64 = 0x00000000FFFF0000
	Lane2 uint64 = 0x0000FFFF00000000
	Lane3 uint64 = 0xFFFF000000000000

	// RankBits is the 13 low bits of a lane used by ranks Ace(low)..King.
	RankBits uint64 = 0x1FFF

	// LowAces has bit 0 of every lane set.
	LowAces uint64 = 0x0001000100010001
)

// ExtractLowestSetBit returns x with every bit cleared except the lowest set one.
func ExtractLowestSetBit(x uint64) uint64 {
	return x & -x
}

// ResetLowestSetBit clears the lowest set bit of x.
func ResetLowestSetBit(x uint64) uint64 {
	return x & (x - 1)
}

// PopCount returns the number of set bits in x.
func PopCount(x uint64) int {
	if hardware {
		return bits.OnesCount64(x)
	}
	return PopCountPortable(x)
}

// TrailingZeroCount returns the number of trailing zero bits in x; 64 for x == 0.
func TrailingZeroCount(x uint64) int {
	if hardware {
		return bits.TrailingZeros64(x)
	}
	return TrailingZeroCountPortable(x)
}

// PopCountPortable counts set bits with the SWAR reduction from Hacker's Delight.
func PopCountPortable(x uint64) int {
	x -= (x >> 1) & 0x5555555555555555
	x = (x & 0x3333333333333333) + ((x >> 2) & 0x3333333333333333)
	x = (x + (x >> 4)) & 0x0F0F0F0F0F0F0F0F
	return int((x * 0x0101010101010101) >> 56)
}

// TrailingZeroCountPortable isolates the lowest bit and counts the ones below it.
func TrailingZeroCountPortable(x uint64) int {
	if x == 0 {
		return 64
	}
	return PopCountPortable(ExtractLowestSetBit(x) - 1)
}

// HorizontalOr16 ORs the four 16-bit lanes of x together. Bit i of the result
// is set when bit i is set in any lane.
func HorizontalOr16(x uint64) uint64 {
	x |= x >> 32
	x |= x >> 16
	return x & Lane0
}

// HorizontalAnd16 ANDs the four 16-bit lanes of x together. Bit i of the
// result is set only when bit i is set in every lane.
func HorizontalAnd16(x uint64) uint64 {
	x &= x >> 32
	// The upper lanes were ANDed against zeros so they are already clear.
	return x & (x >> 16)
}

// HorizontalXor16 XORs the four 16-bit lanes of x together. Bit i of the
// result is set when bit i is set in an odd number of lanes.
func HorizontalXor16(x uint64) uint64 {
	x ^= x >> 32
	x ^= x >> 16
	return x & Lane0
}

// CompactLanes13 packs the low 13 bits of each lane into 52 contiguous bits,
// lane 0 first. It is the portable equivalent of a parallel bit extract with
// the mask 0x1FFF1FFF1FFF1FFF.
func CompactLanes13(x uint64) uint64 {
	return x&RankBits |
		(x>>3)&(RankBits<<13) |
		(x>>6)&(RankBits<<26) |
		(x>>9)&(RankBits<<39)
}

// MoveLowAcesHigh moves bit 0 of every lane to bit 13 of the same lane.
func MoveLowAcesHigh(x uint64) uint64 {
	aces := x & LowAces
	return (x &^ aces) | aces<<13
}
