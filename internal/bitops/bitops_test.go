package bitops

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowestSetBit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      uint64
		extract uint64
		reset   uint64
	}{
		{0, 0, 0},
		{1, 1, 0},
		{0b1011000, 0b1000, 0b1010000},
		{1 << 63, 1 << 63, 0},
		{^uint64(0), 1, ^uint64(0) - 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.extract, ExtractLowestSetBit(tt.in), "extract %b", tt.in)
		assert.Equal(t, tt.reset, ResetLowestSetBit(tt.in), "reset %b", tt.in)
	}
}

func TestPortableMatchesHardware(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(7))
	values := []uint64{0, 1, 1 << 63, ^uint64(0), 0x1FFF1FFF1FFF1FFF}
	for range 10000 {
		values = append(values, rng.Uint64(), rng.Uint64()&rng.Uint64()&rng.Uint64())
	}

	for _, v := range values {
		require.Equal(t, bits.OnesCount64(v), PopCountPortable(v), "popcount %#x", v)
		require.Equal(t, bits.TrailingZeros64(v), TrailingZeroCountPortable(v), "tzcnt %#x", v)
		require.Equal(t, PopCountPortable(v), PopCount(v))
		require.Equal(t, TrailingZeroCountPortable(v), TrailingZeroCount(v))
	}
}

func TestHorizontalReductions(t *testing.T) {
	t.Parallel()
	// Rank 3 in all four lanes, rank 5 in lanes 0 and 2, rank 9 in lane 3 only,
	// rank 1 in lanes 0, 1 and 3.
	x := uint64(0)
	for lane := range 4 {
		x |= 1 << (3 + 16*lane)
	}
	x |= 1<<5 | 1<<(5+32)
	x |= 1 << (9 + 48)
	x |= 1<<1 | 1<<(1+16) | 1<<(1+48)

	assert.Equal(t, uint64(1<<1|1<<3|1<<5|1<<9), HorizontalOr16(x))
	assert.Equal(t, uint64(1<<3), HorizontalAnd16(x))
	assert.Equal(t, uint64(1<<1|1<<9), HorizontalXor16(x))
}

func TestHorizontalReductionsMatchLaneLoop(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(11))
	for range 5000 {
		x := rng.Uint64()
		var or, and, xor uint64
		and = Lane0
		for lane := range 4 {
			l := (x >> (16 * lane)) & Lane0
			or |= l
			and &= l
			xor ^= l
		}
		require.Equal(t, or, HorizontalOr16(x))
		require.Equal(t, and, HorizontalAnd16(x))
		require.Equal(t, xor, HorizontalXor16(x))
	}
}

// extractBits is a reference parallel bit extract used to check CompactLanes13.
func extractBits(x, mask uint64) uint64 {
	var out uint64
	var pos uint
	for mask != 0 {
		low := ExtractLowestSetBit(mask)
		if x&low != 0 {
			out |= 1 << pos
		}
		pos++
		mask = ResetLowestSetBit(mask)
	}
	return out
}

func TestCompactLanes13(t *testing.T) {
	t.Parallel()
	const mask = 0x1FFF1FFF1FFF1FFF
	rng := rand.New(rand.NewSource(3))
	for range 5000 {
		x := rng.Uint64()
		require.Equal(t, extractBits(x, mask), CompactLanes13(x), "x=%#x", x)
	}

	for lane := range 4 {
		for rank := range 13 {
			in := uint64(1) << (rank + 16*lane)
			assert.Equal(t, uint64(1)<<(rank+13*lane), CompactLanes13(in))
		}
	}
}

func TestMoveLowAcesHigh(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(1<<13), MoveLowAcesHigh(1))
	assert.Equal(t, uint64(1<<(13+48)|1<<(4+48)), MoveLowAcesHigh(1<<48|1<<(4+48)))
	assert.Equal(t, uint64(0x2000200020002000), MoveLowAcesHigh(LowAces))
	assert.Equal(t, uint64(0b11110), MoveLowAcesHigh(0b11110))
}

func BenchmarkPopCount(b *testing.B) {
	b.ReportAllocs()
	var sink int
	for i := 0; i < b.N; i++ {
		sink += PopCount(uint64(i) * 0x9E3779B97F4A7C15)
	}
	_ = sink
}

func BenchmarkPopCountPortable(b *testing.B) {
	b.ReportAllocs()
	var sink int
	for i := 0; i < b.N; i++ {
		sink += PopCountPortable(uint64(i) * 0x9E3779B97F4A7C15)
	}
	_ = sink
}
