// Package randutil derives reproducible random sources from int64 seeds.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed. Both PCG
// state words are derived from it so every call site gets the same sequence
// for the same seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Streams returns n independent sources for parallel workers. Stream i
// depends only on seed and i, so results do not change with scheduling.
func Streams(seed int64, n int) []*rand.Rand {
	streams := make([]*rand.Rand, n)
	u := uint64(seed)
	for i := range streams {
		streams[i] = New(int64(mix(u + uint64(i+1)*goldenRatio64)))
	}
	return streams
}

// mix is the splitmix64 finaliser.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
