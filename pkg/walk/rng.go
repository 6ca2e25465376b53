package walk

import "math/rand"

// Deterministic RNG derivation: every Walker gets its own *rand.Rand,
// seeded by mixing a run-level seed with the walker's stream id (its
// starting node and epoch, typically) so that re-running the same
// (seed, start, epoch) reproduces the same walk bit-for-bit, regardless of
// how many other walkers ran concurrently alongside it.

// deriveSeed mixes a parent seed and a stream id into a new 64-bit seed
// using a SplitMix64-style avalanche mix.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// rngFromSeed returns a deterministic *rand.Rand for a run-level seed.
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// deriveRNG returns an independent deterministic stream derived from a
// run-level seed and a stream id (e.g. a starting node index combined with
// an epoch number). Two calls with the same (seed, stream) always produce
// the same sequence of draws.
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// shufflePermutation returns a random permutation of 0..n-1 via an
// in-place Fisher-Yates shuffle driven by rng.
func shufflePermutation(n int, rng *rand.Rand) []uint32 {
	p := make([]uint32, n)
	for i := range p {
		p[i] = uint32(i)
	}
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
