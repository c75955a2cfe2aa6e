package moves

import "math/rand"

// defaultSeed is the fixed "zero" seed used when a caller passes seed==0,
// keeping reproducible defaults available without forcing every caller to
// pick a seed. Grounded on tsp/rng.go's rngFromSeed policy.
const defaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand for the given seed. Policy:
// seed==0 uses defaultSeed; any other value is used verbatim. Both drivers
// (mc, remc) construct exactly one RNG this way per run. mc draws every move
// and acceptance decision from that one stream; remc does not: it uses the
// stream only as the base from which DeriveRNG splits one substream per
// replica slot.
//
// Complexity: O(1).
func NewRNG(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier with a SplitMix64
// avalanche finalizer, giving well-decorrelated child seeds from one parent.
// Grounded on tsp/rng.go's deriveSeed (same constants; see Vigna 2014).
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream from a base RNG
// and a stream identifier (e.g. a replica index); remc.Run and
// remc.RunParallel both give each replica slot its own stream this way.
// base.Int63() is consumed once first so
// that reusing the same stream id twice from the same base never produces
// identical children. Grounded on tsp/rng.go's deriveRNG.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := base.Int63()

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// shuffleOrder returns a random permutation of [0, n) drawn from rng, used
// by every move kind to decide try-order among candidates (ends, interior
// indices, crankshaft windows, rotation signs).
//
// Complexity: O(n).
func shuffleOrder(n int, rng *rand.Rand) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })

	return order
}
