package hashes

import (
	"math/big"
	"math/rand"
)

// FindMultipliers searches for n distinct odd 31-bit primes, suitable as
// family multipliers. This is the offline utility that produced the
// constants baked into this package; the library never calls it at runtime.
// The search is deterministic for a given seed.
func FindMultipliers(n int, seed int64) []int32 {
	rnd := rand.New(rand.NewSource(seed))
	found := make([]int32, 0, n)
	seen := make(map[int32]bool)
	for len(found) < n {
		c := int32(rnd.Int31n(1<<30)) | (1 << 30) | 1 // odd, top bit of 31 set
		if seen[c] {
			continue
		}
		seen[c] = true
		if big.NewInt(int64(c)).ProbablyPrime(20) {
			tracer().Debugf("found multiplier candidate %#x", c)
			found = append(found, c)
		}
	}
	return found
}
