package raid

import "time"

// Rand is the random source the generator and the particle system draw from.
// Both *SimpleRNG and *math/rand.Rand satisfy it.
type Rand interface {
	Float64() float64
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG; its whole state is one word, so snapshots can carry it.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// State returns the current generator state.
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// uniform returns a value in [lo, hi).
func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// chance returns true with probability p.
func chance(rng Rand, p float64) bool {
	return rng.Float64() < p
}

// sign returns -1 or +1 with equal probability.
func sign(rng Rand) float64 {
	if rng.Float64() < 0.5 {
		return -1
	}
	return 1
}

// Clock supplies the time used for the fire cooldown.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// Now returns the wall time with its monotonic reading, so Sub is immune to clock changes.
func (systemClock) Now() time.Time {
	return time.Now()
}
