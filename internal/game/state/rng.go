package state

import "math/rand"

// RNG is the deterministic random stream carried inside the root value.
//
// # Determinism
//
// Every draw derives a fresh math/rand source from the seed and the draw
// counter, then returns the advanced stream alongside the result. Replaying
// the same action sequence from the same initial state therefore reproduces
// identical results; this is a correctness requirement, not an optimization.
type RNG struct {
	Seed  int64  `json:"seed"`
	Draws uint64 `json:"draws"`
}

// NewRNG creates a stream from a seed.
func NewRNG(seed int64) RNG {
	return RNG{Seed: seed}
}

func (r RNG) source() *rand.Rand {
	mixed := r.Seed ^ int64(r.Draws*0x9e3779b97f4a7c15+0x2545f4914f6cdd1d)
	return rand.New(rand.NewSource(mixed))
}

// Intn returns a value in [0, n) and the advanced stream.
func (r RNG) Intn(n int) (int, RNG) {
	if n <= 0 {
		panic("state: Intn with non-positive bound")
	}
	v := r.source().Intn(n)
	r.Draws++
	return v, r
}

// Shuffle permutes n elements through swap and returns the advanced stream.
func (r RNG) Shuffle(n int, swap func(i, j int)) RNG {
	r.source().Shuffle(n, swap)
	r.Draws++
	return r
}
