package sampling

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/ARM-software/golang-folds/hashing"
)

// Second PCG word, so that a seed of 0 still yields a usable stream.
const pcgIncrement uint64 = 0x9e3779b97f4a7c15

// RandomSource is a pseudo-random source based on PCG. It is safe for concurrent use, so that runs of
// the same reservoir can share it.
type RandomSource struct {
	rng *rand.Rand
	mu  sync.Mutex
}

// IntRange returns a uniformly distributed integer in [lower, upper]. Bounds are swapped if given in the wrong order.
func (s *RandomSource) IntRange(lower, upper int) int {
	if upper < lower {
		lower, upper = upper, lower
	}
	if upper == lower {
		return lower
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lower + s.rng.IntN(upper-lower+1)
}

// NewRandomSource returns a source producing the same stream for the same seed.
func NewRandomSource(seed uint64) *RandomSource {
	return &RandomSource{rng: rand.New(rand.NewPCG(seed, seed^pcgIncrement))} //nolint:gosec // sampling does not need cryptographic randomness
}

// NewRandomSourceFromLabel returns a source seeded from the xxhash of label, so that a named run can be reproduced.
func NewRandomSourceFromLabel(label string) *RandomSource {
	source, _ := NewRandomSourceFromHashedLabel(hashing.HashXXHash, label)
	return source
}

// NewRandomSourceFromHashedLabel is like NewRandomSourceFromLabel but hashes label with the algorithm hashAlgorithm (see hashing.SupportedAlgorithms).
func NewRandomSourceFromHashedLabel(hashAlgorithm, label string) (*RandomSource, error) {
	seed, err := hashing.SeedFromLabel(hashAlgorithm, label)
	if err != nil {
		return nil, err
	}
	return NewRandomSource(seed), nil
}

// NewRandomSourceFromTime returns a source seeded from the current time.
func NewRandomSourceFromTime() *RandomSource {
	return NewRandomSource(uint64(time.Now().UnixNano())) //nolint:gosec // the sign of the timestamp is irrelevant
}
