package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
	"sync"
)

// pcgStream is mixed into the seed to pick the PCG increment
const pcgStream = 0x9e3779b97f4a7c15

// RandomFloat returns a random float64 between 0.0 and 1.0
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// NewSeededSource returns a deterministic PCG generator. Two sources with the
// same seed produce the same sequence.
func NewSeededSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^pcgStream)) //nolint:gosec // Reproducible simulation
}

// SecureSeed reads a seed from crypto/rand
func SecureSeed() (uint64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}

// NewSource returns a PCG generator seeded from crypto/rand
func NewSource() (*rand.Rand, error) {
	seed, err := SecureSeed()
	if err != nil {
		return nil, err
	}
	return NewSeededSource(seed), nil
}

// LockedSource serializes access to a generator shared between goroutines
type LockedSource struct {
	mu  sync.Mutex
	src interface{ Float64() float64 }
}

// NewLockedSource wraps src
func NewLockedSource(src interface{ Float64() float64 }) *LockedSource {
	return &LockedSource{src: src}
}

// Float64 returns the next value of the wrapped source
func (l *LockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}
