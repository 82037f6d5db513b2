package dodgeball

import (
	"math/rand"
	"time"
)

// Source is the randomness the simulation draws from. *rand.Rand satisfies
// it; tests pass a scripted source to pin exact coordinates.
type Source interface {
	// Intn returns a value in [0, n). n is always positive.
	Intn(n int) int
}

// NewRandSource returns a seeded pseudo-random source.
// A zero seed selects a time-based one.
func NewRandSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
