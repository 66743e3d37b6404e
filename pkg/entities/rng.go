package entities

import (
	"math/rand"
	"time"
)

// RNG abstracts random number generation so a table can be replayed from a
// seed. *rand.Rand satisfies it.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// NewRNG returns a random source seeded with seed, or with the current time
// when seed is zero
func NewRNG(seed int64) RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
