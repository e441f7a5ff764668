package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Every shuffle in a game draws from one of these so a seed replays the
// whole game.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewTimeSeeded returns a generator seeded from the wall clock
func NewTimeSeeded() *rand.Rand {
	return New(time.Now().UnixNano())
}

// FromSeed returns New(seed), or a time seeded generator when seed is 0
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		return NewTimeSeeded()
	}
	return New(seed)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
