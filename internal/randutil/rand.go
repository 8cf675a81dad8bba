package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from seed. Two sources
// built from the same seed produce the same shuffle.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// SeedFromClock derives a seed from the clock's current time.
func SeedFromClock(clock quartz.Clock) int64 {
	return clock.Now().UnixNano()
}

// splitmix64 finalizer
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
