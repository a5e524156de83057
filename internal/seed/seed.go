// Package seed provides the deterministic pseudo-random machinery behind
// checkpoint generation: a small 32-bit PRNG, seed derivation from lesson
// coordinates, and the option shuffle.
//
// Everything here is pure. The same inputs always produce the same outputs,
// which is what makes cached checkpoints stable across reloads and lets the
// fallback generator be tested byte-for-byte.
package seed

import "hash/fnv"

// Rand is a tiny 32-bit PRNG (mulberry32). Not cryptographic — it only has
// to be fast, seedable, and identical across platforms.
type Rand struct {
	state uint32
}

// New creates a Rand with the given seed.
func New(s uint32) *Rand {
	return &Rand{state: s}
}

// Uint32 returns the next value in the sequence.
func (r *Rand) Uint32() uint32 {
	r.state += 0x6D2B79F5
	t := r.state
	t = (t ^ (t >> 15)) * (t | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return t ^ (t >> 14)
}

// Intn returns a value in [0, n). n must be positive.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Uint32() % uint32(n))
}

// Derive computes a stable seed from a lesson ID, section index, and an
// intent-specific offset. Distinct sections and intents never collide on
// the same sequence, and repeat visits always land on the same one.
func Derive(lessonID string, sectionIndex int, intentOffset uint32) uint32 {
	h := fnv.New32a()
	h.Write([]byte(lessonID))
	h.Write([]byte{byte(sectionIndex), byte(sectionIndex >> 8)})
	return h.Sum32() + uint32(sectionIndex)*2654435761 + intentOffset
}
