package sim

import "math/rand"

// RandomPolicy evicts a uniformly chosen frame. The generator is owned by
// the policy and seeded explicitly, so runs with the same seed replay the
// same eviction sequence.
type RandomPolicy struct {
	capacity int
	rng      *rand.Rand
}

// NewRandomPolicy creates a random policy seeded with the given value
func NewRandomPolicy(capacity int, seed int64) *RandomPolicy {
	return &RandomPolicy{
		capacity: capacity,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// FindEvictee draws a victim uniformly from [0, capacity)
func (p *RandomPolicy) FindEvictee(frames []Frame) int {
	return p.rng.Intn(p.capacity)
}

// OnOperation is a no-op; random replacement keeps no access history
func (p *RandomPolicy) OnOperation(frames []Frame, frameIndex int) {}

// Name returns the policy identifier
func (p *RandomPolicy) Name() string {
	return PolicyRandom
}
