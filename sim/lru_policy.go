package sim

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"
)

// LRUPolicy evicts the least recently used frame. Recency is tracked in a
// simplelru list keyed by frame slot; the list is sized to the table
// capacity so it never evicts on its own, it only orders the slots.
type LRUPolicy struct {
	recency *simplelru.LRU[int, struct{}]
}

// NewLRUPolicy creates an LRU policy for a table of the given capacity
func NewLRUPolicy(capacity int) (*LRUPolicy, error) {
	recency, err := simplelru.NewLRU[int, struct{}](capacity, nil)
	if err != nil {
		return nil, ErrBadCapacity("NewLRUPolicy", capacity)
	}
	return &LRUPolicy{recency: recency}, nil
}

// FindEvictee returns the slot that has gone longest without an access
func (p *LRUPolicy) FindEvictee(frames []Frame) int {
	victim, _, ok := p.recency.GetOldest()
	if !ok {
		// The table only asks for a victim when full, so every slot
		// has been serviced at least once.
		return 0
	}
	return victim
}

// OnOperation moves the serviced slot to the most recent position
func (p *LRUPolicy) OnOperation(frames []Frame, frameIndex int) {
	p.recency.Add(frameIndex, struct{}{})
}

// Name returns the policy identifier
func (p *LRUPolicy) Name() string {
	return PolicyLRU
}
