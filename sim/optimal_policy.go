package sim

import "math"

// NeverUsed marks an operation whose page is never touched again.
// It dominates every finite next-use distance during victim selection.
const NeverUsed = math.MaxInt

// OptimalPolicy implements Belady's optimal replacement. It requires the
// full operation sequence up front and evicts the resident page whose next
// use lies farthest in the future. Unrealizable in a real MMU; serves as
// the lower bound the other policies are measured against.
type OptimalPolicy struct {
	// nextUse[i] is the index of the next operation touching the same
	// page as operation i, or NeverUsed if there is none.
	nextUse []int

	// frameNextUse shadows the table's frame slots: the next-use index
	// recorded when each slot was last serviced.
	frameNextUse []int

	// cursor is the position of the current access within the
	// precomputed sequence. Advanced exactly once per access.
	cursor int
}

// NewOptimalPolicy precomputes next-use distances for the given trace.
// A single backward scan tracks the most recent occurrence of each page;
// operations whose page never reappears get NeverUsed.
func NewOptimalPolicy(trace []Operation, capacity int) *OptimalPolicy {
	nextUse := make([]int, len(trace))
	lastSeen := make(map[uint64]int, capacity)

	for i := len(trace) - 1; i >= 0; i-- {
		if next, ok := lastSeen[trace[i].Page]; ok {
			nextUse[i] = next
		} else {
			nextUse[i] = NeverUsed
		}
		lastSeen[trace[i].Page] = i
	}

	return &OptimalPolicy{
		nextUse:      nextUse,
		frameNextUse: make([]int, capacity),
	}
}

// FindEvictee returns the slot whose recorded next use is farthest away.
// Finite ties resolve to the lowest index via the strict max-scan. When the
// winner is never used again, the candidates tied at NeverUsed are
// re-scanned preferring a clean frame (no write-back), lowest index first.
func (p *OptimalPolicy) FindEvictee(frames []Frame) int {
	maxIndex := 0
	maxNext := p.frameNextUse[0]
	for i := 1; i < len(frames); i++ {
		if p.frameNextUse[i] > maxNext {
			maxNext = p.frameNextUse[i]
			maxIndex = i
		}
	}

	if maxNext != NeverUsed {
		return maxIndex
	}

	// Several frames may share NeverUsed; evicting a clean one saves a
	// write-back without costing any future fault.
	cleanIndex := -1
	firstIndex := -1
	for i := 0; i < len(frames); i++ {
		if p.frameNextUse[i] != NeverUsed {
			continue
		}
		if firstIndex < 0 {
			firstIndex = i
		}
		if !frames[i].Dirty && cleanIndex < 0 {
			cleanIndex = i
		}
	}
	if cleanIndex >= 0 {
		return cleanIndex
	}
	return firstIndex
}

// OnOperation records the serviced slot's next-use distance and advances
// the cursor. The cursor must stay aligned with the precomputed sequence,
// so it moves on every access regardless of hit or fault.
func (p *OptimalPolicy) OnOperation(frames []Frame, frameIndex int) {
	p.frameNextUse[frameIndex] = p.nextUse[p.cursor]
	p.cursor++
}

// Name returns the policy identifier
func (p *OptimalPolicy) Name() string {
	return PolicyOptimal
}
