package sim

// ClockPolicy implements second-chance replacement. A single hand rotates
// over the frame slots; a referenced frame gets its bit cleared and is
// skipped once, an unreferenced frame is evicted. One call visits each
// slot at most twice: after a full sweep every bit is clear.
type ClockPolicy struct {
	capacity int
	hand     int
}

// NewClockPolicy creates a clock policy with the hand parked at slot 0
func NewClockPolicy(capacity int) *ClockPolicy {
	return &ClockPolicy{capacity: capacity}
}

// FindEvictee sweeps the hand until it lands on an unreferenced frame,
// clearing referenced bits along the way. The hand is left one past the
// victim so the freshly loaded page is inspected last on the next sweep.
func (p *ClockPolicy) FindEvictee(frames []Frame) int {
	for {
		if frames[p.hand].Referenced {
			frames[p.hand].Referenced = false
			p.hand = (p.hand + 1) % p.capacity
			continue
		}
		victim := p.hand
		p.hand = (p.hand + 1) % p.capacity
		return victim
	}
}

// OnOperation grants the serviced frame its second chance
func (p *ClockPolicy) OnOperation(frames []Frame, frameIndex int) {
	frames[frameIndex].Referenced = true
}

// Name returns the policy identifier
func (p *ClockPolicy) Name() string {
	return PolicyClock
}
