package sim

// NRUPolicy implements not-recently-used replacement. Frames fall into
// four classes ordered by the key referenced*2 + dirty:
//
//	0: unreferenced, clean  (best victim)
//	1: unreferenced, dirty
//	2: referenced, clean
//	3: referenced, dirty    (worst victim)
//
// Referenced bits are cleared wholesale every refreshRate accesses, which
// is what keeps "recently" meaningful.
type NRUPolicy struct {
	refreshRate    uint64
	refreshCounter uint64
}

// NewNRUPolicy creates an NRU policy. refreshRate must be positive;
// NewPolicy rejects a zero rate before construction.
func NewNRUPolicy(refreshRate uint64) *NRUPolicy {
	return &NRUPolicy{refreshRate: refreshRate}
}

// FindEvictee returns the lowest-index frame of the most evictable class
func (p *NRUPolicy) FindEvictee(frames []Frame) int {
	victim := 0
	victimClass := nruClass(frames[0])
	for i := 1; i < len(frames); i++ {
		if c := nruClass(frames[i]); c < victimClass {
			victimClass = c
			victim = i
		}
	}
	return victim
}

// OnOperation counts the access, clears every referenced bit when the
// refresh period elapses, and finally marks the serviced frame referenced.
// The final set happens even on a refresh step, so the frame just touched
// never reads as stale.
func (p *NRUPolicy) OnOperation(frames []Frame, frameIndex int) {
	p.refreshCounter++
	if p.refreshCounter == p.refreshRate {
		for i := range frames {
			frames[i].Referenced = false
		}
		p.refreshCounter = 0
	}
	frames[frameIndex].Referenced = true
}

// Name returns the policy identifier
func (p *NRUPolicy) Name() string {
	return PolicyNRU
}

func nruClass(f Frame) int {
	class := 0
	if f.Referenced {
		class += 2
	}
	if f.Dirty {
		class++
	}
	return class
}
