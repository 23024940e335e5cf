package sim

// EvictionPolicy chooses victims for a full page table.
// Allows different algorithms (Optimal, Clock, NRU, Random, LRU)
type EvictionPolicy interface {
	// FindEvictee selects the frame slot to reclaim.
	// Called only when the table is full and the accessed page is not
	// resident. Must return a valid index into frames and must not
	// touch any frame's PageID. Clock may clear Referenced bits while
	// scanning.
	FindEvictee(frames []Frame) int

	// OnOperation records policy bookkeeping for the slot an access
	// resolved to, whether the access was a hit or a fault. Called
	// exactly once per access, after the slot is settled.
	OnOperation(frames []Frame, frameIndex int)

	// Name returns the policy's CLI identifier
	Name() string
}

// Policy identifiers accepted by NewPolicy and the CLI
const (
	PolicyOptimal = "opt"
	PolicyClock   = "clock"
	PolicyNRU     = "nru"
	PolicyRandom  = "rand"
	PolicyLRU     = "lru"
)

// NewPolicy creates the policy selected by the configuration.
// trace must be the complete operation sequence the simulation will
// replay; only the Optimal policy inspects it.
func NewPolicy(config *Config, trace []Operation) (EvictionPolicy, error) {
	switch config.Policy {
	case PolicyOptimal:
		return NewOptimalPolicy(trace, int(config.FrameCount)), nil
	case PolicyClock:
		return NewClockPolicy(int(config.FrameCount)), nil
	case PolicyNRU:
		if config.RefreshRate == 0 {
			return nil, ErrMissingRefreshRate("NewPolicy")
		}
		return NewNRUPolicy(config.RefreshRate), nil
	case PolicyRandom:
		return NewRandomPolicy(int(config.FrameCount), config.Seed), nil
	case PolicyLRU:
		return NewLRUPolicy(int(config.FrameCount))
	default:
		return nil, ErrUnknownPolicy("NewPolicy", config.Policy)
	}
}
