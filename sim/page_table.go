package sim

// Outcome classifies how a single access resolved
type Outcome uint8

const (
	OutcomeHit Outcome = iota
	OutcomeFaultNoEviction
	OutcomeFaultEvictClean
	OutcomeFaultEvictDirty
)

// String returns the diagnostic-stream label for the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "Hit"
	case OutcomeFaultNoEviction:
		return "Page Fault - No Eviction"
	case OutcomeFaultEvictClean:
		return "Page Fault - Evict Clean"
	case OutcomeFaultEvictDirty:
		return "Page Fault - Evict Dirty"
	default:
		return "Unknown"
	}
}

// AccessResult reports where an access landed and what it cost
type AccessResult struct {
	FrameIndex int
	Outcome    Outcome
}

// PageTable owns the fixed-capacity frame array, the page-to-slot mapping
// and the hit/fault/write-back counters. Victim selection is delegated to
// the active eviction policy; all other frame state is managed here.
type PageTable struct {
	capacity uint32
	frames   []Frame
	mapping  map[uint64]int // page id -> frame slot
	policy   EvictionPolicy
	stats    *Stats
}

// NewPageTable creates an empty table with the given capacity and policy
func NewPageTable(capacity uint32, policy EvictionPolicy) (*PageTable, error) {
	if capacity == 0 {
		return nil, ErrBadCapacity("NewPageTable", 0)
	}
	return &PageTable{
		capacity: capacity,
		frames:   make([]Frame, 0, capacity),
		mapping:  make(map[uint64]int, capacity),
		policy:   policy,
		stats:    NewStats(),
	}, nil
}

// Access resolves one operation: hit lookup, fault handling with eviction
// when the table is full, dirty-bit maintenance and policy notification.
// The frame array grows by appending until it reaches capacity and never
// shrinks afterwards.
func (pt *PageTable) Access(op Operation) AccessResult {
	pt.stats.RecordAccess()

	if index, ok := pt.lookup(op.Page); ok {
		if op.Mode == Write {
			pt.frames[index].Dirty = true
		}
		pt.policy.OnOperation(pt.frames, index)
		return AccessResult{FrameIndex: index, Outcome: OutcomeHit}
	}

	pt.stats.RecordFault()

	var index int
	var outcome Outcome

	if len(pt.frames) < int(pt.capacity) {
		index = len(pt.frames)
		pt.frames = append(pt.frames, Frame{PageID: op.Page, Referenced: true})
		outcome = OutcomeFaultNoEviction
	} else {
		index = pt.policy.FindEvictee(pt.frames)
		victim := pt.frames[index]
		if victim.Dirty {
			pt.stats.RecordWriteBack()
			outcome = OutcomeFaultEvictDirty
		} else {
			outcome = OutcomeFaultEvictClean
		}
		// Drop the victim's mapping entry at the moment of eviction
		// so no stale slot reference survives.
		delete(pt.mapping, victim.PageID)
		pt.frames[index] = Frame{PageID: op.Page, Referenced: true}
	}
	pt.mapping[op.Page] = index

	if op.Mode == Write {
		pt.frames[index].Dirty = true
	}
	pt.policy.OnOperation(pt.frames, index)
	return AccessResult{FrameIndex: index, Outcome: outcome}
}

// lookup returns the slot holding pageID. The mapped frame's stored page
// id is verified before the hit is declared; a mapping entry is never
// trusted on presence alone.
func (pt *PageTable) lookup(pageID uint64) (int, bool) {
	index, ok := pt.mapping[pageID]
	if !ok {
		return 0, false
	}
	if pt.frames[index].PageID != pageID {
		return 0, false
	}
	return index, true
}

// ResidentFrames returns the number of occupied slots
func (pt *PageTable) ResidentFrames() int {
	return len(pt.frames)
}

// Capacity returns the configured frame count
func (pt *PageTable) Capacity() uint32 {
	return pt.capacity
}

// Stats returns the table's counters
func (pt *PageTable) Stats() *Stats {
	return pt.stats
}
