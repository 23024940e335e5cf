package sim

import "fmt"

// PageShift and OffsetMask define the 4KiB page geometry used to split
// raw trace addresses into a page number and an in-page offset.
const (
	PageShift  = 12
	OffsetMask = 0xFFF
)

// AccessMode distinguishes read and write accesses
type AccessMode uint8

const (
	Read AccessMode = iota
	Write
)

// String returns the trace-file spelling of the mode
func (m AccessMode) String() string {
	if m == Write {
		return "W"
	}
	return "R"
}

// Operation is one recorded memory access from the trace.
// Offset is carried for diagnostics but never influences replacement.
type Operation struct {
	Page   uint64
	Offset uint64
	Mode   AccessMode
}

// Address reassembles the original virtual address
func (op Operation) Address() uint64 {
	return op.Page<<PageShift | op.Offset
}

// String formats the operation the way it appeared in the trace
func (op Operation) String() string {
	return fmt.Sprintf("%08x %s", op.Address(), op.Mode)
}

// Frame is one resident slot of the page table.
// Dirty and Referenced are mutated by the table and by the active policy;
// the whole frame is replaced when the slot is reassigned.
type Frame struct {
	PageID     uint64
	Dirty      bool
	Referenced bool
}
