package sim

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Stats tracks the three monotonic counters of a simulation run
type Stats struct {
	accesses   atomic.Uint64
	faults     atomic.Uint64
	writeBacks atomic.Uint64
}

// NewStats creates a zeroed counter set
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) RecordAccess() {
	s.accesses.Add(1)
}

func (s *Stats) RecordFault() {
	s.faults.Add(1)
}

func (s *Stats) RecordWriteBack() {
	s.writeBacks.Add(1)
}

// Getters

func (s *Stats) GetAccesses() uint64 {
	return s.accesses.Load()
}

func (s *Stats) GetFaults() uint64 {
	return s.faults.Load()
}

func (s *Stats) GetWriteBacks() uint64 {
	return s.writeBacks.Load()
}

// GetHitRate returns the fraction of accesses that hit a resident page
func (s *Stats) GetHitRate() float64 {
	accesses := s.accesses.Load()
	if accesses == 0 {
		return 0.0
	}
	return float64(accesses-s.faults.Load()) / float64(accesses)
}

// Snapshot is a point-in-time copy of the counters
type StatsSnapshot struct {
	Accesses   uint64
	Faults     uint64
	WriteBacks uint64
	HitRate    float64
}

// Snapshot captures the current counter values
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Accesses:   s.GetAccesses(),
		Faults:     s.GetFaults(),
		WriteBacks: s.GetWriteBacks(),
		HitRate:    s.GetHitRate(),
	}
}

// LogStats logs the summary report using structured logging
func (s *Stats) LogStats(logger *slog.Logger, policy string, frameCount uint32) {
	logger.Info("Simulation Summary",
		slog.String("policy", policy),
		slog.Uint64("frames", uint64(frameCount)),
		slog.Group("counters",
			slog.Uint64("memory_accesses", s.GetAccesses()),
			slog.Uint64("page_faults", s.GetFaults()),
			slog.Uint64("write_backs", s.GetWriteBacks()),
			slog.Float64("hit_rate", s.GetHitRate()),
		),
	)
}

// Report renders the human-readable summary block
func (s *Stats) Report(policy string, frameCount uint32) string {
	return fmt.Sprintf(
		"Algorithm: %s\nNumber of frames: %d\nTotal memory accesses: %d\nTotal page faults: %d\nTotal writes to disk: %d\n",
		policy, frameCount, s.GetAccesses(), s.GetFaults(), s.GetWriteBacks())
}

// Reset clears all counters (useful for testing)
func (s *Stats) Reset() {
	s.accesses.Store(0)
	s.faults.Store(0)
	s.writeBacks.Store(0)
}
