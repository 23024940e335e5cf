package sim

import (
	"fmt"
	"log/slog"
)

// Simulator replays a recorded trace through a page table under one
// eviction policy. State is built fresh per simulator; nothing is shared
// between runs, so the same trace can be replayed under several policies
// for comparison.
type Simulator struct {
	config *Config
	table  *PageTable
	policy EvictionPolicy
	trace  []Operation
	logger *slog.Logger
}

// NewSimulator validates the configuration and assembles the policy and
// table for a run over the given trace
func NewSimulator(config *Config, trace []Operation, logger *slog.Logger) (*Simulator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	policy, err := NewPolicy(config, trace)
	if err != nil {
		return nil, err
	}

	table, err := NewPageTable(config.FrameCount, policy)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Simulator{
		config: config,
		table:  table,
		policy: policy,
		trace:  trace,
		logger: logger,
	}, nil
}

// Run feeds every operation through the table in order and returns the
// final counters. Each access is fully resolved before the next begins;
// the diagnostic stream carries one line per access when verbose.
func (s *Simulator) Run() StatsSnapshot {
	for _, op := range s.trace {
		result := s.table.Access(op)
		if s.config.Verbose {
			s.logger.Debug(fmt.Sprintf("%08x: %s", op.Address(), result.Outcome),
				slog.Int("frame", result.FrameIndex),
				slog.String("mode", op.Mode.String()),
			)
		}
	}
	return s.table.Stats().Snapshot()
}

// Stats returns the table's counters
func (s *Simulator) Stats() *Stats {
	return s.table.Stats()
}

// Report renders the final summary block
func (s *Simulator) Report() string {
	return s.table.Stats().Report(s.policy.Name(), s.config.FrameCount)
}

// LogSummary logs the summary report on the simulator's logger
func (s *Simulator) LogSummary() {
	s.table.Stats().LogStats(s.logger, s.policy.Name(), s.config.FrameCount)
}

// PolicyRun pairs a policy name with the counters it produced
type PolicyRun struct {
	Policy string
	Stats  StatsSnapshot
}

// RunAll replays the same trace under every configured policy and returns
// the side-by-side results. NRU joins only when a refresh rate is set,
// since it cannot run without one.
func RunAll(config *Config, trace []Operation, logger *slog.Logger) ([]PolicyRun, error) {
	policies := []string{PolicyOptimal, PolicyClock, PolicyRandom, PolicyLRU}
	if config.RefreshRate > 0 {
		policies = append(policies, PolicyNRU)
	}

	runs := make([]PolicyRun, 0, len(policies))
	for _, name := range policies {
		runConfig := config.Clone()
		runConfig.Policy = name

		simulator, err := NewSimulator(runConfig, trace, logger)
		if err != nil {
			return nil, err
		}
		runs = append(runs, PolicyRun{Policy: name, Stats: simulator.Run()})
	}
	return runs, nil
}
