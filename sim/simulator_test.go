package sim

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// TestSimulatorEndToEnd tests a full run from trace text to summary
func TestSimulatorEndToEnd(t *testing.T) {
	trace, err := ParseTrace(strings.NewReader("00005018 W\n00005abc R\n00007120 R\n"))
	if err != nil {
		t.Fatalf("ParseTrace: %v", err)
	}

	config := DefaultConfig()
	config.FrameCount = 1
	config.Policy = PolicyClock

	simulator, err := NewSimulator(config, trace, nil)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	stats := simulator.Run()

	if stats.Accesses != 3 || stats.Faults != 2 || stats.WriteBacks != 1 {
		t.Errorf("expected accesses=3 faults=2 write-backs=1, got %d/%d/%d",
			stats.Accesses, stats.Faults, stats.WriteBacks)
	}

	report := simulator.Report()
	for _, want := range []string{"clock", "frames: 1", "accesses: 3", "faults: 2", "disk: 1"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

// TestSimulatorDiagnosticStream tests the per-access debug lines
func TestSimulatorDiagnosticStream(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	config := DefaultConfig()
	config.FrameCount = 1
	config.Policy = PolicyClock
	config.Verbose = true

	trace := []Operation{writeOp(5), readOp(5), readOp(7)}
	simulator, err := NewSimulator(config, trace, logger)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	simulator.Run()

	out := buf.String()
	for _, want := range []string{"Page Fault - No Eviction", "Hit", "Page Fault - Evict Dirty"} {
		if !strings.Contains(out, want) {
			t.Errorf("diagnostic stream missing %q:\n%s", want, out)
		}
	}
}

// TestSimulatorRejectsInvalidConfig tests that construction fails before
// any access is simulated
func TestSimulatorRejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.Policy = PolicyNRU // no refresh rate

	if _, err := NewSimulator(config, nil, nil); !IsErrorCode(err, ErrCodeMissingRefreshRate) {
		t.Errorf("expected missing refresh rate error, got %v", err)
	}
}

// TestRunAllComparesPolicies tests the side-by-side comparison run
func TestRunAllComparesPolicies(t *testing.T) {
	trace := []Operation{
		readOp(1), readOp(2), readOp(3), readOp(1), readOp(4),
		writeOp(2), readOp(5), readOp(1), readOp(3), writeOp(4),
	}

	config := DefaultConfig()
	config.FrameCount = 3
	config.RefreshRate = 4

	runs, err := RunAll(config, trace, nil)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(runs) != 5 {
		t.Fatalf("expected 5 policy runs, got %d", len(runs))
	}

	var optimalFaults uint64
	for _, run := range runs {
		if run.Stats.Accesses != uint64(len(trace)) {
			t.Errorf("%s: accesses %d, want %d", run.Policy, run.Stats.Accesses, len(trace))
		}
		if run.Policy == PolicyOptimal {
			optimalFaults = run.Stats.Faults
		}
	}
	for _, run := range runs {
		if run.Stats.Faults < optimalFaults {
			t.Errorf("%s beat optimal: %d < %d faults", run.Policy, run.Stats.Faults, optimalFaults)
		}
	}
}

// TestRunAllSkipsNRUWithoutRefresh tests that the comparison run leaves
// nru out rather than failing when no refresh rate is configured
func TestRunAllSkipsNRUWithoutRefresh(t *testing.T) {
	config := DefaultConfig()
	config.FrameCount = 2

	runs, err := RunAll(config, []Operation{readOp(1), readOp(2)}, nil)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	for _, run := range runs {
		if run.Policy == PolicyNRU {
			t.Error("nru should be skipped without a refresh rate")
		}
	}
}

// TestStatsReportFields tests the summary block contents
func TestStatsReportFields(t *testing.T) {
	stats := NewStats()
	stats.RecordAccess()
	stats.RecordAccess()
	stats.RecordFault()

	report := stats.Report(PolicyOptimal, 8)
	for _, want := range []string{
		"Algorithm: opt",
		"Number of frames: 8",
		"Total memory accesses: 2",
		"Total page faults: 1",
		"Total writes to disk: 0",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if rate := stats.GetHitRate(); rate != 0.5 {
		t.Errorf("hit rate = %v, want 0.5", rate)
	}
}
